// Package yaml loads the copypasta configuration file.
package yaml

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fwojciec/copypasta"
	"gopkg.in/yaml.v3"
)

// Backends and OCR engines understood by the CLI.
const (
	BackendOpenRouter = "openrouter"
	BackendGemini     = "gemini"

	EngineTesseract = "tesseract"
	EngineVision    = "vision"
)

// Defaults applied to unset values.
const (
	DefaultBackend       = BackendOpenRouter
	DefaultEngine        = EngineTesseract
	DefaultLanguage      = "eng"
	DefaultDPI           = 72
	DefaultMaxDimension  = 2000
	DefaultFetchTimeout  = 30 * time.Second
	DefaultFetchRate     = 2.0
	DefaultConcurrency   = 2
	EnvKeys              = "COPYPASTA_KEYS"
	EnvBackend           = "COPYPASTA_BACKEND"
	defaultConfigName    = "copypasta.yaml"
	defaultUserConfigDir = "copypasta"
)

// Credential is one named API key. Keys may reference environment
// variables as ${NAME}.
type Credential struct {
	Name string `yaml:"name"`
	Key  string `yaml:"key"`
}

// Config is the on-disk configuration.
type Config struct {
	Credentials []Credential `yaml:"credentials"`
	Backend     string       `yaml:"backend"`
	Model       string       `yaml:"model"`

	Chunk struct {
		Size  int `yaml:"size"`
		Limit int `yaml:"limit"` // 0 uses the default, negative disables truncation
	} `yaml:"chunk"`

	OCR struct {
		Engine       string `yaml:"engine"`
		Language     string `yaml:"language"`
		DPI          int    `yaml:"dpi"`
		MaxDimension int    `yaml:"max_dimension"`
		Concurrency  int    `yaml:"concurrency"`
	} `yaml:"ocr"`

	Fetch struct {
		Timeout   time.Duration `yaml:"timeout"`
		RateLimit float64       `yaml:"rate_limit"` // requests per second per host
	} `yaml:"fetch"`

	// LLMRateLimit is requests per second per credential; zero disables it.
	LLMRateLimit float64 `yaml:"llm_rate_limit"`
}

// LoadConfig reads the configuration at path using the process environment.
// An empty path searches the default locations and falls back to defaults
// when none exists.
func LoadConfig(path string) (*Config, error) {
	return Load(path, os.Getenv)
}

// Load is LoadConfig with an explicit environment lookup.
func Load(path string, getenv func(string) string) (*Config, error) {
	if path == "" {
		path = findConfig()
	}

	cfg := &Config{}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, copypasta.Errorf(copypasta.ENOTFOUND, "config file %s not found", path)
			}
			return nil, copypasta.Errorf(copypasta.EINVALID, "error reading config file: %v", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, copypasta.Errorf(copypasta.EINVALID, "error parsing config file %s: %v", path, err)
		}
	}

	mergeWithEnv(cfg, getenv)
	applyDefaults(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func findConfig() string {
	locations := []string{defaultConfigName}
	if dir, err := os.UserConfigDir(); err == nil {
		locations = append(locations, filepath.Join(dir, defaultUserConfigDir, "config.yaml"))
	}
	if home, err := os.UserHomeDir(); err == nil {
		locations = append(locations, filepath.Join(home, ".config", defaultUserConfigDir, "config.yaml"))
	}
	for _, loc := range locations {
		if _, err := os.Stat(loc); err == nil {
			return loc
		}
	}
	return ""
}

func mergeWithEnv(cfg *Config, getenv func(string) string) {
	for i := range cfg.Credentials {
		cfg.Credentials[i].Key = os.Expand(cfg.Credentials[i].Key, getenv)
	}
	if keys := getenv(EnvKeys); keys != "" {
		cfg.Credentials = nil
		for _, key := range strings.Split(keys, ",") {
			if key = strings.TrimSpace(key); key != "" {
				cfg.Credentials = append(cfg.Credentials, Credential{Key: key})
			}
		}
	}
	if backend := getenv(EnvBackend); backend != "" {
		cfg.Backend = backend
	}
}

func applyDefaults(cfg *Config) {
	cfg.Backend = strings.ToLower(strings.TrimSpace(cfg.Backend))
	if cfg.Backend == "" {
		cfg.Backend = DefaultBackend
	}
	if cfg.Chunk.Size == 0 {
		cfg.Chunk.Size = copypasta.DefaultChunkSize
	}
	if cfg.Chunk.Limit == 0 {
		cfg.Chunk.Limit = copypasta.DefaultChunkLimit
	}
	cfg.OCR.Engine = strings.ToLower(strings.TrimSpace(cfg.OCR.Engine))
	if cfg.OCR.Engine == "" {
		cfg.OCR.Engine = DefaultEngine
	}
	if cfg.OCR.Language == "" {
		cfg.OCR.Language = DefaultLanguage
	}
	if cfg.OCR.DPI == 0 {
		cfg.OCR.DPI = DefaultDPI
	}
	if cfg.OCR.MaxDimension == 0 {
		cfg.OCR.MaxDimension = DefaultMaxDimension
	}
	if cfg.OCR.Concurrency == 0 {
		cfg.OCR.Concurrency = DefaultConcurrency
	}
	if cfg.Fetch.Timeout == 0 {
		cfg.Fetch.Timeout = DefaultFetchTimeout
	}
	if cfg.Fetch.RateLimit == 0 {
		cfg.Fetch.RateLimit = DefaultFetchRate
	}
}

// Validate returns an error if the configuration names an unknown backend
// or engine or carries out-of-range numbers.
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendOpenRouter, BackendGemini:
	default:
		return copypasta.Errorf(copypasta.EINVALID, "unknown backend %q", c.Backend)
	}
	switch c.OCR.Engine {
	case EngineTesseract, EngineVision:
	default:
		return copypasta.Errorf(copypasta.EINVALID, "unknown OCR engine %q", c.OCR.Engine)
	}
	if c.Chunk.Size < 0 {
		return copypasta.Errorf(copypasta.EINVALID, "chunk size must be positive, got %d", c.Chunk.Size)
	}
	if c.OCR.DPI < 0 || c.OCR.MaxDimension < 0 || c.OCR.Concurrency < 0 {
		return copypasta.Errorf(copypasta.EINVALID, "ocr settings must not be negative")
	}
	if c.Fetch.Timeout < 0 {
		return copypasta.Errorf(copypasta.EINVALID, "fetch timeout must not be negative")
	}
	return nil
}

// Pool returns the configured credentials as an ordered pool.
// Credentials with empty keys are skipped.
func (c *Config) Pool() []copypasta.Credential {
	names := make([]string, len(c.Credentials))
	keys := make([]string, len(c.Credentials))
	for i, cred := range c.Credentials {
		names[i] = cred.Name
		keys[i] = cred.Key
	}
	return copypasta.NewCredentialPool(names, keys)
}
