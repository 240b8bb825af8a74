// Package tesseract implements copypasta.OCR with the tesseract CLI.
package tesseract

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/copypasta"
	"github.com/fwojciec/copypasta/exec"
)

// Engine defaults.
const (
	DefaultBinary   = "tesseract"
	DefaultLanguage = "eng"
)

var _ copypasta.OCR = (*Engine)(nil)

// Engine recognizes text by piping images through tesseract.
// It holds no per-call state and is safe for concurrent use.
type Engine struct {
	runner   exec.Runner
	binary   string
	language string
}

// Option configures an Engine.
type Option func(*Engine)

// WithBinary sets the tesseract executable path.
func WithBinary(path string) Option {
	return func(e *Engine) {
		e.binary = path
	}
}

// WithLanguage sets the recognition language pack, e.g. "eng" or "eng+deu".
func WithLanguage(lang string) Option {
	return func(e *Engine) {
		e.language = lang
	}
}

// NewEngine verifies that tesseract and the requested language packs are
// installed and returns a ready Engine. Verification happens once here so
// per-image calls only pay for recognition.
func NewEngine(ctx context.Context, runner exec.Runner, opts ...Option) (*Engine, error) {
	e := &Engine{
		runner:   runner,
		binary:   DefaultBinary,
		language: DefaultLanguage,
	}
	for _, opt := range opts {
		opt(e)
	}

	if _, _, err := runner.Run(ctx, nil, e.binary, "--version"); err != nil {
		return nil, copypasta.Errorf(copypasta.EUNAVAILABLE, "tesseract is not available: %s", copypasta.ErrorMessage(err))
	}

	stdout, stderr, err := runner.Run(ctx, nil, e.binary, "--list-langs")
	if err != nil {
		return nil, copypasta.Errorf(copypasta.EUNAVAILABLE, "tesseract languages unavailable: %s", copypasta.ErrorMessage(err))
	}
	installed := parseLanguages(append(stdout, stderr...))
	for _, lang := range strings.Split(e.language, "+") {
		if !installed[lang] {
			return nil, copypasta.Errorf(copypasta.EUNAVAILABLE, "tesseract language pack %q is not installed", lang)
		}
	}

	return e, nil
}

// Recognize returns the non-empty lines of tesseract's output.
func (e *Engine) Recognize(ctx context.Context, image []byte) ([]string, error) {
	if len(image) == 0 {
		return nil, nil
	}

	stdout, stderr, err := e.runner.Run(ctx, image, e.binary, "stdin", "stdout", "-l", e.language)
	if err != nil {
		return nil, fmt.Errorf("tesseract: %w: %s", err, bytes.TrimSpace(stderr))
	}
	return spans(string(stdout)), nil
}

// spans splits OCR output into trimmed, non-empty lines.
func spans(out string) []string {
	var lines []string
	for line := range strings.Lines(out) {
		if s := strings.TrimSpace(line); s != "" {
			lines = append(lines, s)
		}
	}
	return lines
}

// parseLanguages reads the output of --list-langs, skipping the header line.
func parseLanguages(out []byte) map[string]bool {
	langs := make(map[string]bool)
	for line := range strings.Lines(string(out)) {
		line = strings.TrimSpace(line)
		if line == "" || strings.Contains(line, " ") {
			continue
		}
		langs[line] = true
	}
	return langs
}
