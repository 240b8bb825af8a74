package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/copypasta"
	"github.com/fwojciec/copypasta/dispatch"
	"github.com/fwojciec/copypasta/exec"
	"github.com/fwojciec/copypasta/extract"
	"github.com/fwojciec/copypasta/gemini"
	"github.com/fwojciec/copypasta/goquery"
	cphttp "github.com/fwojciec/copypasta/http"
	"github.com/fwojciec/copypasta/openrouter"
	"github.com/fwojciec/copypasta/pdf"
	"github.com/fwojciec/copypasta/poppler"
	"github.com/fwojciec/copypasta/ratelimit"
	cpslog "github.com/fwojciec/copypasta/slog"
	"github.com/fwojciec/copypasta/tesseract"
	"github.com/fwojciec/copypasta/vision"
	"github.com/fwojciec/copypasta/yaml"
	"github.com/fwojciec/copypasta/youtube"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	_ = m.Close()
	if err != nil {
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Stdin is read by send and plan when no file is given.
	Stdin io.Reader

	// Config overrides the config file when set. Used by tests.
	Config *yaml.Config

	closers []io.Closer
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{Stdin: os.Stdin}
}

// Close releases resources opened by Run.
func (m *Main) Close() error {
	var first error
	for _, c := range m.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	m.closers = nil
	return first
}

// Run executes the CLI with the given arguments. Errors are reported on
// stderr before being returned.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  m.Stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("copypasta"),
		kong.Description("Extract text from web pages, PDFs, images and videos, and send it to a language model."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		err := fmt.Errorf("no command specified. Run 'copypasta --help' to see available commands")
		printError(stderr, err)
		return err
	}
	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		printError(stderr, err)
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	cfg := m.Config
	if cfg == nil {
		if cfg, err = yaml.LoadConfig(cli.Config); err != nil {
			printError(stderr, err)
			return err
		}
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	switch cmd {
	case "url", "pdf", "image":
		extractor, err := m.extractor(ctx, cfg, logger, cmd == "image")
		if err != nil {
			printError(stderr, err)
			return err
		}
		deps.Extractor = extractor
	}

	switch cmd {
	case "url", "pdf", "image", "send", "plan":
		deps.Dispatcher = newDispatcher(cfg, logger)
		deps.Cursor = &dispatch.SharedCursor{}
	}

	if cmd == "plan" {
		// Token counts are informational; plan still works without them.
		if tc, err := gemini.NewTokenCounter(cfg.Model); err == nil {
			deps.Tokens = tc
		} else {
			logger.Warn("token counter unavailable", "err", err)
		}
	}

	return kongCtx.Run(deps)
}

// extractor wires the extraction service. Without a working OCR engine,
// scanned PDF pages become warnings; requireOCR turns that into an error.
func (m *Main) extractor(ctx context.Context, cfg *yaml.Config, logger *slog.Logger, requireOCR bool) (copypasta.TextExtractor, error) {
	limiter := ratelimit.NewKeyLimiter(cfg.Fetch.RateLimit)
	fetcher := cphttp.NewFetcher(
		cphttp.WithTimeout(cfg.Fetch.Timeout),
		cphttp.WithLimiter(limiter),
	)

	runner := exec.NewCommandRunner(logger)
	rasterizer := poppler.NewRasterizer(runner)
	rasterizer.DPI = cfg.OCR.DPI
	rasterizer.MaxDimension = cfg.OCR.MaxDimension

	svc := &extract.Service{
		Fetcher:     cphttp.NewRetryFetcher(cpslog.NewLoggingFetcher(fetcher, logger), cphttp.DefaultRetryDelays(), logger),
		HTML:        goquery.NewExtractor(),
		PDFs:        pdf.NewOpener(),
		Rasterizer:  cpslog.NewLoggingRasterizer(rasterizer, logger),
		Transcripts: youtube.NewTranscriptService(&http.Client{Timeout: cfg.Fetch.Timeout}),
		Concurrency: cfg.OCR.Concurrency,
	}

	ocr, err := m.ocr(ctx, cfg, runner)
	if err != nil {
		if requireOCR {
			return nil, err
		}
		logger.Warn("ocr unavailable", "engine", cfg.OCR.Engine, "err", err)
	} else {
		svc.OCR = cpslog.NewLoggingOCR(ocr, logger)
	}

	return cpslog.NewLoggingExtractor(svc, logger), nil
}

func (m *Main) ocr(ctx context.Context, cfg *yaml.Config, runner exec.Runner) (copypasta.OCR, error) {
	switch cfg.OCR.Engine {
	case yaml.EngineVision:
		engine, err := vision.NewEngine(ctx)
		if err != nil {
			return nil, err
		}
		m.closers = append(m.closers, engine)
		return engine, nil
	default:
		return tesseract.NewEngine(ctx, runner, tesseract.WithLanguage(cfg.OCR.Language))
	}
}

func newDispatcher(cfg *yaml.Config, logger *slog.Logger) *dispatch.Dispatcher {
	var completer copypasta.Completer
	switch cfg.Backend {
	case yaml.BackendGemini:
		var opts []gemini.Option
		if cfg.Model != "" {
			opts = append(opts, gemini.WithModel(cfg.Model))
		}
		completer = gemini.NewCompleter(opts...)
	default:
		var opts []openrouter.Option
		if cfg.Model != "" {
			opts = append(opts, openrouter.WithModel(cfg.Model))
		}
		completer = openrouter.NewCompleter(opts...)
	}

	d := &dispatch.Dispatcher{
		Completer:   cpslog.NewLoggingCompleter(completer, logger),
		Credentials: cfg.Pool(),
		ChunkSize:   cfg.Chunk.Size,
		ChunkLimit:  cfg.Chunk.Limit,
	}
	if cfg.LLMRateLimit > 0 {
		d.Limiter = ratelimit.NewKeyLimiter(cfg.LLMRateLimit)
	}
	return d
}
