// Package exec runs external command-line tools such as pdftoppm and
// tesseract.
package exec

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os/exec"
	"strings"
	"time"

	"github.com/fwojciec/copypasta"
)

// maxLoggedStderr caps how much stderr is written to the log.
const maxLoggedStderr = 8 << 10

// Runner runs a command, optionally feeding stdin, and returns its output.
type Runner interface {
	Run(ctx context.Context, stdin []byte, name string, args ...string) (stdout, stderr []byte, err error)
}

var _ Runner = (*CommandRunner)(nil)

// CommandRunner runs commands with os/exec.
type CommandRunner struct {
	logger *slog.Logger
}

// NewCommandRunner creates a CommandRunner. A nil logger discards output.
func NewCommandRunner(logger *slog.Logger) *CommandRunner {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &CommandRunner{logger: logger}
}

// Run executes name with args. A missing binary is reported as EUNAVAILABLE.
func (r *CommandRunner) Run(ctx context.Context, stdin []byte, name string, args ...string) ([]byte, []byte, error) {
	start := time.Now()

	cmd := exec.CommandContext(ctx, name, args...)
	var out, errb bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errb
	if stdin != nil {
		cmd.Stdin = bytes.NewReader(stdin)
	}

	err := cmd.Run()
	dur := time.Since(start)

	if err != nil {
		r.logger.Error("exec failed",
			"cmd", name,
			"args", strings.Join(args, " "),
			"duration", dur,
			"err", err,
			"stderr", truncate(errb.String(), maxLoggedStderr),
		)
		if errors.Is(err, exec.ErrNotFound) {
			return out.Bytes(), errb.Bytes(), copypasta.Errorf(copypasta.EUNAVAILABLE, "%s is not installed", name)
		}
	} else {
		r.logger.Debug("exec ok",
			"cmd", name,
			"args", strings.Join(args, " "),
			"duration", dur,
			"stdout_bytes", out.Len(),
			"stderr_bytes", errb.Len(),
		)
	}

	return out.Bytes(), errb.Bytes(), err
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "...(truncated)"
}
