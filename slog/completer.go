package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/copypasta"
)

var _ copypasta.Completer = (*LoggingCompleter)(nil)

// LoggingCompleter wraps a Completer with logging. Only the credential
// name is logged, never the key.
type LoggingCompleter struct {
	next   copypasta.Completer
	logger *slog.Logger
}

// NewLoggingCompleter creates a new LoggingCompleter.
func NewLoggingCompleter(next copypasta.Completer, logger *slog.Logger) *LoggingCompleter {
	return &LoggingCompleter{next: next, logger: logger}
}

// Complete logs prompt and reply sizes and delegates to the wrapped completer.
func (c *LoggingCompleter) Complete(ctx context.Context, cred copypasta.Credential, prompt string) (reply string, err error) {
	defer func(begin time.Time) {
		c.logger.Info("complete",
			"credential", cred.String(),
			"prompt_chars", len(prompt),
			"reply_chars", len(reply),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.Complete(ctx, cred, prompt)
}
