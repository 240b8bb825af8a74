package mock

import (
	"context"

	"github.com/fwojciec/copypasta"
)

var _ copypasta.Completer = (*Completer)(nil)

// Completer is a mock implementation of copypasta.Completer.
type Completer struct {
	CompleteFn func(ctx context.Context, cred copypasta.Credential, prompt string) (string, error)
}

func (c *Completer) Complete(ctx context.Context, cred copypasta.Credential, prompt string) (string, error) {
	return c.CompleteFn(ctx, cred, prompt)
}
