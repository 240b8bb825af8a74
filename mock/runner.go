package mock

import (
	"context"

	"github.com/fwojciec/copypasta/exec"
)

var _ exec.Runner = (*Runner)(nil)

// Runner is a mock implementation of exec.Runner.
type Runner struct {
	RunFn func(ctx context.Context, stdin []byte, name string, args ...string) ([]byte, []byte, error)
}

func (r *Runner) Run(ctx context.Context, stdin []byte, name string, args ...string) ([]byte, []byte, error) {
	return r.RunFn(ctx, stdin, name, args...)
}
