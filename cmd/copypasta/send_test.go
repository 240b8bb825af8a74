package main_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/fwojciec/copypasta"
	main "github.com/fwojciec/copypasta/cmd/copypasta"
	"github.com/fwojciec/copypasta/dispatch"
	"github.com/fwojciec/copypasta/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("reads stdin and prints assembled replies", func(t *testing.T) {
		t.Parallel()

		calls := 0
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdin:  strings.NewReader(strings.Repeat("a", 30)),
			Stdout: stdout,
			Stderr: stderr,
			Dispatcher: &dispatch.Dispatcher{
				Completer: &mock.Completer{
					CompleteFn: func(context.Context, copypasta.Credential, string) (string, error) {
						calls++
						if calls == 1 {
							return "first", nil
						}
						return "second", nil
					},
				},
				Credentials: []copypasta.Credential{{Key: "k"}},
				ChunkSize:   20,
			},
			Cursor: &dispatch.SharedCursor{},
		}

		cmd := &main.SendCmd{PromptFlags: main.PromptFlags{Template: "summarize"}}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Greater(t, calls, 1)
		out := stdout.String()
		assert.True(t, strings.HasPrefix(out, "\n\n# Page 1\nfirst\n\n---\n\n\n\n# Page 2\nsecond"))
	})

	t.Run("prints partial output when every key fails", func(t *testing.T) {
		t.Parallel()

		calls := 0
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdin:  strings.NewReader(strings.Repeat("b", 40)),
			Stdout: stdout,
			Stderr: stderr,
			Dispatcher: &dispatch.Dispatcher{
				Completer: &mock.Completer{
					CompleteFn: func(context.Context, copypasta.Credential, string) (string, error) {
						calls++
						if calls == 1 {
							return "only reply", nil
						}
						return "", errors.New("429 rate limited")
					},
				},
				Credentials: []copypasta.Credential{{Name: "a", Key: "1"}, {Name: "b", Key: "2"}},
				ChunkSize:   20,
			},
			Cursor: &dispatch.SharedCursor{},
		}

		err := (&main.SendCmd{PromptFlags: main.PromptFlags{Template: "Summarize"}}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, copypasta.ELIMIT, copypasta.ErrorCode(err))
		assert.Equal(t, "\n\n# Page 1\nonly reply\n", stdout.String())
		assert.Contains(t, stderr.String(), "error: limit reached")
	})

	t.Run("warns about dropped chunks", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdin:  strings.NewReader(strings.Repeat("c", 100)),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
			Dispatcher: &dispatch.Dispatcher{
				Completer: &mock.Completer{
					CompleteFn: func(context.Context, copypasta.Credential, string) (string, error) {
						return "ok", nil
					},
				},
				Credentials: []copypasta.Credential{{Key: "k"}},
				ChunkSize:   10,
				ChunkLimit:  2,
			},
			Cursor: &dispatch.SharedCursor{},
		}

		err := (&main.SendCmd{PromptFlags: main.PromptFlags{Template: "Summarize"}}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stderr.String(), "warning: text too long")
	})

	t.Run("rejects unknown template", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdin:  strings.NewReader("text"),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
		}

		err := (&main.SendCmd{PromptFlags: main.PromptFlags{Template: "Haiku"}}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, copypasta.ENOTFOUND, copypasta.ErrorCode(err))
		assert.Contains(t, stderr.String(), `error: template "Haiku" not found`)
	})

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdin:  strings.NewReader("  \n"),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
		}

		err := (&main.SendCmd{PromptFlags: main.PromptFlags{Template: "Summarize"}}).Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "error: input is empty")
	})

	t.Run("fails without keys", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:        context.Background(),
			Stdin:      strings.NewReader("text"),
			Stdout:     &bytes.Buffer{},
			Stderr:     stderr,
			Dispatcher: &dispatch.Dispatcher{Completer: &mock.Completer{}},
			Cursor:     &dispatch.SharedCursor{},
		}

		err := (&main.SendCmd{PromptFlags: main.PromptFlags{Template: "Summarize"}}).Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "error: no API keys configured")
	})
}
