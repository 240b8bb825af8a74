package tesseract_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/copypasta"
	"github.com/fwojciec/copypasta/mock"
	"github.com/fwojciec/copypasta/tesseract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const listLangs = "List of available languages in \"/usr/share/tessdata/\" (2):\neng\nosd\n"

func newRunner(recognize func(stdin []byte, args []string) ([]byte, []byte, error)) *mock.Runner {
	return &mock.Runner{
		RunFn: func(ctx context.Context, stdin []byte, name string, args ...string) ([]byte, []byte, error) {
			switch args[0] {
			case "--version":
				return []byte("tesseract 5.3.0\n"), nil, nil
			case "--list-langs":
				return []byte(listLangs), nil, nil
			}
			return recognize(stdin, args)
		},
	}
}

func TestNewEngine(t *testing.T) {
	t.Parallel()

	t.Run("accepts installed language", func(t *testing.T) {
		t.Parallel()

		_, err := tesseract.NewEngine(context.Background(), newRunner(nil))

		require.NoError(t, err)
	})

	t.Run("rejects missing language pack", func(t *testing.T) {
		t.Parallel()

		_, err := tesseract.NewEngine(context.Background(), newRunner(nil), tesseract.WithLanguage("eng+deu"))

		require.Error(t, err)
		assert.Equal(t, copypasta.EUNAVAILABLE, copypasta.ErrorCode(err))
		assert.Contains(t, copypasta.ErrorMessage(err), "deu")
	})

	t.Run("reports missing binary", func(t *testing.T) {
		t.Parallel()

		runner := &mock.Runner{
			RunFn: func(ctx context.Context, stdin []byte, name string, args ...string) ([]byte, []byte, error) {
				return nil, nil, copypasta.Errorf(copypasta.EUNAVAILABLE, "%s is not installed", name)
			},
		}

		_, err := tesseract.NewEngine(context.Background(), runner, tesseract.WithBinary("/opt/tess"))

		require.Error(t, err)
		assert.Equal(t, copypasta.EUNAVAILABLE, copypasta.ErrorCode(err))
		assert.Contains(t, copypasta.ErrorMessage(err), "/opt/tess")
	})
}

func TestEngine_Recognize(t *testing.T) {
	t.Parallel()

	t.Run("pipes image and returns non-empty lines", func(t *testing.T) {
		t.Parallel()

		var gotStdin []byte
		var gotArgs []string
		runner := newRunner(func(stdin []byte, args []string) ([]byte, []byte, error) {
			gotStdin = stdin
			gotArgs = args
			return []byte("First line\n\n  Second line  \n\f"), nil, nil
		})
		engine, err := tesseract.NewEngine(context.Background(), runner)
		require.NoError(t, err)

		spans, err := engine.Recognize(context.Background(), []byte("png-bytes"))

		require.NoError(t, err)
		assert.Equal(t, []string{"First line", "Second line"}, spans)
		assert.Equal(t, []byte("png-bytes"), gotStdin)
		assert.Equal(t, []string{"stdin", "stdout", "-l", "eng"}, gotArgs)
	})

	t.Run("empty image yields no spans", func(t *testing.T) {
		t.Parallel()

		engine, err := tesseract.NewEngine(context.Background(), newRunner(nil))
		require.NoError(t, err)

		spans, err := engine.Recognize(context.Background(), nil)

		require.NoError(t, err)
		assert.Empty(t, spans)
	})

	t.Run("wraps recognition failures", func(t *testing.T) {
		t.Parallel()

		runner := newRunner(func(stdin []byte, args []string) ([]byte, []byte, error) {
			return nil, []byte("Error in pixReadMem"), errors.New("exit status 1")
		})
		engine, err := tesseract.NewEngine(context.Background(), runner)
		require.NoError(t, err)

		_, err = engine.Recognize(context.Background(), []byte("bad"))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "pixReadMem")
	})
}
