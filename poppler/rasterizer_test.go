package poppler_test

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/copypasta"
	"github.com/fwojciec/copypasta/mock"
	"github.com/fwojciec/copypasta/poppler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRasterizer_Rasterize(t *testing.T) {
	t.Parallel()

	t.Run("renders a single page at native resolution", func(t *testing.T) {
		t.Parallel()

		var gotArgs []string
		runner := &mock.Runner{
			RunFn: func(ctx context.Context, stdin []byte, name string, args ...string) ([]byte, []byte, error) {
				gotArgs = args
				writePNG(t, args[len(args)-1]+".png", 100, 50)
				return nil, nil, nil
			},
		}

		out, err := poppler.NewRasterizer(runner).Rasterize(context.Background(), []byte("%PDF-1.4"), 3)

		require.NoError(t, err)
		assert.Equal(t, []string{"-f", "3", "-l", "3", "-r", "72", "-png", "-singlefile"}, gotArgs[:8])
		cfg, err := png.DecodeConfig(bytes.NewReader(out))
		require.NoError(t, err)
		assert.Equal(t, 100, cfg.Width)
		assert.Equal(t, 50, cfg.Height)
	})

	t.Run("halves oversized pages", func(t *testing.T) {
		t.Parallel()

		runner := &mock.Runner{
			RunFn: func(ctx context.Context, stdin []byte, name string, args ...string) ([]byte, []byte, error) {
				writePNG(t, args[len(args)-1]+".png", 120, 40)
				return nil, nil, nil
			},
		}
		r := poppler.NewRasterizer(runner)
		r.MaxDimension = 100

		out, err := r.Rasterize(context.Background(), []byte("%PDF-1.4"), 1)

		require.NoError(t, err)
		cfg, err := png.DecodeConfig(bytes.NewReader(out))
		require.NoError(t, err)
		assert.Equal(t, 60, cfg.Width)
		assert.Equal(t, 20, cfg.Height)
	})

	t.Run("wraps command failures", func(t *testing.T) {
		t.Parallel()

		runner := &mock.Runner{
			RunFn: func(ctx context.Context, stdin []byte, name string, args ...string) ([]byte, []byte, error) {
				return nil, []byte("Syntax Error: broken"), errors.New("exit status 1")
			},
		}

		_, err := poppler.NewRasterizer(runner).Rasterize(context.Background(), []byte("x"), 1)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "Syntax Error: broken")
	})

	t.Run("passes through unavailable binary", func(t *testing.T) {
		t.Parallel()

		runner := &mock.Runner{
			RunFn: func(ctx context.Context, stdin []byte, name string, args ...string) ([]byte, []byte, error) {
				return nil, nil, copypasta.Errorf(copypasta.EUNAVAILABLE, "pdftoppm is not installed")
			},
		}

		_, err := poppler.NewRasterizer(runner).Rasterize(context.Background(), []byte("x"), 1)

		assert.Equal(t, copypasta.EUNAVAILABLE, copypasta.ErrorCode(err))
	})

	t.Run("rejects invalid page numbers", func(t *testing.T) {
		t.Parallel()

		_, err := poppler.NewRasterizer(&mock.Runner{}).Rasterize(context.Background(), []byte("x"), 0)

		assert.Equal(t, copypasta.EINVALID, copypasta.ErrorCode(err))
	})
}

func TestScale(t *testing.T) {
	t.Parallel()

	out, err := poppler.Scale(image.NewGray(image.Rect(0, 0, 9, 1)), 2)

	require.NoError(t, err)
	cfg, err := png.DecodeConfig(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Width)
	assert.Equal(t, 1, cfg.Height)
}

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewGray(image.Rect(0, 0, w, h))))
	require.NoError(t, os.WriteFile(filepath.Clean(path), buf.Bytes(), 0o600))
}
