package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/copypasta/mock"
	cpslog "github.com/fwojciec/copypasta/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingOCR_Recognize(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	inner := &mock.OCR{
		RecognizeFn: func(ctx context.Context, image []byte) ([]string, error) {
			return []string{"one", "two", "three"}, nil
		},
	}

	spans, err := cpslog.NewLoggingOCR(inner, logger).Recognize(context.Background(), []byte("png!"))

	require.NoError(t, err)
	assert.Len(t, spans, 3)
	output := buf.String()
	assert.Contains(t, output, "msg=ocr")
	assert.Contains(t, output, "bytes=4")
	assert.Contains(t, output, "spans=3")
}

func TestLoggingRasterizer_Rasterize(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	inner := &mock.Rasterizer{
		RasterizeFn: func(ctx context.Context, pdf []byte, page int) ([]byte, error) {
			return nil, errors.New("pdftoppm crashed")
		},
	}

	_, err := cpslog.NewLoggingRasterizer(inner, logger).Rasterize(context.Background(), nil, 7)

	require.Error(t, err)
	output := buf.String()
	assert.Contains(t, output, "msg=rasterize")
	assert.Contains(t, output, "page=7")
	assert.Contains(t, output, "err=\"pdftoppm crashed\"")
}
