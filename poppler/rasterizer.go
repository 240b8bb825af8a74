// Package poppler renders PDF pages to images with the poppler pdftoppm tool.
package poppler

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strconv"

	"github.com/fwojciec/copypasta"
	"github.com/fwojciec/copypasta/exec"
	"golang.org/x/image/draw"
)

// Rasterization defaults. 72 DPI is the page's native resolution.
const (
	DefaultBinary       = "pdftoppm"
	DefaultDPI          = 72
	DefaultMaxDimension = 2000
	DefaultScaleFactor  = 2
)

var _ copypasta.Rasterizer = (*Rasterizer)(nil)

// Rasterizer renders single PDF pages to PNG.
type Rasterizer struct {
	runner exec.Runner

	Binary string
	DPI    int

	// Rendered images with a side longer than MaxDimension are shrunk by
	// ScaleFactor before OCR. Zero disables downscaling.
	MaxDimension int
	ScaleFactor  int
}

// NewRasterizer creates a Rasterizer with default settings.
func NewRasterizer(runner exec.Runner) *Rasterizer {
	return &Rasterizer{
		runner:       runner,
		Binary:       DefaultBinary,
		DPI:          DefaultDPI,
		MaxDimension: DefaultMaxDimension,
		ScaleFactor:  DefaultScaleFactor,
	}
}

// Rasterize renders the 1-based page of pdf as PNG bytes.
func (r *Rasterizer) Rasterize(ctx context.Context, pdf []byte, page int) ([]byte, error) {
	if page < 1 {
		return nil, copypasta.Errorf(copypasta.EINVALID, "invalid page number %d", page)
	}

	dir, err := os.MkdirTemp("", "copypasta-raster-*")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(dir)

	in := filepath.Join(dir, "in.pdf")
	if err := os.WriteFile(in, pdf, 0o600); err != nil {
		return nil, err
	}
	prefix := filepath.Join(dir, "page")

	n := strconv.Itoa(page)
	_, stderr, err := r.runner.Run(ctx, nil, r.Binary,
		"-f", n, "-l", n,
		"-r", strconv.Itoa(r.DPI),
		"-png", "-singlefile",
		in, prefix,
	)
	if err != nil {
		if copypasta.ErrorCode(err) != copypasta.EINTERNAL {
			return nil, err
		}
		return nil, fmt.Errorf("rasterize page %d: %w: %s", page, err, bytes.TrimSpace(stderr))
	}

	out, err := os.ReadFile(prefix + ".png")
	if err != nil {
		return nil, fmt.Errorf("rasterize page %d: %w", page, err)
	}
	return r.downscale(out)
}

// downscale shrinks the encoded PNG when it exceeds MaxDimension.
func (r *Rasterizer) downscale(data []byte) ([]byte, error) {
	if r.MaxDimension <= 0 || r.ScaleFactor <= 1 {
		return data, nil
	}

	cfg, err := png.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode rendered page: %w", err)
	}
	if cfg.Width <= r.MaxDimension && cfg.Height <= r.MaxDimension {
		return data, nil
	}

	src, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode rendered page: %w", err)
	}
	return Scale(src, r.ScaleFactor)
}

// Scale shrinks img by factor in both dimensions and encodes it as PNG.
func Scale(img image.Image, factor int) ([]byte, error) {
	b := img.Bounds()
	w := max(b.Dx()/factor, 1)
	h := max(b.Dy()/factor, 1)

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)

	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
