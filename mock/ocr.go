package mock

import (
	"context"

	"github.com/fwojciec/copypasta"
)

var _ copypasta.OCR = (*OCR)(nil)

// OCR is a mock implementation of copypasta.OCR.
type OCR struct {
	RecognizeFn func(ctx context.Context, image []byte) ([]string, error)
}

func (o *OCR) Recognize(ctx context.Context, image []byte) ([]string, error) {
	return o.RecognizeFn(ctx, image)
}

var _ copypasta.Rasterizer = (*Rasterizer)(nil)

// Rasterizer is a mock implementation of copypasta.Rasterizer.
type Rasterizer struct {
	RasterizeFn func(ctx context.Context, pdf []byte, page int) ([]byte, error)
}

func (r *Rasterizer) Rasterize(ctx context.Context, pdf []byte, page int) ([]byte, error) {
	return r.RasterizeFn(ctx, pdf, page)
}

var _ copypasta.PDFOpener = (*PDFOpener)(nil)

// PDFOpener is a mock implementation of copypasta.PDFOpener.
type PDFOpener struct {
	OpenFn func(data []byte) (copypasta.PDF, error)
}

func (o *PDFOpener) Open(data []byte) (copypasta.PDF, error) {
	return o.OpenFn(data)
}

var _ copypasta.PDF = (*PDF)(nil)

// PDF is a mock implementation of copypasta.PDF.
type PDF struct {
	NumPagesFn func() int
	PageTextFn func(page int) (string, error)
}

func (p *PDF) NumPages() int {
	return p.NumPagesFn()
}

func (p *PDF) PageText(page int) (string, error) {
	return p.PageTextFn(page)
}
