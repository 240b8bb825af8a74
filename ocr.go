package copypasta

import (
	"context"
	"strings"
	"unicode/utf8"
)

// MinEmbeddedTextLength is the shortest trimmed text a PDF page must yield
// to be considered text-bearing.
const MinEmbeddedTextLength = 2

// NeedsOCR reports whether a page's directly extracted text is too short to
// be usable, meaning the page is treated as scanned image content.
func NeedsOCR(embedded string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(embedded)) < MinEmbeddedTextLength
}

// OCR recognizes text in a bitmap image.
// Implementations are initialized once and must be safe for concurrent use.
type OCR interface {
	// Recognize returns recognized text spans in the engine's reading order.
	Recognize(ctx context.Context, image []byte) ([]string, error)
}

// Rasterizer renders a single PDF page to an encoded image.
type Rasterizer interface {
	// Rasterize renders the 1-based page of the PDF as PNG bytes.
	Rasterize(ctx context.Context, pdf []byte, page int) ([]byte, error)
}

// PDF is an opened PDF document.
type PDF interface {
	// NumPages returns the number of pages in the document.
	NumPages() int

	// PageText returns the embedded text of the 1-based page.
	PageText(page int) (string, error)
}

// PDFOpener opens PDF documents from raw bytes.
type PDFOpener interface {
	Open(data []byte) (PDF, error)
}
