package copypasta

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// ExtractedDocument is the text produced from a single ExtractionRequest.
type ExtractedDocument struct {
	Kind        SourceKind         `json:"kind"`
	Text        string             `json:"text"`
	Request     *ExtractionRequest `json:"-"`
	Warnings    []string           `json:"warnings,omitempty"`
	ContentHash string             `json:"contentHash"`
}

// Warnf records a non-fatal problem encountered during extraction.
func (d *ExtractedDocument) Warnf(format string, args ...any) {
	d.Warnings = append(d.Warnings, fmt.Sprintf(format, args...))
}

// Freeze finalizes the document text and computes its content hash.
// The document must not be modified afterwards.
func (d *ExtractedDocument) Freeze(text string) *ExtractedDocument {
	d.Text = text
	d.ContentHash = fmt.Sprintf("%016x", xxhash.Sum64String(text))
	return d
}

// PageUnit holds the per-page state of a PDF extraction.
// The rendered image is only populated when the OCR fallback triggers.
type PageUnit struct {
	Index           int
	EmbeddedText    string
	HasEmbeddedText bool
	RenderedImage   []byte
	OCR             bool
}

// WithPrefix prepends a prompt prefix to text, separated by a blank line.
// An empty prefix returns text unchanged.
func WithPrefix(prefix, text string) string {
	if strings.TrimSpace(prefix) == "" {
		return text
	}
	return prefix + "\n\n" + text
}
