// Package pdf implements copypasta.PDFOpener using the ledongthuc/pdf reader.
package pdf

import (
	"bytes"
	"fmt"

	"github.com/fwojciec/copypasta"
	"github.com/ledongthuc/pdf"
)

var (
	_ copypasta.PDFOpener = (*Opener)(nil)
	_ copypasta.PDF       = (*Document)(nil)
)

// Opener opens PDF documents held in memory.
type Opener struct{}

// NewOpener creates a new Opener.
func NewOpener() *Opener {
	return &Opener{}
}

// Open parses data as a PDF document. Malformed input is reported as
// EINVALID; the underlying reader panics on some corrupt files and those
// panics are recovered here.
func (o *Opener) Open(data []byte) (doc copypasta.PDF, err error) {
	defer func() {
		if r := recover(); r != nil {
			doc = nil
			err = copypasta.Errorf(copypasta.EINVALID, "failed to open PDF: %v", r)
		}
	}()

	if len(data) == 0 {
		return nil, copypasta.Errorf(copypasta.EINVALID, "Please upload a PDF.")
	}

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, copypasta.Errorf(copypasta.EINVALID, "failed to open PDF: %v", err)
	}
	return &Document{reader: r, pages: r.NumPage()}, nil
}

// Document is an opened PDF.
type Document struct {
	reader *pdf.Reader
	pages  int
}

// NumPages returns the page count.
func (d *Document) NumPages() int {
	return d.pages
}

// PageText returns the embedded plain text of the 1-based page.
func (d *Document) PageText(page int) (text string, err error) {
	if page < 1 || page > d.pages {
		return "", copypasta.Errorf(copypasta.EINVALID, "page %d out of range 1-%d", page, d.pages)
	}

	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("page %d: %v", page, r)
		}
	}()

	p := d.reader.Page(page)
	if p.V.IsNull() {
		return "", nil
	}
	return p.GetPlainText(nil)
}
