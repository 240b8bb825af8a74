package main

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/copypasta"
)

// Run executes the url command.
func (c *URLCmd) Run(deps *Dependencies) error {
	return runExtract(deps, &copypasta.ExtractionRequest{
		Kind: copypasta.SourceWeb,
		URL:  c.URL,
	}, c.PromptFlags, c.Send)
}

// Run executes the pdf command.
func (c *PDFCmd) Run(deps *Dependencies) error {
	data, err := os.ReadFile(c.File)
	if err != nil {
		err = copypasta.Errorf(copypasta.EINVALID, "failed to read %s: %v", c.File, err)
		printError(deps.Stderr, err)
		return err
	}
	return runExtract(deps, &copypasta.ExtractionRequest{
		Kind:      copypasta.SourcePDF,
		Uploads:   []copypasta.Upload{{Name: filepath.Base(c.File), Type: "pdf", Data: data}},
		PageRange: c.pageRange(),
	}, c.PromptFlags, c.Send)
}

// pageRange returns nil for all pages. A missing start defaults to the
// first page and a missing end to the last.
func (c *PDFCmd) pageRange() *copypasta.PageRange {
	if c.All || (c.Start == 0 && c.End == 0) {
		return nil
	}
	r := copypasta.PageRange{Start: c.Start, End: c.End}
	if r.Start == 0 {
		r.Start = 1
	}
	if r.End == 0 {
		r.End = math.MaxInt32
	}
	return &r
}

// Run executes the image command.
func (c *ImageCmd) Run(deps *Dependencies) error {
	uploads := make([]copypasta.Upload, 0, len(c.Files))
	for _, f := range c.Files {
		data, err := os.ReadFile(f)
		if err != nil {
			err = copypasta.Errorf(copypasta.EINVALID, "failed to read %s: %v", f, err)
			printError(deps.Stderr, err)
			return err
		}
		uploads = append(uploads, copypasta.Upload{
			Name: filepath.Base(f),
			Type: strings.TrimPrefix(strings.ToLower(filepath.Ext(f)), "."),
			Data: data,
		})
	}
	return runExtract(deps, &copypasta.ExtractionRequest{
		Kind:    copypasta.SourceImage,
		Uploads: uploads,
	}, c.PromptFlags, c.Send)
}

// runExtract runs req and either prints the text or sends it to the model.
func runExtract(deps *Dependencies, req *copypasta.ExtractionRequest, flags PromptFlags, sendText bool) error {
	if deps.Extractor == nil {
		err := copypasta.Errorf(copypasta.EINTERNAL, "no extractor configured")
		printError(deps.Stderr, err)
		return err
	}

	doc, err := deps.Extractor.Extract(deps.Ctx, req)
	if err != nil {
		printError(deps.Stderr, err)
		return err
	}
	for _, w := range doc.Warnings {
		printWarning(deps.Stderr, "%s", w)
	}

	text := flags.apply(doc.Text)
	if !sendText {
		fmt.Fprintln(deps.Stdout, text)
		return nil
	}
	return send(deps, text, flags.Template)
}
