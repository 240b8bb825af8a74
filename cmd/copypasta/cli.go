package main

import (
	"context"
	"io"

	"github.com/fwojciec/copypasta"
	"github.com/fwojciec/copypasta/dispatch"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	Extractor  copypasta.TextExtractor
	Dispatcher *dispatch.Dispatcher
	Cursor     *dispatch.SharedCursor
	Tokens     copypasta.TokenCounter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config  string `short:"c" type:"path" help:"Config file (default: ./copypasta.yaml or ~/.config/copypasta/config.yaml)"`
	Verbose bool   `short:"v" help:"Log every fetch, OCR and model call to stderr"`

	URL       URLCmd       `cmd:"" name:"url" help:"Extract text from a web page, PDF, image or video URL"`
	PDF       PDFCmd       `cmd:"" name:"pdf" help:"Extract text from a PDF file"`
	Image     ImageCmd     `cmd:"" name:"image" help:"Extract text from one or more images"`
	Send      SendCmd      `cmd:"" help:"Send text from a file or stdin to the model"`
	Plan      PlanCmd      `cmd:"" help:"Show how text would be chunked without sending it"`
	Templates TemplatesCmd `cmd:"" help:"List prompt templates"`
}

// PromptFlags control how text is prepared for the model.
type PromptFlags struct {
	Prefix     bool   `help:"Prepend the default summary prefix"`
	PrefixText string `name:"prefix-text" help:"Prepend custom prefix text (overrides --prefix)"`
	Template   string `short:"t" default:"Summarize" help:"Instruction template appended when sending"`
}

// apply prepends the selected prefix to text.
func (f PromptFlags) apply(text string) string {
	switch {
	case f.PrefixText != "":
		return copypasta.WithPrefix(f.PrefixText, text)
	case f.Prefix:
		return copypasta.WithPrefix(copypasta.DefaultPrefix, text)
	}
	return text
}

// URLCmd is the "url" subcommand.
type URLCmd struct {
	URL  string `arg:"" help:"URL to extract"`
	Send bool   `short:"s" help:"Send the extracted text to the model instead of printing it"`
	PromptFlags
}

// PDFCmd is the "pdf" subcommand.
type PDFCmd struct {
	File  string `arg:"" type:"existingfile" help:"PDF file"`
	Start int    `help:"First page (1-based)"`
	End   int    `help:"Last page (inclusive)"`
	All   bool   `help:"Extract every page (default)"`
	Send  bool   `short:"s" help:"Send the extracted text to the model instead of printing it"`
	PromptFlags
}

// ImageCmd is the "image" subcommand.
type ImageCmd struct {
	Files []string `arg:"" type:"existingfile" help:"JPEG or PNG files"`
	Send  bool     `short:"s" help:"Send the extracted text to the model instead of printing it"`
	PromptFlags
}

// SendCmd is the "send" subcommand.
type SendCmd struct {
	File string `arg:"" optional:"" help:"Text file (default: stdin)"`
	PromptFlags
}

// PlanCmd is the "plan" subcommand.
type PlanCmd struct {
	File string `arg:"" optional:"" help:"Text file (default: stdin)"`
	PromptFlags
}

// TemplatesCmd is the "templates" subcommand.
type TemplatesCmd struct {
	Name string `arg:"" optional:"" help:"Print the instruction of this template"`
}
