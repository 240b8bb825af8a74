package main

import (
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/fwojciec/copypasta"
	"github.com/fwojciec/copypasta/dispatch"
	"github.com/schollz/progressbar/v3"
)

// printError writes err as an "error: ..." line. Untagged errors print
// their full text.
func printError(w io.Writer, err error) {
	msg := copypasta.ErrorMessage(err)
	if copypasta.ErrorCode(err) == copypasta.EINTERNAL {
		msg = err.Error()
	}
	color.New(color.FgRed).Fprintf(w, "error: %s\n", msg)
}

func printWarning(w io.Writer, format string, args ...any) {
	color.New(color.FgYellow).Fprintf(w, "warning: "+format+"\n", args...)
}

// readInput reads the named file, or r when path is empty or "-".
func readInput(path string, r io.Reader) (string, error) {
	var data []byte
	var err error
	if path == "" || path == "-" {
		if r == nil {
			return "", copypasta.Errorf(copypasta.EINVALID, "no input")
		}
		data, err = io.ReadAll(r)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", copypasta.Errorf(copypasta.EINVALID, "failed to read input: %v", err)
	}
	if strings.TrimSpace(string(data)) == "" {
		return "", copypasta.Errorf(copypasta.EINVALID, "input is empty")
	}
	return string(data), nil
}

// progressReporter renders dispatch progress as a bar on w.
func progressReporter(w io.Writer) dispatch.ProgressFunc {
	var bar *progressbar.ProgressBar
	return func(e dispatch.ProgressEvent) {
		switch e.Type {
		case dispatch.ProgressStarted:
			bar = progressbar.NewOptions(e.Total,
				progressbar.OptionSetWriter(w),
				progressbar.OptionSetDescription(color.BlueString("sending")),
				progressbar.OptionSetItsString("chunks"),
				progressbar.OptionShowCount(),
				progressbar.OptionEnableColorCodes(true),
				progressbar.OptionSetWidth(30),
				progressbar.OptionClearOnFinish(),
			)
		case dispatch.ProgressCompleted:
			if bar != nil {
				_ = bar.Add(1)
			}
		case dispatch.ProgressRotated:
			if bar != nil {
				bar.Describe(color.YellowString("retrying (%s failed)", e.Credential))
			}
		case dispatch.ProgressFinished:
			if bar != nil {
				_ = bar.Finish()
			}
		}
	}
}
