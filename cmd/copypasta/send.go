package main

import (
	"fmt"

	"github.com/fwojciec/copypasta"
)

// Run executes the send command.
func (c *SendCmd) Run(deps *Dependencies) error {
	text, err := readInput(c.File, deps.Stdin)
	if err != nil {
		printError(deps.Stderr, err)
		return err
	}
	return send(deps, c.PromptFlags.apply(text), c.Template)
}

// send dispatches text with the named template and prints the assembled
// replies. On credential exhaustion the partial output is still printed.
func send(deps *Dependencies, text, templateName string) error {
	tmpl, err := copypasta.LookupTemplate(templateName)
	if err != nil {
		printError(deps.Stderr, err)
		return err
	}
	if deps.Dispatcher == nil || deps.Cursor == nil {
		err := copypasta.Errorf(copypasta.EINVALID, "no model backend configured")
		printError(deps.Stderr, err)
		return err
	}

	result, err := deps.Cursor.Dispatch(deps.Ctx, deps.Dispatcher, text, tmpl.Instruction, progressReporter(deps.Stderr))
	if result != nil {
		if result.Dropped > 0 {
			printWarning(deps.Stderr, "text too long: %d chunks beyond the limit were not sent", result.Dropped)
		}
		if result.Output != "" {
			fmt.Fprintln(deps.Stdout, result.Output)
		}
	}
	if err != nil {
		printError(deps.Stderr, err)
		return err
	}
	return nil
}
