package main

import (
	"fmt"
	"text/tabwriter"
	"unicode/utf8"

	"github.com/fwojciec/copypasta"
	"github.com/fwojciec/copypasta/dispatch"
)

// Run executes the plan command.
func (c *PlanCmd) Run(deps *Dependencies) error {
	text, err := readInput(c.File, deps.Stdin)
	if err != nil {
		printError(deps.Stderr, err)
		return err
	}
	tmpl, err := copypasta.LookupTemplate(c.Template)
	if err != nil {
		printError(deps.Stderr, err)
		return err
	}
	if deps.Dispatcher == nil {
		err := copypasta.Errorf(copypasta.EINTERNAL, "no dispatcher configured")
		printError(deps.Stderr, err)
		return err
	}

	chunks, dropped, err := deps.Dispatcher.Plan(c.PromptFlags.apply(text), tmpl.Instruction)
	if err != nil {
		printError(deps.Stderr, err)
		return err
	}

	tw := tabwriter.NewWriter(deps.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CHUNK\tCHARS\tTOKENS")
	var total int
	for _, ch := range chunks {
		tokens := "-"
		if deps.Tokens != nil {
			n, err := deps.Tokens.CountTokens(deps.Ctx, dispatch.Prompt(ch.Text, tmpl.Instruction))
			if err != nil {
				printError(deps.Stderr, err)
				return err
			}
			total += n
			tokens = fmt.Sprint(n)
		}
		fmt.Fprintf(tw, "%d\t%d\t%s\n", ch.Index+1, utf8.RuneCountInString(ch.Text), tokens)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "%d chunks", len(chunks))
	if deps.Tokens != nil {
		fmt.Fprintf(deps.Stdout, ", %d tokens", total)
	}
	fmt.Fprintln(deps.Stdout)
	if dropped > 0 {
		printWarning(deps.Stderr, "%d chunks beyond the limit would not be sent", dropped)
	}
	return nil
}
