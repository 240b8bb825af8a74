package main

import (
	"fmt"

	"github.com/fwojciec/copypasta"
)

// Run executes the templates command.
func (c *TemplatesCmd) Run(deps *Dependencies) error {
	if c.Name != "" {
		tmpl, err := copypasta.LookupTemplate(c.Name)
		if err != nil {
			printError(deps.Stderr, err)
			return err
		}
		fmt.Fprintln(deps.Stdout, tmpl.Instruction)
		return nil
	}

	for _, t := range copypasta.Templates() {
		marker := " "
		if t.Name == copypasta.DefaultTemplate {
			marker = "*"
		}
		fmt.Fprintf(deps.Stdout, "%s %s\n", marker, t.Name)
	}
	return nil
}
