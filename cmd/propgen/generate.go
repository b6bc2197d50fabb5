package main

import (
	"fmt"

	"github.com/fwojciec/propgen"
	"github.com/fwojciec/propgen/generate"
)

// Run executes the generate command.
func (c *GenerateCmd) Run(deps *Dependencies) error {
	proposal, err := deps.Generator.Generate(deps.Ctx, generate.Request{
		FilePath:   c.RFPFile,
		Technology: c.Technology,
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", propgen.ErrorMessage(err))
		return err
	}

	if c.Output == "" {
		fmt.Fprint(deps.Stdout, propgen.FormatProposal(proposal))
		return nil
	}

	if err := deps.Proposals.Write(deps.Ctx, proposal, c.Output); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", propgen.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Proposal saved to %s\n", c.Output)
	return nil
}
