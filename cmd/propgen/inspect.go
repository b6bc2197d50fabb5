package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fwojciec/propgen"
	"github.com/fwojciec/propgen/generate"
)

// Run executes the inspect command.
func (c *InspectCmd) Run(deps *Dependencies) error {
	content, err := os.ReadFile(c.RFPFile)
	if err != nil {
		if os.IsNotExist(err) {
			err = propgen.Errorf(propgen.ENOTFOUND, "RFP file not found at %q", c.RFPFile)
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", propgen.ErrorMessage(err))
		return err
	}

	parser, err := deps.Parsers.ForFile(c.RFPFile)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", propgen.ErrorMessage(err))
		return err
	}

	rfp, err := parser.Parse(c.RFPFile, content)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", propgen.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "File:     %s\n", rfp.FileName)
	fmt.Fprintf(deps.Stdout, "Hash:     %s\n", generate.ContentHash(rfp.FullText))
	fmt.Fprintf(deps.Stdout, "Length:   %d chars\n", len(rfp.FullText))
	fmt.Fprintf(deps.Stdout, "Sections: %d\n", len(rfp.Sections))

	for _, s := range rfp.Sections {
		title := s.Title
		if title == "" {
			title = "(untitled)"
		}
		indent := strings.Repeat("  ", max(s.Level-1, 0))
		fmt.Fprintf(deps.Stdout, "  %s%s (%d chars)\n", indent, title, len(s.Content))
	}

	if c.Full {
		fmt.Fprintf(deps.Stdout, "\n%s\n", rfp.FullText)
	}

	return nil
}
