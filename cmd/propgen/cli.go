package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/propgen"
	"github.com/fwojciec/propgen/generate"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Parsers   *propgen.ParserRegistry
	Generator *generate.Generator
	Proposals propgen.ProposalWriter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log pipeline progress to stderr"`

	Generate GenerateCmd `cmd:"" help:"Generate a technical proposal draft from an RFP document"`
	Inspect  InspectCmd  `cmd:"" help:"Show how an RFP document parses without calling the model"`
}

// GenerateCmd is the "generate" subcommand.
type GenerateCmd struct {
	RFPFile    string `arg:"" help:"Path to the RFP document (.md, .pdf, .html)"`
	Technology string `arg:"" help:"Technology to feature in the proposal"`
	Output     string `short:"o" help:"Output file path (default: print to stdout)"`
	Model      string `help:"Gemini model to use"`
	Prompts    string `help:"JSON file with prompt overrides"`
	MaxTokens  int    `name:"max-tokens" help:"Token budget for RFP text sent to the model"`
}

// InspectCmd is the "inspect" subcommand.
type InspectCmd struct {
	RFPFile string `arg:"" help:"Path to the RFP document"`
	Full    bool   `help:"Print the full extracted text"`
}
