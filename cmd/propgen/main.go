package main

import (
	"context"
	"fmt"
	"io"
	stdslog "log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/propgen"
	"github.com/fwojciec/propgen/fs"
	"github.com/fwojciec/propgen/gemini"
	"github.com/fwojciec/propgen/generate"
	"github.com/fwojciec/propgen/htmltomarkdown"
	"github.com/fwojciec/propgen/markdown"
	"github.com/fwojciec/propgen/pdf"
	logslog "github.com/fwojciec/propgen/slog"
	"github.com/fwojciec/propgen/trafilatura"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Reviewer and Writer override the Gemini-backed services when set.
	// Used for end-to-end testing.
	Reviewer propgen.Reviewer
	Writer   propgen.TechnicalWriter

	// Proposals overrides the filesystem proposal writer when set.
	Proposals propgen.ProposalWriter
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("propgen"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'propgen --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// The selected command comes from the parsed context, not args[0]:
	// root-level flags like -v may precede the command name.
	cmd := kongCtx.Command()
	if i := strings.IndexByte(cmd, ' '); i >= 0 {
		cmd = cmd[:i]
	}

	logger := newLogger(stderr, cli.Verbose)
	deps.Logger = logger
	deps.Parsers = newParserRegistry()
	deps.Proposals = m.Proposals
	if deps.Proposals == nil {
		deps.Proposals = fs.NewWriter()
	}

	if cmd == "generate" {
		prompts, err := loadPrompts(cli.Generate.Prompts)
		if err != nil {
			return err
		}

		reviewer := m.Reviewer
		writer := m.Writer
		if reviewer == nil || writer == nil {
			apiKey := os.Getenv("GEMINI_API_KEY")
			if apiKey == "" {
				fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
				return fmt.Errorf("GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
			}

			client, err := genai.NewClient(ctx, &genai.ClientConfig{
				APIKey:  apiKey,
				Backend: genai.BackendGeminiAPI,
			})
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
				return fmt.Errorf("failed to connect to Gemini API: %w", err)
			}

			tokenCounter, err := gemini.NewTokenCounter(tokenizerModel)
			if err != nil {
				return fmt.Errorf("failed to create token counter: %w", err)
			}

			model := cli.Generate.Model
			if model == "" {
				model = gemini.DefaultModel
			}

			gr := gemini.NewReviewer(client, model, prompts, tokenCounter)
			gw := gemini.NewWriter(client, model, prompts, tokenCounter)
			if cli.Generate.MaxTokens > 0 {
				gr.MaxContextTokens = cli.Generate.MaxTokens
				gw.MaxContextTokens = cli.Generate.MaxTokens
			}
			reviewer, writer = gr, gw
		}

		if cli.Verbose {
			reviewer = logslog.NewLoggingReviewer(reviewer, logger)
			writer = logslog.NewLoggingWriter(writer, logger)
		}

		deps.Generator = &generate.Generator{
			Parsers:  deps.Parsers,
			Reviewer: reviewer,
			Writer:   writer,
			Logger:   logger,
		}
	}

	return kongCtx.Run(deps)
}

// tokenizerModel is used for token counting. Using gemini-2.5-flash until
// newer models are supported by google.golang.org/genai/tokenizer.
const tokenizerModel = "gemini-2.5-flash"

func newLogger(stderr io.Writer, verbose bool) *stdslog.Logger {
	if !verbose {
		return stdslog.New(stdslog.DiscardHandler)
	}
	return stdslog.New(stdslog.NewTextHandler(stderr, &stdslog.HandlerOptions{
		Level: stdslog.LevelDebug,
	}))
}

func newParserRegistry() *propgen.ParserRegistry {
	registry := propgen.NewParserRegistry()
	registry.Register(markdown.NewParser())
	registry.Register(pdf.NewParser())
	registry.Register(&generate.HTMLParser{
		Extractor: trafilatura.NewExtractor(),
		Converter: htmltomarkdown.NewConverter(),
	})
	return registry
}

func loadPrompts(path string) (*propgen.Prompts, error) {
	if path == "" {
		return propgen.DefaultPrompts(), nil
	}
	prompts, err := propgen.LoadPrompts(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load prompts from %q: %s", path, propgen.ErrorMessage(err))
	}
	return prompts, nil
}
