package gemini

import (
	"context"
	"strings"
	"time"

	"github.com/fwojciec/propgen"
	"google.golang.org/genai"
)

// Ensure Writer implements propgen.TechnicalWriter at compile time.
var _ propgen.TechnicalWriter = (*Writer)(nil)

// Writer implements propgen.TechnicalWriter using Gemini structured output.
// All four core sections come back from a single call so the narrative,
// architecture text, and diagram stay consistent with each other.
type Writer struct {
	client  *genai.Client
	model   string
	prompts *propgen.Prompts
	tokens  propgen.TokenCounter

	// MaxContextTokens overrides the RFP text token budget when positive.
	MaxContextTokens int

	// RetryDelays overrides the backoff schedule. Nil means defaults.
	RetryDelays []time.Duration
}

// NewWriter creates a new Writer. A nil tokens counter disables truncation;
// prompts defaults to the built-in set.
func NewWriter(client *genai.Client, model string, prompts *propgen.Prompts, tokens propgen.TokenCounter) *Writer {
	if model == "" {
		model = DefaultModel
	}
	if prompts == nil {
		prompts = propgen.DefaultPrompts()
	}
	return &Writer{client: client, model: model, prompts: prompts, tokens: tokens}
}

// GenerateContent drafts the understanding, overview, and architecture
// sections in a single structured call.
func (w *Writer) GenerateContent(ctx context.Context, req propgen.ContentRequest) (*propgen.TechnicalContent, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	text, err := w.truncate(ctx, req.RFPText)
	if err != nil {
		return nil, err
	}

	raw, err := WithRetry(ctx, func(ctx context.Context) (string, error) {
		return generate(ctx, w.client, w.model, BuildContentPrompt(req, text), ContentConfig(w.prompts))
	}, w.delays())
	if err != nil {
		return nil, err
	}

	var content propgen.TechnicalContent
	if err := decodeStructured(raw, &content); err != nil {
		return nil, err
	}
	content.ArchitectureMermaid = propgen.EnsureMermaidFence(content.ArchitectureMermaid)

	return &content, nil
}

// GenerateOEMReview drafts a product overview section for an OEM platform.
func (w *Writer) GenerateOEMReview(ctx context.Context, req propgen.OEMReviewRequest) (*propgen.OEMReview, error) {
	if strings.TrimSpace(req.ProductName) == "" {
		return nil, propgen.Errorf(propgen.EINVALID, "OEM product name required")
	}

	raw, err := WithRetry(ctx, func(ctx context.Context) (string, error) {
		return generate(ctx, w.client, w.model, BuildOEMPrompt(req), OEMConfig(w.prompts))
	}, w.delays())
	if err != nil {
		return nil, err
	}

	var payload struct {
		Title   string `json:"title"`
		Content string `json:"content"`
	}
	if err := decodeStructured(raw, &payload); err != nil {
		return nil, err
	}

	review := &propgen.OEMReview{
		ProductName: req.ProductName,
		Title:       payload.Title,
		Content:     payload.Content,
	}
	if strings.TrimSpace(review.Title) == "" {
		review.Title = "Overview: " + req.ProductName
	}
	return review, nil
}

func (w *Writer) truncate(ctx context.Context, text string) (string, error) {
	if w.tokens == nil {
		return text, nil
	}
	budget := w.MaxContextTokens
	if budget <= 0 {
		budget = defaultMaxContextTokens
	}
	return propgen.TruncateToTokens(ctx, w.tokens, text, budget)
}

func (w *Writer) delays() []time.Duration {
	if w.RetryDelays != nil {
		return w.RetryDelays
	}
	return DefaultRetryDelays()
}

// ContentConfig returns the GenerateContentConfig for technical content calls.
func ContentConfig(p *propgen.Prompts) *genai.GenerateContentConfig {
	temp := float32(0.4)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: p.Content}},
		},
		Temperature:      &temp,
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"understanding": {
					Type:        genai.TypeString,
					Description: "Narrative understanding of the client's needs and objectives.",
				},
				"solutionOverview": {
					Type:        genai.TypeString,
					Description: "Detailed overview of the proposed solution.",
				},
				"architectureText": {
					Type:        genai.TypeString,
					Description: "Textual description of the solution architecture.",
				},
				"architectureMermaid": {
					Type:        genai.TypeString,
					Description: "Mermaid script for the architecture diagram.",
				},
			},
			Required: []string{"understanding", "solutionOverview", "architectureText", "architectureMermaid"},
		},
	}
}

// OEMConfig returns the GenerateContentConfig for OEM review calls.
func OEMConfig(p *propgen.Prompts) *genai.GenerateContentConfig {
	temp := float32(0.4)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: p.OEM}},
		},
		Temperature:      &temp,
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"title": {
					Type:        genai.TypeString,
					Description: "Section title, e.g. \"Overview: OutSystems Platform\".",
				},
				"content": {
					Type:        genai.TypeString,
					Description: "The product overview content.",
				},
			},
			Required: []string{"title", "content"},
		},
	}
}
