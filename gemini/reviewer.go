// Package gemini implements RFP review and proposal writing using Google
// Gemini structured output.
package gemini

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/fwojciec/propgen"
	"google.golang.org/genai"
)

// DefaultModel is the model used when none is configured.
const DefaultModel = "gemini-3-flash-preview"

// defaultMaxContextTokens caps how much RFP text is sent per call.
const defaultMaxContextTokens = 12000

// Ensure Reviewer implements propgen.Reviewer at compile time.
var _ propgen.Reviewer = (*Reviewer)(nil)

// Reviewer implements propgen.Reviewer using Gemini structured output.
type Reviewer struct {
	client  *genai.Client
	model   string
	prompts *propgen.Prompts
	tokens  propgen.TokenCounter

	// MaxContextTokens overrides the RFP text token budget when positive.
	MaxContextTokens int

	// RetryDelays overrides the backoff schedule. Nil means defaults.
	RetryDelays []time.Duration
}

// NewReviewer creates a new Reviewer. A nil tokens counter disables
// truncation; prompts defaults to the built-in set.
func NewReviewer(client *genai.Client, model string, prompts *propgen.Prompts, tokens propgen.TokenCounter) *Reviewer {
	if model == "" {
		model = DefaultModel
	}
	if prompts == nil {
		prompts = propgen.DefaultPrompts()
	}
	return &Reviewer{client: client, model: model, prompts: prompts, tokens: tokens}
}

// ReviewRFP extracts a summary, key requirements, and evaluation criteria
// from the RFP text.
func (r *Reviewer) ReviewRFP(ctx context.Context, rfp *propgen.RFP) (*propgen.Review, error) {
	if rfp == nil || strings.TrimSpace(rfp.FullText) == "" {
		return nil, propgen.Errorf(propgen.EINVALID, "RFP full text is empty")
	}

	text, err := r.truncate(ctx, rfp.FullText)
	if err != nil {
		return nil, err
	}

	raw, err := WithRetry(ctx, func(ctx context.Context) (string, error) {
		return generate(ctx, r.client, r.model, BuildReviewPrompt(text), ReviewConfig(r.prompts))
	}, r.delays())
	if err != nil {
		return nil, err
	}

	var payload struct {
		Summary            string   `json:"summary"`
		KeyRequirements    []string `json:"keyRequirements"`
		EvaluationCriteria []string `json:"evaluationCriteria"`
	}
	if err := decodeStructured(raw, &payload); err != nil {
		return nil, err
	}

	return &propgen.Review{
		Summary:            payload.Summary,
		KeyRequirements:    payload.KeyRequirements,
		EvaluationCriteria: payload.EvaluationCriteria,
	}, nil
}

func (r *Reviewer) truncate(ctx context.Context, text string) (string, error) {
	if r.tokens == nil {
		return text, nil
	}
	budget := r.MaxContextTokens
	if budget <= 0 {
		budget = defaultMaxContextTokens
	}
	return propgen.TruncateToTokens(ctx, r.tokens, text, budget)
}

func (r *Reviewer) delays() []time.Duration {
	if r.RetryDelays != nil {
		return r.RetryDelays
	}
	return DefaultRetryDelays()
}

// ReviewConfig returns the GenerateContentConfig for RFP review calls.
func ReviewConfig(p *propgen.Prompts) *genai.GenerateContentConfig {
	temp := float32(0.2)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: p.Review}},
		},
		Temperature:      &temp,
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"summary": {
					Type:        genai.TypeString,
					Description: "A concise summary of the RFP's main goals and scope.",
				},
				"keyRequirements": {
					Type:        genai.TypeArray,
					Items:       &genai.Schema{Type: genai.TypeString},
					Description: "The most critical requirements stated in the RFP.",
				},
				"evaluationCriteria": {
					Type:        genai.TypeArray,
					Items:       &genai.Schema{Type: genai.TypeString},
					Description: "The criteria the RFP says proposals will be evaluated on.",
				},
			},
			Required: []string{"summary", "keyRequirements", "evaluationCriteria"},
		},
	}
}

// generate issues a single GenerateContent call and returns the text.
func generate(ctx context.Context, client *genai.Client, model, prompt string, config *genai.GenerateContentConfig) (string, error) {
	result, err := client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		config,
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", propgen.Errorf(propgen.EINTERNAL, "gemini returned nil result")
	}
	return result.Text(), nil
}

// decodeStructured unmarshals a structured-output response, tolerating
// models that wrap the JSON in a markdown fence despite schema mode.
func decodeStructured(raw string, v any) error {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	if err := json.Unmarshal([]byte(strings.TrimSpace(s)), v); err != nil {
		return propgen.Errorf(propgen.EINTERNAL, "decode model response: %v", err)
	}
	return nil
}
