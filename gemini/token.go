package gemini

import (
	"context"

	"github.com/fwojciec/propgen"
	"google.golang.org/genai"
	"google.golang.org/genai/tokenizer"
)

var _ propgen.TokenCounter = (*TokenCounter)(nil)

// TokenCounter counts tokens using the Gemini local tokenizer, so RFP text
// can be cut to a context budget without a network round-trip.
type TokenCounter struct {
	model string
	tok   *tokenizer.LocalTokenizer
}

// NewTokenCounter creates a new TokenCounter for the given model. Not every
// model has a local tokenizer; an unsupported model is EINVALID.
func NewTokenCounter(model string) (*TokenCounter, error) {
	tok, err := tokenizer.NewLocalTokenizer(model)
	if err != nil {
		return nil, propgen.Errorf(propgen.EINVALID, "no local tokenizer for model %q: %v", model, err)
	}
	return &TokenCounter{model: model, tok: tok}, nil
}

// Model returns the model the tokenizer was loaded for.
func (tc *TokenCounter) Model() string {
	return tc.model
}

// CountTokens counts the number of tokens in the given text.
func (tc *TokenCounter) CountTokens(ctx context.Context, text string) (int, error) {
	if text == "" {
		return 0, nil
	}

	contents := []*genai.Content{
		genai.NewContentFromText(text, "user"),
	}

	result, err := tc.tok.CountTokens(contents, nil)
	if err != nil {
		return 0, propgen.Errorf(propgen.EINTERNAL, "count tokens for %q: %v", tc.model, err)
	}

	return int(result.TotalTokens), nil
}
