package propgen

import (
	"context"
	"strings"
	"unicode/utf8"
)

// TokenCounter counts tokens in text for a specific model.
type TokenCounter interface {
	CountTokens(ctx context.Context, text string) (int, error)
}

// truncationMarker is appended to text that was cut to fit a token budget.
const truncationMarker = "\n\n[RFP text truncated]"

// TruncateToTokens trims text so its token count, marker included, fits
// within maxTokens. A truncation marker is appended when anything was cut,
// unless the budget is too small to hold the marker itself. The cut point
// is found by binary search over rune boundaries, so the number of
// counting calls is logarithmic in the text length.
func TruncateToTokens(ctx context.Context, tc TokenCounter, text string, maxTokens int) (string, error) {
	if maxTokens <= 0 || strings.TrimSpace(text) == "" {
		return text, nil
	}

	count, err := tc.CountTokens(ctx, text)
	if err != nil {
		return "", err
	}
	if count <= maxTokens {
		return text, nil
	}

	// Reserve room for the marker so the result stays within budget.
	markerTokens, err := tc.CountTokens(ctx, truncationMarker)
	if err != nil {
		return "", err
	}
	budget := maxTokens - markerTokens
	marker := truncationMarker
	if budget <= 0 {
		budget = maxTokens
		marker = ""
	}

	// Binary search the largest prefix that fits.
	lo, hi := 0, len(text)
	for lo < hi {
		mid := (lo + hi + 1) / 2
		mid = runeAlign(text, mid)
		if mid <= lo {
			break
		}

		count, err := tc.CountTokens(ctx, text[:mid])
		if err != nil {
			return "", err
		}
		if count <= budget {
			lo = mid
		} else {
			hi = mid - 1
		}
	}

	return text[:runeAlign(text, lo)] + marker, nil
}

// runeAlign moves i backwards to the nearest rune boundary.
func runeAlign(s string, i int) int {
	if i >= len(s) {
		return len(s)
	}
	for i > 0 && !utf8.RuneStart(s[i]) {
		i--
	}
	return i
}
