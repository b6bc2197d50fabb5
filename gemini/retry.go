package gemini

import (
	"context"
	"errors"
	"time"

	"google.golang.org/genai"
)

// GenerateFunc is the signature of a single generate attempt.
type GenerateFunc func(ctx context.Context) (string, error)

// DefaultRetryDelays returns the backoff delays for generate retries: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// WithRetry runs fn with bounded backoff, retrying only errors the API
// marks as transient (rate limits and server errors). Delays are
// injectable so tests don't wait.
func WithRetry(ctx context.Context, fn GenerateFunc, delays []time.Duration) (string, error) {
	maxAttempts := len(delays) + 1 // 1 initial + N retries

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		text, err := fn(ctx)
		if err == nil {
			return text, nil
		}
		lastErr = err

		if !Retryable(err) || attempt >= maxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return "", lastErr
}

// Retryable reports whether err is a transient Gemini API error.
func Retryable(err error) bool {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code == 429 || apiErr.Code >= 500
	}
	return false
}
