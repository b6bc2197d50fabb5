package propgen_test

import (
	"context"
	"strings"
	"testing"

	"github.com/fwojciec/propgen"
	"github.com/fwojciec/propgen/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// charCounter counts one token per character, which makes budgets exact.
func charCounter() *mock.TokenCounter {
	return &mock.TokenCounter{
		CountTokensFn: func(_ context.Context, text string) (int, error) {
			return len([]rune(text)), nil
		},
	}
}

func TestTruncateToTokens(t *testing.T) {
	t.Parallel()

	t.Run("returns text unchanged when within budget", func(t *testing.T) {
		t.Parallel()

		out, err := propgen.TruncateToTokens(context.Background(), charCounter(), "short text", 100)

		require.NoError(t, err)
		assert.Equal(t, "short text", out)
	})

	t.Run("truncates and appends marker when over budget", func(t *testing.T) {
		t.Parallel()

		// The marker "\n\n[RFP text truncated]" counts 22 tokens under
		// charCounter, so a budget of 32 leaves 10 for text.
		text := strings.Repeat("a", 50)

		out, err := propgen.TruncateToTokens(context.Background(), charCounter(), text, 32)

		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(out, "[RFP text truncated]"))
		kept := strings.TrimSuffix(out, "\n\n[RFP text truncated]")
		assert.Equal(t, strings.Repeat("a", 10), kept)
	})

	t.Run("marker counts against the budget", func(t *testing.T) {
		t.Parallel()

		counter := charCounter()
		text := strings.Repeat("a", 500)

		for _, budget := range []int{25, 50, 100} {
			out, err := propgen.TruncateToTokens(context.Background(), counter, text, budget)
			require.NoError(t, err)

			count, err := counter.CountTokens(context.Background(), out)
			require.NoError(t, err)
			assert.LessOrEqual(t, count, budget, "budget %d", budget)
		}
	})

	t.Run("drops marker when budget cannot hold it", func(t *testing.T) {
		t.Parallel()

		text := strings.Repeat("a", 50)

		out, err := propgen.TruncateToTokens(context.Background(), charCounter(), text, 10)

		require.NoError(t, err)
		assert.Equal(t, strings.Repeat("a", 10), out)
	})

	t.Run("cuts on rune boundaries", func(t *testing.T) {
		t.Parallel()

		text := strings.Repeat("é", 40)

		out, err := propgen.TruncateToTokens(context.Background(), charCounter(), text, 7)

		require.NoError(t, err)
		kept := strings.TrimSuffix(out, "\n\n[RFP text truncated]")
		for _, r := range kept {
			assert.Equal(t, 'é', r)
		}
	})

	t.Run("zero budget disables truncation", func(t *testing.T) {
		t.Parallel()

		out, err := propgen.TruncateToTokens(context.Background(), charCounter(), "anything", 0)

		require.NoError(t, err)
		assert.Equal(t, "anything", out)
	})

	t.Run("propagates counter errors", func(t *testing.T) {
		t.Parallel()

		counter := &mock.TokenCounter{
			CountTokensFn: func(context.Context, string) (int, error) {
				return 0, propgen.Errorf(propgen.EINTERNAL, "tokenizer unavailable")
			},
		}

		_, err := propgen.TruncateToTokens(context.Background(), counter, "text", 1)

		require.Error(t, err)
		assert.Equal(t, propgen.EINTERNAL, propgen.ErrorCode(err))
	})
}
