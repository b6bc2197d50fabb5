package htmltomarkdown_test

import (
	"testing"

	"github.com/fwojciec/propgen"
	"github.com/fwojciec/propgen/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("converts headings and lists", func(t *testing.T) {
		t.Parallel()

		html := "<h1>Requirements</h1><ul><li>responsive design</li><li>CMS</li></ul>"

		md, err := htmltomarkdown.NewConverter().Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "# Requirements")
		assert.Contains(t, md, "- responsive design")
		assert.Contains(t, md, "- CMS")
	})

	t.Run("converts tables", func(t *testing.T) {
		t.Parallel()

		html := "<table><tr><th>Criterion</th><th>Weight</th></tr><tr><td>Price</td><td>20%</td></tr></table>"

		md, err := htmltomarkdown.NewConverter().Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "Criterion")
		assert.Contains(t, md, "| Price")
	})

	t.Run("collapses empty paragraph runs", func(t *testing.T) {
		t.Parallel()

		html := "<h1>Scope</h1><p></p><p>&nbsp;</p><p></p><p>Deliver a portal.</p>"

		md, err := htmltomarkdown.NewConverter().Convert(html)

		require.NoError(t, err)
		assert.NotContains(t, md, "\n\n\n")
		assert.Contains(t, md, "# Scope")
		assert.Contains(t, md, "Deliver a portal.")
	})

	t.Run("trims surrounding whitespace", func(t *testing.T) {
		t.Parallel()

		md, err := htmltomarkdown.NewConverter().Convert("<p>Budget details follow.</p>")

		require.NoError(t, err)
		assert.Equal(t, "Budget details follow.", md)
	})

	t.Run("returns EINVALID for empty input", func(t *testing.T) {
		t.Parallel()

		_, err := htmltomarkdown.NewConverter().Convert("  ")

		require.Error(t, err)
		assert.Equal(t, propgen.EINVALID, propgen.ErrorCode(err))
	})
}
