package markdown_test

import (
	"testing"

	"github.com/fwojciec/propgen"
	"github.com/fwojciec/propgen/markdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParser_Parse(t *testing.T) {
	t.Parallel()

	t.Run("parses plain markdown", func(t *testing.T) {
		t.Parallel()

		content := "# RFP: Website Redesign\n\nWe need a new site.\n\n## Requirements\n\n- responsive"

		rfp, err := markdown.NewParser().Parse("docs/rfp.md", []byte(content))

		require.NoError(t, err)
		assert.Equal(t, "rfp.md", rfp.FileName)
		assert.Equal(t, content, rfp.FullText)
		require.Len(t, rfp.Sections, 2)
		assert.Equal(t, "RFP: Website Redesign", rfp.Sections[0].Title)
		assert.Equal(t, "Requirements", rfp.Sections[1].Title)
	})

	t.Run("strips YAML frontmatter", func(t *testing.T) {
		t.Parallel()

		content := "---\ntitle: RFP\nissued: 2024-03-01\n---\n# Scope\n\nDetails."

		rfp, err := markdown.NewParser().Parse("rfp.md", []byte(content))

		require.NoError(t, err)
		assert.Equal(t, "# Scope\n\nDetails.", rfp.FullText)
		assert.NotContains(t, rfp.FullText, "issued:")
	})

	t.Run("keeps whole file when frontmatter is malformed YAML", func(t *testing.T) {
		t.Parallel()

		content := "---\n: : not yaml [\n---\n# Scope\n\nDetails."

		rfp, err := markdown.NewParser().Parse("rfp.md", []byte(content))

		require.NoError(t, err)
		assert.Equal(t, content, rfp.FullText)
	})

	t.Run("does not treat a thematic break as frontmatter", func(t *testing.T) {
		t.Parallel()

		content := "Intro paragraph.\n\n---\n\nMore text."

		rfp, err := markdown.NewParser().Parse("rfp.md", []byte(content))

		require.NoError(t, err)
		assert.Equal(t, content, rfp.FullText)
	})

	t.Run("returns EINVALID for empty file", func(t *testing.T) {
		t.Parallel()

		_, err := markdown.NewParser().Parse("rfp.md", []byte("   \n"))

		require.Error(t, err)
		assert.Equal(t, propgen.EINVALID, propgen.ErrorCode(err))
	})

	t.Run("returns EINVALID when only frontmatter remains", func(t *testing.T) {
		t.Parallel()

		_, err := markdown.NewParser().Parse("rfp.md", []byte("---\ntitle: empty\n---\n"))

		require.Error(t, err)
		assert.Equal(t, propgen.EINVALID, propgen.ErrorCode(err))
	})
}

func TestParser_CanParse(t *testing.T) {
	t.Parallel()

	p := markdown.NewParser()

	assert.True(t, p.CanParse(".md"))
	assert.True(t, p.CanParse(".markdown"))
	assert.False(t, p.CanParse(".pdf"))
	assert.Equal(t, []string{".md", ".markdown"}, p.Extensions())
}
