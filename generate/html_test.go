package generate_test

import (
	"errors"
	"testing"

	"github.com/fwojciec/propgen"
	"github.com/fwojciec/propgen/generate"
	"github.com/fwojciec/propgen/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTMLParser_Parse(t *testing.T) {
	t.Parallel()

	t.Run("extracts and converts", func(t *testing.T) {
		t.Parallel()
		p := &generate.HTMLParser{
			Extractor: &mock.Extractor{
				ExtractFn: func(html string) (*propgen.ExtractResult, error) {
					assert.Contains(t, html, "<article>")
					return &propgen.ExtractResult{Title: "RFP", ContentHTML: "<h1>RFP</h1><p>Scope.</p>"}, nil
				},
			},
			Converter: &mock.Converter{
				ConvertFn: func(html string) (string, error) {
					return "# RFP\n\nScope.", nil
				},
			},
		}

		rfp, err := p.Parse("/tmp/rfp.html", []byte("<article><h1>RFP</h1></article>"))
		require.NoError(t, err)
		assert.Equal(t, "rfp.html", rfp.FileName)
		assert.Equal(t, "# RFP\n\nScope.", rfp.FullText)
		require.Len(t, rfp.Sections, 1)
		assert.Equal(t, "RFP", rfp.Sections[0].Title)
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()
		p := &generate.HTMLParser{}
		_, err := p.Parse("a.html", nil)
		require.Error(t, err)
		assert.Equal(t, propgen.EINVALID, propgen.ErrorCode(err))
	})

	t.Run("extractor error", func(t *testing.T) {
		t.Parallel()
		p := &generate.HTMLParser{
			Extractor: &mock.Extractor{
				ExtractFn: func(html string) (*propgen.ExtractResult, error) {
					return nil, errors.New("no content")
				},
			},
		}
		_, err := p.Parse("a.html", []byte("<p></p>"))
		require.Error(t, err)
	})

	t.Run("empty conversion", func(t *testing.T) {
		t.Parallel()
		p := &generate.HTMLParser{
			Extractor: &mock.Extractor{
				ExtractFn: func(html string) (*propgen.ExtractResult, error) {
					return &propgen.ExtractResult{ContentHTML: "<div></div>"}, nil
				},
			},
			Converter: &mock.Converter{
				ConvertFn: func(html string) (string, error) { return "  \n ", nil },
			},
		}
		_, err := p.Parse("a.html", []byte("<div></div>"))
		require.Error(t, err)
		assert.Equal(t, propgen.EUNPROCESSABLE, propgen.ErrorCode(err))
	})
}

func TestHTMLParser_CanParse(t *testing.T) {
	t.Parallel()
	p := &generate.HTMLParser{}
	assert.True(t, p.CanParse(".html"))
	assert.True(t, p.CanParse(".HTM"))
	assert.False(t, p.CanParse(".md"))
	assert.Equal(t, []string{".html", ".htm"}, p.Extensions())
}
