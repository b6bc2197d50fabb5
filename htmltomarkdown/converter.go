// Package htmltomarkdown converts extracted HTML content to Markdown.
package htmltomarkdown

import (
	"regexp"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/propgen"
)

// Ensure Converter implements propgen.Converter at compile time.
var _ propgen.Converter = (*Converter)(nil)

// Converter wraps html-to-markdown to convert HTML to Markdown. Tables are
// converted too; RFPs frequently carry requirements matrices in tables.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// blankRuns matches three or more consecutive newlines, counting lines
// that hold only spaces or tabs as blank.
var blankRuns = regexp.MustCompile(`\n([ \t]*\n){2,}`)

// Convert transforms HTML content into Markdown and normalizes its blank
// lines. RFPs published from word processors tend to carry runs of empty
// paragraphs; heading-based sectioning expects at most one blank line
// between blocks.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", propgen.Errorf(propgen.EINVALID, "empty HTML input")
	}

	result, err := c.conv.ConvertString(html)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(blankRuns.ReplaceAllString(result, "\n\n")), nil
}
