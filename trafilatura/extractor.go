// Package trafilatura extracts the main content from HTML RFP documents,
// removing navigation, scripts, and other boilerplate.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/propgen"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements propgen.Extractor at compile time.
var _ propgen.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the document title and body.
func (e *Extractor) Extract(rawHTML string) (*propgen.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, propgen.Errorf(propgen.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, propgen.Errorf(propgen.EUNPROCESSABLE, "extract HTML content: %v", err)
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, err
		}
	}

	return &propgen.ExtractResult{
		Title:       result.Metadata.Title,
		ContentHTML: contentHTML,
	}, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
