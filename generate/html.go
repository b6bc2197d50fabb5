package generate

import (
	"path/filepath"
	"strings"

	"github.com/fwojciec/propgen"
)

// HTMLParser extracts the main content of an HTML RFP and converts it to
// Markdown before sectioning, so boilerplate chrome around a web-published
// RFP does not leak into the proposal context.
type HTMLParser struct {
	Extractor propgen.Extractor
	Converter propgen.Converter
}

var _ propgen.Parser = (*HTMLParser)(nil)

func (p *HTMLParser) Parse(filename string, content []byte) (*propgen.RFP, error) {
	if len(content) == 0 {
		return nil, propgen.Errorf(propgen.EINVALID, "empty HTML document %q", filename)
	}
	extracted, err := p.Extractor.Extract(string(content))
	if err != nil {
		return nil, err
	}
	markdown, err := p.Converter.Convert(extracted.ContentHTML)
	if err != nil {
		return nil, err
	}
	markdown = strings.TrimSpace(markdown)
	if markdown == "" {
		return nil, propgen.Errorf(propgen.EUNPROCESSABLE, "no text content in %q", filename)
	}
	return &propgen.RFP{
		FileName: filepath.Base(filename),
		FullText: markdown,
		Sections: propgen.SplitSections(markdown),
	}, nil
}

func (p *HTMLParser) CanParse(ext string) bool {
	switch strings.ToLower(ext) {
	case ".html", ".htm":
		return true
	}
	return false
}

func (p *HTMLParser) Extensions() []string {
	return []string{".html", ".htm"}
}
