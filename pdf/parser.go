// Package pdf extracts text from PDF RFP documents.
package pdf

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/fwojciec/propgen"
	"github.com/ledongthuc/pdf"
)

// Ensure Parser implements propgen.Parser at compile time.
var _ propgen.Parser = (*Parser)(nil)

// Parser extracts plain text from PDF documents page by page.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse extracts the text content of a PDF. Pages that fail to parse are
// skipped; a PDF that yields no text at all (e.g., scanned images) is
// EUNPROCESSABLE.
func (p *Parser) Parse(filename string, content []byte) (*propgen.RFP, error) {
	reader, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return nil, propgen.Errorf(propgen.EUNPROCESSABLE, "open PDF %q: %v", filepath.Base(filename), err)
	}

	var pages []string
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		if strings.TrimSpace(text) != "" {
			pages = append(pages, strings.TrimSpace(text))
		}
	}

	if len(pages) == 0 {
		return nil, propgen.Errorf(propgen.EUNPROCESSABLE,
			"no text extracted from %q (%d pages); the PDF may be image-only",
			filepath.Base(filename), numPages)
	}

	fullText := strings.Join(pages, "\n\n")

	rfp := &propgen.RFP{
		FileName: filepath.Base(filename),
		FullText: fullText,
		Sections: propgen.SplitSections(fullText),
	}
	if err := rfp.Validate(); err != nil {
		return nil, err
	}
	return rfp, nil
}

// CanParse reports whether ext is the PDF extension.
func (p *Parser) CanParse(ext string) bool {
	return ext == ".pdf"
}

// Extensions returns the extensions this parser handles.
func (p *Parser) Extensions() []string {
	return []string{".pdf"}
}
