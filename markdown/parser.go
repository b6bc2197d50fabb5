// Package markdown parses Markdown RFP documents, stripping optional YAML
// frontmatter before sectioning.
package markdown

import (
	"path/filepath"
	"strings"

	"github.com/fwojciec/propgen"
	"gopkg.in/yaml.v3"
)

// Ensure Parser implements propgen.Parser at compile time.
var _ propgen.Parser = (*Parser)(nil)

// Parser parses markdown RFP files.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse extracts the RFP body from a markdown file. YAML frontmatter is
// removed from the full text; if the frontmatter fails to parse, the whole
// file is treated as body.
func (p *Parser) Parse(filename string, content []byte) (*propgen.RFP, error) {
	body := string(content)
	if frontmatter, rest, ok := splitFrontmatter(body); ok {
		var meta map[string]any
		if err := yaml.Unmarshal([]byte(frontmatter), &meta); err == nil {
			body = rest
		}
	}

	rfp := &propgen.RFP{
		FileName: filepath.Base(filename),
		FullText: body,
		Sections: propgen.SplitSections(body),
	}
	if err := rfp.Validate(); err != nil {
		return nil, err
	}
	return rfp, nil
}

// CanParse reports whether ext is a markdown extension.
func (p *Parser) CanParse(ext string) bool {
	return ext == ".md" || ext == ".markdown"
}

// Extensions returns the extensions this parser handles.
func (p *Parser) Extensions() []string {
	return []string{".md", ".markdown"}
}

// splitFrontmatter splits a document into its YAML frontmatter and body.
// Returns ok=false when the document has no frontmatter block.
func splitFrontmatter(s string) (frontmatter, body string, ok bool) {
	if !strings.HasPrefix(s, "---\n") && !strings.HasPrefix(s, "---\r\n") {
		return "", s, false
	}

	rest := s[strings.Index(s, "\n")+1:]
	for _, delim := range []string{"\n---\n", "\n---\r\n"} {
		if idx := strings.Index(rest, delim); idx >= 0 {
			return rest[:idx], rest[idx+len(delim):], true
		}
	}
	// Frontmatter that also ends the document.
	if trimmed := strings.TrimRight(rest, "\r\n"); strings.HasSuffix(trimmed, "\n---") {
		return strings.TrimSuffix(trimmed, "\n---"), "", true
	}
	return "", s, false
}
