package propgen

import (
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// Parser parses a raw RFP document into markdown text and sections.
type Parser interface {
	// Parse extracts the RFP from raw file content.
	// Returns EINVALID if no usable text can be extracted.
	Parse(filename string, content []byte) (*RFP, error)

	// CanParse reports whether this parser handles the given file
	// extension (lowercase, with leading dot).
	CanParse(ext string) bool

	// Extensions returns the file extensions this parser handles.
	Extensions() []string
}

// ParserRegistry selects parsers by file extension.
type ParserRegistry struct {
	mu      sync.RWMutex
	parsers []Parser
}

// NewParserRegistry creates an empty registry.
func NewParserRegistry() *ParserRegistry {
	return &ParserRegistry{}
}

// Register adds a parser to the registry. Later registrations do not
// shadow earlier ones; the first parser claiming an extension wins.
func (r *ParserRegistry) Register(p Parser) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.parsers = append(r.parsers, p)
}

// ForFile returns the parser for a file based on its extension.
// Returns EUNSUPPORTED if no registered parser handles the extension.
func (r *ParserRegistry) ForFile(path string) (Parser, error) {
	ext := strings.ToLower(filepath.Ext(path))

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.parsers {
		if p.CanParse(ext) {
			return p, nil
		}
	}
	return nil, Errorf(EUNSUPPORTED, "unsupported file type %q (supported: %s)",
		ext, strings.Join(r.extensionsLocked(), ", "))
}

// Extensions returns all supported extensions, sorted.
func (r *ParserRegistry) Extensions() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.extensionsLocked()
}

func (r *ParserRegistry) extensionsLocked() []string {
	var exts []string
	for _, p := range r.parsers {
		exts = append(exts, p.Extensions()...)
	}
	sort.Strings(exts)
	return exts
}
