package propgen

// ExtractResult holds the content extracted from an HTML RFP document.
type ExtractResult struct {
	// Title is the document title from page metadata, if any.
	Title string

	// ContentHTML is the document body as clean HTML with boilerplate
	// (nav, footer, scripts) removed.
	ContentHTML string
}

// Extractor extracts the main content from HTML documents.
type Extractor interface {
	// Extract processes raw HTML and returns the main content.
	// Returns EINVALID for empty input.
	Extract(html string) (*ExtractResult, error)
}

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms clean HTML (e.g., from an Extractor) into its
	// Markdown representation.
	Convert(html string) (string, error)
}
