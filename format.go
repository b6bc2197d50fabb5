package propgen

import (
	"strings"
)

// FormatProposal renders a proposal as a markdown document. The output is
// deterministic: a frontmatter header, then the content sections in fixed
// order. Sections without content are omitted.
func FormatProposal(p *Proposal) string {
	var b strings.Builder

	b.WriteString("---\n")
	if p.RFPReference != "" {
		b.WriteString("rfp: ")
		b.WriteString(p.RFPReference)
		b.WriteString("\n")
	}
	b.WriteString("technology: ")
	b.WriteString(p.Technology)
	b.WriteString("\n")
	if !p.GeneratedAt.IsZero() {
		b.WriteString("generated: ")
		b.WriteString(p.GeneratedAt.Format("2006-01-02"))
		b.WriteString("\n")
	}
	if p.ID != "" {
		b.WriteString("id: ")
		b.WriteString(p.ID)
		b.WriteString("\n")
	}
	if p.ContentHash != "" {
		b.WriteString("sourceHash: ")
		b.WriteString(p.ContentHash)
		b.WriteString("\n")
	}
	b.WriteString("---\n\n")

	b.WriteString("# Technical Proposal: ")
	b.WriteString(p.Technology)
	b.WriteString("\n")

	writeSection(&b, "Understanding of Requirements", p.Understanding)
	writeSection(&b, "Proposed Solution Overview", p.Overview)

	arch := strings.TrimSpace(p.Architecture.Description)
	script := strings.TrimSpace(p.Architecture.MermaidScript)
	if arch != "" || script != "" {
		b.WriteString("\n## Solution Architecture\n\n")
		if arch != "" {
			b.WriteString(arch)
			b.WriteString("\n")
		}
		if script != "" {
			if arch != "" {
				b.WriteString("\n")
			}
			b.WriteString(EnsureMermaidFence(script))
			b.WriteString("\n")
		}
	}

	for _, review := range p.OEMReviews {
		title := review.Title
		if title == "" {
			title = "Overview: " + review.ProductName
		}
		writeSection(&b, title, review.Content)
	}

	return b.String()
}

func writeSection(b *strings.Builder, title, content string) {
	content = strings.TrimSpace(content)
	if content == "" {
		return
	}
	b.WriteString("\n## ")
	b.WriteString(title)
	b.WriteString("\n\n")
	b.WriteString(content)
	b.WriteString("\n")
}

// mermaidTypes are the diagram types the validator recognizes.
var mermaidTypes = []string{
	"graph",
	"flowchart",
	"sequenceDiagram",
	"classDiagram",
	"stateDiagram",
	"erDiagram",
	"journey",
	"gantt",
	"pie",
}

// EnsureMermaidFence normalizes a diagram script so it renders as a mermaid
// code block: an existing mermaid fence is kept, a bare fence is relabeled,
// and an unfenced script is wrapped.
func EnsureMermaidFence(script string) string {
	s := strings.TrimSpace(script)
	if s == "" {
		return ""
	}

	if strings.HasPrefix(s, "```mermaid") {
		return s
	}
	if strings.HasPrefix(s, "```") {
		// Relabel the opening fence; the body may still be a valid diagram.
		body := strings.TrimPrefix(s, "```")
		if idx := strings.Index(body, "\n"); idx >= 0 {
			body = body[idx+1:]
		}
		body = strings.TrimSuffix(strings.TrimSpace(body), "```")
		return "```mermaid\n" + strings.TrimSpace(body) + "\n```"
	}
	return "```mermaid\n" + s + "\n```"
}

// ValidateMermaid checks that a script (fenced or bare) opens with a known
// mermaid diagram type. Returns EUNPROCESSABLE with details otherwise.
// Callers typically log the error and keep the script; the renderer is the
// final authority on syntax.
func ValidateMermaid(script string) error {
	s := strings.TrimSpace(script)
	if s == "" {
		return Errorf(EUNPROCESSABLE, "empty mermaid script")
	}

	s = strings.TrimPrefix(s, "```mermaid")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	s = strings.TrimSpace(s)

	firstLine := s
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		firstLine = s[:idx]
	}
	firstLine = strings.TrimSpace(firstLine)

	for _, t := range mermaidTypes {
		if strings.HasPrefix(firstLine, t) {
			return nil
		}
	}
	return Errorf(EUNPROCESSABLE, "unknown mermaid diagram type in %q", firstLine)
}
