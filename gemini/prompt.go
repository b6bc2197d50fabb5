package gemini

import (
	"fmt"
	"strings"

	"github.com/fwojciec/propgen"
)

// BuildReviewPrompt builds the user prompt for RFP review.
func BuildReviewPrompt(rfpText string) string {
	var sb strings.Builder
	sb.WriteString("<rfp>\n")
	sb.WriteString(rfpText)
	sb.WriteString("\n</rfp>\n\n")
	sb.WriteString("Analyze the RFP above. Provide a concise summary, a list of key requirements, and a list of evaluation criteria.")
	return sb.String()
}

// BuildContentPrompt builds the user prompt for technical content generation.
func BuildContentPrompt(req propgen.ContentRequest, rfpText string) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "<technology>%s</technology>\n\n", req.Technology)

	sb.WriteString("<rfp>\n")
	sb.WriteString(rfpText)
	sb.WriteString("\n</rfp>\n\n")

	if req.Review != nil {
		fmt.Fprintf(&sb, "<summary>%s</summary>\n\n", valueOr(req.Review.Summary, "No summary available."))
		fmt.Fprintf(&sb, "<key_requirements>\n%s\n</key_requirements>\n\n", formatList(req.Review.KeyRequirements))
		fmt.Fprintf(&sb, "<evaluation_criteria>\n%s\n</evaluation_criteria>\n\n", formatList(req.Review.EvaluationCriteria))
	}

	fmt.Fprintf(&sb, `Generate the core technical sections of a proposal featuring %q:

1. understanding: a narrative that demonstrates a clear understanding of the client's needs and objectives. Synthesize the summary, requirements, and RFP text; interpret, don't just enumerate.
2. solutionOverview: a detailed overview of the proposed solution, explaining how %q addresses the client's objectives, its core components, functionality, and benefits.
3. architectureText: a description of the solution architecture: main components, layers, interactions, and data flows, and where %q fits.
4. architectureMermaid: a mermaid diagram script for the architecture described in architectureText. Use a common diagram type such as graph TD or sequenceDiagram, and make sure the script matches the description.`,
		req.Technology, req.Technology, req.Technology)

	return sb.String()
}

// BuildOEMPrompt builds the user prompt for an OEM product review.
func BuildOEMPrompt(req propgen.OEMReviewRequest) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "<product>%s</product>\n\n", req.ProductName)

	if !req.Review.Empty() {
		fmt.Fprintf(&sb, "<rfp_summary>%s</rfp_summary>\n\n", req.Review.Summary)
		fmt.Fprintf(&sb, "<key_requirements>\n%s\n</key_requirements>\n\n", formatList(req.Review.KeyRequirements))
	}

	fmt.Fprintf(&sb, `Write an overview of %q for inclusion in a project proposal: what the product is, its main features, and its general benefits. If RFP context is given above, briefly note the product's relevance to it. The title should be "Overview: %s".`,
		req.ProductName, req.ProductName)

	return sb.String()
}

// formatList renders items as a markdown bullet list.
func formatList(items []string) string {
	if len(items) == 0 {
		return "Not explicitly listed."
	}
	return "- " + strings.Join(items, "\n- ")
}

func valueOr(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}
