package propgen

import (
	"context"
	"strings"
	"time"
)

// ContentRequest carries the context the technical writer needs to draft
// the core proposal sections.
type ContentRequest struct {
	// RFPText is the extracted RFP markdown.
	RFPText string

	// Review is the reviewer's reading of the RFP. May be empty but not nil.
	Review *Review

	// Technology is the technology to feature in the proposal.
	Technology string
}

// Validate returns an error if the request is missing required context.
func (r *ContentRequest) Validate() error {
	if strings.TrimSpace(r.RFPText) == "" && r.Review.Empty() {
		return Errorf(EINVALID, "RFP context required: provide full text or a review")
	}
	if strings.TrimSpace(r.Technology) == "" {
		return Errorf(EINVALID, "technology required")
	}
	return nil
}

// TechnicalContent is the writer's output for the core proposal sections.
type TechnicalContent struct {
	Understanding       string `json:"understanding"`
	SolutionOverview    string `json:"solutionOverview"`
	ArchitectureText    string `json:"architectureText"`
	ArchitectureMermaid string `json:"architectureMermaid"`
}

// OEMReviewRequest asks for a product overview of a packaged OEM platform.
type OEMReviewRequest struct {
	ProductName string

	// Review provides optional RFP context for relevance notes.
	Review *Review
}

// OEMReview is a product overview section for an OEM platform named as the
// technology focus.
type OEMReview struct {
	ProductName string `json:"productName"`
	Title       string `json:"title"`
	Content     string `json:"content"`
}

// TechnicalWriter generates proposal content from RFP context.
type TechnicalWriter interface {
	// GenerateContent drafts the understanding, overview, and architecture
	// sections in a single call.
	GenerateContent(ctx context.Context, req ContentRequest) (*TechnicalContent, error)

	// GenerateOEMReview drafts a product overview section.
	// Returns EINVALID if no product name is given.
	GenerateOEMReview(ctx context.Context, req OEMReviewRequest) (*OEMReview, error)
}

// Architecture pairs the architecture narrative with its diagram script.
type Architecture struct {
	Description   string `json:"description"`
	MermaidScript string `json:"mermaidScript"`
}

// Proposal is an assembled technical-proposal draft.
type Proposal struct {
	ID            string       `json:"id"`
	RFPReference  string       `json:"rfpReference"`
	Technology    string       `json:"technology"`
	ContentHash   string       `json:"contentHash"`
	GeneratedAt   time.Time    `json:"generatedAt"`
	Understanding string       `json:"understanding"`
	Overview      string       `json:"overview"`
	Architecture  Architecture `json:"architecture"`
	OEMReviews    []OEMReview  `json:"oemReviews,omitempty"`
}

// Validate returns an error if the proposal contains invalid fields.
func (p *Proposal) Validate() error {
	if strings.TrimSpace(p.Technology) == "" {
		return Errorf(EINVALID, "proposal technology required")
	}
	if strings.TrimSpace(p.Understanding) == "" &&
		strings.TrimSpace(p.Overview) == "" &&
		strings.TrimSpace(p.Architecture.Description) == "" {
		return Errorf(EINVALID, "proposal has no content sections")
	}
	return nil
}

// ProposalWriter persists an assembled proposal.
type ProposalWriter interface {
	// Write renders the proposal as markdown and writes it to path,
	// creating parent directories as needed.
	Write(ctx context.Context, proposal *Proposal, path string) error
}
