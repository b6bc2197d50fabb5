package propgen

import (
	"context"
	"strings"
)

// RFP represents a parsed Request-for-Proposal document. FullText holds the
// extracted markdown; Sections is the heading-delimited breakdown of the
// same text.
type RFP struct {
	FileName    string    `json:"fileName"`
	FullText    string    `json:"fullText"`
	ContentHash string    `json:"contentHash"`
	Sections    []Section `json:"sections"`
}

// Validate returns an error if the RFP contains invalid fields.
func (r *RFP) Validate() error {
	if r.FileName == "" {
		return Errorf(EINVALID, "RFP file name required")
	}
	if strings.TrimSpace(r.FullText) == "" {
		return Errorf(EINVALID, "RFP full text is empty")
	}
	return nil
}

// Review holds what the reviewer extracted from an RFP: the document's main
// goals, the critical requirements, and how proposals will be judged.
type Review struct {
	Summary            string   `json:"summary"`
	KeyRequirements    []string `json:"keyRequirements"`
	EvaluationCriteria []string `json:"evaluationCriteria"`
}

// Empty reports whether the review carries no usable signal.
func (r *Review) Empty() bool {
	return r == nil || (strings.TrimSpace(r.Summary) == "" && len(r.KeyRequirements) == 0)
}

// Reviewer analyzes an RFP to extract a summary, key requirements, and
// evaluation criteria.
type Reviewer interface {
	// ReviewRFP reviews a parsed RFP document.
	// Returns EINVALID if the RFP has no text.
	ReviewRFP(ctx context.Context, rfp *RFP) (*Review, error)
}
