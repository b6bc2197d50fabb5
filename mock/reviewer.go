package mock

import (
	"context"

	"github.com/fwojciec/propgen"
)

var _ propgen.Reviewer = (*Reviewer)(nil)

// Reviewer is a mock implementation of propgen.Reviewer.
type Reviewer struct {
	ReviewRFPFn func(ctx context.Context, rfp *propgen.RFP) (*propgen.Review, error)
}

func (r *Reviewer) ReviewRFP(ctx context.Context, rfp *propgen.RFP) (*propgen.Review, error) {
	return r.ReviewRFPFn(ctx, rfp)
}
