package mock

import (
	"context"

	"github.com/fwojciec/propgen"
)

var _ propgen.TechnicalWriter = (*TechnicalWriter)(nil)

// TechnicalWriter is a mock implementation of propgen.TechnicalWriter.
type TechnicalWriter struct {
	GenerateContentFn   func(ctx context.Context, req propgen.ContentRequest) (*propgen.TechnicalContent, error)
	GenerateOEMReviewFn func(ctx context.Context, req propgen.OEMReviewRequest) (*propgen.OEMReview, error)
}

func (w *TechnicalWriter) GenerateContent(ctx context.Context, req propgen.ContentRequest) (*propgen.TechnicalContent, error) {
	return w.GenerateContentFn(ctx, req)
}

func (w *TechnicalWriter) GenerateOEMReview(ctx context.Context, req propgen.OEMReviewRequest) (*propgen.OEMReview, error) {
	return w.GenerateOEMReviewFn(ctx, req)
}
