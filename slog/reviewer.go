// Package slog provides logging decorators for the model-backed services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/propgen"
)

// Ensure LoggingReviewer implements propgen.Reviewer.
var _ propgen.Reviewer = (*LoggingReviewer)(nil)

// LoggingReviewer wraps a Reviewer with per-call logging.
type LoggingReviewer struct {
	next   propgen.Reviewer
	logger *slog.Logger
}

// NewLoggingReviewer creates a new LoggingReviewer.
func NewLoggingReviewer(next propgen.Reviewer, logger *slog.Logger) *LoggingReviewer {
	return &LoggingReviewer{next: next, logger: logger}
}

// ReviewRFP delegates to the wrapped reviewer and logs the outcome.
func (r *LoggingReviewer) ReviewRFP(ctx context.Context, rfp *propgen.RFP) (*propgen.Review, error) {
	begin := time.Now()
	review, err := r.next.ReviewRFP(ctx, rfp)
	if err != nil {
		r.logger.Error("rfp review",
			"file", rfp.FileName,
			"duration", time.Since(begin),
			"error", err,
		)
		return nil, err
	}
	r.logger.Info("rfp review",
		"file", rfp.FileName,
		"duration", time.Since(begin),
		"requirements", len(review.KeyRequirements),
		"criteria", len(review.EvaluationCriteria),
	)
	return review, nil
}
