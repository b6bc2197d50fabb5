package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/propgen"
)

// Ensure LoggingWriter implements propgen.TechnicalWriter.
var _ propgen.TechnicalWriter = (*LoggingWriter)(nil)

// LoggingWriter wraps a TechnicalWriter with per-call logging.
type LoggingWriter struct {
	next   propgen.TechnicalWriter
	logger *slog.Logger
}

// NewLoggingWriter creates a new LoggingWriter.
func NewLoggingWriter(next propgen.TechnicalWriter, logger *slog.Logger) *LoggingWriter {
	return &LoggingWriter{next: next, logger: logger}
}

// GenerateContent delegates to the wrapped writer and logs the outcome.
func (w *LoggingWriter) GenerateContent(ctx context.Context, req propgen.ContentRequest) (*propgen.TechnicalContent, error) {
	begin := time.Now()
	content, err := w.next.GenerateContent(ctx, req)
	if err != nil {
		w.logger.Error("technical content",
			"technology", req.Technology,
			"duration", time.Since(begin),
			"error", err,
		)
		return nil, err
	}
	w.logger.Info("technical content",
		"technology", req.Technology,
		"duration", time.Since(begin),
		"diagram", content.ArchitectureMermaid != "",
	)
	return content, nil
}

// GenerateOEMReview delegates to the wrapped writer and logs the outcome.
func (w *LoggingWriter) GenerateOEMReview(ctx context.Context, req propgen.OEMReviewRequest) (*propgen.OEMReview, error) {
	begin := time.Now()
	review, err := w.next.GenerateOEMReview(ctx, req)
	if err != nil {
		w.logger.Error("oem review",
			"product", req.ProductName,
			"duration", time.Since(begin),
			"error", err,
		)
		return nil, err
	}
	w.logger.Info("oem review",
		"product", req.ProductName,
		"duration", time.Since(begin),
		"title", review.Title,
	)
	return review, nil
}
