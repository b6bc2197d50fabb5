package slog_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/propgen"
	"github.com/fwojciec/propgen/mock"
	"github.com/fwojciec/propgen/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingWriter_GenerateContent(t *testing.T) {
	t.Parallel()

	t.Run("logs success", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		next := &mock.TechnicalWriter{
			GenerateContentFn: func(ctx context.Context, req propgen.ContentRequest) (*propgen.TechnicalContent, error) {
				return &propgen.TechnicalContent{Understanding: "u", ArchitectureMermaid: "graph TD"}, nil
			},
		}
		w := slog.NewLoggingWriter(next, newLogger(&buf))

		content, err := w.GenerateContent(context.Background(), propgen.ContentRequest{
			RFPText: "x", Review: &propgen.Review{}, Technology: "Go",
		})
		require.NoError(t, err)
		assert.Equal(t, "u", content.Understanding)
		assert.Contains(t, buf.String(), "technical content")
		assert.Contains(t, buf.String(), "diagram=true")
	})

	t.Run("logs error", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		next := &mock.TechnicalWriter{
			GenerateContentFn: func(ctx context.Context, req propgen.ContentRequest) (*propgen.TechnicalContent, error) {
				return nil, errors.New("model down")
			},
		}
		w := slog.NewLoggingWriter(next, newLogger(&buf))

		_, err := w.GenerateContent(context.Background(), propgen.ContentRequest{
			RFPText: "x", Review: &propgen.Review{}, Technology: "Go",
		})
		require.Error(t, err)
		assert.Contains(t, buf.String(), "level=ERROR")
	})
}

func TestLoggingWriter_GenerateOEMReview(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	next := &mock.TechnicalWriter{
		GenerateOEMReviewFn: func(ctx context.Context, req propgen.OEMReviewRequest) (*propgen.OEMReview, error) {
			return &propgen.OEMReview{ProductName: req.ProductName, Title: "Fit", Content: "c"}, nil
		},
	}
	w := slog.NewLoggingWriter(next, newLogger(&buf))

	review, err := w.GenerateOEMReview(context.Background(), propgen.OEMReviewRequest{ProductName: "Salesforce"})
	require.NoError(t, err)
	assert.Equal(t, "Fit", review.Title)
	assert.Contains(t, buf.String(), "product=Salesforce")
}
