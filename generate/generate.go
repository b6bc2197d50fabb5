// Package generate orchestrates the proposal pipeline: parse the RFP,
// review it, generate technical content, and assemble the final proposal.
package generate

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/propgen"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Request describes one proposal generation run.
type Request struct {
	// FilePath is the path to the RFP document.
	FilePath string

	// Technology is the technology to feature in the proposal.
	Technology string
}

// Validate returns an error if the request is incomplete.
func (r *Request) Validate() error {
	if strings.TrimSpace(r.FilePath) == "" {
		return propgen.Errorf(propgen.EINVALID, "RFP file path required")
	}
	if strings.TrimSpace(r.Technology) == "" {
		return propgen.Errorf(propgen.EINVALID, "technology required")
	}
	return nil
}

// Generator runs the proposal pipeline. All collaborators are injected.
type Generator struct {
	Parsers  *propgen.ParserRegistry
	Reviewer propgen.Reviewer
	Writer   propgen.TechnicalWriter

	// Logger receives pipeline progress and degradation warnings.
	// Nil discards.
	Logger *slog.Logger

	// Now is a clock override for tests. Nil means time.Now.
	Now func() time.Time
}

// Generate runs the full pipeline for one RFP document.
//
// A reviewer failure degrades the run (the writer still gets the full RFP
// text) but a writer failure aborts it: a proposal with placeholder
// sections is worse than no proposal.
func (g *Generator) Generate(ctx context.Context, req Request) (*propgen.Proposal, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	content, err := os.ReadFile(req.FilePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, propgen.Errorf(propgen.ENOTFOUND, "RFP file not found at %q", req.FilePath)
		}
		return nil, err
	}

	parser, err := g.Parsers.ForFile(req.FilePath)
	if err != nil {
		return nil, err
	}

	rfp, err := parser.Parse(req.FilePath, content)
	if err != nil {
		return nil, err
	}
	if rfp.ContentHash == "" {
		rfp.ContentHash = ContentHash(rfp.FullText)
	}
	if err := rfp.Validate(); err != nil {
		return nil, err
	}
	g.logger().Info("rfp parsed",
		"file", rfp.FileName,
		"chars", len(rfp.FullText),
		"sections", len(rfp.Sections),
	)

	review, err := g.Reviewer.ReviewRFP(ctx, rfp)
	if err != nil {
		g.logger().Warn("rfp review failed; continuing without review", "error", err)
		review = &propgen.Review{}
	} else if review.Empty() {
		g.logger().Warn("rfp review yielded no summary or requirements; proposal quality may suffer")
	}

	var technical *propgen.TechnicalContent
	var oem *propgen.OEMReview

	grp, gctx := errgroup.WithContext(ctx)
	grp.Go(func() error {
		var err error
		technical, err = g.Writer.GenerateContent(gctx, propgen.ContentRequest{
			RFPText:    rfp.FullText,
			Review:     review,
			Technology: req.Technology,
		})
		return err
	})
	if propgen.IsOEMTechnology(req.Technology) {
		grp.Go(func() error {
			var err error
			oem, err = g.Writer.GenerateOEMReview(gctx, propgen.OEMReviewRequest{
				ProductName: req.Technology,
				Review:      review,
			})
			return err
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}

	mermaid := propgen.EnsureMermaidFence(technical.ArchitectureMermaid)
	if mermaid != "" {
		if err := propgen.ValidateMermaid(mermaid); err != nil {
			g.logger().Warn("architecture diagram failed validation", "error", err)
		}
	}

	proposal := &propgen.Proposal{
		ID:            uuid.New().String(),
		RFPReference:  rfp.FileName,
		Technology:    req.Technology,
		ContentHash:   rfp.ContentHash,
		GeneratedAt:   g.now(),
		Understanding: technical.Understanding,
		Overview:      technical.SolutionOverview,
		Architecture: propgen.Architecture{
			Description:   technical.ArchitectureText,
			MermaidScript: mermaid,
		},
	}
	if oem != nil {
		proposal.OEMReviews = []propgen.OEMReview{*oem}
	}

	return proposal, nil
}

func (g *Generator) logger() *slog.Logger {
	if g.Logger != nil {
		return g.Logger
	}
	return slog.New(slog.DiscardHandler)
}

func (g *Generator) now() time.Time {
	if g.Now != nil {
		return g.Now()
	}
	return time.Now()
}

// ContentHash returns a stable digest of the RFP text, recorded in the
// proposal so a draft can be traced back to the exact source revision.
func ContentHash(text string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(text))
}
