package mock

import (
	"context"

	"github.com/fwojciec/propgen"
)

var _ propgen.ProposalWriter = (*ProposalWriter)(nil)

// ProposalWriter is a mock implementation of propgen.ProposalWriter.
type ProposalWriter struct {
	WriteFn func(ctx context.Context, proposal *propgen.Proposal, path string) error
}

func (w *ProposalWriter) Write(ctx context.Context, proposal *propgen.Proposal, path string) error {
	return w.WriteFn(ctx, proposal, path)
}
