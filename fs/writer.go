// Package fs implements proposal output on the local filesystem.
package fs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/fwojciec/propgen"
)

var _ propgen.ProposalWriter = (*Writer)(nil)

// Writer saves rendered proposals as Markdown files. Writes are atomic:
// the document lands in a temp file next to the target and is renamed
// into place, so a crash mid-write never leaves a truncated proposal.
type Writer struct{}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{}
}

func (w *Writer) Write(ctx context.Context, proposal *propgen.Proposal, path string) error {
	if err := proposal.Validate(); err != nil {
		return err
	}
	if path == "" {
		return propgen.Errorf(propgen.EINVALID, "output path required")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	content := propgen.FormatProposal(proposal)

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}
