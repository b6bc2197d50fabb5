package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/propgen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInspectCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists sections", func(t *testing.T) {
		t.Parallel()
		path := writeSampleRFP(t)
		var stdout, stderr bytes.Buffer

		err := NewMain().Run(context.Background(), []string{"inspect", path}, &stdout, &stderr)
		require.NoError(t, err)

		out := stdout.String()
		assert.Contains(t, out, "File:     rfp.md")
		assert.Contains(t, out, "Sections: 2")
		assert.Contains(t, out, "Billing Replatform RFP")
		assert.Contains(t, out, "Scope")
		assert.NotContains(t, out, "Migrate the billing system")
	})

	t.Run("full flag prints text", func(t *testing.T) {
		t.Parallel()
		path := writeSampleRFP(t)
		var stdout, stderr bytes.Buffer

		err := NewMain().Run(context.Background(), []string{"inspect", path, "--full"}, &stdout, &stderr)
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Migrate the billing system")
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		var stdout, stderr bytes.Buffer

		err := NewMain().Run(context.Background(), []string{"inspect", "/nope/rfp.md"}, &stdout, &stderr)
		require.Error(t, err)
		assert.Equal(t, propgen.ENOTFOUND, propgen.ErrorCode(err))
	})

	t.Run("unsupported extension", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "rfp.docx")
		require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
		var stdout, stderr bytes.Buffer

		err := NewMain().Run(context.Background(), []string{"inspect", path}, &stdout, &stderr)
		require.Error(t, err)
		assert.Equal(t, propgen.EUNSUPPORTED, propgen.ErrorCode(err))
		assert.Contains(t, stderr.String(), "error:")
	})
}
