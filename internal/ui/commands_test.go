package ui

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/leonardomso/anchor/internal/filter"
	_ "github.com/leonardomso/anchor/internal/parser/text"
)

func TestExtractLinksCmd(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("see example.com and localhost.com or hi@example.org\n"), 0o644))

	flt, err := filter.New(filter.Config{Domains: []string{"localhost.com"}})
	require.NoError(t, err)

	cmd := ExtractLinksCmd(context.Background(), []string{path}, false, flt, zap.NewNop())

	for rangeIdx := 0; rangeIdx < 2; rangeIdx++ {
		msg, ok := cmd().(LinksExtractedMsg)
		require.True(t, ok)
		require.NoError(t, msg.Err)
		assert.Len(t, msg.Links, 2)
		assert.Equal(t, 2, msg.Unique)
		assert.Equal(t, 1, msg.Ignored, "a rerun starts from a clean filter")
	}

	t.Run("NilFilter", func(t *testing.T) {
		t.Parallel()
		msg, ok := ExtractLinksCmd(context.Background(), []string{path}, false, nil, zap.NewNop())().(LinksExtractedMsg)
		require.True(t, ok)
		assert.Len(t, msg.Links, 3)
		assert.Zero(t, msg.Ignored)
	})
}
