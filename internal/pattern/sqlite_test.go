package pattern

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/prospect-cli/internal/model"
)

func TestSnapshotRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "patterns.db")
	ctx := context.Background()

	src := NewStore()
	src.Put("acme.com", model.PatternFirstDotLast)
	src.Put("globex.com", model.PatternFirstLast)
	require.NoError(t, src.SaveFile(ctx, path))

	dst := NewStore()
	require.NoError(t, dst.LoadFile(ctx, path))

	assert.Equal(t, src.Snapshot(), dst.Snapshot())
}

func TestSaveFileUpserts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "patterns.db")
	ctx := context.Background()

	s := NewStore()
	s.Put("acme.com", model.PatternFirstDotLast)
	require.NoError(t, s.SaveFile(ctx, path))

	s.Put("acme.com", model.PatternFirstInitialDotLast)
	require.NoError(t, s.SaveFile(ctx, path))

	reloaded := NewStore()
	require.NoError(t, reloaded.LoadFile(ctx, path))

	got, ok := reloaded.Get("acme.com")
	require.True(t, ok)
	assert.Equal(t, model.PatternFirstInitialDotLast, got)
	assert.Equal(t, 1, reloaded.Len())
}

func TestLoadFileEmptySnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "patterns.db")

	s := NewStore()
	require.NoError(t, s.LoadFile(context.Background(), path))
	assert.Zero(t, s.Len())
}
