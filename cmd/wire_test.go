package main

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/prospect-cli/internal/config"
	"github.com/sells-group/prospect-cli/internal/model"
	"github.com/sells-group/prospect-cli/internal/pattern"
)

func testConfig() *config.Config {
	return &config.Config{
		Discover: config.DiscoverConfig{
			DirectoryBaseURL:  "https://directory.example",
			SearchBaseURL:     "https://search.example",
			SourceTimeoutSecs: 5,
		},
		Extract: config.ExtractConfig{FetchTimeoutSecs: 5},
		Email: config.EmailConfig{
			ProbeTimeoutSecs: 5,
			DomainRatePerSec: 2,
			HeloDomain:       "test.local",
		},
		Pipeline: config.PipelineConfig{MaxConcurrentCompanies: 3},
	}
}

func TestNewPatternStoreSeedsFromSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "patterns.db")
	seed := pattern.NewStore()
	seed.Put("acme.com", model.PatternFirstDotLast)
	require.NoError(t, seed.SaveFile(context.Background(), path))

	cfg := testConfig()
	cfg.Patterns.SnapshotPath = path

	store := newPatternStore(context.Background(), cfg)
	got, ok := store.Get("acme.com")
	require.True(t, ok)
	assert.Equal(t, model.PatternFirstDotLast, got)
}

func TestNewPatternStoreNoSnapshot(t *testing.T) {
	store := newPatternStore(context.Background(), testConfig())
	assert.Zero(t, store.Len())
}

func TestNewPatternStoreBadSnapshotDegrades(t *testing.T) {
	cfg := testConfig()
	cfg.Patterns.SnapshotPath = filepath.Join(t.TempDir(), "missing", "patterns.db")

	// An unreadable snapshot must not prevent startup.
	store := newPatternStore(context.Background(), cfg)
	assert.Zero(t, store.Len())
}

func TestNewServiceWiring(t *testing.T) {
	cfg := testConfig()
	store := pattern.NewStore()
	engine := newEngine(cfg, store)
	require.NotNil(t, engine)

	svc := newService(cfg, engine)
	assert.NotNil(t, svc)
}
