package main

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/sells-group/prospect-cli/internal/config"
	"github.com/sells-group/prospect-cli/internal/discover"
	"github.com/sells-group/prospect-cli/internal/email"
	"github.com/sells-group/prospect-cli/internal/extract"
	"github.com/sells-group/prospect-cli/internal/leadgen"
	"github.com/sells-group/prospect-cli/internal/pattern"
	"github.com/sells-group/prospect-cli/internal/score"
)

// newPatternStore creates the shared pattern store, seeding it from the
// configured snapshot when one exists.
func newPatternStore(ctx context.Context, cfg *config.Config) *pattern.Store {
	store := pattern.NewStore()
	if path := cfg.Patterns.SnapshotPath; path != "" {
		if err := store.LoadFile(ctx, path); err != nil {
			zap.L().Warn("pattern snapshot load failed", zap.String("path", path), zap.Error(err))
		}
	}
	return store
}

// newEngine wires the email engine from config.
func newEngine(cfg *config.Config, store *pattern.Store) *email.Engine {
	opts := []email.Option{
		email.WithCallTimeout(time.Duration(cfg.Email.ProbeTimeoutSecs) * time.Second),
		email.WithDomainRate(rate.Limit(cfg.Email.DomainRatePerSec)),
		email.WithProber(email.NewSMTPProber(time.Duration(cfg.Email.ProbeTimeoutSecs)*time.Second, cfg.Email.HeloDomain)),
	}
	if !cfg.Email.ProbeEnabled {
		opts = append(opts, email.WithProbeDisabled())
	}
	return email.NewEngine(store, opts...)
}

// newService assembles the full pipeline.
func newService(cfg *config.Config, engine *email.Engine) *leadgen.Service {
	d := cfg.Discover
	sourceDelay := discover.RandomDelay(
		time.Duration(d.DelayMinMs)*time.Millisecond,
		time.Duration(d.DelayMaxMs)*time.Millisecond,
	)
	aggregator := discover.NewAggregator(
		time.Duration(d.SourceTimeoutSecs)*time.Second,
		discover.NewBusinessDirectory(nil, d.DirectoryBaseURL, sourceDelay),
		discover.NewWebSearch(nil, d.SearchBaseURL, sourceDelay),
		discover.NewIndustryDirectories(nil, nil, sourceDelay),
	)

	extractor := extract.NewExtractor(
		extract.WithFetchTimeout(time.Duration(cfg.Extract.FetchTimeoutSecs)*time.Second),
		extract.WithDelay(extract.RandomDelay(
			time.Duration(cfg.Extract.DelayMinMs)*time.Millisecond,
			time.Duration(cfg.Extract.DelayMaxMs)*time.Millisecond,
		)),
	)

	return leadgen.NewService(
		aggregator,
		extractor,
		engine,
		score.NewDefaultScorer(),
		leadgen.WithMaxConcurrent(cfg.Pipeline.MaxConcurrentCompanies),
	)
}
