package discover

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/prospect-cli/internal/model"
)

// Aggregator fans a discovery query out across all sources concurrently,
// isolating per-source failures, and merges the results.
type Aggregator struct {
	sources       []Source
	sourceTimeout time.Duration
}

// NewAggregator creates an Aggregator over the given sources. Source order
// is significant: merged results keep it, so earlier sources win dedup
// conflicts.
func NewAggregator(sourceTimeout time.Duration, sources ...Source) *Aggregator {
	if sourceTimeout <= 0 {
		sourceTimeout = 30 * time.Second
	}
	return &Aggregator{sources: sources, sourceTimeout: sourceTimeout}
}

// Discover queries every source for its even share of the limit and
// returns the deduplicated union, truncated to limit. Best-effort: a
// source that errors or times out contributes zero results, and Discover
// itself never fails.
func (a *Aggregator) Discover(ctx context.Context, industry, location string, limit int) []model.CompanyCandidate {
	if len(a.sources) == 0 || limit <= 0 {
		return nil
	}

	perSource := limit / len(a.sources)
	if perSource < 1 {
		perSource = 1
	}

	results := make([][]model.CompanyCandidate, len(a.sources))
	g, gCtx := errgroup.WithContext(ctx)

	for i, src := range a.sources {
		g.Go(func() error {
			srcCtx, cancel := context.WithTimeout(gCtx, a.sourceTimeout)
			defer cancel()

			found, err := src.Discover(srcCtx, Query{Industry: industry, Location: location, Limit: perSource})
			if err != nil {
				zap.L().Warn("discover: source failed",
					zap.String("source", src.Name()),
					zap.Error(err),
				)
				return nil
			}
			results[i] = found
			return nil
		})
	}
	_ = g.Wait()

	merged := make([]model.CompanyCandidate, 0, limit)
	seen := make(map[string]struct{})
	for i, found := range results {
		zap.L().Debug("discover: source results",
			zap.String("source", a.sources[i].Name()),
			zap.Int("count", len(found)),
		)
		for _, c := range found {
			if c.Name == "" {
				continue
			}
			key := model.NormalizeName(c.Name)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			merged = append(merged, c)
		}
	}

	if len(merged) > limit {
		merged = merged[:limit]
	}
	return merged
}
