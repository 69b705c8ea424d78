// Package discover finds candidate companies for an industry/location
// query across several independent sources. Each source is an adapter
// behind a stable interface; a failing adapter contributes nothing and
// never aborts its siblings.
package discover

import (
	"context"
	"io"
	"math/rand/v2"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/rotisserie/eris"

	"github.com/sells-group/prospect-cli/internal/model"
	"github.com/sells-group/prospect-cli/internal/resilience"
)

// Query is one discovery request against a single source.
type Query struct {
	Industry string
	Location string
	Limit    int
}

// Source is a company-discovery adapter. Every returned record carries at
// least a name; adapters populate website, phone, address or description
// when their source exposes them.
type Source interface {
	Name() string
	Discover(ctx context.Context, q Query) ([]model.CompanyCandidate, error)
}

// Delay pauses around a source's network call for politeness.
type Delay func(ctx context.Context)

// RandomDelay returns a Delay sleeping a uniform duration in [min, max].
func RandomDelay(min, max time.Duration) Delay {
	return func(ctx context.Context) {
		d := min
		if max > min {
			d += time.Duration(rand.Int64N(int64(max - min)))
		}
		timer := time.NewTimer(d)
		defer timer.Stop()
		select {
		case <-ctx.Done():
		case <-timer.C:
		}
	}
}

const maxBodyBytes = 1024 * 1024

// fetchDocument GETs a URL and parses the response body, retrying
// transient failures once.
func fetchDocument(ctx context.Context, client *http.Client, pageURL string) (*goquery.Document, error) {
	return resilience.DoVal(ctx, resilience.Config{}, "discover fetch", func(ctx context.Context) (*goquery.Document, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
		if err != nil {
			return nil, eris.Wrap(err, "discover: create request")
		}
		req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; ProspectBot/1.0)")

		resp, err := client.Do(req)
		if err != nil {
			return nil, eris.Wrap(err, "discover: fetch")
		}
		defer func() { _ = resp.Body.Close() }()

		if resilience.RetryableStatus(resp.StatusCode) {
			return nil, eris.Wrap(&resilience.StatusError{Code: resp.StatusCode}, "discover: fetch")
		}
		if resp.StatusCode >= 400 {
			return nil, eris.Errorf("discover: status %d", resp.StatusCode)
		}

		doc, err := goquery.NewDocumentFromReader(io.LimitReader(resp.Body, maxBodyBytes))
		if err != nil {
			return nil, eris.Wrap(err, "discover: parse html")
		}
		return doc, nil
	})
}
