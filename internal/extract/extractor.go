// Package extract crawls a company's public pages for personnel signals:
// business-domain emails, names and titles near them, and professional
// profile links. Extraction is best-effort; a page that fails to fetch is
// skipped, never fatal.
package extract

import (
	"context"
	"io"
	"math/rand/v2"
	"net/http"
	"net/url"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/prospect-cli/internal/model"
)

// contactPaths is the fixed page order visited per company. Earlier pages
// win dedup conflicts, so the order is part of the contract.
var contactPaths = []string{"", "/about", "/team", "/contact", "/leadership", "/management", "/staff"}

const (
	maxContactsPerCompany = 10
	maxBodyBytes          = 512 * 1024
)

// Delay pauses between page fetches for politeness. Implementations must
// honor context cancellation.
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

// Extractor fetches a company's candidate contact pages and extracts
// personnel records from each.
type Extractor struct {
	client       *http.Client
	delay        Delay
	fetchTimeout time.Duration
}

// Option configures the Extractor.
type Option func(*Extractor)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(x *Extractor) { x.client = c }
}

// WithDelay sets the inter-fetch politeness delay.
func WithDelay(d Delay) Option {
	return func(x *Extractor) { x.delay = d }
}

// WithFetchTimeout sets the per-page fetch timeout.
func WithFetchTimeout(d time.Duration) Option {
	return func(x *Extractor) { x.fetchTimeout = d }
}

// NewExtractor creates an Extractor with production defaults.
func NewExtractor(opts ...Option) *Extractor {
	x := &Extractor{
		client:       &http.Client{Timeout: 15 * time.Second},
		delay:        RandomDelay(500*time.Millisecond, 1500*time.Millisecond),
		fetchTimeout: 10 * time.Second,
	}
	for _, opt := range opts {
		opt(x)
	}
	return x
}

// ExtractContacts visits the fixed contact-page set of a company website
// and returns up to 10 deduplicated contact records, email-bearing records
// first. It never returns an error; an unreachable site yields nil.
func (x *Extractor) ExtractContacts(ctx context.Context, website string) []model.ContactCandidate {
	if website == "" {
		return nil
	}
	log := zap.L().With(zap.String("website", website))

	var raw []model.ContactCandidate
	for i, path := range contactPaths {
		if ctx.Err() != nil {
			break
		}
		if i > 0 && x.delay != nil {
			x.delay(ctx)
		}

		pageURL, err := resolvePath(website, path)
		if err != nil {
			log.Debug("extract: bad page url", zap.String("path", path), zap.Error(err))
			continue
		}

		doc, err := x.fetch(ctx, pageURL)
		if err != nil {
			log.Debug("extract: page fetch failed", zap.String("url", pageURL), zap.Error(err))
			continue
		}

		raw = append(raw, parsePage(doc, website)...)
	}

	contacts := dedupe(raw)
	log.Debug("extract: done",
		zap.Int("raw_signals", len(raw)),
		zap.Int("contacts", len(contacts)),
	)
	return contacts
}

// fetch retrieves one page with its own timeout and parses it.
func (x *Extractor) fetch(ctx context.Context, pageURL string) (*goquery.Document, error) {
	ctx, cancel := context.WithTimeout(ctx, x.fetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, eris.Wrap(err, "extract: create request")
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; ProspectBot/1.0)")

	resp, err := x.client.Do(req)
	if err != nil {
		return nil, eris.Wrap(err, "extract: fetch")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return nil, eris.Errorf("extract: status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, eris.Wrap(err, "extract: parse html")
	}
	return doc, nil
}

// resolvePath joins a relative contact path onto the company base URL.
func resolvePath(website, path string) (string, error) {
	base, err := url.Parse(website)
	if err != nil {
		return "", err
	}
	if base.Scheme == "" {
		base.Scheme = "https"
	}
	ref, err := url.Parse(path)
	if err != nil {
		return "", err
	}
	return base.ResolveReference(ref).String(), nil
}

// dedupe merges raw page signals: duplicate emails collapse onto the first
// occurrence, email-less records are kept as unique name signals, and the
// result is capped with email-bearing records prioritized.
func dedupe(raw []model.ContactCandidate) []model.ContactCandidate {
	var withEmail, nameOnly []model.ContactCandidate
	seen := make(map[string]struct{})

	for _, c := range raw {
		key := c.Key()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		if c.Email != "" {
			withEmail = append(withEmail, c)
		} else {
			nameOnly = append(nameOnly, c)
		}
	}

	out := append(withEmail, nameOnly...)
	if len(out) > maxContactsPerCompany {
		out = out[:maxContactsPerCompany]
	}
	return out
}
