package discover

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rotisserie/eris"

	"github.com/sells-group/prospect-cli/internal/model"
)

// SourceSearchEngine tags records found through web search results.
const SourceSearchEngine = "Search Engine"

// WebSearch discovers companies by querying a search engine for company
// profiles, restricted to business-profile sites.
type WebSearch struct {
	client  *http.Client
	baseURL string
	delay   Delay
}

// NewWebSearch creates the adapter with a configurable search endpoint.
func NewWebSearch(client *http.Client, baseURL string, delay Delay) *WebSearch {
	if client == nil {
		client = http.DefaultClient
	}
	return &WebSearch{client: client, baseURL: strings.TrimSuffix(baseURL, "/"), delay: delay}
}

func (w *WebSearch) Name() string { return SourceSearchEngine }

// Discover runs a profile-site search and parses the organic results.
func (w *WebSearch) Discover(ctx context.Context, q Query) ([]model.CompanyCandidate, error) {
	query := fmt.Sprintf("%s companies %s site:linkedin.com/company OR site:crunchbase.com", q.Industry, q.Location)
	searchURL := w.baseURL + "/search?q=" + url.QueryEscape(query)

	if w.delay != nil {
		w.delay(ctx)
	}
	doc, err := fetchDocument(ctx, w.client, searchURL)
	if err != nil {
		return nil, eris.Wrap(err, "websearch: search")
	}

	var companies []model.CompanyCandidate
	doc.Find("div.g").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if c, ok := parseSearchResult(sel); ok {
			companies = append(companies, c)
		}
		return q.Limit <= 0 || len(companies) < q.Limit
	})
	return companies, nil
}

// parseSearchResult extracts a company from one organic result block. The
// company name is the result title up to the first " - " separator.
func parseSearchResult(sel *goquery.Selection) (model.CompanyCandidate, bool) {
	title := strings.TrimSpace(sel.Find("h3").First().Text())
	if title == "" {
		return model.CompanyCandidate{}, false
	}

	name := title
	if i := strings.Index(title, " - "); i >= 0 {
		name = title[:i]
	}

	link, _ := sel.Find("a").First().Attr("href")
	return model.CompanyCandidate{
		Name:        name,
		Website:     link,
		Description: strings.TrimSpace(sel.Find("span.st").First().Text()),
		Source:      SourceSearchEngine,
	}, true
}
