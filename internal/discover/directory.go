package discover

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rotisserie/eris"

	"github.com/sells-group/prospect-cli/internal/model"
)

// SourceBusinessDirectory tags records scraped from the business listings
// directory.
const SourceBusinessDirectory = "Business Directory"

// BusinessDirectory discovers companies via a yellow-pages style listing
// site. It is the richest adapter: listings carry phone, address and
// website alongside the name.
type BusinessDirectory struct {
	client  *http.Client
	baseURL string
	delay   Delay
}

// NewBusinessDirectory creates the adapter. baseURL is configurable so
// tests can point it at a stub server.
func NewBusinessDirectory(client *http.Client, baseURL string, delay Delay) *BusinessDirectory {
	if client == nil {
		client = http.DefaultClient
	}
	return &BusinessDirectory{client: client, baseURL: strings.TrimSuffix(baseURL, "/"), delay: delay}
}

func (b *BusinessDirectory) Name() string { return SourceBusinessDirectory }

// Discover searches the directory for the industry and location.
func (b *BusinessDirectory) Discover(ctx context.Context, q Query) ([]model.CompanyCandidate, error) {
	params := url.Values{}
	params.Set("search_terms", strings.TrimSpace(q.Industry+" "+q.Location))
	params.Set("geo_location_terms", q.Location)
	searchURL := b.baseURL + "/search?" + params.Encode()

	if b.delay != nil {
		b.delay(ctx)
	}
	doc, err := fetchDocument(ctx, b.client, searchURL)
	if err != nil {
		return nil, eris.Wrap(err, "directory: search")
	}

	var companies []model.CompanyCandidate
	doc.Find("div.result").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if c, ok := b.parseListing(sel); ok {
			companies = append(companies, c)
		}
		return q.Limit <= 0 || len(companies) < q.Limit
	})
	return companies, nil
}

// parseListing extracts one company from a directory result block.
func (b *BusinessDirectory) parseListing(sel *goquery.Selection) (model.CompanyCandidate, bool) {
	name := strings.TrimSpace(sel.Find("a.business-name").First().Text())
	if name == "" {
		return model.CompanyCandidate{}, false
	}

	website, _ := sel.Find("a.track-visit-website").First().Attr("href")
	return model.CompanyCandidate{
		Name:    name,
		Website: website,
		Phone:   strings.TrimSpace(sel.Find("div.phones").First().Text()),
		Address: strings.TrimSpace(sel.Find("div.street-address").First().Text()),
		Source:  SourceBusinessDirectory,
	}, true
}
