package discover

import (
	"context"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"github.com/sells-group/prospect-cli/internal/model"
)

// SourceIndustryDirectory tags records scraped from industry-specific
// directories.
const SourceIndustryDirectory = "Industry Directory"

// DefaultDirectories maps industries to their directory URLs. Overridable
// through configuration; industries without an entry yield nothing.
var DefaultDirectories = map[string][]string{
	"technology": {
		"https://www.crunchbase.com",
		"https://angel.co",
		"https://www.inc.com/inc5000",
	},
	"marketing": {
		"https://clutch.co/agencies",
		"https://www.agencyspotter.com",
	},
	"healthcare": {
		"https://www.healthgrades.com",
		"https://www.medicare.gov",
	},
}

// IndustryDirectories discovers companies from per-industry directory
// sites. Coverage is shallow: each directory is scanned for
// company profile links only.
type IndustryDirectories struct {
	client      *http.Client
	directories map[string][]string
	delay       Delay
}

// NewIndustryDirectories creates the adapter. A nil directories map falls
// back to DefaultDirectories.
func NewIndustryDirectories(client *http.Client, directories map[string][]string, delay Delay) *IndustryDirectories {
	if client == nil {
		client = http.DefaultClient
	}
	if directories == nil {
		directories = DefaultDirectories
	}
	return &IndustryDirectories{client: client, directories: directories, delay: delay}
}

func (d *IndustryDirectories) Name() string { return SourceIndustryDirectory }

// Discover scans each directory registered for the industry. A directory
// that fails to fetch is skipped; partial coverage is normal here.
func (d *IndustryDirectories) Discover(ctx context.Context, q Query) ([]model.CompanyCandidate, error) {
	urls := d.directories[strings.ToLower(q.Industry)]
	if len(urls) == 0 {
		return nil, nil
	}

	perDirectory := q.Limit / len(urls)
	if perDirectory < 1 {
		perDirectory = 1
	}

	var companies []model.CompanyCandidate
	for _, dirURL := range urls {
		if ctx.Err() != nil {
			break
		}
		if d.delay != nil {
			d.delay(ctx)
		}

		doc, err := fetchDocument(ctx, d.client, dirURL)
		if err != nil {
			zap.L().Debug("industrydir: directory fetch failed",
				zap.String("url", dirURL),
				zap.Error(err),
			)
			continue
		}
		companies = append(companies, scanDirectory(doc, perDirectory)...)
	}
	return companies, nil
}

// scanDirectory pulls company profile links out of a directory page.
func scanDirectory(doc *goquery.Document, limit int) []model.CompanyCandidate {
	var companies []model.CompanyCandidate
	doc.Find("a[href]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		href, _ := sel.Attr("href")
		if !strings.Contains(strings.ToLower(href), "company") {
			return true
		}
		name := strings.TrimSpace(sel.Text())
		if len(name) <= 2 {
			return true
		}
		companies = append(companies, model.CompanyCandidate{
			Name:    name,
			Website: href,
			Source:  SourceIndustryDirectory,
		})
		return len(companies) < limit
	})
	return companies
}
