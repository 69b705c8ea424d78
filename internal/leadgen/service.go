// Package leadgen orchestrates the discovery-and-enrichment pipeline:
// source aggregation, per-company contact extraction, email synthesis and
// lead scoring, assembled into a single deduplicated report. The service
// is the only component with a view of the whole pipeline.
package leadgen

import (
	"context"
	"math/rand/v2"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/prospect-cli/internal/email"
	"github.com/sells-group/prospect-cli/internal/model"
	"github.com/sells-group/prospect-cli/internal/score"
)

const defaultLimit = 50

// Aggregator discovers companies across sources, best-effort.
type Aggregator interface {
	Discover(ctx context.Context, industry, location string, limit int) []model.CompanyCandidate
}

// Extractor pulls contact records from a company website, best-effort.
type Extractor interface {
	ExtractContacts(ctx context.Context, website string) []model.ContactCandidate
}

// Enricher fills in missing email addresses for a company's contacts.
type Enricher interface {
	EnrichContacts(ctx context.Context, contacts []model.ContactCandidate, domain string) []model.ContactCandidate
}

// Service runs the full lead-generation pipeline.
type Service struct {
	aggregator    Aggregator
	extractor     Extractor
	engine        Enricher
	scorer        *score.Scorer
	maxConcurrent int

	mu  sync.Mutex
	rng *rand.Rand
}

// Option configures the Service.
type Option func(*Service)

// WithRand injects the RNG used for placeholder names and company-size
// estimates, making randomized output reproducible in tests.
func WithRand(rng *rand.Rand) Option {
	return func(s *Service) { s.rng = rng }
}

// WithMaxConcurrent bounds how many companies are enriched at once.
func WithMaxConcurrent(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxConcurrent = n
		}
	}
}

// NewService wires the pipeline. The aggregator, extractor and engine are
// interfaces so tests can stub any stage.
func NewService(agg Aggregator, ext Extractor, eng Enricher, scorer *score.Scorer, opts ...Option) *Service {
	s := &Service{
		aggregator:    agg,
		extractor:     ext,
		engine:        eng,
		scorer:        scorer,
		maxConcurrent: 5,
		rng:           rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// companyResult carries one company's enrichment outcome back to the
// assembly step in discovery order.
type companyResult struct {
	company  model.CompanyCandidate
	contacts []model.ContactCandidate
	skipped  bool
}

// Run executes the pipeline for one request. It returns an error only for
// invalid input; source failures and deadline expiry degrade the report
// instead (partial results, counts, truncated flag).
func (s *Service) Run(ctx context.Context, req model.Request) (*model.Report, error) {
	if strings.TrimSpace(req.Industry) == "" {
		return nil, eris.New("leadgen: industry is required")
	}
	if req.Limit < 0 {
		return nil, eris.Errorf("leadgen: limit must be positive, got %d", req.Limit)
	}
	if req.Limit == 0 {
		req.Limit = defaultLimit
	}

	log := zap.L().With(
		zap.String("industry", req.Industry),
		zap.String("location", req.Location),
		zap.Int("limit", req.Limit),
	)
	log.Info("leadgen: starting run")

	report := &model.Report{
		RunID: uuid.NewString(),
		Criteria: model.SearchCriteria{
			Industry:    req.Industry,
			Location:    req.Location,
			CompanySize: req.CompanySize,
			Limit:       req.Limit,
			DataSource:  "live_sources",
		},
	}

	companies := s.aggregator.Discover(ctx, req.Industry, req.Location, req.Limit)
	log.Info("leadgen: discovery complete", zap.Int("companies", len(companies)))

	for i := range companies {
		s.augmentCompany(&companies[i], req)
	}

	results := make([]companyResult, len(companies))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxConcurrent)

	for i, company := range companies {
		// Deadline expiry stops new per-company work; in-flight work
		// may complete.
		if ctx.Err() != nil {
			results[i] = companyResult{company: company, skipped: true}
			report.Truncated = true
			continue
		}
		g.Go(func() error {
			results[i] = s.enrichCompany(gCtx, company)
			return nil
		})
	}
	_ = g.Wait()

	s.assemble(report, results)
	log.Info("leadgen: run complete",
		zap.String("run_id", report.RunID),
		zap.Int("companies", report.Totals.Companies),
		zap.Int("contacts", report.Totals.Contacts),
		zap.Bool("truncated", report.Truncated),
	)
	return report, nil
}

// augmentCompany fills fields the source did not supply.
func (s *Service) augmentCompany(c *model.CompanyCandidate, req model.Request) {
	if c.Domain == "" && c.Website != "" {
		c.Domain = email.DomainFromWebsite(c.Website)
	}
	if c.Industry == "" {
		c.Industry = req.Industry
	}
	if c.CompanySize == "" {
		c.CompanySize = req.CompanySize
	}

	s.mu.Lock()
	if c.CompanySize == "" {
		c.CompanySize = model.RandomSizeBucket(s.rng)
	}
	if c.EmployeeCount == 0 {
		c.EmployeeCount = model.EstimateEmployeeCount(c.CompanySize, s.rng)
	}
	if c.FoundedYear == 0 {
		c.FoundedYear = 2010 + s.rng.IntN(14)
	}
	if c.FundingStatus == "" {
		c.FundingStatus = model.FundingStages[s.rng.IntN(len(model.FundingStages))]
	}
	s.mu.Unlock()

	if c.Country == "" {
		c.Country = "United States"
	}
	if c.City == "" && req.Location != "" {
		city, state := splitLocation(req.Location)
		c.City, c.State = city, state
	}
	if c.Description == "" {
		c.Description = "Company in " + c.Industry + " industry"
	}
}

// enrichCompany runs extraction, placeholder fallback, email enrichment
// and scoring for one company. Failures inside any stage degrade to fewer
// contacts; sibling companies are never affected.
func (s *Service) enrichCompany(ctx context.Context, company model.CompanyCandidate) companyResult {
	log := zap.L().With(zap.String("company", company.Name))

	var contacts []model.ContactCandidate
	if company.Website != "" {
		contacts = s.extractor.ExtractContacts(ctx, company.Website)
	}

	if len(contacts) == 0 && company.Domain != "" {
		s.mu.Lock()
		contacts = placeholderContacts(company, s.rng)
		s.mu.Unlock()
		log.Debug("leadgen: synthesized placeholder contacts", zap.Int("count", len(contacts)))
	}

	for i := range contacts {
		c := &contacts[i]
		c.CompanyName = company.Name
		c.CompanyDomain = company.Domain
		if c.JobTitle != "" {
			c.Department = model.DeriveDepartment(c.JobTitle)
			c.Seniority = model.DeriveSeniority(c.JobTitle)
		}
	}

	if company.Domain != "" && len(contacts) > 0 {
		contacts = s.engine.EnrichContacts(ctx, contacts, company.Domain)
	}

	// Scores are recomputed after every field update; a stale score never
	// survives enrichment.
	for i := range contacts {
		contacts[i].LeadScore = s.scorer.Score(contacts[i])
	}

	company.ContactCount = len(contacts)
	return companyResult{company: company, contacts: contacts}
}

// assemble merges per-company results into the report, enforcing identity
// dedup before anything is appended.
func (s *Service) assemble(report *model.Report, results []companyResult) {
	seenCompanies := make(map[string]struct{})
	seenContacts := make(map[string]struct{})

	for _, r := range results {
		if r.skipped {
			report.Totals.CompaniesSkipped++
			continue
		}

		key := r.company.Key()
		if _, dup := seenCompanies[key]; dup {
			continue
		}
		seenCompanies[key] = struct{}{}
		report.Companies = append(report.Companies, r.company)

		if len(r.contacts) == 0 {
			report.Totals.CompaniesFailed++
			continue
		}

		for _, c := range r.contacts {
			ckey := c.Key()
			if _, dup := seenContacts[ckey]; dup {
				continue
			}
			seenContacts[ckey] = struct{}{}
			report.Contacts = append(report.Contacts, c)

			switch {
			case c.EmailConfidence == 100:
				report.Totals.KnownEmails++
			case c.Email != "":
				report.Totals.GeneratedEmails++
			}
			if c.Source == SourceGenerated {
				report.Totals.PlaceholderCount++
			}
		}
	}

	report.Totals.Companies = len(report.Companies)
	report.Totals.Contacts = len(report.Contacts)
}

// splitLocation parses "City, ST" into its parts.
func splitLocation(location string) (city, state string) {
	parts := strings.SplitN(location, ",", 2)
	city = strings.TrimSpace(parts[0])
	if len(parts) > 1 {
		state = strings.TrimSpace(parts[1])
	}
	return city, state
}
