package email

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/sells-group/prospect-cli/internal/model"
	"github.com/sells-group/prospect-cli/internal/pattern"
)

const (
	baseConfidence     = 30
	deliverableBonus   = 40
	unknownBonus       = 20
	maxConfidence      = 95
	validThreshold     = 50
	mxFailConfidence   = 10
	defaultAttempts    = 5
	bulkAttempts       = 3
	defaultCallTimeout = 10 * time.Second
)

// Engine generates and verifies email addresses for contacts. Probes
// against any one mail domain are rate-limited to avoid tripping
// anti-abuse defenses.
type Engine struct {
	store        *pattern.Store
	resolver     Resolver
	prober       Prober
	probeEnabled bool
	callTimeout  time.Duration
	domainRate   rate.Limit

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

// Option configures the Engine.
type Option func(*Engine)

// WithResolver sets a custom MX resolver (for testing).
func WithResolver(r Resolver) Option {
	return func(e *Engine) { e.resolver = r }
}

// WithProber sets a custom deliverability prober (for testing).
func WithProber(p Prober) Option {
	return func(e *Engine) { e.prober = p }
}

// WithProbeDisabled skips the SMTP probe entirely; probe outcomes are
// then always unknown.
func WithProbeDisabled() Option {
	return func(e *Engine) { e.probeEnabled = false }
}

// WithCallTimeout sets the per-network-call timeout.
func WithCallTimeout(d time.Duration) Option {
	return func(e *Engine) { e.callTimeout = d }
}

// WithDomainRate sets the per-mail-domain probe rate (probes/second).
func WithDomainRate(r rate.Limit) Option {
	return func(e *Engine) { e.domainRate = r }
}

// NewEngine creates an Engine sharing the given pattern store.
func NewEngine(store *pattern.Store, opts ...Option) *Engine {
	e := &Engine{
		store:        store,
		resolver:     NewNetResolver(),
		probeEnabled: true,
		callTimeout:  defaultCallTimeout,
		domainRate:   rate.Limit(2),
		limiters:     make(map[string]*rate.Limiter),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.prober == nil {
		e.prober = NewSMTPProber(e.callTimeout, "")
	}
	return e
}

// limiter returns the probe rate limiter for a mail domain.
func (e *Engine) limiter(domain string) *rate.Limiter {
	e.mu.Lock()
	defer e.mu.Unlock()
	l, ok := e.limiters[domain]
	if !ok {
		l = rate.NewLimiter(e.domainRate, 1)
		e.limiters[domain] = l
	}
	return l
}

// Verify checks a single address: syntax, then the MX gate, then a
// best-effort deliverability probe and pattern analysis. It never returns
// an error; inconclusive network outcomes degrade the confidence instead.
func (e *Engine) Verify(ctx context.Context, address string) model.EmailCandidate {
	if !ValidFormat(address) {
		return model.EmailCandidate{Address: address, Confidence: 0, Method: model.MethodFormat}
	}

	at := strings.LastIndex(address, "@")
	localPart, domain := address[:at], address[at+1:]

	mxHost, ok := e.lookupMX(ctx, domain)
	if !ok {
		return model.EmailCandidate{Address: address, Confidence: mxFailConfidence, Method: model.MethodMX}
	}

	outcome := OutcomeUnknown
	if e.probeEnabled {
		outcome = e.probe(ctx, domain, mxHost, address)
	}

	confidence := baseConfidence
	switch outcome {
	case OutcomeDeliverable:
		confidence += deliverableBonus
	case OutcomeUnknown:
		confidence += unknownBonus
	}
	confidence += patternScore(localPart)
	if confidence > maxConfidence {
		confidence = maxConfidence
	}

	return model.EmailCandidate{
		Address:    address,
		Confidence: confidence,
		Valid:      confidence >= validThreshold,
		Method:     model.MethodCombined,
	}
}

// lookupMX resolves the domain's primary exchanger. Any resolution failure
// is treated as "no routable mail infrastructure".
func (e *Engine) lookupMX(ctx context.Context, domain string) (string, bool) {
	ctx, cancel := context.WithTimeout(ctx, e.callTimeout)
	defer cancel()

	records, err := e.resolver.LookupMX(ctx, domain)
	if err != nil || len(records) == 0 {
		return "", false
	}
	return records[0].Host, true
}

// probe rate-limits and runs the deliverability probe for one address.
func (e *Engine) probe(ctx context.Context, domain, mxHost, address string) ProbeOutcome {
	if err := e.limiter(domain).Wait(ctx); err != nil {
		return OutcomeUnknown
	}
	probeCtx, cancel := context.WithTimeout(ctx, e.callTimeout)
	defer cancel()
	return e.prober.Probe(probeCtx, mxHost, address)
}

// GenerateAndVerify synthesizes candidate addresses for a person at a
// domain, verifies each, and returns the likely-valid ones sorted by
// confidence descending.
func (e *Engine) GenerateAndVerify(ctx context.Context, first, last, domain string, maxAttempts int) []model.EmailCandidate {
	if maxAttempts <= 0 {
		maxAttempts = defaultAttempts
	}

	candidates := e.synthesize(first, last, domain, maxAttempts)
	if len(candidates) == 0 {
		return nil
	}

	verified := make([]model.EmailCandidate, 0, len(candidates))
	for _, c := range candidates {
		if ctx.Err() != nil {
			break
		}
		result := e.Verify(ctx, c.address)
		result.Template = c.template
		verified = append(verified, result)
	}

	sort.SliceStable(verified, func(i, j int) bool {
		return verified[i].Confidence > verified[j].Confidence
	})

	valid := verified[:0]
	for _, v := range verified {
		if v.Confidence >= validThreshold {
			valid = append(valid, v)
		}
	}
	return valid
}

// EnrichContacts fills in missing addresses for a company's contacts.
// Contacts that already carry an email pass through unmodified with
// confidence 100; their addresses first feed pattern inference for the
// domain. Contacts the engine cannot resolve keep an empty email.
func (e *Engine) EnrichContacts(ctx context.Context, contacts []model.ContactCandidate, domain string) []model.ContactCandidate {
	log := zap.L().With(zap.String("domain", domain))

	var known []string
	for _, c := range contacts {
		if c.Email != "" {
			known = append(known, c.Email)
		}
	}
	if len(known) > 0 {
		if shape := e.store.Infer(known, cleanDomain(domain)); shape != "" {
			log.Debug("email: inferred domain pattern", zap.String("pattern", string(shape)))
		}
	}

	out := make([]model.ContactCandidate, 0, len(contacts))
	for _, c := range contacts {
		if c.Email != "" {
			c.EmailConfidence = 100
			out = append(out, c)
			continue
		}

		generated := e.GenerateAndVerify(ctx, c.FirstName, c.LastName, domain, bulkAttempts)
		if len(generated) > 0 {
			c.Email = generated[0].Address
			c.EmailConfidence = generated[0].Confidence
		} else {
			log.Debug("email: no valid candidate",
				zap.String("first", c.FirstName),
				zap.String("last", c.LastName),
			)
		}
		out = append(out, c)
	}
	return out
}
