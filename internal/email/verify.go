package email

import (
	"context"
	"errors"
	"net"
	"net/smtp"
	"net/textproto"
	"regexp"
	"strings"
	"time"
)

// Resolver resolves mail-exchange records for a domain.
type Resolver interface {
	LookupMX(ctx context.Context, domain string) ([]*net.MX, error)
}

// netResolver is the production Resolver backed by the system resolver.
type netResolver struct {
	r *net.Resolver
}

// NewNetResolver returns a Resolver using the default system resolver.
func NewNetResolver() Resolver {
	return &netResolver{r: net.DefaultResolver}
}

func (n *netResolver) LookupMX(ctx context.Context, domain string) ([]*net.MX, error) {
	return n.r.LookupMX(ctx, domain)
}

// ProbeOutcome classifies a deliverability probe result.
type ProbeOutcome int

const (
	// OutcomeRejected means the exchanger refused the mailbox.
	OutcomeRejected ProbeOutcome = iota
	// OutcomeUnknown means the probe was inconclusive (greylisting,
	// network error, catch-all rejection policy).
	OutcomeUnknown
	// OutcomeDeliverable means the exchanger accepted the mailbox.
	OutcomeDeliverable
)

// Prober performs a best-effort mailbox-existence check against a mail
// exchanger. Implementations never return errors: anything inconclusive
// maps to OutcomeUnknown.
type Prober interface {
	Probe(ctx context.Context, mxHost, address string) ProbeOutcome
}

// smtpProber speaks just enough SMTP to issue a RCPT and read the reply.
type smtpProber struct {
	timeout    time.Duration
	heloDomain string
}

// NewSMTPProber returns the production Prober. heloDomain is announced in
// the HELO exchange.
func NewSMTPProber(timeout time.Duration, heloDomain string) Prober {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if heloDomain == "" {
		heloDomain = "prospect-cli.local"
	}
	return &smtpProber{timeout: timeout, heloDomain: heloDomain}
}

func (p *smtpProber) Probe(ctx context.Context, mxHost, address string) ProbeOutcome {
	dialer := net.Dialer{Timeout: p.timeout}
	conn, err := dialer.DialContext(ctx, "tcp", net.JoinHostPort(strings.TrimSuffix(mxHost, "."), "25"))
	if err != nil {
		return OutcomeUnknown
	}
	_ = conn.SetDeadline(time.Now().Add(p.timeout))

	client, err := smtp.NewClient(conn, mxHost)
	if err != nil {
		_ = conn.Close()
		return OutcomeUnknown
	}
	defer func() { _ = client.Close() }()

	if err := client.Hello(p.heloDomain); err != nil {
		return OutcomeUnknown
	}
	if err := client.Mail("verify@" + p.heloDomain); err != nil {
		return OutcomeUnknown
	}

	err = client.Rcpt(address)
	if err == nil {
		_ = client.Quit()
		return OutcomeDeliverable
	}

	var protoErr *textproto.Error
	if errors.As(err, &protoErr) {
		switch protoErr.Code {
		case 450, 451, 452:
			return OutcomeUnknown
		default:
			return OutcomeRejected
		}
	}
	return OutcomeUnknown
}

var digitRunRe = regexp.MustCompile(`\d{3,}`)

var genericMailboxes = map[string]struct{}{
	"info":    {},
	"contact": {},
	"admin":   {},
	"support": {},
}

// patternScore estimates how plausible a local part is as a real mailbox.
// The result is clamped to [0, 30].
func patternScore(localPart string) int {
	score := 0
	if strings.Contains(localPart, ".") {
		score += 15
	}
	if len(localPart) >= 4 {
		score += 10
	}
	if digitRunRe.MatchString(localPart) {
		score -= 20
	}
	if _, ok := genericMailboxes[localPart]; ok {
		score += 5
	}
	if score < 0 {
		return 0
	}
	if score > 30 {
		return 30
	}
	return score
}
