// Package email synthesizes and verifies business email addresses. A
// synthesized address is never guaranteed deliverable; the engine only
// produces a confidence estimate.
package email

import (
	"regexp"
	"strings"
)

var (
	nonLetterRe = regexp.MustCompile(`[^a-zA-Z]`)
	protocolRe  = regexp.MustCompile(`^https?://`)
	formatRe    = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

// cleanName strips a name down to lower-case letters.
func cleanName(name string) string {
	return strings.ToLower(nonLetterRe.ReplaceAllString(strings.TrimSpace(name), ""))
}

// cleanDomain strips protocol, www prefix and any path from a domain.
func cleanDomain(domain string) string {
	domain = protocolRe.ReplaceAllString(domain, "")
	domain = strings.TrimPrefix(domain, "www.")
	if i := strings.Index(domain, "/"); i >= 0 {
		domain = domain[:i]
	}
	return strings.ToLower(domain)
}

// ValidFormat reports whether an address passes the syntax check.
func ValidFormat(address string) bool {
	return formatRe.MatchString(address)
}

// DomainFromWebsite extracts the email domain from a website URL,
// dropping mail-ish subdomains.
func DomainFromWebsite(website string) string {
	if website == "" {
		return ""
	}
	domain := cleanDomain(website)
	parts := strings.Split(domain, ".")
	if len(parts) >= 3 {
		switch parts[0] {
		case "www", "mail", "email":
			domain = strings.Join(parts[1:], ".")
		}
	}
	return domain
}
