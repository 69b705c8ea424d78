package extract

import (
	"regexp"
	"strings"
)

// freeMailDomains are consumer webmail providers; addresses there are not
// business contacts and are discarded.
var freeMailDomains = map[string]struct{}{
	"gmail.com":      {},
	"yahoo.com":      {},
	"hotmail.com":    {},
	"outlook.com":    {},
	"aol.com":        {},
	"icloud.com":     {},
	"protonmail.com": {},
}

var (
	emailRe = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	nameRe  = regexp.MustCompile(`\b([A-Z][a-z]+ [A-Z][a-z]+)\b`)
	phoneRe = regexp.MustCompile(`\(?\d{3}\)?[-. ]\d{3}[-. ]\d{4}`)
	slugRe  = regexp.MustCompile(`/in/([^/?#]+)`)
)

// titleRes is the job-title vocabulary searched near each extracted email.
var titleRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(CEO|CTO|CFO|COO|VP|Vice President|President|Director|Manager|Lead|Head)\b`),
	regexp.MustCompile(`(?i)\b(Chief Executive Officer|Chief Technology Officer|Chief Financial Officer)\b`),
	regexp.MustCompile(`(?i)\b(Senior|Principal|Associate|Assistant)\s+\w+\b`),
}

// isBusinessEmail reports whether the address belongs to a company domain
// rather than a free-mail provider.
func isBusinessEmail(address string) bool {
	at := strings.LastIndex(address, "@")
	if at < 0 {
		return false
	}
	_, free := freeMailDomains[strings.ToLower(address[at+1:])]
	return !free
}
