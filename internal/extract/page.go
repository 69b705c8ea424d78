package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/sells-group/prospect-cli/internal/model"
)

var titleCaser = cases.Title(language.English)

// parsePage extracts raw contact signals from one fetched page: business
// emails with any name/title/phone found in the surrounding markup, plus
// LinkedIn profile links with a display name.
func parsePage(doc *goquery.Document, source string) []model.ContactCandidate {
	var contacts []model.ContactCandidate

	pageText := doc.Text()
	for _, address := range emailRe.FindAllString(pageText, -1) {
		if !isBusinessEmail(address) {
			continue
		}

		contact := model.ContactCandidate{
			Email:  strings.ToLower(address),
			Source: source,
		}

		nearby := nearestText(doc, address)
		if m := nameRe.FindString(nearby); m != "" {
			contact.SplitName(m)
		}
		if title := findJobTitle(nearby); title != "" {
			contact.JobTitle = title
		}
		if phone := phoneRe.FindString(nearby); phone != "" {
			contact.Phone = strings.TrimSpace(phone)
		}

		contacts = append(contacts, contact)
	}

	doc.Find(`a[href*="linkedin.com/in/"]`).Each(func(_ int, sel *goquery.Selection) {
		href, ok := sel.Attr("href")
		if !ok {
			return
		}
		name := strings.TrimSpace(sel.Text())
		if name == "" {
			name = nameFromSlug(href)
		}
		if name == "" {
			return
		}
		contact := model.ContactCandidate{
			LinkedInURL: href,
			Source:      source,
		}
		contact.SplitName(name)
		contacts = append(contacts, contact)
	})

	return contacts
}

// nearestText returns the text of the smallest element containing the
// needle, approximating "the text surrounding this email".
func nearestText(doc *goquery.Document, needle string) string {
	best := ""
	doc.Find("body *").Each(func(_ int, sel *goquery.Selection) {
		t := sel.Text()
		if !strings.Contains(t, needle) {
			return
		}
		if best == "" || len(t) < len(best) {
			best = t
		}
	})
	return best
}

// findJobTitle scans text for the first match from the title vocabulary.
func findJobTitle(text string) string {
	for _, re := range titleRes {
		if m := re.FindString(text); m != "" {
			return m
		}
	}
	return ""
}

// nameFromSlug derives a display name from a LinkedIn profile URL path,
// e.g. /in/john-smith-123456 -> "John Smith".
func nameFromSlug(href string) string {
	m := slugRe.FindStringSubmatch(href)
	if m == nil {
		return ""
	}
	parts := strings.Split(m[1], "-")
	if len(parts) < 2 {
		return ""
	}
	return titleCaser.String(parts[0]) + " " + titleCaser.String(parts[1])
}
