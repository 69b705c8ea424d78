package model

import "strings"

// Seniority is the derived seniority tier of a contact.
type Seniority string

const (
	SeniorityCLevel     Seniority = "C-Level"
	SeniorityVP         Seniority = "VP"
	SeniorityDirector   Seniority = "Director"
	SeniorityManager    Seniority = "Manager"
	SeniorityIndividual Seniority = "Individual Contributor"
)

// ContactCandidate is a person extracted from a company's web presence or
// synthesized as a placeholder. Email may be absent until enrichment runs.
type ContactCandidate struct {
	FirstName       string    `json:"first_name"`
	LastName        string    `json:"last_name"`
	Email           string    `json:"email,omitempty"`
	EmailConfidence int       `json:"email_confidence,omitempty"`
	Phone           string    `json:"phone,omitempty"`
	JobTitle        string    `json:"job_title,omitempty"`
	Department      string    `json:"department,omitempty"`
	Seniority       Seniority `json:"seniority_level,omitempty"`
	LinkedInURL     string    `json:"linkedin_url,omitempty"`
	CompanyName     string    `json:"company_name,omitempty"`
	CompanyDomain   string    `json:"company_domain,omitempty"`
	Source          string    `json:"source"`
	LeadScore       int       `json:"lead_score"`
}

// FullName joins first and last name.
func (c ContactCandidate) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

// Key returns the dedup identity for the contact: the email when present,
// otherwise name plus owning company.
func (c ContactCandidate) Key() string {
	if c.Email != "" {
		return strings.ToLower(c.Email)
	}
	return strings.ToLower(c.FirstName) + "|" + strings.ToLower(c.LastName) + "|" + NormalizeName(c.CompanyName)
}

// SplitName fills FirstName/LastName from a display name when they are not
// already set.
func (c *ContactCandidate) SplitName(full string) {
	if c.FirstName != "" || full == "" {
		return
	}
	parts := strings.SplitN(strings.TrimSpace(full), " ", 2)
	c.FirstName = parts[0]
	if len(parts) > 1 {
		c.LastName = parts[1]
	}
}

func titleContainsAny(title string, words ...string) bool {
	lower := strings.ToLower(title)
	for _, w := range words {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}

// DeriveDepartment maps a job title onto a coarse department label.
func DeriveDepartment(jobTitle string) string {
	switch {
	case jobTitle == "":
		return ""
	case titleContainsAny(jobTitle, "ceo", "president", "founder"):
		return "Executive"
	case titleContainsAny(jobTitle, "cto", "engineering", "technical", "developer"):
		return "Engineering"
	case titleContainsAny(jobTitle, "sales", "business development"):
		return "Sales"
	case titleContainsAny(jobTitle, "marketing", "growth", "brand"):
		return "Marketing"
	case titleContainsAny(jobTitle, "finance", "accounting", "cfo"):
		return "Finance"
	default:
		return "Other"
	}
}

// DeriveSeniority maps a job title onto a seniority tier.
func DeriveSeniority(jobTitle string) Seniority {
	switch {
	case titleContainsAny(jobTitle, "ceo", "cto", "cfo", "coo", "chief"):
		return SeniorityCLevel
	case titleContainsAny(jobTitle, "vp", "vice president"):
		return SeniorityVP
	case titleContainsAny(jobTitle, "director", "head"):
		return SeniorityDirector
	case titleContainsAny(jobTitle, "manager", "lead"):
		return SeniorityManager
	default:
		return SeniorityIndividual
	}
}
