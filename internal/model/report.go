package model

// Request is the validated input for one lead-generation run.
type Request struct {
	Industry    string `json:"industry"`
	Location    string `json:"location,omitempty"`
	CompanySize string `json:"company_size,omitempty"`
	Limit       int    `json:"limit"`
	SaveToDB    bool   `json:"save_to_db"`
}

// SearchCriteria echoes the request parameters back in the report.
type SearchCriteria struct {
	Industry    string `json:"industry"`
	Location    string `json:"location"`
	CompanySize string `json:"company_size"`
	Limit       int    `json:"limit"`
	DataSource  string `json:"data_source"`
}

// Totals summarizes a run's output counts.
type Totals struct {
	Companies        int `json:"companies"`
	Contacts         int `json:"contacts"`
	GeneratedEmails  int `json:"generated_emails"`
	KnownEmails      int `json:"known_emails"`
	PlaceholderCount int `json:"placeholder_contacts"`
	CompaniesFailed  int `json:"companies_failed"`
	CompaniesSkipped int `json:"companies_skipped"`
}

// Report is the assembled output of one pipeline run. A run always yields
// a Report; partial source availability is reflected in the counts, not in
// an error.
type Report struct {
	RunID     string             `json:"run_id"`
	Companies []CompanyCandidate `json:"companies"`
	Contacts  []ContactCandidate `json:"contacts"`
	Totals    Totals             `json:"totals"`
	Criteria  SearchCriteria     `json:"search_criteria"`
	Truncated bool               `json:"truncated,omitempty"`
}
