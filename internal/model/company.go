package model

import (
	"math/rand/v2"
	"strings"
)

// CompanyCandidate is a company surfaced by one of the discovery sources.
// Fields beyond Name are best-effort; each source populates what it can.
type CompanyCandidate struct {
	Name          string `json:"name"`
	Website       string `json:"website,omitempty"`
	Domain        string `json:"domain,omitempty"`
	Industry      string `json:"industry,omitempty"`
	Phone         string `json:"phone,omitempty"`
	Address       string `json:"address,omitempty"`
	Description   string `json:"description,omitempty"`
	CompanySize   string `json:"company_size,omitempty"`
	EmployeeCount int    `json:"employee_count,omitempty"`
	FoundedYear   int    `json:"founded_year,omitempty"`
	FundingStatus string `json:"funding_status,omitempty"`
	Country       string `json:"location_country,omitempty"`
	State         string `json:"location_state,omitempty"`
	City          string `json:"location_city,omitempty"`
	Source        string `json:"source"`
	ContactCount  int    `json:"contact_count"`
}

// NormalizeName lowers and collapses whitespace for identity comparison.
func NormalizeName(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}

// Key returns the dedup identity for the company: normalized name,
// strengthened with the domain when one is known.
func (c CompanyCandidate) Key() string {
	key := NormalizeName(c.Name)
	if c.Domain != "" {
		key += "|" + strings.ToLower(c.Domain)
	}
	return key
}

// SizeBuckets are the supported company-size labels, smallest first.
var SizeBuckets = []string{"1-10", "10-50", "50-100", "100-500", "500+"}

var sizeRanges = map[string][2]int{
	"1-10":    {1, 10},
	"10-50":   {10, 50},
	"50-100":  {50, 100},
	"100-500": {100, 500},
	"500+":    {500, 1000},
}

// RandomSizeBucket picks a size bucket for companies whose source supplied
// none. The RNG is injected so callers can pin results in tests.
func RandomSizeBucket(rng *rand.Rand) string {
	return SizeBuckets[rng.IntN(len(SizeBuckets))]
}

// EstimateEmployeeCount draws an employee count consistent with the size
// bucket, or a mid-range default when the bucket is unknown.
func EstimateEmployeeCount(bucket string, rng *rand.Rand) int {
	if r, ok := sizeRanges[bucket]; ok {
		return r[0] + rng.IntN(r[1]-r[0]+1)
	}
	return 10 + rng.IntN(91)
}

// FundingStages are the funding labels assigned when a source has none.
var FundingStages = []string{"Seed", "Series A", "Series B", "Bootstrapped", "Unknown"}
