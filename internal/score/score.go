// Package score computes the 0-100 outreach value of a contact. Scoring
// is a pure function of the contact's fields: identical inputs always
// produce the same score.
package score

import (
	_ "embed"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/sells-group/prospect-cli/internal/model"
)

//go:embed weights.yaml
var weightsYAML []byte

// SeniorityWeights holds per-tier bonuses.
type SeniorityWeights struct {
	CLevel   int `yaml:"c_level"`
	VP       int `yaml:"vp"`
	Director int `yaml:"director"`
	Manager  int `yaml:"manager"`
}

// ConfidenceWeights holds the synthesized-email confidence bonuses.
type ConfidenceWeights struct {
	HighThreshold int `yaml:"high_threshold"`
	HighBonus     int `yaml:"high_bonus"`
	LowThreshold  int `yaml:"low_threshold"`
	LowBonus      int `yaml:"low_bonus"`
}

// Weights is the full scoring weight table.
type Weights struct {
	Email           int               `yaml:"email"`
	Phone           int               `yaml:"phone"`
	LinkedIn        int               `yaml:"linkedin"`
	Seniority       SeniorityWeights  `yaml:"seniority"`
	ExecutiveTitle  int               `yaml:"executive_title"`
	EmailConfidence ConfidenceWeights `yaml:"email_confidence"`
}

// DefaultWeights returns the embedded weight table.
func DefaultWeights() Weights {
	var w Weights
	if err := yaml.Unmarshal(weightsYAML, &w); err != nil {
		panic("score: embedded weights.yaml invalid: " + err.Error())
	}
	return w
}

var executiveKeywords = []string{"ceo", "founder", "president"}

// Scorer scores contacts against a weight table.
type Scorer struct {
	weights Weights
}

// NewScorer creates a Scorer with the given weights.
func NewScorer(w Weights) *Scorer {
	return &Scorer{weights: w}
}

// NewDefaultScorer creates a Scorer with the embedded weight table.
func NewDefaultScorer() *Scorer {
	return NewScorer(DefaultWeights())
}

// Score computes the lead score for a contact, capped at 100.
func (s *Scorer) Score(c model.ContactCandidate) int {
	w := s.weights
	total := 0

	if c.Email != "" {
		total += w.Email
	}
	if c.Phone != "" {
		total += w.Phone
	}
	if c.LinkedInURL != "" {
		total += w.LinkedIn
	}

	switch c.Seniority {
	case model.SeniorityCLevel:
		total += w.Seniority.CLevel
	case model.SeniorityVP:
		total += w.Seniority.VP
	case model.SeniorityDirector:
		total += w.Seniority.Director
	case model.SeniorityManager:
		total += w.Seniority.Manager
	}

	title := strings.ToLower(c.JobTitle)
	for _, kw := range executiveKeywords {
		if strings.Contains(title, kw) {
			total += w.ExecutiveTitle
			break
		}
	}

	switch {
	case c.EmailConfidence > w.EmailConfidence.HighThreshold:
		total += w.EmailConfidence.HighBonus
	case c.EmailConfidence > w.EmailConfidence.LowThreshold:
		total += w.EmailConfidence.LowBonus
	}

	if total > 100 {
		total = 100
	}
	return total
}
