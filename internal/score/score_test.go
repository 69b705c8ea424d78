package score

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/prospect-cli/internal/model"
)

func TestDefaultWeights(t *testing.T) {
	w := DefaultWeights()
	require.Equal(t, 30, w.Email)
	require.Equal(t, 25, w.Seniority.CLevel)
	require.Equal(t, 70, w.EmailConfidence.HighThreshold)
}

func TestScore(t *testing.T) {
	s := NewDefaultScorer()

	tests := []struct {
		name     string
		contact  model.ContactCandidate
		expected int
	}{
		{
			name:     "empty contact",
			contact:  model.ContactCandidate{},
			expected: 0,
		},
		{
			name:     "email only",
			contact:  model.ContactCandidate{Email: "jane@acme.com"},
			expected: 30,
		},
		{
			name: "email with high confidence",
			contact: model.ContactCandidate{
				Email:           "jane@acme.com",
				EmailConfidence: 75,
			},
			expected: 40,
		},
		{
			name: "email with low confidence",
			contact: model.ContactCandidate{
				Email:           "jane@acme.com",
				EmailConfidence: 55,
			},
			expected: 35,
		},
		{
			name: "confidence at low threshold earns nothing",
			contact: model.ContactCandidate{
				Email:           "jane@acme.com",
				EmailConfidence: 50,
			},
			expected: 30,
		},
		{
			name: "vp with phone",
			contact: model.ContactCandidate{
				Phone:     "(555) 123-4567",
				Seniority: model.SeniorityVP,
			},
			expected: 40,
		},
		{
			name: "executive title bonus",
			contact: model.ContactCandidate{
				JobTitle:  "Founder & CEO",
				Seniority: model.SeniorityCLevel,
			},
			expected: 35,
		},
		{
			name: "fully qualified c-level caps at 100",
			contact: model.ContactCandidate{
				Email:           "jane@acme.com",
				EmailConfidence: 100,
				Phone:           "(555) 123-4567",
				LinkedInURL:     "https://linkedin.com/in/jane",
				JobTitle:        "CEO",
				Seniority:       model.SeniorityCLevel,
			},
			expected: 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, s.Score(tt.contact))
		})
	}
}

func TestScoreDeterministic(t *testing.T) {
	s := NewDefaultScorer()
	c := model.ContactCandidate{
		Email:     "jane@acme.com",
		JobTitle:  "Director of Sales",
		Seniority: model.SeniorityDirector,
	}

	first := s.Score(c)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, s.Score(c))
	}
}
