package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/prospect-cli/internal/model"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		local    string
		expected model.DomainPattern
	}{
		{"jane.doe", model.PatternFirstDotLast},
		{"j.doe", model.PatternFirstInitialDotLast},
		{"jane.d", model.PatternFirstDotLastInitial},
		{"janedoe", model.PatternFirstLast},
		{"jd", ""},
		{"a.b.c", ""},
		{".doe", ""},
		{"jane.", ""},
		{"hq", ""},
	}

	for _, tt := range tests {
		t.Run(tt.local, func(t *testing.T) {
			assert.Equal(t, tt.expected, classify(tt.local))
		})
	}
}

func TestInferMajorityVote(t *testing.T) {
	s := NewStore()

	winner := s.Infer([]string{
		"jane.doe@acme.com",
		"bob.smith@acme.com",
		"jsingh@acme.com",
		"not-an-email",
		"@acme.com",
	}, "acme.com")

	assert.Equal(t, model.PatternFirstDotLast, winner)

	cached, ok := s.Get("acme.com")
	require.True(t, ok)
	assert.Equal(t, model.PatternFirstDotLast, cached)
}

func TestInferNoMatch(t *testing.T) {
	s := NewStore()

	winner := s.Infer([]string{"hq@acme.com", "it@acme.com"}, "acme.com")
	assert.Empty(t, winner)

	_, ok := s.Get("acme.com")
	assert.False(t, ok)
}

func TestStoreLastWriterWins(t *testing.T) {
	s := NewStore()
	s.Put("acme.com", model.PatternFirstDotLast)
	s.Put("acme.com", model.PatternFirstLast)

	got, ok := s.Get("acme.com")
	require.True(t, ok)
	assert.Equal(t, model.PatternFirstLast, got)
	assert.Equal(t, 1, s.Len())
}

func TestStoreIgnoresEmptyDomain(t *testing.T) {
	s := NewStore()
	s.Put("", model.PatternFirstDotLast)
	assert.Zero(t, s.Len())
}

func TestSnapshotIsCopy(t *testing.T) {
	s := NewStore()
	s.Put("acme.com", model.PatternFirstDotLast)

	snap := s.Snapshot()
	snap["acme.com"] = model.PatternFirstLast

	got, _ := s.Get("acme.com")
	assert.Equal(t, model.PatternFirstDotLast, got)
}
