package model

// VerifyMethod identifies which verification stage produced a candidate's
// confidence value.
type VerifyMethod string

const (
	// MethodFormat means the address failed the syntax check.
	MethodFormat VerifyMethod = "format"
	// MethodMX means the domain advertises no mail-exchange records.
	MethodMX VerifyMethod = "mx"
	// MethodCombined means syntax, MX, probe and pattern analysis all ran.
	MethodCombined VerifyMethod = "combined"
)

// EmailCandidate is a synthesized address with its verification outcome.
type EmailCandidate struct {
	Address    string       `json:"email"`
	Confidence int          `json:"confidence"`
	Valid      bool         `json:"is_valid"`
	Method     VerifyMethod `json:"method"`
	Template   string       `json:"template,omitempty"`
}

// DomainPattern is an inferred local-part shape for a company's addresses.
// Entries are advisory hints, never treated as guaranteed-correct.
type DomainPattern string

const (
	PatternFirstDotLast        DomainPattern = "first.last"
	PatternFirstInitialDotLast DomainPattern = "firstinitial.last"
	PatternFirstDotLastInitial DomainPattern = "first.lastinitial"
	PatternFirstLast           DomainPattern = "firstlast"
)
