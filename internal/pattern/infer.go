package pattern

import (
	"strings"

	"github.com/sells-group/prospect-cli/internal/model"
)

// classify buckets a single local part into one of the supported shapes.
// Shapes outside the closed set (generic mailboxes, digits, three-part
// locals) return "".
func classify(localPart string) model.DomainPattern {
	if strings.Contains(localPart, ".") {
		parts := strings.Split(localPart, ".")
		if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
			return ""
		}
		switch {
		case len(parts[0]) > 1 && len(parts[1]) > 1:
			return model.PatternFirstDotLast
		case len(parts[0]) == 1:
			return model.PatternFirstInitialDotLast
		case len(parts[1]) == 1:
			return model.PatternFirstDotLastInitial
		}
		return ""
	}
	if len(localPart) > 3 {
		return model.PatternFirstLast
	}
	return ""
}

// Infer inspects known addresses for a domain, majority-votes their shapes
// and records the winner into the store. Returns the winning pattern, or
// "" when no address matched a known shape. The result is a heuristic:
// any prior entry for the domain is overwritten.
func (s *Store) Infer(knownEmails []string, domain string) model.DomainPattern {
	votes := make(map[model.DomainPattern]int)
	for _, email := range knownEmails {
		at := strings.Index(email, "@")
		if at <= 0 {
			continue
		}
		if shape := classify(email[:at]); shape != "" {
			votes[shape]++
		}
	}

	var winner model.DomainPattern
	var best int
	for shape, n := range votes {
		if n > best {
			winner, best = shape, n
		}
	}
	if winner != "" {
		s.Put(domain, winner)
	}
	return winner
}
