package email

import (
	"github.com/sells-group/prospect-cli/internal/model"
)

// template names a local-part shape and builds it from cleaned name parts.
type template struct {
	name  string
	build func(first, last string) string
}

func initial(s string) string {
	if s == "" {
		return ""
	}
	return s[:1]
}

// commonTemplates is the fixed synthesis order tried for every domain.
var commonTemplates = []template{
	{"first.last", func(f, l string) string { return f + "." + l }},
	{"firstlast", func(f, l string) string { return f + l }},
	{"first", func(f, _ string) string { return f }},
	{"first.lastinitial", func(f, l string) string { return f + "." + initial(l) }},
	{"firstinitial.last", func(f, l string) string { return initial(f) + "." + l }},
	{"firstinitiallast", func(f, l string) string { return initial(f) + l }},
	{"firstlastinitial", func(f, l string) string { return f + initial(l) }},
	{"last.first", func(f, l string) string { return l + "." + f }},
	{"lastfirst", func(f, l string) string { return l + f }},
	{"last", func(_, l string) string { return l }},
	{"firstinitiallastinitial", func(f, l string) string { return initial(f) + initial(l) }},
}

// patternTemplates maps the closed set of inferred domain shapes to their
// builders so a cached pattern can be instantiated ahead of the fixed list.
var patternTemplates = map[model.DomainPattern]template{
	model.PatternFirstDotLast:        commonTemplates[0],
	model.PatternFirstLast:           commonTemplates[1],
	model.PatternFirstDotLastInitial: commonTemplates[3],
	model.PatternFirstInitialDotLast: commonTemplates[4],
}

// synthesized pairs a candidate address with the template that produced it.
type synthesized struct {
	address  string
	template string
}

// synthesize generates candidate addresses for a person at a domain. A
// known domain pattern is instantiated first, then the fixed template
// order; syntactically invalid results are skipped and duplicates removed
// preserving order. The result is capped at maxAttempts when positive.
func (e *Engine) synthesize(first, last, domain string, maxAttempts int) []synthesized {
	f, l, d := cleanName(first), cleanName(last), cleanDomain(domain)
	if f == "" || l == "" || d == "" {
		return nil
	}

	var out []synthesized
	seen := make(map[string]struct{})
	add := func(t template) {
		address := t.build(f, l) + "@" + d
		if !ValidFormat(address) {
			return
		}
		if _, dup := seen[address]; dup {
			return
		}
		seen[address] = struct{}{}
		out = append(out, synthesized{address: address, template: t.name})
	}

	if known, ok := e.store.Get(d); ok {
		if t, ok := patternTemplates[known]; ok {
			add(t)
		}
	}
	for _, t := range commonTemplates {
		add(t)
	}

	if maxAttempts > 0 && len(out) > maxAttempts {
		out = out[:maxAttempts]
	}
	return out
}
