package source

import (
	"strings"
	"unicode"

	"github.com/geoset/geoset/internal/rules"
)

// Normalize canonicalizes a raw rule line into a Rule. The value is the
// part of the line before the first '@' or whitespace character, so any
// attribute annotations are stripped. A leading "domain:", "full:",
// "regexp:" or "keyword:" prefix selects the type; lines without a
// recognized prefix default to Suffix. Lines that normalize to an empty
// value report ok=false. Normalizing an already-canonical type:value
// line reproduces the same Rule.
func Normalize(line string) (rules.Rule, bool) {
	value := strings.TrimSpace(line)
	if i := strings.IndexFunc(value, func(r rune) bool {
		return r == '@' || unicode.IsSpace(r)
	}); i >= 0 {
		value = value[:i]
	}

	typ := rules.Suffix
	if i := strings.Index(value, ":"); i >= 0 {
		if t, ok := rules.ParseType(value[:i]); ok {
			typ = t
			value = value[i+1:]
		}
	}

	if value == "" {
		return rules.Rule{}, false
	}
	return rules.Rule{Type: typ, Value: value}, true
}

// NormalizeAll applies Normalize to every line and renders the surviving
// rules in their canonical type:value form.
func NormalizeAll(lines []string) []string {
	result := make([]string, 0, len(lines))
	for _, line := range lines {
		if rule, ok := Normalize(line); ok {
			result = append(result, rule.String())
		}
	}
	return result
}
