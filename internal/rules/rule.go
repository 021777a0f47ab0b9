package rules

import "strings"

// RuleType represents the matching semantics of a rule.
type RuleType int

const (
	// Suffix matches the domain itself and all of its subdomains.
	Suffix RuleType = iota

	// Full matches the exact domain only.
	Full

	// Regex matches the domain against a free-form pattern.
	Regex

	// Keyword matches if the domain contains the value as a substring.
	Keyword
)

// String returns the canonical source-line prefix for the type.
func (t RuleType) String() string {
	switch t {
	case Suffix:
		return "domain"
	case Full:
		return "full"
	case Regex:
		return "regexp"
	case Keyword:
		return "keyword"
	default:
		return "unknown"
	}
}

// DocumentKey returns the rule-set document key for the type.
func (t RuleType) DocumentKey() string {
	switch t {
	case Suffix:
		return "domain_suffix"
	case Full:
		return "domain"
	case Regex:
		return "domain_regex"
	case Keyword:
		return "domain_keyword"
	default:
		return "unknown"
	}
}

// ParseType maps a source-line prefix to its rule type.
func ParseType(s string) (RuleType, bool) {
	switch s {
	case "domain":
		return Suffix, true
	case "full":
		return Full, true
	case "regexp":
		return Regex, true
	case "keyword":
		return Keyword, true
	}
	return Suffix, false
}

// Rule is a single canonicalized rule: a type and the matchable value,
// with any attribute annotations already stripped.
type Rule struct {
	Type  RuleType
	Value string
}

// String renders the canonical type:value form.
func (r Rule) String() string {
	return r.Type.String() + ":" + r.Value
}

// Equal reports whether two rules are the same under case-insensitive
// comparison of their canonical form.
func (r Rule) Equal(other Rule) bool {
	return strings.EqualFold(r.String(), other.String())
}
