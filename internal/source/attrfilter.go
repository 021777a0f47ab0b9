package source

import (
	"regexp"
	"strings"
)

// FilterAttrs drops every line carrying at least one of the excluded
// attribute markers. An attribute matches as "@<attr>" immediately
// followed by whitespace or end of line, so excluding "cn" does not
// drop a line tagged "@cnX". An empty exclusion set is the identity.
func FilterAttrs(lines []string, excludeAttrs []string) []string {
	if len(excludeAttrs) == 0 {
		return lines
	}

	escaped := make([]string, 0, len(excludeAttrs))
	for _, attr := range excludeAttrs {
		if attr == "" {
			continue
		}
		escaped = append(escaped, regexp.QuoteMeta(attr))
	}
	if len(escaped) == 0 {
		return lines
	}

	pattern := regexp.MustCompile(`@(?:` + strings.Join(escaped, "|") + `)(?:\s|$)`)

	result := make([]string, 0, len(lines))
	for _, line := range lines {
		if pattern.MatchString(line) {
			continue
		}
		result = append(result, line)
	}
	return result
}
