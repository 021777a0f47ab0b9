package rules

import (
	"regexp"
	"strings"
)

// A label is 1-63 characters of [a-zA-Z0-9-] and may not start or end
// with a hyphen; a domain is one or more dot-separated labels.
var rxDomain = regexp.MustCompile(`^[a-zA-Z0-9]([a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(\.[a-zA-Z0-9]([a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$`)

// IsValidDomain reports whether s is syntactically a valid domain:
// 1-255 characters total, dot-separated labels of 1-63 alphanumeric
// or hyphen characters with no leading or trailing hyphen per label.
func IsValidDomain(s string) bool {
	if s == "" || len(s) > 255 {
		return false
	}
	return rxDomain.MatchString(s)
}

// IsFQDN reports whether s is a fully qualified domain name: a valid
// domain of 3-255 characters containing at least one dot. Bare
// single-label values (e.g. "localhost") are valid domains but not FQDNs.
func IsFQDN(s string) bool {
	if len(s) < 3 || !strings.Contains(s, ".") {
		return false
	}
	return IsValidDomain(s)
}
