package ruleset

import "strings"

// EncodeText renders rule lines as a newline-delimited text artifact.
// Lines are emitted in the order given; callers pass the already sorted
// and deduplicated pipeline output.
func EncodeText(lines []string) []byte {
	if len(lines) == 0 {
		return []byte{}
	}
	return []byte(strings.Join(lines, "\n") + "\n")
}
