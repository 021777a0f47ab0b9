package rules

import (
	"sort"
	"strings"
)

// sortFolded returns a sorted copy of lines ordered case-insensitively,
// with a byte-wise tie break so equal-fold variants order deterministically.
func sortFolded(lines []string) []string {
	out := make([]string, len(lines))
	copy(out, lines)
	sort.Slice(out, func(i, j int) bool {
		li, lj := strings.ToLower(out[i]), strings.ToLower(out[j])
		if li != lj {
			return li < lj
		}
		return out[i] < out[j]
	})
	return out
}

// Dedup drops blank lines, sorts the rest case-insensitively and keeps
// exactly one representative per case-insensitive equivalence class
// (the first one in sorted order). The input slice is not modified.
func Dedup(lines []string) []string {
	nonBlank := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		nonBlank = append(nonBlank, line)
	}

	sorted := sortFolded(nonBlank)

	result := make([]string, 0, len(sorted))
	prev := ""
	for i, line := range sorted {
		key := strings.ToLower(line)
		if i > 0 && key == prev {
			continue
		}
		result = append(result, line)
		prev = key
	}
	return result
}

// Difference returns every line of a whose case-insensitive value does
// not occur in b, sorted case-insensitively. Both inputs are sorted
// internally and the scan is a linear merge over the two sorted slices.
func Difference(a, b []string) []string {
	as := sortFolded(a)
	bs := sortFolded(b)

	result := make([]string, 0, len(as))
	j := 0
	for _, line := range as {
		key := strings.ToLower(line)
		for j < len(bs) && strings.ToLower(bs[j]) < key {
			j++
		}
		if j < len(bs) && strings.ToLower(bs[j]) == key {
			continue
		}
		result = append(result, line)
	}
	return result
}

// Reserve keeps only rules whose type is in keep. With no explicit types
// it keeps Full, Regex and Keyword rules, the ones that must be shielded
// from domain-syntax validation.
func Reserve(rs []Rule, keep ...RuleType) []Rule {
	if len(keep) == 0 {
		keep = []RuleType{Full, Regex, Keyword}
	}

	keepSet := make(map[RuleType]bool, len(keep))
	for _, t := range keep {
		keepSet[t] = true
	}

	result := make([]Rule, 0, len(rs))
	for _, r := range rs {
		if keepSet[r.Type] {
			result = append(result, r)
		}
	}
	return result
}
