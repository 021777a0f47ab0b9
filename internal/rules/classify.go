package rules

import (
	"sort"
	"strings"
)

// Buckets holds classified rule values grouped by type. Each bucket is
// sorted case-insensitively and contains only values that survived
// classification.
type Buckets struct {
	Suffix  []string
	Full    []string
	Regex   []string
	Keyword []string
}

// Empty reports whether no bucket contains any value.
func (b Buckets) Empty() bool {
	return len(b.Suffix) == 0 && len(b.Full) == 0 && len(b.Regex) == 0 && len(b.Keyword) == 0
}

// Total returns the number of values across all buckets.
func (b Buckets) Total() int {
	return len(b.Suffix) + len(b.Full) + len(b.Regex) + len(b.Keyword)
}

// Classify partitions rules into typed buckets. Suffix and Full values
// are domain-syntax validated: invalid values are dropped silently, and
// values that are valid domains but not FQDNs (bare single labels) are
// routed to the returned TLD side list instead of any bucket. Regex and
// Keyword values pass through unvalidated. All buckets and the TLD list
// come back sorted.
func Classify(rs []Rule) (Buckets, []string) {
	var b Buckets
	var tlds []string

	for _, r := range rs {
		switch r.Type {
		case Suffix, Full:
			if !IsValidDomain(r.Value) {
				continue
			}
			if !IsFQDN(r.Value) {
				tlds = append(tlds, r.Value)
				continue
			}
			if r.Type == Suffix {
				b.Suffix = append(b.Suffix, r.Value)
			} else {
				b.Full = append(b.Full, r.Value)
			}
		case Regex:
			b.Regex = append(b.Regex, r.Value)
		case Keyword:
			b.Keyword = append(b.Keyword, r.Value)
		}
	}

	sortBucket(b.Suffix)
	sortBucket(b.Full)
	sortBucket(b.Regex)
	sortBucket(b.Keyword)
	sortBucket(tlds)

	return b, tlds
}

func sortBucket(values []string) {
	sort.Slice(values, func(i, j int) bool {
		li, lj := strings.ToLower(values[i]), strings.ToLower(values[j])
		if li != lj {
			return li < lj
		}
		return values[i] < values[j]
	})
}
