package build

import "time"

// Artifact types recorded in list outcomes.
const (
	ArtifactText    = "text"
	ArtifactRuleset = "ruleset"
	ArtifactClash   = "clash"
	ArtifactTLD     = "tld"
	ArtifactSRS     = "srs"
)

// Artifact is one emitted file of a list pipeline.
type Artifact struct {
	Type    string
	Path    string
	Changed bool
}

// ListCounts summarizes how many values each classified bucket received.
type ListCounts struct {
	Suffix  int
	Full    int
	Regex   int
	Keyword int
	TLD     int
}

// Total returns the number of rules across the four primary buckets.
// The TLD side list is not part of the primary rule-set.
func (c ListCounts) Total() int {
	return c.Suffix + c.Full + c.Regex + c.Keyword
}

// ListOutcome is the collected result of one list pipeline. Warnings
// hold fail-soft diagnostics (missing inputs, include cycles); Err is
// reserved for failures that prevented the list from being emitted.
type ListOutcome struct {
	List      string
	Counts    ListCounts
	Warnings  []string
	Artifacts []Artifact
	Changed   bool
	Err       error
}

// Summary aggregates the outcomes of one build run.
type Summary struct {
	Outcomes   []*ListOutcome
	Duration   time.Duration
	CompileErr error
}

// Failed returns how many list pipelines ended with an error.
func (s *Summary) Failed() int {
	n := 0
	for _, outcome := range s.Outcomes {
		if outcome.Err != nil {
			n++
		}
	}
	return n
}

// WarningCount returns the number of warnings across all outcomes.
func (s *Summary) WarningCount() int {
	n := 0
	for _, outcome := range s.Outcomes {
		n += len(outcome.Warnings)
	}
	return n
}
