// Package rules implements the canonical rule model and the set algebra
// of the build pipeline.
//
// A Rule pairs one of four matching types (Suffix, Full, Regex, Keyword)
// with its value; the package provides case-insensitive dedup, sorted-set
// difference, type reservation, domain-syntax validation and the final
// classification of rules into the typed buckets a rule-set document is
// emitted from.
package rules
