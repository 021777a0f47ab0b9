// Package publish copies built artifacts into a distribution
// directory, renaming them through a configurable template.
package publish
