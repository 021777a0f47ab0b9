// Package ruleset serializes classified rule buckets into the artifacts
// the pipeline emits: the versioned rule-set source document (JSON), a
// clash-style domain text provider (YAML) and the plain per-list text
// artifact.
package ruleset
