// Package build orchestrates the list pipelines: collecting raw rule
// lines from community sources, local files, cached downloads and
// inline entries, normalizing and classifying them, and emitting the
// per-list artifacts.
//
// Lists are independent and run in parallel over a bounded worker
// pool. A failure in one list never stops its siblings; only a missing
// community data directory aborts the run before any work starts.
package build
