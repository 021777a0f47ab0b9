// Package log provides a minimal leveled logger with colored prefixes.
//
// Debug output is gated behind a verbose flag, errors always go to
// stderr, and the remaining levels go to stdout unless forced over to
// stderr for commands that print artifacts on stdout.
package log
