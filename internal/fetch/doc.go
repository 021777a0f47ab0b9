// Package fetch downloads remote URL sources into the downloads cache.
//
// Cached files carry an md5 sidecar so unchanged downloads skip the
// write and keep file modification times stable.
package fetch
