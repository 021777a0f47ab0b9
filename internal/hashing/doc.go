// Package hashing provides MD5 checksum helpers for change detection.
//
// Downloaded sources and emitted artifacts carry a ".md5" sidecar file;
// comparing the checksum of fresh content against the sidecar lets the
// download and compile steps skip work when nothing changed.
package hashing
