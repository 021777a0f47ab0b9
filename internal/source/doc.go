// Package source turns heterogeneous domain-list sources into a uniform
// rule-line stream: recursive include expansion over community data
// files, attribute-based filtering, canonicalization of each line into
// an explicit type:value rule, and converters for foreign file formats
// (dnsmasq snippets, ad-block filters, hosts files).
package source
