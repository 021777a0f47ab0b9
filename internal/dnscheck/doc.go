// Package dnscheck audits built lists for dead domains by resolving
// rule values against configured DNS upstreams.
package dnscheck
