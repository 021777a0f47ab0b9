package source

import (
	"bufio"
	"fmt"
	"io"
	"net"
	"strings"

	"github.com/geoset/geoset/internal/errors"
)

// Source file formats accepted for custom list files.
const (
	FormatDomains = "domains"
	FormatDnsmasq = "dnsmasq"
	FormatAdblock = "adblock"
	FormatHosts   = "hosts"
)

// Formats lists every supported source file format.
var Formats = []string{FormatDomains, FormatDnsmasq, FormatAdblock, FormatHosts}

// IsValidFormat reports whether format names a supported source format.
// The empty string is accepted and treated as FormatDomains.
func IsValidFormat(format string) bool {
	if format == "" {
		return true
	}
	for _, f := range Formats {
		if f == format {
			return true
		}
	}
	return false
}

// ParseFormat converts the content of r in the given source format into
// plain rule lines suitable for normalization. Domain lines extracted
// from foreign formats carry no type prefix and therefore classify as
// Suffix rules downstream.
func ParseFormat(format string, r io.Reader) ([]string, error) {
	switch format {
	case "", FormatDomains:
		return parseDomains(r)
	case FormatDnsmasq:
		return parseDnsmasq(r)
	case FormatAdblock:
		return parseAdblock(r)
	case FormatHosts:
		return parseHosts(r)
	default:
		return nil, errors.NewListError(fmt.Sprintf("unknown source format %q", format), nil)
	}
}

// parseDomains passes through one rule line per input line. Lines keep
// their type prefixes and attribute annotations.
func parseDomains(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	return lines, scanner.Err()
}

// parseDnsmasq extracts domains from dnsmasq config directives of the
// form server=/example.com/1.1.1.1 (also address=, ipset= and nftset=).
// A single directive may carry several domains between slashes.
func parseDnsmasq(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		var rest string
		switch {
		case strings.HasPrefix(line, "server=/"):
			rest = strings.TrimPrefix(line, "server=/")
		case strings.HasPrefix(line, "address=/"):
			rest = strings.TrimPrefix(line, "address=/")
		case strings.HasPrefix(line, "ipset=/"):
			rest = strings.TrimPrefix(line, "ipset=/")
		case strings.HasPrefix(line, "nftset=/"):
			rest = strings.TrimPrefix(line, "nftset=/")
		default:
			continue
		}

		parts := strings.Split(rest, "/")
		if len(parts) < 2 {
			continue
		}
		// The final segment is the upstream address or set name.
		for _, domain := range parts[:len(parts)-1] {
			if domain != "" && domain != "#" {
				lines = append(lines, domain)
			}
		}
	}
	return lines, scanner.Err()
}

// parseAdblock extracts domains from ad-block filter lines. Anchored
// rules like ||example.com^ yield their domain; exception rules (@@),
// element-hiding rules and comments are skipped, as are wildcard and
// path-scoped patterns that do not map to a whole domain.
func parseAdblock(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "!") || strings.HasPrefix(line, "[") {
			continue
		}
		if strings.HasPrefix(line, "@@") || strings.Contains(line, "##") || strings.Contains(line, "#?#") {
			continue
		}

		if strings.HasPrefix(line, "||") {
			domain := strings.TrimPrefix(line, "||")
			if i := strings.IndexAny(domain, "^/$"); i >= 0 {
				domain = domain[:i]
			}
			if domain != "" && !strings.Contains(domain, "*") {
				lines = append(lines, domain)
			}
			continue
		}

		// Hybrid lists mix bare domain lines into filter files.
		if !strings.ContainsAny(line, "|@#/*^$") {
			lines = append(lines, line)
		}
	}
	return lines, scanner.Err()
}

// parseHosts extracts hostnames from hosts-file lines such as
// "127.0.0.1 example.com". One line may map several hostnames to the
// same address; all of them are collected.
func parseHosts(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if i := strings.Index(line, "#"); i >= 0 {
			line = strings.TrimSpace(line[:i])
		}
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 2 || net.ParseIP(fields[0]) == nil {
			continue
		}
		lines = append(lines, fields[1:]...)
	}
	return lines, scanner.Err()
}
