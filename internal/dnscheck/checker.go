package dnscheck

import (
	"context"
	"fmt"
	"net"
	"strings"
	"sync"
	"time"

	"github.com/miekg/dns"

	"github.com/geoset/geoset/internal/config"
	"github.com/geoset/geoset/internal/errors"
	"github.com/geoset/geoset/internal/log"
)

const (
	defaultDNSPort = "53"

	// Bounded fan-out for resolver queries within one list.
	checkConcurrency = 8
)

// Result is the audit outcome for one domain.
type Result struct {
	Domain string
	Alive  bool
	Rcode  string
	Err    error
}

// Checker resolves domain rule values against the configured upstreams
// to spot dead entries in built lists.
type Checker struct {
	upstreams []string
	client    *dns.Client
	sample    int
}

// New creates a Checker from the check config section, applying
// defaults when the section is absent.
func New(cfg *config.CheckConfig) (*Checker, error) {
	upstreamURLs := []string{"udp://1.1.1.1:53"}
	timeout := 3000 * time.Millisecond
	sample := 0

	if cfg != nil {
		if len(cfg.Upstreams) > 0 {
			upstreamURLs = cfg.Upstreams
		}
		if cfg.TimeoutMS > 0 {
			timeout = time.Duration(cfg.TimeoutMS) * time.Millisecond
		}
		sample = cfg.SampleSize
	}

	upstreams := make([]string, 0, len(upstreamURLs))
	for _, u := range upstreamURLs {
		addr, err := parseUpstream(u)
		if err != nil {
			return nil, err
		}
		upstreams = append(upstreams, addr)
	}

	return &Checker{
		upstreams: upstreams,
		client: &dns.Client{
			Net:     "udp",
			Timeout: timeout,
		},
		sample: sample,
	}, nil
}

// parseUpstream converts an upstream URL of the form udp://host:port
// into a dialable address. The port defaults to 53.
func parseUpstream(upstream string) (string, error) {
	addr := strings.TrimPrefix(upstream, "udp://")
	if addr == "" {
		return "", errors.NewValidationError(fmt.Sprintf("invalid upstream URL %q", upstream), nil)
	}

	if !containsPort(addr) {
		addr = net.JoinHostPort(addr, defaultDNSPort)
	}
	if _, _, err := net.SplitHostPort(addr); err != nil {
		return "", errors.NewValidationError(fmt.Sprintf("invalid upstream URL %q", upstream), err)
	}
	return addr, nil
}

// containsPort checks if the address contains a port number.
func containsPort(address string) bool {
	// For IPv6 addresses like [::1]:53, check after the closing bracket.
	if idx := strings.LastIndexByte(address, ']'); idx != -1 {
		return len(address) > idx+1 && address[idx+1] == ':'
	}
	return strings.LastIndexByte(address, ':') != -1
}

// CheckDomain queries the upstreams in order until one answers. A
// domain counts as alive when the response code is NOERROR; NXDOMAIN
// and other failure codes mark it dead.
func (c *Checker) CheckDomain(ctx context.Context, domain string) Result {
	req := new(dns.Msg)
	req.SetQuestion(dns.Fqdn(domain), dns.TypeA)
	req.RecursionDesired = true

	result := Result{Domain: domain}
	for _, upstream := range c.upstreams {
		resp, _, err := c.client.ExchangeContext(ctx, req, upstream)
		if err != nil {
			log.Debugf("Upstream %s failed for %s: %v", upstream, domain, err)
			result.Err = err
			continue
		}

		result.Err = nil
		result.Rcode = dns.RcodeToString[resp.Rcode]
		result.Alive = resp.Rcode == dns.RcodeSuccess
		return result
	}
	return result
}

// CheckList audits the given domains with bounded concurrency. When a
// sample size is configured, only the first values are checked.
func (c *Checker) CheckList(ctx context.Context, domains []string) []Result {
	if c.sample > 0 && len(domains) > c.sample {
		domains = domains[:c.sample]
	}

	results := make([]Result, len(domains))
	sem := make(chan struct{}, checkConcurrency)
	var wg sync.WaitGroup

	for i, domain := range domains {
		wg.Add(1)
		go func(i int, domain string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			results[i] = c.CheckDomain(ctx, domain)
		}(i, domain)
	}
	wg.Wait()

	return results
}
