package scrape

import (
	"net/url"
	"sort"
	"strings"
)

var _ SiteExtractor = (*Registry)(nil)

// Registry maps site domains to their extraction modules. URLs whose host has
// no registered module are handed to the fallback extractor.
//
// Register all modules before the registry is shared; lookups are then safe
// for concurrent use.
type Registry struct {
	sites    map[string]SiteExtractor
	fallback SiteExtractor
}

// NewRegistry creates a Registry. The fallback may be nil, in which case
// unregistered hosts are reported as unsupported.
func NewRegistry(fallback SiteExtractor) *Registry {
	return &Registry{
		sites:    make(map[string]SiteExtractor),
		fallback: fallback,
	}
}

// Register adds the module for a domain, replacing any previous one.
func (r *Registry) Register(domain string, ex SiteExtractor) {
	r.sites[canonicalHost(domain)] = ex
}

// Lookup returns the module registered for the URL's host.
func (r *Registry) Lookup(rawURL string) (SiteExtractor, bool) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || u.Host == "" {
		return nil, false
	}
	ex, ok := r.sites[canonicalHost(u.Hostname())]
	return ex, ok
}

// Domains returns the registered domains in sorted order.
func (r *Registry) Domains() []string {
	domains := make([]string, 0, len(r.sites))
	for d := range r.sites {
		domains = append(domains, d)
	}
	sort.Strings(domains)
	return domains
}

// Extract routes the page to the module registered for its host.
func (r *Registry) Extract(html string, rawURL string) Result {
	if ex, ok := r.Lookup(rawURL); ok {
		return ex.Extract(html, rawURL)
	}
	if r.fallback != nil {
		return r.fallback.Extract(html, rawURL)
	}
	return Unsupported()
}

// canonicalHost lower-cases a host and drops a leading "www.".
func canonicalHost(host string) string {
	host = strings.ToLower(strings.TrimSpace(host))
	return strings.TrimPrefix(host, "www.")
}
