// internal/directory/directory.go
//
// Static host → tenant directory.
//
// Context
// -------
// The subdomain convention covers wildcard provisioning, but operators
// also need exact host overrides: the bare product domain maps to the
// primary tenant, and a vanity domain can be pinned to any tenant without
// touching DNS conventions.  Entries are loaded once at process start
// from configuration and never mutate afterwards, so lookups are plain
// map reads with no locking.
//
// Resolution order used by ResolveTenant:
//
//   1. exact directory match on the normalised host,
//   2. subdomain extraction (hostparse),
//   3. default tenant.
//
// The order is load-bearing: exact pins win over pattern extraction, and
// unrecognised hosts degrade to the primary portfolio instead of a 404.
package directory

import (
	"strings"

	"github.com/jatinPrakash2720/portfolio-hub/internal/hostparse"
)

// Entry maps one exact host to a tenant.
type Entry struct {
	Host        string `koanf:"host"`
	TenantID    string `koanf:"tenant_id"`
	DisplayName string `koanf:"display_name"`
}

// Directory is an immutable host → Entry index plus a default tenant.
type Directory struct {
	rules    hostparse.Rules
	byHost   map[string]Entry
	byTenant map[string]Entry
	fallback Entry
}

// New builds a Directory from static entries.  Hosts are normalised
// (lowercased, port stripped) at build time so Lookup can stay a single
// map read.  fallback is returned by Default and by ResolveTenant when
// nothing else matches.
func New(rules hostparse.Rules, entries []Entry, fallback Entry) *Directory {
	idx := make(map[string]Entry, len(entries))
	byID := make(map[string]Entry, len(entries))
	for _, e := range entries {
		idx[normalize(e.Host)] = e
		if _, seen := byID[e.TenantID]; !seen {
			byID[e.TenantID] = e
		}
	}
	if _, seen := byID[fallback.TenantID]; !seen {
		byID[fallback.TenantID] = fallback
	}
	return &Directory{rules: rules, byHost: idx, byTenant: byID, fallback: fallback}
}

// Lookup returns the exact-match entry for host, if any.
func (d *Directory) Lookup(host string) (Entry, bool) {
	e, ok := d.byHost[normalize(host)]
	return e, ok
}

// Default returns the fallback tenant served for unrecognised hosts.
func (d *Directory) Default() Entry {
	return d.fallback
}

// EntryForTenant returns the curated entry for a tenant identifier, if
// one was registered.  Subdomain-provisioned tenants have none.
func (d *Directory) EntryForTenant(tenantID string) (Entry, bool) {
	e, ok := d.byTenant[tenantID]
	return e, ok
}

// ResolveTenant applies the full resolution order and always yields a
// tenant.  Subdomain-derived tenants get the identifier as display name;
// a directory entry, when present, carries the curated one.
func (d *Directory) ResolveTenant(host string) Entry {
	if e, ok := d.Lookup(host); ok {
		return e
	}
	if id, ok := d.rules.Resolve(host); ok {
		return Entry{Host: normalize(host), TenantID: id, DisplayName: id}
	}
	return d.fallback
}

func normalize(host string) string {
	return strings.ToLower(hostparse.StripPort(host))
}
