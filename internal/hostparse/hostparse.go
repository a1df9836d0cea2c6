// internal/hostparse/hostparse.go
//
// Host header → tenant identifier.
//
// Context
// -------
// Every portfolio is served from a subdomain of the shared product domain,
// e.g. `jatin.portfolio.jatinbuilds.com` or, in development,
// `jatin.localhost:3000`.  This package extracts the tenant identifier
// from the raw Host header.  It is pure string work: no I/O, no errors,
// total over all inputs.  Absence of a subdomain is a valid result, not a
// fault; the directory layer supplies the fallback.
//
// Notes
// -----
// • The same rules run on both the middleware path and the session
//   prefetch path, so server and session always resolve identically.
// • Oxford commas, two spaces after periods.
package hostparse

import "strings"

// Rules configures the two host conventions the parser understands.  The
// zero value is not useful; use Default() or fill both fields.
type Rules struct {
	// DevMarker is the label that marks a development host, normally
	// "localhost".  Any host containing this label resolves its first
	// label as the tenant, provided the first label is not the marker
	// itself.
	DevMarker string

	// ProductLabel is the second label of a production portfolio host,
	// normally "portfolio" as in `tenant.portfolio.example.com`.
	ProductLabel string
}

// Default returns the rules used in every current deployment.
func Default() Rules {
	return Rules{DevMarker: "localhost", ProductLabel: "portfolio"}
}

// Resolve extracts the tenant identifier from a raw Host header value.
// ok is false when the host carries no subdomain (bare product domain,
// bare localhost, or anything unrecognised).
func (ru Rules) Resolve(host string) (id string, ok bool) {
	h := strings.ToLower(StripPort(host))
	if h == "" {
		return "", false
	}

	labels := strings.Split(h, ".")

	// Development convention: `tenant.localhost[:port]`, also
	// `tenant.portfolio.localhost`.  Matching any label keeps parity with
	// hosts-file setups such as `jatin.localhost.localdomain`.
	for _, l := range labels {
		if l == ru.DevMarker {
			if len(labels) >= 2 && labels[0] != ru.DevMarker {
				return labels[0], true
			}
			return "", false
		}
	}

	// Production convention: `tenant.portfolio.example.com`.
	if len(labels) >= 3 && labels[1] == ru.ProductLabel {
		return labels[0], true
	}

	// Bare product domain, apex domain, or malformed host.
	return "", false
}

// Resolve applies the default rules.  Most callers use this.
func Resolve(host string) (string, bool) {
	return Default().Resolve(host)
}

// StripPort removes a trailing ":port" suffix from a Host header value.
func StripPort(h string) string {
	if i := strings.IndexByte(h, ':'); i != -1 {
		return h[:i]
	}
	return h
}
