// internal/tenant/tenant.go
//
// Tenant cache entry and aggregate.
//
// Context
// -------
// A live Tenant aggregates everything the page and API layers need to
// serve one portfolio: its directory entry, profile document, and project
// list.  The cache stores a pointer to Tenant inside `entry`, along with
// a `lastSeen` UnixNano timestamp used by the evictor for idle and LRU
// eviction.
//
// Notes
// -----
//   - Handlers must treat Tenant as immutable after load; a fresh record
//     is obtained by letting the evictor drop the entry.
//   - Oxford commas, two spaces after periods.
package tenant

import (
	"time"

	"github.com/jatinPrakash2720/portfolio-hub/internal/directory"
	"github.com/jatinPrakash2720/portfolio-hub/internal/profile"
)

//
// Cache entry
//

type entry struct {
	tenant   *Tenant
	lastSeen int64 // UnixNano
}

//
// Tenant aggregate
//

// Tenant groups all per-portfolio data needed by request handlers.
type Tenant struct {
	Entry    directory.Entry
	Profile  *profile.UserProfile
	Projects []profile.ProjectSummary
	LoadedAt time.Time
}

// DisplayName prefers the curated directory name over the profile's full
// name, falling back to the bare identifier.
func (t *Tenant) DisplayName() string {
	if t.Entry.DisplayName != "" && t.Entry.DisplayName != t.Entry.TenantID {
		return t.Entry.DisplayName
	}
	if t.Profile != nil && t.Profile.FullName != "" {
		return t.Profile.FullName
	}
	return t.Entry.TenantID
}
