// internal/session/state.go
//
// Session-scoped tenant state machine.
//
// Context
// -------
// Each browser session gets one State: the tenant resolved from the host
// it first arrived on, the prefetched profile, and the loading flags the
// page layer uses for affordances.  The machine is deliberately explicit
// rather than ambient globals, so it can be constructed with any
// ProfileFetcher and tested without a server:
//
//	Empty ──assign──▶ TenantAssigned ──prefetch──▶ Loading
//	Loading ──success──▶ Loaded          (terminal for the session)
//	Loading ──failure──▶ Failed ──retry(prefetch)──▶ Loading
//
// Guarantees:
//
//   - At most one in-flight profile fetch; Prefetch while Loading or
//     Loaded is a no-op.
//   - The tenant identifier never changes after first assignment.
//   - A late fetch result is discarded unless the machine is still in
//     the Loading generation that started it.
//   - Fetch failures become a stored message, never a propagated error.
//
// Per-route flags are independent of the machine: set on navigation
// intent, cleared by the destination page, no ordering against Loaded.
package session

import (
	"context"
	"errors"
	"sync"

	"github.com/jatinPrakash2720/portfolio-hub/internal/hostparse"
	"github.com/jatinPrakash2720/portfolio-hub/internal/profile"
)

// Phase enumerates the machine's states.
type Phase int

const (
	PhaseEmpty Phase = iota
	PhaseTenantAssigned
	PhaseLoading
	PhaseLoaded
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseEmpty:
		return "empty"
	case PhaseTenantAssigned:
		return "tenant-assigned"
	case PhaseLoading:
		return "loading"
	case PhaseLoaded:
		return "loaded"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Route names the client-side destinations that carry loading flags.
type Route string

const (
	RouteIntro    Route = "intro"
	RouteProjects Route = "projects"
	RouteContact  Route = "contact"
)

// ErrProfileNotFound classifies a fetch that reached the backend and got
// a definitive "no such tenant".  Fetchers return it (possibly wrapped)
// so Failed can carry a not-found message instead of a retry prompt.
var ErrProfileNotFound = errors.New("session: profile not found")

// ProfileFetcher loads the canonical profile for a tenant.  The default
// implementation calls the profile API endpoint over HTTP.
type ProfileFetcher interface {
	FetchProfile(ctx context.Context, tenantID string) (*profile.UserProfile, error)
}

// Snapshot is a read-only copy of the machine's observable state.
type Snapshot struct {
	Phase    Phase
	TenantID string
	Profile  *profile.UserProfile
	Err      string
	NotFound bool
}

// State is one session's tenant context.  Safe for concurrent use.
type State struct {
	mu       sync.Mutex
	phase    Phase
	tenantID string
	prof     *profile.UserProfile
	errMsg   string
	notFound bool
	gen      int // increments each time Loading is entered

	routeLoading map[Route]bool

	fetcher ProfileFetcher
	rules   hostparse.Rules
}

// NewState returns a State in the Empty phase.
func NewState(fetcher ProfileFetcher, rules hostparse.Rules) *State {
	return &State{
		fetcher:      fetcher,
		rules:        rules,
		routeLoading: make(map[Route]bool, 3),
	}
}

// AssignTenantFromHost resolves the tenant from a host string with the
// exact parser the middleware uses, so session and server agree.  The
// first successful assignment wins; later hosts are ignored.
func (s *State) AssignTenantFromHost(host string) (string, bool) {
	id, ok := s.rules.Resolve(host)
	if !ok {
		return s.TenantID(), s.TenantID() != ""
	}
	s.AssignTenant(id)
	return s.TenantID(), true
}

// AssignTenant moves Empty → TenantAssigned.  Assigning a different
// tenant after the first call is a no-op: no tenant switch mid-session.
func (s *State) AssignTenant(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.tenantID != "" || id == "" {
		return
	}
	s.tenantID = id
	if s.phase == PhaseEmpty {
		s.phase = PhaseTenantAssigned
	}
}

// Prefetch runs the profile fetch unless one is already in flight or the
// profile is already present.  It blocks until the fetch settles; run it
// in a goroutine for fire-and-forget prefetching.  Calling from Failed
// retries.
func (s *State) Prefetch(ctx context.Context) {
	s.mu.Lock()
	if s.phase == PhaseLoading || s.phase == PhaseLoaded || s.tenantID == "" {
		s.mu.Unlock()
		return
	}
	s.phase = PhaseLoading
	s.errMsg = ""
	s.notFound = false
	s.gen++
	gen := s.gen
	id := s.tenantID
	s.mu.Unlock()

	prof, err := s.fetcher.FetchProfile(ctx, id)

	s.mu.Lock()
	defer s.mu.Unlock()
	// A superseded fetch commits nothing: the session has already moved
	// on to a newer generation or a terminal phase.
	if s.phase != PhaseLoading || s.gen != gen {
		return
	}
	if err != nil {
		s.phase = PhaseFailed
		if errors.Is(err, ErrProfileNotFound) {
			s.notFound = true
			s.errMsg = "No portfolio found for " + id + "."
		} else {
			s.errMsg = "Failed to load profile data.  Please try again."
		}
		return
	}
	s.phase = PhaseLoaded
	s.prof = prof
}

// Snapshot returns the current observable state.
func (s *State) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		Phase:    s.phase,
		TenantID: s.tenantID,
		Profile:  s.prof,
		Err:      s.errMsg,
		NotFound: s.notFound,
	}
}

// TenantID returns the assigned tenant, or "" before assignment.
func (s *State) TenantID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tenantID
}

// SetRouteLoading flips a navigation affordance flag.  Purely cosmetic
// state: it never gates data correctness.
func (s *State) SetRouteLoading(r Route, loading bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.routeLoading[r] = loading
}

// RouteLoading reports a navigation affordance flag.
func (s *State) RouteLoading(r Route) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.routeLoading[r]
}
