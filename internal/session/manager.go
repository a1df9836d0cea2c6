// internal/session/manager.go
//
// Cookie-keyed session registry.
//
// Context
// -------
// The page layer needs one State per browser session.  Manager hands out
// States keyed by a session cookie, creating them lazily, and sweeps
// idle ones on a ticker the same way the tenant cache evicts idle
// tenants.  A swept session simply starts over on the visitor's next
// request — the state machine's "discarded on full reload" lifecycle.
package session

import (
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/jatinPrakash2720/portfolio-hub/internal/hostparse"
)

const (
	cookieName    = "ph_session"
	sweepInterval = 5 * time.Minute
)

type managed struct {
	state    *State
	lastSeen int64 // UnixNano
}

// Manager owns all live session States.
type Manager struct {
	mu      sync.Mutex
	m       map[string]*managed
	fetcher ProfileFetcher
	rules   hostparse.Rules
	idleTTL time.Duration
	ticker  *time.Ticker
	stop    chan struct{}
}

// NewManager starts the background sweeper.
func NewManager(fetcher ProfileFetcher, rules hostparse.Rules, idleTTL time.Duration) *Manager {
	m := &Manager{
		m:       make(map[string]*managed),
		fetcher: fetcher,
		rules:   rules,
		idleTTL: idleTTL,
		ticker:  time.NewTicker(sweepInterval),
		stop:    make(chan struct{}),
	}
	go m.sweepLoop()
	return m
}

// Session returns the State for the request's session, minting a cookie
// on first contact.  The tenant is assigned from the request host, so a
// brand-new session leaves in TenantAssigned (or Empty on a bare host).
func (mgr *Manager) Session(w http.ResponseWriter, r *http.Request) *State {
	sid := ""
	if c, err := r.Cookie(cookieName); err == nil && c.Value != "" {
		sid = c.Value
	}
	if sid == "" {
		sid = uuid.NewString()
		http.SetCookie(w, &http.Cookie{
			Name:     cookieName,
			Value:    sid,
			Path:     "/",
			HttpOnly: true,
			Secure:   r.TLS != nil,
			SameSite: http.SameSiteLaxMode,
		})
	}

	st := mgr.get(sid)
	st.AssignTenantFromHost(r.Host)
	return st
}

// get returns (creating if needed) the State for a session id.
func (mgr *Manager) get(sid string) *State {
	now := time.Now().UnixNano()

	mgr.mu.Lock()
	defer mgr.mu.Unlock()
	if ent, ok := mgr.m[sid]; ok {
		atomic.StoreInt64(&ent.lastSeen, now)
		return ent.state
	}
	ent := &managed{
		state:    NewState(mgr.fetcher, mgr.rules),
		lastSeen: now,
	}
	mgr.m[sid] = ent
	return ent.state
}

// Len reports the live session count.
func (mgr *Manager) Len() int {
	mgr.mu.Lock()
	defer mgr.mu.Unlock()
	return len(mgr.m)
}

// Close stops the sweeper.
func (mgr *Manager) Close() {
	close(mgr.stop)
	mgr.ticker.Stop()
}

func (mgr *Manager) sweepLoop() {
	for {
		select {
		case <-mgr.stop:
			return
		case <-mgr.ticker.C:
		}

		cutoff := time.Now().Add(-mgr.idleTTL).UnixNano()
		mgr.mu.Lock()
		for sid, ent := range mgr.m {
			if atomic.LoadInt64(&ent.lastSeen) < cutoff {
				delete(mgr.m, sid)
			}
		}
		mgr.mu.Unlock()
	}
}
