package tenant

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/jatinPrakash2720/portfolio-hub/internal/directory"
	"github.com/jatinPrakash2720/portfolio-hub/internal/metrics"
	"github.com/jatinPrakash2720/portfolio-hub/internal/profile"
	"github.com/jatinPrakash2720/portfolio-hub/internal/store"
)

// Static defaults.  Override via config if desired.
const (
	IdleTTL       = 30 * time.Minute
	MaxEntries    = 100
	EvictInterval = 5 * time.Minute
	loadTimeout   = 10 * time.Second
)

// ErrNotFound is returned when the store has no profile for the tenant.
// It aliases the store sentinel so callers can test either package.
var ErrNotFound = store.ErrNotFound

// Loader is the slice of the store client the cache needs.  *store.Store
// satisfies it; tests inject fakes.
type Loader interface {
	Profile(ctx context.Context, tenantID string) (*profile.UserProfile, error)
	Projects(ctx context.Context, tenantID string) ([]profile.ProjectSummary, error)
}

// Cache lazily loads tenants, stores them in a sync.Map, and evicts them
// on idle TTL or LRU pressure.
type Cache struct {
	loader      Loader
	dir         *directory.Directory
	sfg         singleflight.Group
	m           sync.Map
	evictTicker *time.Ticker
	idleTTL     time.Duration
	maxEntries  int
	stop        chan struct{}
}

// New constructs a Cache and starts the background evictor.
func New(loader Loader, dir *directory.Directory, idleTTL time.Duration, maxEntries int) *Cache {
	c := &Cache{
		loader:     loader,
		dir:        dir,
		idleTTL:    idleTTL,
		maxEntries: maxEntries,
		stop:       make(chan struct{}),
	}
	c.evictTicker = time.NewTicker(EvictInterval)
	go c.evictLoop()
	return c
}

// Get returns the Tenant for tenantID, loading it on demand.  A miss in
// the store surfaces as ErrNotFound; anything else is a backend fault.
// Get takes no context: loads run detached under their own timeout, and
// singleflight followers share the leader's outcome either way, so a
// caller's deadline could never be honored.
func (c *Cache) Get(tenantID string) (*Tenant, error) {
	if v, ok := c.m.Load(tenantID); ok {
		ent := v.(*entry)
		atomic.StoreInt64(&ent.lastSeen, time.Now().UnixNano())
		return ent.tenant, nil
	}

	v, err, _ := c.sfg.Do(tenantID, func() (interface{}, error) {
		// Double-check after singleflight barrier.
		if v, ok := c.m.Load(tenantID); ok {
			ent := v.(*entry)
			atomic.StoreInt64(&ent.lastSeen, time.Now().UnixNano())
			return ent.tenant, nil
		}
		ten, err := c.load(tenantID)
		if err != nil {
			if !errors.Is(err, ErrNotFound) {
				metrics.TenantLoadErrorsTotal.Inc()
			}
			return nil, err
		}
		ent := &entry{
			tenant:   ten,
			lastSeen: time.Now().UnixNano(),
		}
		c.m.Store(tenantID, ent)
		metrics.TenantLoadTotal.Inc()
		metrics.ActiveTenants.Inc()
		return ten, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Tenant), nil
}

// GetByHost resolves the host through the directory and loads the
// resulting tenant.  This is the one-call entry point for page handlers.
func (c *Cache) GetByHost(host string) (*Tenant, error) {
	return c.Get(c.dir.ResolveTenant(host).TenantID)
}

// load fetches the profile and project documents.  The two reads are
// independent, so they run concurrently; profile absence decides
// not-found, a fault in either read fails the load.
func (c *Cache) load(tenantID string) (*Tenant, error) {
	// Detached from the triggering request: the loaded tenant outlives it,
	// and singleflight followers should not inherit its deadline.
	ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
	defer cancel()

	var (
		prof     *profile.UserProfile
		projects []profile.ProjectSummary
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		prof, err = c.loader.Profile(gctx, tenantID)
		return err
	})
	g.Go(func() (err error) {
		projects, err = c.loader.Projects(gctx, tenantID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	ent, ok := c.dir.EntryForTenant(tenantID)
	if !ok {
		ent = directory.Entry{TenantID: tenantID, DisplayName: tenantID}
	}

	return &Tenant{
		Entry:    ent,
		Profile:  prof,
		Projects: projects,
		LoadedAt: time.Now(),
	}, nil
}

// Close stops the evictor ticker.  Cached tenants hold no resources of
// their own, so there is nothing else to release.
func (c *Cache) Close() {
	close(c.stop)
	c.evictTicker.Stop()
}
