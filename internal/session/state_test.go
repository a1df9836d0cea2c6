// internal/session/state_test.go
//
// State machine tests: the transition table, prefetch idempotence, and
// failure classification.  The fetcher is faked; fetcher.go has its own
// tests against httptest servers.

package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jatinPrakash2720/portfolio-hub/internal/hostparse"
	"github.com/jatinPrakash2720/portfolio-hub/internal/profile"
)

// blockingFetcher counts calls and can hold a fetch open until released.
type blockingFetcher struct {
	calls   int64
	err     error
	release chan struct{} // nil → return immediately
}

func (f *blockingFetcher) FetchProfile(ctx context.Context, id string) (*profile.UserProfile, error) {
	atomic.AddInt64(&f.calls, 1)
	if f.release != nil {
		<-f.release
	}
	if f.err != nil {
		return nil, f.err
	}
	return &profile.UserProfile{Username: id}, nil
}

func TestState_TransitionsToLoaded(t *testing.T) {
	f := &blockingFetcher{}
	st := NewState(f, hostparse.Default())

	if got := st.Snapshot().Phase; got != PhaseEmpty {
		t.Fatalf("initial phase = %v", got)
	}

	id, ok := st.AssignTenantFromHost("himanshu.portfolio.jatinbuilds.com")
	if !ok || id != "himanshu" {
		t.Fatalf("assign = (%q, %v)", id, ok)
	}
	if got := st.Snapshot().Phase; got != PhaseTenantAssigned {
		t.Fatalf("phase after assign = %v", got)
	}

	st.Prefetch(context.Background())

	snap := st.Snapshot()
	if snap.Phase != PhaseLoaded {
		t.Fatalf("phase after prefetch = %v", snap.Phase)
	}
	if snap.Profile == nil || snap.Profile.Username != "himanshu" {
		t.Fatalf("profile = %+v", snap.Profile)
	}
	if snap.Err != "" {
		t.Fatalf("unexpected error message %q", snap.Err)
	}
}

func TestState_PrefetchIdempotent(t *testing.T) {
	f := &blockingFetcher{release: make(chan struct{})}
	st := NewState(f, hostparse.Default())
	st.AssignTenant("jatin")

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		st.Prefetch(context.Background())
	}()

	// Wait until the first fetch is in flight.
	for atomic.LoadInt64(&f.calls) == 0 {
		time.Sleep(time.Millisecond)
	}

	// Re-entrant call while Loading must return without fetching.
	st.Prefetch(context.Background())
	if got := st.Snapshot().Phase; got != PhaseLoading {
		t.Fatalf("phase during in-flight prefetch = %v", got)
	}

	close(f.release)
	wg.Wait()

	// And a call after Loaded is also a no-op.
	f.release = nil
	st.Prefetch(context.Background())

	if n := atomic.LoadInt64(&f.calls); n != 1 {
		t.Fatalf("fetcher called %d times, want 1", n)
	}
	if got := st.Snapshot().Phase; got != PhaseLoaded {
		t.Fatalf("final phase = %v", got)
	}
}

func TestState_NotFoundClassification(t *testing.T) {
	f := &blockingFetcher{err: fmt.Errorf("%w: unknown", ErrProfileNotFound)}
	st := NewState(f, hostparse.Default())
	st.AssignTenantFromHost("unknown.portfolio.jatinbuilds.com")

	st.Prefetch(context.Background())

	snap := st.Snapshot()
	if snap.Phase != PhaseFailed {
		t.Fatalf("phase = %v", snap.Phase)
	}
	if !snap.NotFound {
		t.Fatal("not-found fetch classified as generic fault")
	}
	if snap.Err == "" {
		t.Fatal("missing user-facing message")
	}
}

func TestState_FaultThenRetry(t *testing.T) {
	f := &blockingFetcher{err: errors.New("store timeout")}
	st := NewState(f, hostparse.Default())
	st.AssignTenant("himanshu")

	st.Prefetch(context.Background())

	snap := st.Snapshot()
	if snap.Phase != PhaseFailed || snap.NotFound {
		t.Fatalf("fault snapshot = %+v", snap)
	}

	// Retry is a fresh prefetch, permitted from Failed.
	f.err = nil
	st.Prefetch(context.Background())

	snap = st.Snapshot()
	if snap.Phase != PhaseLoaded {
		t.Fatalf("phase after retry = %v", snap.Phase)
	}
	if n := atomic.LoadInt64(&f.calls); n != 2 {
		t.Fatalf("fetcher called %d times, want 2", n)
	}
}

func TestState_TenantNeverSwitches(t *testing.T) {
	st := NewState(&blockingFetcher{}, hostparse.Default())
	st.AssignTenantFromHost("jatin.portfolio.jatinbuilds.com")
	st.AssignTenantFromHost("himanshu.portfolio.jatinbuilds.com")

	if id := st.TenantID(); id != "jatin" {
		t.Fatalf("tenant switched mid-session: %q", id)
	}
}

func TestState_PrefetchWithoutTenantIsNoop(t *testing.T) {
	f := &blockingFetcher{}
	st := NewState(f, hostparse.Default())

	st.Prefetch(context.Background())

	if n := atomic.LoadInt64(&f.calls); n != 0 {
		t.Fatalf("fetch attempted with no tenant: %d calls", n)
	}
	if got := st.Snapshot().Phase; got != PhaseEmpty {
		t.Fatalf("phase = %v", got)
	}
}

func TestState_RouteFlagsIndependent(t *testing.T) {
	st := NewState(&blockingFetcher{}, hostparse.Default())

	st.SetRouteLoading(RouteProjects, true)
	if !st.RouteLoading(RouteProjects) {
		t.Fatal("flag not set")
	}
	if st.RouteLoading(RouteContact) || st.RouteLoading(RouteIntro) {
		t.Fatal("unrelated flags set")
	}

	// Flags have no effect on the machine.
	if got := st.Snapshot().Phase; got != PhaseEmpty {
		t.Fatalf("route flag moved the machine: %v", got)
	}

	st.SetRouteLoading(RouteProjects, false)
	if st.RouteLoading(RouteProjects) {
		t.Fatal("flag not cleared")
	}
}
