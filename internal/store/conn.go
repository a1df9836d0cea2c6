// internal/store/conn.go
//
// Process-wide single-flight store handle.
//
// Context
// -------
// Opening a pool per request would defeat connection reuse, and a naive
// lazy global races on first use: concurrent cold requests would each
// open their own pool.  Handle() is a guarded single-initialisation
// resource with shared-await semantics — the first caller performs the
// dial, every concurrent caller blocks on the same initialisation, and
// the outcome (pool or error) is shared.  A failed dial is sticky: a
// missing DSN is a configuration fault and the process should not limp
// along half-connected.
package store

import (
	"context"
	"errors"
	"sync"

	"github.com/jatinPrakash2720/portfolio-hub/internal/database"
)

var (
	handleOnce sync.Once
	handle     *Store
	handleErr  error
)

// Handle returns the memoized process-wide Store, dialling it on first
// use.  Concurrent first callers share one dial.  maxOpen and maxIdle
// bound the pool; zero or negative values fall back to the conservative
// defaults.
func Handle(ctx context.Context, dsn string, maxOpen, maxIdle int) (*Store, error) {
	handleOnce.Do(func() {
		if dsn == "" {
			handleErr = errors.New("store: DSN is not configured")
			return
		}
		if maxOpen <= 0 {
			maxOpen = 15
		}
		if maxIdle <= 0 {
			maxIdle = 5
		}
		db, err := database.OpenWithOptions(ctx, dsn, maxOpen, maxIdle)
		if err != nil {
			handleErr = err
			return
		}
		handle = New(db)
	})
	return handle, handleErr
}
