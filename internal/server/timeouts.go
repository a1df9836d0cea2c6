// internal/server/timeouts.go
//
// HTTP server factory with hardened, configurable timeouts.
//
// The defaults cover this service's slowest legitimate request: the
// contact endpoint holds its response for a delivery-status poll plus
// two provider calls, so the write timeout must stay well above that
// budget.  Reads are header-only JSON or small forms and can be cut off
// aggressively.
//
//   • read   – abort slow-loris headers (default 10 s)
//   • write  – cap total response time, contact pipeline included
//     (default 15 s)
//   • idle   – close keep-alives on idle clients (default 60 s)
//
// Operators tune these through the http section of conf/global.yaml;
// zero values keep the defaults.

package server

import (
	"net/http"
	"time"
)

const (
	defaultReadTimeout  = 10 * time.Second
	defaultWriteTimeout = 15 * time.Second
	defaultIdleTimeout  = 60 * time.Second
)

// New constructs an *http.Server.  Zero or negative durations fall back
// to the package defaults.
func New(addr string, handler http.Handler, read, write, idle time.Duration) *http.Server {
	if read <= 0 {
		read = defaultReadTimeout
	}
	if write <= 0 {
		write = defaultWriteTimeout
	}
	if idle <= 0 {
		idle = defaultIdleTimeout
	}
	return &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  read,
		WriteTimeout: write,
		IdleTimeout:  idle,
		// TLSConfig may be injected by callers (e.g., autocert).
	}
}
