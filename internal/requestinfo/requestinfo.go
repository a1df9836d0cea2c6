// internal/requestinfo/requestinfo.go
//
// Per-request metadata: parsed User-Agent and arrival timestamp.
//
// The struct is inert — no handles, no large buffers — so it is safe to
// log or JSON-encode.  The Enrich middleware stores it in the request
// context; the contact handler reads it to audit submissions and to skip
// email sends for crawler traffic.
package requestinfo

import (
	"context"
	"net/http"
	"time"

	"github.com/jatinPrakash2720/portfolio-hub/internal/ua"
)

// RequestInfo is attached to the request context by Enrich.
type RequestInfo struct {
	UA        ua.Info
	Timestamp time.Time
}

type ctxKey struct{} // unexported, collision-proof

// FromContext returns the pointer previously stored by Enrich, or nil if
// the middleware has not run.
func FromContext(ctx context.Context) *RequestInfo {
	v, _ := ctx.Value(ctxKey{}).(*RequestInfo)
	return v
}

// Enrich parses the User-Agent header once per request and stores the
// result.  Pure string work; safe under heavy concurrency.
func Enrich(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		info := &RequestInfo{
			UA:        ua.Parse(r.UserAgent()),
			Timestamp: time.Now(),
		}
		next.ServeHTTP(w, r.WithContext(
			context.WithValue(r.Context(), ctxKey{}, info)))
	})
}
