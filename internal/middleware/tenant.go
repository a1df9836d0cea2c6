// internal/middleware/tenant.go
//
// Request-scoped tenant resolution.
//
// Context
// -------
// Runs on every inbound request, ahead of routing.  It resolves the
// tenant identifier from the Host header with hostparse only — directory
// overrides and the default tenant are applied by the page layer, which
// keeps this hop pure string work with zero I/O.  The identifier travels
// out-of-band: stored in the request context under an unexported key and
// mirrored in the X-Tenant request header for handlers that only see the
// *http.Request.
//
// No tenant resolved is not an error; the request is forwarded unchanged
// and downstream components apply their own fallback.
package middleware

import (
	"context"
	"net/http"

	"github.com/jatinPrakash2720/portfolio-hub/internal/hostparse"
)

// TenantHeader is the out-of-band header carrying the resolved tenant.
const TenantHeader = "X-Tenant"

type tenantKey struct{}

// Tenant returns middleware that annotates each request with the tenant
// identifier extracted from its Host header.
func Tenant(rules hostparse.Rules) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := rules.Resolve(r.Host)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}
			r.Header.Set(TenantHeader, id)
			next.ServeHTTP(w, r.WithContext(
				context.WithValue(r.Context(), tenantKey{}, id)))
		})
	}
}

// TenantID extracts the identifier stored by Tenant.  ok is false when
// the middleware did not run or the host carried no subdomain.
func TenantID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(tenantKey{}).(string)
	return id, ok
}
