// Package middleware holds small, composable HTTP wrappers.
package middleware

import (
	"net/http"
	"strings"

	"github.com/jatinPrakash2720/portfolio-hub/internal/hostparse"
)

// ForceHTTPS wraps h.  If the request arrived over plain HTTP and the
// host is not a development host, the wrapper issues a 308 Permanent
// Redirect to the HTTPS version of the same URL.  Otherwise it calls the
// next handler unchanged.  Proxy-terminated TLS is recognised via the
// standard X-Forwarded-Proto header.
func ForceHTTPS(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https" {
			h.ServeHTTP(w, r)
			return
		}
		if isDevHost(r.Host) {
			h.ServeHTTP(w, r)
			return
		}

		target := "https://" + r.Host + r.URL.RequestURI()
		http.Redirect(w, r, target, http.StatusPermanentRedirect)
	})
}

// isDevHost reports whether the host is localhost or a localhost
// subdomain such as jatin.localhost:3000.
func isDevHost(host string) bool {
	h := hostparse.StripPort(host)
	return h == "localhost" || strings.HasSuffix(h, ".localhost") || h == "127.0.0.1"
}
