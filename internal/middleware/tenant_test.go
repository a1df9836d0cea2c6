// internal/middleware/tenant_test.go
//
// Verifies the out-of-band tenant signal: context value and X-Tenant
// header on a tenant host, untouched request on a bare host.

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jatinPrakash2720/portfolio-hub/internal/hostparse"
)

func TestTenant_SubdomainHost(t *testing.T) {
	var gotCtx string
	var gotHeader string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotCtx, _ = TenantID(r.Context())
		gotHeader = r.Header.Get(TenantHeader)
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Host = "himanshu.portfolio.jatinbuilds.com"
	rr := httptest.NewRecorder()

	Tenant(hostparse.Default())(next).ServeHTTP(rr, req)

	if gotCtx != "himanshu" {
		t.Fatalf("context tenant = %q", gotCtx)
	}
	if gotHeader != "himanshu" {
		t.Fatalf("header tenant = %q", gotHeader)
	}
}

func TestTenant_BareHostForwardedUnchanged(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := TenantID(r.Context()); ok {
			t.Fatal("tenant set for bare product domain")
		}
		if r.Header.Get(TenantHeader) != "" {
			t.Fatal("header set for bare product domain")
		}
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Host = "portfolio.jatinbuilds.com"
	rr := httptest.NewRecorder()

	Tenant(hostparse.Default())(next).ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
}

func TestTenant_ResponseBodyUntouched(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("body"))
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Host = "jatin.localhost:3000"
	rr := httptest.NewRecorder()

	Tenant(hostparse.Default())(next).ServeHTTP(rr, req)

	if rr.Body.String() != "body" {
		t.Fatalf("body mutated: %q", rr.Body.String())
	}
}

func TestForceHTTPS_DevHostPassesThrough(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Host = "jatin.localhost:3000"
	rr := httptest.NewRecorder()

	ForceHTTPS(next).ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
}

func TestForceHTTPS_RedirectsPlainHTTP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/projects?x=1", nil)
	req.Host = "jatin.portfolio.jatinbuilds.com"
	rr := httptest.NewRecorder()

	ForceHTTPS(http.NotFoundHandler()).ServeHTTP(rr, req)

	if rr.Code != http.StatusPermanentRedirect {
		t.Fatalf("status = %d, want 308", rr.Code)
	}
	want := "https://jatin.portfolio.jatinbuilds.com/projects?x=1"
	if got := rr.Header().Get("Location"); got != want {
		t.Fatalf("Location = %q, want %q", got, want)
	}
}
