// internal/verify/zerobounce_test.go
//
// The property under test is fail-open: only a definitive negative
// verdict may return false.

package verify

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func checkerFor(t *testing.T, handler http.HandlerFunc) *Checker {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := New("test-key")
	c.Endpoint = srv.URL
	return c
}

func TestCheck_ValidAndCatchAllAreDeliverable(t *testing.T) {
	for _, status := range []string{"valid", "catch-all"} {
		c := checkerFor(t, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Query().Get("api_key") != "test-key" {
				t.Errorf("api_key missing from query")
			}
			_, _ = w.Write([]byte(`{"address": "v@example.com", "status": "` + status + `"}`))
		})
		if !c.Check(context.Background(), "v@example.com") {
			t.Fatalf("status %q judged undeliverable", status)
		}
	}
}

func TestCheck_InvalidIsRejected(t *testing.T) {
	c := checkerFor(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"address": "x@example.com", "status": "invalid"}`))
	})
	if c.Check(context.Background(), "x@example.com") {
		t.Fatal("invalid address judged deliverable")
	}
}

func TestCheck_FailsOpenOnAPIFault(t *testing.T) {
	c := checkerFor(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream broken", http.StatusBadGateway)
	})
	if !c.Check(context.Background(), "v@example.com") {
		t.Fatal("API fault did not fail open")
	}
}

func TestCheck_FailsOpenOnUnreachableAPI(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	c := New("test-key")
	c.Endpoint = srv.URL
	if !c.Check(context.Background(), "v@example.com") {
		t.Fatal("unreachable API did not fail open")
	}
}

func TestCheck_FailsOpenWithoutKey(t *testing.T) {
	c := New("")
	if !c.Check(context.Background(), "v@example.com") {
		t.Fatal("missing key did not fail open")
	}
}

func TestCheck_FailsOpenOnMalformedBody(t *testing.T) {
	c := checkerFor(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	})
	if !c.Check(context.Background(), "v@example.com") {
		t.Fatal("malformed body did not fail open")
	}
}
