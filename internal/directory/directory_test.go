package directory

import (
	"testing"

	"github.com/jatinPrakash2720/portfolio-hub/internal/hostparse"
)

func testDirectory() *Directory {
	entries := []Entry{
		{Host: "portfolio.jatinbuilds.com", TenantID: "jatin", DisplayName: "Jatin Prakash"},
		{Host: "himanshu.portfolio.jatinbuilds.com", TenantID: "himanshu", DisplayName: "Himanshu"},
	}
	fallback := Entry{Host: "portfolio.jatinbuilds.com", TenantID: "jatin", DisplayName: "Jatin Prakash"}
	return New(hostparse.Default(), entries, fallback)
}

func TestLookup_ExactMatch(t *testing.T) {
	d := testDirectory()

	e, ok := d.Lookup("himanshu.portfolio.jatinbuilds.com")
	if !ok || e.TenantID != "himanshu" {
		t.Fatalf("Lookup = (%+v, %v)", e, ok)
	}

	// Port and case must not defeat the exact match.
	e, ok = d.Lookup("HIMANSHU.portfolio.jatinbuilds.com:443")
	if !ok || e.TenantID != "himanshu" {
		t.Fatalf("normalised Lookup = (%+v, %v)", e, ok)
	}
}

func TestLookup_Miss(t *testing.T) {
	d := testDirectory()
	if _, ok := d.Lookup("unknown.example.com"); ok {
		t.Fatal("Lookup matched an unregistered host")
	}
}

func TestResolveTenant_Order(t *testing.T) {
	d := testDirectory()

	// 1. Exact pin wins: the bare product domain maps to the primary
	//    tenant even though hostparse would yield none.
	if e := d.ResolveTenant("portfolio.jatinbuilds.com"); e.TenantID != "jatin" {
		t.Fatalf("exact pin: got %q", e.TenantID)
	}

	// 2. Pattern extraction covers tenants absent from the directory.
	if e := d.ResolveTenant("newuser.portfolio.jatinbuilds.com"); e.TenantID != "newuser" {
		t.Fatalf("pattern: got %q", e.TenantID)
	}
	if e := d.ResolveTenant("dev.localhost:3000"); e.TenantID != "dev" {
		t.Fatalf("dev pattern: got %q", e.TenantID)
	}

	// 3. Everything else falls to the default tenant.
	if e := d.ResolveTenant("nonsense.example.org"); e.TenantID != "jatin" {
		t.Fatalf("fallback: got %q", e.TenantID)
	}
	if e := d.ResolveTenant(""); e.TenantID != "jatin" {
		t.Fatalf("empty host fallback: got %q", e.TenantID)
	}
}

func TestResolveTenant_SubdomainDisplayName(t *testing.T) {
	d := testDirectory()
	e := d.ResolveTenant("alice.portfolio.jatinbuilds.com")
	if e.DisplayName != "alice" {
		t.Fatalf("subdomain display name = %q", e.DisplayName)
	}
}
