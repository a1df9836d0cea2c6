package cache

import (
	"testing"
	"time"
)

func TestGetMarksMRU(t *testing.T) {
	c := New[string, int](2)
	c.Add("a", 1, time.Minute)
	c.Add("b", 2, time.Minute)

	// Touch "a" so "b" becomes the eviction candidate.
	if v, ok := c.Get("a"); !ok || v != 1 {
		t.Fatalf("Get(a) = (%d, %v)", v, ok)
	}
	c.Add("c", 3, time.Minute)

	if _, ok := c.Get("b"); ok {
		t.Error("expected b to be evicted")
	}
	if _, ok := c.Get("a"); !ok {
		t.Error("recently used entry evicted")
	}
}

func TestExpiredEntryDroppedOnAccess(t *testing.T) {
	c := New[string, string](4)
	c.Add("k", "v", -time.Second) // already expired

	if _, ok := c.Get("k"); ok {
		t.Fatal("expired entry served")
	}
	if c.Len() != 0 {
		t.Errorf("Len = %d after expiry drop", c.Len())
	}
}
