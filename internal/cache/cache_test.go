// ABOUTME: Tests for the generic TTL cache
// ABOUTME: Verifies hit/miss, expiry, clear, and Stop idempotence

package cache

import (
	"testing"
	"time"
)

func TestCache_SetGet(t *testing.T) {
	c := New[string](time.Minute)
	defer c.Stop()

	c.Set("key", "value")
	got, ok := c.Get("key")
	if !ok {
		t.Fatal("expected a cache hit")
	}
	if got != "value" {
		t.Errorf("expected 'value', got %q", got)
	}
}

func TestCache_Miss(t *testing.T) {
	c := New[int](time.Minute)
	defer c.Stop()

	if _, ok := c.Get("absent"); ok {
		t.Error("expected a miss for an absent key")
	}
}

func TestCache_Expiry(t *testing.T) {
	c := New[string](time.Minute)
	defer c.Stop()

	c.SetWithTTL("key", "value", 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)

	if _, ok := c.Get("key"); ok {
		t.Error("expected expired entry to miss")
	}
}

func TestCache_Clear(t *testing.T) {
	c := New[string](time.Minute)
	defer c.Stop()

	c.Set("key", "value")
	c.Clear("key")
	if _, ok := c.Get("key"); ok {
		t.Error("expected cleared key to miss")
	}
}

func TestCache_StructValues(t *testing.T) {
	type record struct{ Name string }
	c := New[[]record](time.Minute)
	defer c.Stop()

	c.Set("all", []record{{Name: "Ernakulam"}})
	got, ok := c.Get("all")
	if !ok || len(got) != 1 || got[0].Name != "Ernakulam" {
		t.Errorf("unexpected cached slice: %v (hit=%v)", got, ok)
	}
}

func TestCache_StopIdempotent(t *testing.T) {
	c := New[string](time.Minute)
	c.Stop()
	c.Stop() // must not panic
}
