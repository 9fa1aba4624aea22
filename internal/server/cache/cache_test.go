package cache

import (
	"sync"
	"testing"
	"time"
)

// TestCache_New tests cache creation.
func TestCache_New(t *testing.T) {
	c := New(5*time.Minute, 10*time.Minute)
	if c == nil {
		t.Fatal("New() returned nil")
	}
	if c.store == nil {
		t.Error("cache store not initialized")
	}
}

// TestCache_BasicOperations tests Get and Set.
func TestCache_BasicOperations(t *testing.T) {
	c := New(5*time.Minute, 10*time.Minute)

	t.Run("Set and Get", func(t *testing.T) {
		c.Set("key1", "value1")

		val, found := c.Get("key1")
		if !found {
			t.Error("expected key1 to be found")
		}
		if val != "value1" {
			t.Errorf("expected value1, got %v", val)
		}
	})

	t.Run("Get non-existent key", func(t *testing.T) {
		_, found := c.Get("nonexistent")
		if found {
			t.Error("expected nonexistent key to not be found")
		}
	})
}

// TestCache_DefaultTTL tests that entries expire after the default TTL.
func TestCache_DefaultTTL(t *testing.T) {
	c := New(20*time.Millisecond, 10*time.Millisecond)

	c.Set("short", "value")
	if _, found := c.Get("short"); !found {
		t.Fatal("expected short-lived key to be found immediately")
	}

	time.Sleep(50 * time.Millisecond)
	if _, found := c.Get("short"); found {
		t.Error("expected short-lived key to expire")
	}
}

// TestCache_Remember tests compute-on-miss.
func TestCache_Remember(t *testing.T) {
	c := New(5*time.Minute, 10*time.Minute)

	calls := 0
	compute := func() any {
		calls++
		return []string{"button", "card"}
	}

	first := c.Remember("components:all", compute)
	second := c.Remember("components:all", compute)

	if calls != 1 {
		t.Errorf("expected compute to run once, ran %d times", calls)
	}
	if len(first.([]string)) != 2 || len(second.([]string)) != 2 {
		t.Error("expected both results to hold the computed value")
	}

	stats := c.GetStats()
	if stats.Hits != 1 || stats.Misses != 1 {
		t.Errorf("expected 1 hit and 1 miss, got %+v", stats)
	}
	if stats.ItemCount != 1 {
		t.Errorf("expected 1 item, got %d", stats.ItemCount)
	}
}

// TestKey tests key construction.
func TestKey(t *testing.T) {
	if got := Key("components", "usable", ""); got != "components:usable:" {
		t.Errorf("unexpected key %q", got)
	}
	if got := Key("component", "button"); got != "component:button" {
		t.Errorf("unexpected key %q", got)
	}
}

// TestCache_ItemCount tests the item count reported by GetStats.
func TestCache_ItemCount(t *testing.T) {
	c := New(5*time.Minute, 10*time.Minute)
	c.Set("a", 1)
	c.Set("b", 2)
	c.Set("a", 3)

	if got := c.GetStats().ItemCount; got != 2 {
		t.Errorf("expected 2 items, got %d", got)
	}
}

// TestCache_Concurrent tests concurrent access.
func TestCache_Concurrent(t *testing.T) {
	c := New(5*time.Minute, 10*time.Minute)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			key := Key("k", string(rune('a'+n%26)))
			c.Remember(key, func() any { return n })
			c.Get(key)
		}(i)
	}
	wg.Wait()

	if got := c.GetStats().ItemCount; got != 26 {
		t.Errorf("expected 26 items, got %d", got)
	}
}
