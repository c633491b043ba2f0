package cache

import (
	"fmt"
	"sync"
	"testing"
)

// singleShardHasher pins every key to shard 0 so LRU order is observable.
func singleShardHasher(string) uint64 { return 0 }

func TestSetGet(t *testing.T) {
	c := NewSharded[string, int](4, StringHasher)
	c.Set("a", 1)
	c.Set("b", 2)

	if v, ok := c.Get("a"); !ok || v != 1 {
		t.Errorf("Get(a) = %v, %v, want 1, true", v, ok)
	}
	if _, ok := c.Get("missing"); ok {
		t.Error("Get of absent key reported present")
	}
	if got := c.Len(); got != 2 {
		t.Errorf("Len() = %d, want 2", got)
	}
}

func TestSetOverwrites(t *testing.T) {
	c := NewSharded[string, int](4, StringHasher)
	c.Set("a", 1)
	c.Set("a", 2)
	if v, _ := c.Get("a"); v != 2 {
		t.Errorf("Get(a) = %v, want 2", v)
	}
	if got := c.Len(); got != 1 {
		t.Errorf("Len() = %d, want 1", got)
	}
}

func TestLRUEviction(t *testing.T) {
	c := NewSharded[string, int](2, singleShardHasher)
	c.Set("a", 1)
	c.Set("b", 2)
	c.Get("a") // a is now most recently used
	c.Set("c", 3)

	if _, ok := c.Get("b"); ok {
		t.Error("b should have been evicted")
	}
	if _, ok := c.Get("a"); !ok {
		t.Error("a should have survived eviction")
	}
	if _, ok := c.Get("c"); !ok {
		t.Error("c should be present")
	}
	if got := c.Stats().Evictions; got != 1 {
		t.Errorf("evictions = %d, want 1", got)
	}
}

func TestGetOrCreate(t *testing.T) {
	c := NewSharded[string, int](4, StringHasher)
	calls := 0
	create := func() int {
		calls++
		return 42
	}
	for i := 0; i < 3; i++ {
		if v := c.GetOrCreate("k", create); v != 42 {
			t.Errorf("GetOrCreate = %v, want 42", v)
		}
	}
	if calls != 1 {
		t.Errorf("create ran %d times, want 1", calls)
	}
}

func TestDelete(t *testing.T) {
	c := NewSharded[string, int](4, StringHasher)
	c.Set("a", 1)
	if !c.Delete("a") {
		t.Error("Delete of present key reported absent")
	}
	if c.Delete("a") {
		t.Error("Delete of absent key reported present")
	}
	if _, ok := c.Get("a"); ok {
		t.Error("deleted key still present")
	}
}

func TestClear(t *testing.T) {
	c := NewSharded[string, int](4, StringHasher)
	for i := 0; i < 10; i++ {
		c.Set(fmt.Sprintf("k%d", i), i)
	}
	c.Clear()
	if got := c.Len(); got != 0 {
		t.Errorf("Len() after Clear = %d, want 0", got)
	}
}

func TestStats(t *testing.T) {
	c := NewSharded[string, int](4, StringHasher)
	c.Set("a", 1)
	c.Get("a")
	c.Get("a")
	c.Get("missing")

	s := c.Stats()
	if s.Hits != 2 || s.Misses != 1 {
		t.Errorf("stats = %+v, want 2 hits, 1 miss", s)
	}
	if s.Capacity != 4*shardCount {
		t.Errorf("capacity = %d, want %d", s.Capacity, 4*shardCount)
	}
}

func TestDefaultCapacity(t *testing.T) {
	c := NewSharded[string, int](0, StringHasher)
	if c.capacity != DefaultCapacity {
		t.Errorf("capacity = %d, want %d", c.capacity, DefaultCapacity)
	}
}

func TestCapacityBound(t *testing.T) {
	c := NewSharded[string, int](1, singleShardHasher)
	for i := 0; i < 100; i++ {
		c.Set(fmt.Sprintf("k%d", i), i)
	}
	if got := c.Len(); got != 1 {
		t.Errorf("Len() = %d, want 1 with capacity 1 on a single shard", got)
	}
	if _, ok := c.Get("k99"); !ok {
		t.Error("most recent key should be present")
	}
}

func TestConcurrentAccess(t *testing.T) {
	c := NewSharded[string, int](64, StringHasher)
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				key := fmt.Sprintf("k%d", i%50)
				c.Set(key, g)
				c.Get(key)
				c.GetOrCreate(key, func() int { return g })
			}
		}(g)
	}
	wg.Wait()
	if got := c.Len(); got != 50 {
		t.Errorf("Len() = %d, want 50", got)
	}
}
