package cache

import (
	"testing"
	"time"
)

func TestCacheMissThenHit(t *testing.T) {
	c := New()

	if _, ok := c.Get(); ok {
		t.Fatal("fresh cache should miss")
	}

	meta := Metadata{Categories: []string{"clothing", "home"}, MinPrice: 39.99, MaxPrice: 249.99}
	c.Set(meta)

	got, ok := c.Get()
	if !ok {
		t.Fatal("expected a hit after Set")
	}
	if len(got.Categories) != 2 || got.MaxPrice != 249.99 {
		t.Errorf("Get() = %+v, want %+v", got, meta)
	}
}

func TestCacheExpires(t *testing.T) {
	c := New()
	c.ttl = time.Millisecond

	c.Set(Metadata{MinPrice: 1})
	time.Sleep(5 * time.Millisecond)

	if _, ok := c.Get(); ok {
		t.Error("expected a miss after TTL elapsed")
	}
}

func TestInvalidate(t *testing.T) {
	c := New()
	c.Set(Metadata{MinPrice: 1})
	c.Invalidate()

	if _, ok := c.Get(); ok {
		t.Error("expected a miss after Invalidate")
	}
}
