package rendercache

import (
	"testing"

	"github.com/svgraster/raster/geom"
	"github.com/svgraster/raster/pixbuf"
)

func TestGetMissOnEmptyCache(t *testing.T) {
	c := New(4, pixbuf.NewPool())
	if _, ok := c.Get(geom.Fingerprint(1)); ok {
		t.Fatal("expected miss on empty cache")
	}
}

func TestInsertThenGetHits(t *testing.T) {
	pool := pixbuf.NewPool()
	c := New(4, pool)
	buf, _ := pool.Acquire(8, 8)

	c.InsertOrEvict(geom.Fingerprint(1), buf)

	got, ok := c.Get(geom.Fingerprint(1))
	if !ok || got != buf {
		t.Fatal("expected cache hit returning the inserted buffer")
	}
}

func TestEvictsLeastRecentlyUsed(t *testing.T) {
	pool := pixbuf.NewPool()
	c := New(2, pool)

	b1, _ := pool.Acquire(4, 4)
	b2, _ := pool.Acquire(4, 4)
	b3, _ := pool.Acquire(4, 4)

	c.InsertOrEvict(geom.Fingerprint(1), b1)
	c.InsertOrEvict(geom.Fingerprint(2), b2)
	// Touch key 1 so key 2 becomes the least recently used entry.
	c.Get(geom.Fingerprint(1))
	c.InsertOrEvict(geom.Fingerprint(3), b3)

	if c.Contains(geom.Fingerprint(2)) {
		t.Fatal("key 2 should have been evicted as least recently used")
	}
	if !c.Contains(geom.Fingerprint(1)) || !c.Contains(geom.Fingerprint(3)) {
		t.Fatal("keys 1 and 3 should both remain cached")
	}
	if c.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", c.Len())
	}
}

func TestDisabledCacheNeverHits(t *testing.T) {
	pool := pixbuf.NewPool()
	c := NewDisabled()
	buf, _ := pool.Acquire(4, 4)

	c.InsertOrEvict(geom.Fingerprint(42), buf)

	if c.Contains(geom.Fingerprint(42)) {
		t.Fatal("a disabled cache must never retain an entry")
	}
}
