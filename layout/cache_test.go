package layout

import (
	"testing"
	"time"

	"github.com/dshills/gridterm/core"
)

func TestCacheHitReturnsSameResult(t *testing.T) {
	cache := newSplitCache(4)
	l := NewHorizontal(Length(3), Fill(1))
	area := core.NewRect(10, 1)

	if _, ok := cache.get(l, area); ok {
		t.Fatal("empty cache should miss")
	}

	rects := l.solve(area)
	cache.put(l, area, rects)

	got, ok := cache.get(l, area)
	if !ok {
		t.Fatal("expected cache hit")
	}
	assertRects(t, got, rects)
}

func TestCacheKeyDistinguishesInputs(t *testing.T) {
	cache := newSplitCache(8)
	area := core.NewRect(10, 1)

	horizontal := NewHorizontal(Fill(1))
	vertical := NewVertical(Fill(1))
	cache.put(horizontal, area, horizontal.solve(area))

	if _, ok := cache.get(vertical, area); ok {
		t.Error("direction must be part of the cache key")
	}
	if _, ok := cache.get(horizontal, core.NewRect(11, 1)); ok {
		t.Error("area must be part of the cache key")
	}
	if _, ok := cache.get(horizontal.WithSpacing(1), area); ok {
		t.Error("spacing must be part of the cache key")
	}
	if _, ok := cache.get(NewHorizontal(Fill(2)), area); ok {
		t.Error("constraints must be part of the cache key")
	}
}

func TestCacheResultsAreIsolated(t *testing.T) {
	l := NewHorizontal(Length(3), Fill(1))
	area := core.NewRect(10, 1)
	want := l.solve(area)

	first, err := l.Split(area)
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	first[0] = core.NewRect(0, 0) // caller scribbles on its result

	second, err := l.Split(area)
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	assertRects(t, second, want)

	second[1] = core.NewRect(0, 0)

	third, err := l.Split(area)
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	assertRects(t, third, want)
}

func TestCacheEvictsOldest(t *testing.T) {
	cache := newSplitCache(2)
	area := core.NewRect(10, 1)

	a := NewHorizontal(Length(1))
	b := NewHorizontal(Length(2))
	c := NewHorizontal(Length(3))

	cache.put(a, area, a.solve(area))
	cache.put(b, area, b.solve(area))
	time.Sleep(time.Millisecond)
	cache.get(a, area) // refresh a so b is the oldest
	cache.put(c, area, c.solve(area))

	if cache.len() != 2 {
		t.Errorf("cache should hold at most 2 entries, got %d", cache.len())
	}
	if _, ok := cache.get(b, area); ok {
		t.Error("least recently used entry should have been evicted")
	}
	if _, ok := cache.get(a, area); !ok {
		t.Error("recently used entry should survive eviction")
	}
}
