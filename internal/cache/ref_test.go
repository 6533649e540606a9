package cache

import (
	"testing"
	"time"
)

func TestRefRoundTrip(t *testing.T) {
	ref := NewRef[[]string]()

	if _, ok := ref.Get(); ok {
		t.Fatal("empty ref should miss")
	}

	ref.Set([]string{"a", "b"}, time.Minute)
	value, ok := ref.Get()
	if !ok || len(value) != 2 {
		t.Fatalf("Get() = %v, %v, want cached snapshot", value, ok)
	}

	ref.Invalidate()
	if _, ok := ref.Get(); ok {
		t.Fatal("invalidated ref should miss")
	}
}

func TestRefExpires(t *testing.T) {
	ref := NewRef[int]()
	ref.Set(7, time.Nanosecond)
	time.Sleep(2 * time.Millisecond)

	if _, ok := ref.Get(); ok {
		t.Fatal("expired ref should miss")
	}
}

func TestNilRefIsSafe(t *testing.T) {
	var ref *Ref[int]
	ref.Set(1, time.Minute)
	ref.Invalidate()
	if _, ok := ref.Get(); ok {
		t.Fatal("nil ref should miss")
	}
}
