package core

import (
	"testing"
	"time"
)

func TestIDGeneratorUniqueWithinSameMillisecond(t *testing.T) {
	frozen := time.UnixMilli(1_700_000_000_000)
	g := NewIDGenerator(func() time.Time { return frozen })

	seen := map[string]bool{}
	for i := 0; i < 1000; i++ {
		id := g.Next()
		if !id.Numeric() {
			t.Fatalf("generated id should be numeric: %q", id.Key())
		}
		if seen[id.Key()] {
			t.Fatalf("duplicate id %q after %d calls", id.Key(), i)
		}
		seen[id.Key()] = true
	}
}

func TestIDGeneratorFollowsClock(t *testing.T) {
	now := time.UnixMilli(1_700_000_000_000)
	g := NewIDGenerator(func() time.Time { return now })
	first := g.Next()
	now = now.Add(time.Second)
	second := g.Next()
	if ParseFloat(second.Key())-ParseFloat(first.Key()) < 999 {
		t.Fatalf("ids should track the clock: %s then %s", first, second)
	}
}
