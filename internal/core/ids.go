package core

import (
	"fmt"
	"math/rand"
	"sync"
	"time"
)

// IDGenerator mints numeric IDs of the form <millis>.<fraction>. The integer
// part strictly increases across calls on one generator, so IDs never repeat
// even when several are created within the same millisecond.
type IDGenerator struct {
	mu    sync.Mutex
	last  int64
	clock func() time.Time
}

func NewIDGenerator(clock func() time.Time) *IDGenerator {
	if clock == nil {
		clock = time.Now
	}
	return &IDGenerator{clock: clock}
}

// Next returns a fresh ID.
func (g *IDGenerator) Next() ID {
	g.mu.Lock()
	ms := g.clock().UnixMilli()
	if ms <= g.last {
		ms = g.last + 1
	}
	g.last = ms
	g.mu.Unlock()

	// three fractional digits keep the value exact as a float64
	frac := rand.Intn(1000)
	return NumericID(fmt.Sprintf("%d.%03d", ms, frac))
}
