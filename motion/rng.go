package motion

import (
	"math/rand"
	"sync"
)

// defaultSeed is used when callers pass seed == 0. The value is arbitrary
// but fixed so that default runs are reproducible.
const defaultSeed int64 = 1294404794

// Source supplies uniform draws in [0,1). *rand.Rand satisfies it; tests can
// inject a scripted source.
//
// A Source is not safe for concurrent use unless its implementation says so.
type Source interface {
	Float64() float64
}

// NewSource returns a deterministic *rand.Rand.
// Policy: seed == 0 selects defaultSeed, any other seed is used verbatim.
func NewSource(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}
	return rand.New(rand.NewSource(seed))
}

// lockedSource serializes draws from one shared stream.
type lockedSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func (l *lockedSource) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rng.Float64()
}

// shared backs nil-Source calls: one stream seeded with defaultSeed at
// package init, advanced by every call and safe for concurrent use.
var shared Source = &lockedSource{rng: NewSource(0)}
