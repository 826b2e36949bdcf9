// Package hostio provides the default implementations of the core.Random
// and core.Clock ports: a math/rand-backed byte source and a
// time.Sleep-backed pacer. Each owns its own state so tests can seed a
// Rand deterministically instead of relying on process-global state.
package hostio

import (
	"math/rand"
	"time"
)

// Rand is a core.Random backed by a seeded math/rand source.
type Rand struct {
	src *rand.Rand
}

// NewRand returns a Rand seeded with seed. Tests should pass a fixed seed
// for determinism; production callers can pass time.Now().UnixNano().
func NewRand(seed int64) *Rand {
	return &Rand{src: rand.New(rand.NewSource(seed))}
}

// NextByte implements core.Random.
func (r *Rand) NextByte() byte {
	return byte(r.src.Intn(256))
}

// Clock is a core.Clock backed by time.Sleep.
type Clock struct{}

// SleepMillis implements core.Clock.
func (Clock) SleepMillis(n int) {
	time.Sleep(time.Duration(n) * time.Millisecond)
}
