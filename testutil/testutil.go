package testutil

import (
	"math/rand"
	"sync"
)

// Op is a single write against a bit vector.
type Op struct {
	Position int
	Value    bool
}

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand = rand.New(rand.NewSource(r.seed))
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Bool returns a pseudo-random boolean.
func (r *RNG) Bool() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(2) == 1
}

// Positions returns n pseudo-random positions in [0, size).
// Positions may repeat.
func (r *RNG) Positions(n, size int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()

	positions := make([]int, n)
	for i := range positions {
		positions[i] = r.rand.Intn(size)
	}

	return positions
}

// Ops returns n pseudo-random writes with positions in [0, size).
// Locks only once per call (preferred over calling Intn in a loop).
func (r *RNG) Ops(n, size int) []Op {
	r.mu.Lock()
	defer r.mu.Unlock()

	ops := make([]Op, n)
	for i := range ops {
		ops[i] = Op{
			Position: r.rand.Intn(size),
			Value:    r.rand.Intn(2) == 1,
		}
	}

	return ops
}
