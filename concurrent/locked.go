package concurrent

import (
	"sync"

	"github.com/hupe1980/bitarray"
)

// Locked guards a single BitArray with a read-write mutex.
type Locked struct {
	mu sync.RWMutex
	ba *bitarray.BitArray
}

// NewLocked creates a Locked bit array of size bits.
func NewLocked(size int) (*Locked, error) {
	ba, err := bitarray.New(size)
	if err != nil {
		return nil, err
	}
	return &Locked{ba: ba}, nil
}

// Set sets the bit at position to value under the write lock.
func (l *Locked) Set(position int, value bool) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.ba.Set(position, value)
}

// Get reads the bit at position under the read lock.
func (l *Locked) Get(position int) (bool, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.ba.Get(position)
}

// Len returns the capacity in bits.
func (l *Locked) Len() int {
	return l.ba.Len()
}
