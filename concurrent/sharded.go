package concurrent

import (
	"errors"
	"fmt"

	"github.com/hupe1980/bitarray"
)

// ErrInvalidShardCount is returned when a Sharded bit array is created with
// fewer than one shard.
var ErrInvalidShardCount = errors.New("invalid shard count")

// Sharded splits [0, size) into contiguous ranges, each backed by its own
// Locked bit array. Writers to different shards never contend.
//
// Shard i covers [i*span, min((i+1)*span, size)) where span = ceil(size/n).
type Sharded struct {
	size   int
	span   int
	shards []*Locked
}

// NewSharded creates a Sharded bit array of size bits split into n shards.
// When size < n the trailing shards are empty.
func NewSharded(size, n int) (*Sharded, error) {
	if size < 0 {
		return nil, fmt.Errorf("%w: %d", bitarray.ErrInvalidSize, size)
	}
	if n < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidShardCount, n)
	}

	span := (size + n - 1) / n
	if span == 0 {
		span = 1
	}

	s := &Sharded{
		size:   size,
		span:   span,
		shards: make([]*Locked, n),
	}

	for i := range s.shards {
		lo, hi := s.bounds(i)

		l, err := NewLocked(hi - lo)
		if err != nil {
			return nil, err
		}
		s.shards[i] = l
	}

	return s, nil
}

// Set sets the bit at position to value. Only the owning shard is locked.
func (s *Sharded) Set(position int, value bool) error {
	if err := s.check(position); err != nil {
		return err
	}
	return s.shards[position/s.span].Set(position%s.span, value)
}

// Get reads the bit at position.
func (s *Sharded) Get(position int) (bool, error) {
	if err := s.check(position); err != nil {
		return false, err
	}
	return s.shards[position/s.span].Get(position % s.span)
}

// Len returns the capacity in bits.
func (s *Sharded) Len() int {
	return s.size
}

// NumShards returns the number of shards.
func (s *Sharded) NumShards() int {
	return len(s.shards)
}

// ShardRange returns the half-open global range [lo, hi) covered by shard i.
func (s *Sharded) ShardRange(i int) (lo, hi int) {
	return s.bounds(i)
}

func (s *Sharded) bounds(i int) (int, int) {
	lo := min(i*s.span, s.size)
	hi := min(lo+s.span, s.size)
	return lo, hi
}

// check reports out-of-range positions against the global size so callers
// never see shard-local coordinates.
func (s *Sharded) check(position int) error {
	if position < 0 || position >= s.size {
		return &bitarray.OutOfRangeError{Size: s.size, Position: position}
	}
	return nil
}
