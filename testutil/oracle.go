package testutil

import (
	"github.com/RoaringBitmap/roaring/v2"
)

// Getter is the read side of a bit vector.
type Getter interface {
	Get(position int) (bool, error)
}

// Oracle is a reference bit set backed by a roaring bitmap.
// Positions must fit in a uint32.
type Oracle struct {
	rb *roaring.Bitmap
}

// NewOracle returns an empty Oracle.
func NewOracle() *Oracle {
	return &Oracle{rb: roaring.New()}
}

// Set records value at position.
func (o *Oracle) Set(position int, value bool) {
	if value {
		o.rb.Add(uint32(position))
	} else {
		o.rb.Remove(uint32(position))
	}
}

// Get reports whether position was last set to true.
func (o *Oracle) Get(position int) bool {
	return o.rb.Contains(uint32(position))
}

// Apply records every op in order.
func (o *Oracle) Apply(ops []Op) {
	for _, op := range ops {
		o.Set(op.Position, op.Value)
	}
}

// Cardinality returns the number of positions set to true.
func (o *Oracle) Cardinality() int {
	return int(o.rb.GetCardinality())
}

// Positions returns the positions set to true in ascending order.
func (o *Oracle) Positions() []int {
	arr := o.rb.ToArray()

	positions := make([]int, len(arr))
	for i, p := range arr {
		positions[i] = int(p)
	}

	return positions
}

// Mismatches compares g against the oracle over [0, size) and returns every
// position where they disagree. The first read error aborts the comparison.
func (o *Oracle) Mismatches(g Getter, size int) ([]int, error) {
	var mismatches []int

	for p := 0; p < size; p++ {
		got, err := g.Get(p)
		if err != nil {
			return mismatches, err
		}
		if got != o.Get(p) {
			mismatches = append(mismatches, p)
		}
	}

	return mismatches, nil
}
