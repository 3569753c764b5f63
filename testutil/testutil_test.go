package testutil

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOps(t *testing.T) {
	rng := NewRNG(4711)

	ops := rng.Ops(1000, 64)

	assert.Equal(t, 1000, len(ops))
	for _, op := range ops {
		assert.GreaterOrEqual(t, op.Position, 0)
		assert.Less(t, op.Position, 64)
	}
}

func TestReset(t *testing.T) {
	rng := NewRNG(4711)
	p1 := rng.Positions(10, 100)

	rng.Reset()
	p2 := rng.Positions(10, 100)

	assert.Equal(t, p1, p2)
	assert.Equal(t, int64(4711), rng.Seed())
}

func TestOracle(t *testing.T) {
	o := NewOracle()

	o.Apply([]Op{{3, true}, {7, true}, {3, false}, {1, true}})

	assert.True(t, o.Get(7))
	assert.True(t, o.Get(1))
	assert.False(t, o.Get(3))
	assert.Equal(t, 2, o.Cardinality())
	assert.Equal(t, []int{1, 7}, o.Positions())
}

type mapGetter map[int]bool

func (m mapGetter) Get(position int) (bool, error) {
	if position >= 8 {
		return false, errors.New("out of range")
	}
	return m[position], nil
}

func TestOracle_Mismatches(t *testing.T) {
	o := NewOracle()
	o.Set(2, true)
	o.Set(5, true)

	mismatches, err := o.Mismatches(mapGetter{2: true, 4: true}, 8)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 5}, mismatches)

	_, err = o.Mismatches(mapGetter{}, 9)
	require.Error(t, err)
}
