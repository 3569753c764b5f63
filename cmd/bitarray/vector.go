package main

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/bitarray"
	"github.com/hupe1980/bitarray/concurrent"
)

type vector interface {
	Set(position int, value bool) error
	Get(position int) (bool, error)
	Len() int
}

// newVector returns a plain BitArray for a single shard and a
// concurrent.Sharded otherwise.
func newVector(size, shards int) (vector, error) {
	if shards <= 1 {
		ba, err := bitarray.New(size)
		if err != nil {
			return nil, err
		}
		return ba, nil
	}

	s, err := concurrent.NewSharded(size, shards)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// verifyAll walks every position through false, true, false and checks each
// state. Shards of a concurrent.Sharded are verified in parallel.
// It returns the number of positions checked.
func verifyAll(ctx context.Context, v vector) (int, error) {
	ranges := [][2]int{{0, v.Len()}}
	if s, ok := v.(*concurrent.Sharded); ok {
		ranges = make([][2]int, s.NumShards())
		for i := range ranges {
			lo, hi := s.ShardRange(i)
			ranges[i] = [2]int{lo, hi}
		}
	}

	g, ctx := errgroup.WithContext(ctx)
	for _, r := range ranges {
		g.Go(func() error {
			return verifyRange(ctx, v, r[0], r[1])
		})
	}

	if err := g.Wait(); err != nil {
		return 0, err
	}

	return v.Len(), nil
}

func verifyRange(ctx context.Context, v vector, lo, hi int) error {
	if err := expectRange(v, lo, hi, false); err != nil {
		return err
	}

	for _, value := range []bool{true, false} {
		if err := ctx.Err(); err != nil {
			return err
		}

		for p := lo; p < hi; p++ {
			if err := v.Set(p, value); err != nil {
				return err
			}
		}

		if err := expectRange(v, lo, hi, value); err != nil {
			return err
		}
	}

	return nil
}

func expectRange(v vector, lo, hi int, want bool) error {
	for p := lo; p < hi; p++ {
		got, err := v.Get(p)
		if err != nil {
			return err
		}
		if got != want {
			return fmt.Errorf("position %d: got %t, want %t", p, got, want)
		}
	}
	return nil
}
