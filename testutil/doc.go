// Package testutil provides testing utilities for bitarray.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded random source for generating access patterns and
// a reference model to check bit vectors against.
//
// # Random Access Patterns
//
//	rng := testutil.NewRNG(seed)
//	ops := rng.Ops(10_000, size) // random Set operations in [0, size)
//
// # Reference Model
//
// Oracle mirrors every write into a roaring bitmap:
//
//	oracle := testutil.NewOracle()
//	for _, op := range ops {
//	    _ = ba.Set(op.Position, op.Value)
//	    oracle.Set(op.Position, op.Value)
//	}
//	mismatches, err := oracle.Mismatches(ba, size)
package testutil
