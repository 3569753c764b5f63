// Package concurrent provides goroutine-safe wrappers around bitarray.BitArray.
//
// The core BitArray has no internal synchronization. This package offers the
// two strategies for sharing one:
//   - Locked: one RWMutex per array
//   - Sharded: the bit space is partitioned across independently locked arrays
//
// Both keep the core error semantics: out-of-range accesses return
// *bitarray.OutOfRangeError with the global size and position.
package concurrent
