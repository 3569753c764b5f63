// Package bitarray provides a fixed-capacity bit vector packed into bytes.
//
// A BitArray of size N addresses bits [0, N). Every access is bounds checked
// and reports failures as values, never panics.
//
// # Quick Start
//
//	ba, err := bitarray.New(1024)
//	if err != nil {
//	    return err
//	}
//	if err := ba.Set(42, true); err != nil {
//	    return err
//	}
//	ok, _ := ba.Get(42) // true
//
// # Layout
//
// Bits are packed eight per byte, least-significant bit first:
//
//	position:  7 6 5 4 3 2 1 0 | 15 14 13 12 11 10 9 8 | ...
//	byte:      ------ 0 ------ | -------- 1 --------- | ...
//
// The backing buffer always holds size/8+1 bytes, so one byte of headroom
// exists even when size is a multiple of 8. Padding bits are never written.
//
// # Errors
//
// Accesses outside [0, Len()) return *OutOfRangeError, which also matches
// ErrOutOfRange via errors.Is:
//
//	var oor *bitarray.OutOfRangeError
//	if errors.As(err, &oor) {
//	    fmt.Println(oor.Size, oor.Position)
//	}
//
// The rendered message is stable:
//
//	Given position: 10 is out of the bitarray size 10.
//
// # Concurrency
//
// BitArray has no internal synchronization. Callers sharing one across
// goroutines must serialize access themselves; package concurrent provides
// a locked wrapper and a sharded variant that splits the bit space across
// independently locked arrays.
package bitarray
