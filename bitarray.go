package bitarray

import "fmt"

// bitsPerByte is the number of logical bits packed into one storage byte.
const bitsPerByte = 8

// BitArray is a fixed-capacity vector of bits packed into bytes.
//
// Bit i lives in byte i/8 at offset i%8, least-significant bit first.
// A BitArray is not safe for concurrent use; see package concurrent.
type BitArray struct {
	size int
	bits []byte
}

// New creates a BitArray holding size bits, all false.
//
// The backing buffer always has size/8+1 bytes, so one byte of headroom
// exists even when size is a multiple of 8.
func New(size int) (*BitArray, error) {
	if size < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}

	return &BitArray{
		size: size,
		bits: make([]byte, size/bitsPerByte+1),
	}, nil
}

// Set sets the bit at position to value.
// It returns an *OutOfRangeError without mutating anything if position is
// outside [0, Len()).
func (b *BitArray) Set(position int, value bool) error {
	if err := b.check(position); err != nil {
		return err
	}

	idx, mask := byteIndex(position), bitMask(position)
	if value {
		b.bits[idx] |= mask
	} else {
		b.bits[idx] &^= mask
	}

	return nil
}

// Get reports whether the bit at position is set.
func (b *BitArray) Get(position int) (bool, error) {
	if err := b.check(position); err != nil {
		return false, err
	}

	mask := bitMask(position)

	return b.bits[byteIndex(position)]&mask == mask, nil
}

// Len returns the capacity in bits.
func (b *BitArray) Len() int {
	return b.size
}

// ByteLen returns the length of the backing buffer in bytes.
func (b *BitArray) ByteLen() int {
	return len(b.bits)
}

func (b *BitArray) check(position int) error {
	if position < 0 || position >= b.size {
		return &OutOfRangeError{Size: b.size, Position: position}
	}
	return nil
}

func byteIndex(position int) int {
	return position / bitsPerByte
}

func bitMask(position int) byte {
	return 1 << (position % bitsPerByte)
}
