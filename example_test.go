package bitarray_test

import (
	"errors"
	"fmt"

	"github.com/hupe1980/bitarray"
)

func ExampleBitArray() {
	ba, err := bitarray.New(10)
	if err != nil {
		panic(err)
	}

	_ = ba.Set(3, true)

	ok, _ := ba.Get(3)
	fmt.Println(ok)

	ok, _ = ba.Get(4)
	fmt.Println(ok)
	// Output:
	// true
	// false
}

func ExampleOutOfRangeError() {
	ba, _ := bitarray.New(10)

	_, err := ba.Get(10)

	var oor *bitarray.OutOfRangeError
	if errors.As(err, &oor) {
		fmt.Println(oor.Size, oor.Position)
	}
	fmt.Println(err)
	// Output:
	// 10 10
	// Given position: 10 is out of the bitarray size 10.
}
