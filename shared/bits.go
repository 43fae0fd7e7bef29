package shared

import (
	"math/bits"
)

// NumBits returns the number of significant bits in val, with a minimum
// of 1 for zero.
func NumBits(val uint64) int {
	if val == 0 {
		return 1
	}
	return bits.Len64(val)
}

// NumBytes returns the number of bytes needed to hold numBits bits.
func NumBytes(numBits uint64) uint64 {
	return (numBits + 7) / 8
}
