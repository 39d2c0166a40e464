package oblivious

import "crypto/subtle"

// Eq8 returns 1 if x == y and 0 otherwise.
func Eq8(x, y uint8) int {
	return subtle.ConstantTimeByteEq(x, y)
}

// BytesEqual returns 1 if the two slices, x and y, have equal contents
// and 0 otherwise.
//
// The time taken is a function of the length of the slices and is
// independent of the contents.
func BytesEqual(x, y []byte) int {
	return subtle.ConstantTimeCompare(x, y)
}

// Eq32 returns 1 if x == y and 0 otherwise.
func Eq32(x, y int32) int {
	return subtle.ConstantTimeEq(x, y)
}

// Select returns x if v == 1 and y if v == 0.
// Its behavior is undefined if v takes any other value.
func Select(v, x, y int) int {
	return subtle.ConstantTimeSelect(v, x, y)
}
