package oblivious

import "runtime"

// Wipe sets every byte in x to zero.
//
//go:noinline
func Wipe(x []byte) {
	// You don't have to twist the Go compiler's arm to keep it
	// from optimizing a piece of code. But, for insurance
	// reasons we mark Wipe as "noinline" so that the compiler
	// (hopefully) won't peer inside it and notice that x can be
	// DCEd.
	for i := range x {
		x[i] = 0
	}
	// Additionally, KeepAlive should (hopefully) nudge the
	// compiler away from DCEing the for-loop.
	runtime.KeepAlive(x)
}

// WipeInt32 sets every element of x to zero.
//
// It is the int32 counterpart of Wipe, used to scrub the cost matrix
// and other scratch buffers that are not addressed as raw bytes.
//
//go:noinline
func WipeInt32(x []int32) {
	for i := range x {
		x[i] = 0
	}
	runtime.KeepAlive(x)
}
