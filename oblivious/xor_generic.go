// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package oblivious

import (
	"runtime"
	"unsafe"
)

const wordSize = int(unsafe.Sizeof(uintptr(0)))
const supportsUnaligned = runtime.GOARCH == "386" || runtime.GOARCH == "ppc64" || runtime.GOARCH == "ppc64le" || runtime.GOARCH == "s390x"

// XorBytes XORs the first n bytes of x and y into dst. All three
// slices must be at least n bytes long.
//
// It is the word-at-a-time helper CmovRow uses to compute dst XOR src
// before applying its condition mask, without a data-dependent branch.
func XorBytes(dst, x, y []byte, n int) {
	if n == 0 {
		return
	}
	xorBytes(&dst[0], &x[0], &y[0], n)
}

func xorBytes(dst, x, y *byte, n int) {
	if supportsUnaligned || aligned(dst, x, y, n) {
		xorWordsLoop(dst, x, y, n)
		done := n &^ (wordSize - 1)
		if done == n {
			return
		}
		dst = &unsafe.Slice(dst, n)[done]
		x = &unsafe.Slice(x, n)[done]
		y = &unsafe.Slice(y, n)[done]
		n -= done
	}
	xorBytesLoop(dst, x, y, n)
}

func aligned(dst, x, y *byte, n int) bool {
	return (uintptr(unsafe.Pointer(dst))|uintptr(unsafe.Pointer(x))|uintptr(unsafe.Pointer(y))|uintptr(n))&(uintptr(wordSize)-1) == 0
}

func xorWordsLoop(dst, x, y *byte, n int) {
	n /= wordSize
	dstw := unsafe.Slice((*uintptr)(unsafe.Pointer(dst)), n)
	xw := unsafe.Slice((*uintptr)(unsafe.Pointer(x)), n)
	yw := unsafe.Slice((*uintptr)(unsafe.Pointer(y)), n)
	for i := 0; i < n; i++ {
		dstw[i] = xw[i] ^ yw[i]
	}
}

func xorBytesLoop(dst, x, y *byte, n int) {
	dstSl := unsafe.Slice(dst, n)
	xSl := unsafe.Slice(x, n)
	ySl := unsafe.Slice(y, n)

	for i := 0; i < n; i++ {
		dstSl[i] = xSl[i] ^ ySl[i]
	}
}
