package security

import "github.com/ericlagergren/ctdiff/oblivious"

// EffectivePaddingSize determines the actual padded length to use for
// a given input pair, implementing spec.md §9 Open Question 2's
// resolution: "nearest power of two >= max(|A|,|B|)" when PaddingSize
// is not pinned. That auto-computed size is capped at MaxInputSize, so
// when the power of two would exceed MaxInputSize the result is
// MaxInputSize itself, which need not be a power of two.
func EffectivePaddingSize(cfg Config, lenA, lenB int) int {
	if !cfg.PadInputs {
		return 0
	}
	if cfg.PaddingSize > 0 {
		return cfg.PaddingSize
	}

	maxLen := lenA
	if lenB > maxLen {
		maxLen = lenB
	}
	padded := nextPowerOfTwo(maxLen)
	if padded > cfg.MaxInputSize {
		padded = cfg.MaxInputSize
	}
	return padded
}

// Normalize appends IDPad to a and b, an interned token-ID stream
// (see ctdiff/engine), up to the configured padding size. Scratch
// buffer length is always exactly the configured padding size,
// regardless of len(a) and len(b), so an allocator never observes the
// real lengths in Strict mode.
//
// a and b are copied, never mutated in place, and real tokens are
// written into the padded buffer through oblivious.CmovRow so that the
// write pattern for the "real" prefix is identical regardless of its
// length relative to the padding target.
func Normalize(cfg Config, a, b []int32, padID int32) (paddedA, paddedB []int32) {
	padSize := EffectivePaddingSize(cfg, len(a), len(b))
	if padSize == 0 {
		return append([]int32(nil), a...), append([]int32(nil), b...)
	}

	paddedA = copyIntoPadded(a, padSize, padID)
	paddedB = copyIntoPadded(b, padSize, padID)
	return paddedA, paddedB
}

func copyIntoPadded(src []int32, padSize int, padID int32) []int32 {
	dst := make([]int32, padSize)
	for i := range dst {
		dst[i] = padID
	}

	n := len(src)
	if n > padSize {
		n = padSize
	}
	dstBytes := int32SliceAsByteRows(dst[:n])
	srcBytes := int32SliceAsByteRows(src[:n])
	for i := range dstBytes {
		oblivious.CmovRow(dstBytes[i], srcBytes[i], 1)
	}
	decodeByteRows(dst[:n], dstBytes)
	return dst
}

// int32SliceAsByteRows/decodeByteRows let CmovRow's byte-oriented
// "touch every position" guarantee apply to the int32 token-ID stream
// without reinterpreting memory unsafely: each ID is encoded as a
// fixed 4-byte row, copied through CmovRow, then decoded back.
func int32SliceAsByteRows(xs []int32) [][]byte {
	rows := make([][]byte, len(xs))
	for i, x := range xs {
		rows[i] = []byte{byte(x), byte(x >> 8), byte(x >> 16), byte(x >> 24)}
	}
	return rows
}

func decodeByteRows(dst []int32, rows [][]byte) {
	for i, row := range rows {
		dst[i] = int32(row[0]) | int32(row[1])<<8 | int32(row[2])<<16 | int32(row[3])<<24
	}
}
