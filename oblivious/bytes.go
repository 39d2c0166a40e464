package oblivious

// EqualPrefix returns 1 iff the first n bytes of a and b match. Both
// slices must have length >= n. Every position in [0,n) is compared;
// there is no early exit on the first mismatch.
//
// This is the bytes_eq(A, B, n) primitive of the oblivious catalog: it
// takes an explicit, publicly-known length rather than trusting
// len(a) == len(b), because in text-token mode a and b may be back-to-
// back token payloads of different underlying capacity.
func EqualPrefix(a, b []byte, n int) int {
	var acc byte
	for i := 0; i < n; i++ {
		acc |= a[i] ^ b[i]
	}
	return Eq8(acc, 0)
}

// MemcmpLex lexicographically compares a and b, returning -1, 0, or 1
// exactly as bytes.Compare would, but without shortcutting on the
// first mismatching byte: it examines all of min(len(a), len(b)) bytes
// before consulting the length difference.
func MemcmpLex(a, b []byte) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	result := int32(0)
	for i := 0; i < n; i++ {
		diff := int32(a[i]) - int32(b[i])
		isZero := Eq32(result, 0)
		result = Select32(isZero, diff, result)
	}

	if result != 0 {
		if result < 0 {
			return -1
		}
		return 1
	}

	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}
