package oblivious

// Lookup returns table[index] while touching every element of table,
// so that which slot held the answer is not observable from cache or
// memory-access timing. Its behavior is undefined if index is outside
// [0, len(table)).
func Lookup(table []byte, index int) byte {
	var result byte
	for i, v := range table {
		isTarget := Eq32(int32(i), int32(index))
		result = byte(Select(isTarget, int(v), int(result)))
	}
	return result
}

// LookupRow returns a copy of table[index], a variable-width row,
// while touching every row in table. Used to fetch an interned
// token's payload bytes during script reconstruction without
// revealing which token ID was selected.
func LookupRow(table [][]byte, index int) []byte {
	width := 0
	for _, row := range table {
		if len(row) > width {
			width = len(row)
		}
	}

	result := make([]byte, width)
	var resultLen int
	for i, row := range table {
		isTarget := Eq32(int32(i), int32(index))
		padded := make([]byte, width)
		copy(padded, row)
		CmovRow(result, padded, int(isTarget))
		resultLen = Select(int(isTarget), len(row), resultLen)
	}
	return result[:resultLen]
}

// CmovRow conditionally copies len(src) bytes from src into dst
// (which must be at least as long) if cond == 1; if cond == 0, dst is
// left unchanged. Every position in the row is read and written
// regardless of cond, so the instruction trace does not reveal which
// branch was taken.
func CmovRow(dst, src []byte, cond int) {
	n := len(src)
	if len(dst) < n {
		n = len(dst)
	}
	mask := byte(0) - byte(cond)
	masked := make([]byte, n)
	XorBytes(masked, dst[:n], src[:n], n)
	for i := 0; i < n; i++ {
		dst[i] ^= masked[i] & mask
	}
}
