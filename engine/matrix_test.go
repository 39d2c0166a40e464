package engine

import "testing"

func idsOf(s string) []ID {
	ids := make([]ID, len(s))
	for i, c := range []byte(s) {
		ids[i] = ID(c)
	}
	return ids
}

func TestFillMatrixKittenSitting(t *testing.T) {
	mx := fillMatrix(idsOf("kitten"), idsOf("sitting"))
	if got := mx.EditDistance(); got != 3 {
		t.Fatalf("kitten->sitting edit distance = %d, want 3", got)
	}
}

func TestFillMatrixIdentical(t *testing.T) {
	mx := fillMatrix(idsOf("abcdef"), idsOf("abcdef"))
	if got := mx.EditDistance(); got != 0 {
		t.Fatalf("identical inputs: edit distance = %d, want 0", got)
	}
}

func TestFillMatrixEmptyInputs(t *testing.T) {
	mx := fillMatrix(idsOf(""), idsOf(""))
	if got := mx.EditDistance(); got != 0 {
		t.Fatalf("empty vs empty: edit distance = %d, want 0", got)
	}

	mx = fillMatrix(idsOf(""), idsOf("abc"))
	if got := mx.EditDistance(); got != 3 {
		t.Fatalf("empty vs abc: edit distance = %d, want 3", got)
	}
}

func TestFillMatrixEveryCellVisited(t *testing.T) {
	a, b := idsOf("kitten"), idsOf("sitting")
	mx := fillMatrix(a, b)
	for i := 0; i <= len(a); i++ {
		for j := 0; j <= len(b); j++ {
			// Every cell must lie in the range the recurrence can
			// produce: never negative, and never more than i+j (the
			// delete-everything-then-insert-everything upper bound).
			v := mx.at(i, j)
			if v < 0 || int(v) > i+j {
				t.Fatalf("cell (%d,%d) = %d out of plausible range", i, j, v)
			}
		}
	}
}
