package ctdiff

import "github.com/ericlagergren/ctdiff/engine"

// Result is the outcome of a comparison. It is a thin facade over
// engine.Result: ctdiff.New's callers never need to import
// ctdiff/engine directly for the common case.
type Result struct {
	r engine.Result
}

// EditDistance is the minimum number of Substitute/Delete/Insert
// operations needed to transform A into B.
func (res *Result) EditDistance() int { return res.r.EditDistance() }

// Similarity is a 0.0-1.0 score, 1.0 for identical inputs.
func (res *Result) Similarity() float64 { return res.r.Similarity() }

// IsIdentical reports whether A and B compared equal.
func (res *Result) IsIdentical() bool { return res.r.IsIdentical() }

// Statistics returns the edit script's per-operation-kind counts.
func (res *Result) Statistics() engine.Statistics { return res.r.Statistics() }

// Script returns the edit script achieving EditDistance.
func (res *Result) Script() engine.Script { return res.r.Script() }

// Result.Format is intentionally not implemented: formatters are an
// out-of-scope external collaborator (see ctdiff.FormatError), so
// there is no method here to silently no-op.
