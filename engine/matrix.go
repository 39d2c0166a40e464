package engine

import "github.com/ericlagergren/ctdiff/oblivious"

// matrix is the (n+1) x (m+1) edit-cost matrix of spec.md §4.3. Cost
// is stored flat, row-major, so fillMatrix's access pattern does not
// depend on a row's content — only on the fixed n, m it was built
// with.
type matrix struct {
	n, m  int
	cost  []int32
	trace []byte // backpointer: tieBreak code per cell, see backtrace.go
}

func newMatrix(n, m int) *matrix {
	return &matrix{
		n:     n,
		m:     m,
		cost:  make([]int32, (n+1)*(m+1)),
		trace: make([]byte, (n+1)*(m+1)),
	}
}

func (mx *matrix) at(i, j int) int32     { return mx.cost[i*(mx.m+1)+j] }
func (mx *matrix) set(i, j int, v int32) { mx.cost[i*(mx.m+1)+j] = v }
func (mx *matrix) setTrace(i, j int, t byte) { mx.trace[i*(mx.m+1)+j] = t }
func (mx *matrix) traceAt(i, j int) byte     { return mx.trace[i*(mx.m+1)+j] }

// Backpointer codes, in the fixed tie-break priority order of
// spec.md §4.3.2: Substitute/Keep before Delete before Insert.
const (
	tieDiag byte = iota // Keep (a[i-1]==b[j-1]) or Substitute
	tieUp               // Delete a[i-1]
	tieLeft             // Insert b[j-1]
)

// fillMatrix computes the edit-cost matrix for a against b, a and b
// being interned token-ID streams (see token.go). Every cell (i, j)
// for i in [0, n], j in [0, m] is visited and written exactly once,
// regardless of a's and b's content — including the padded tail when
// the caller has normalized a and b to a fixed length (spec.md §4.2's
// "pad_inputs" flow) — so the number of loop iterations is a function
// of n and m alone, the two publicly declared lengths, never the
// location of the inputs' differences.
//
// No branch in this function reads a[i-1] or b[j-1] to decide whether
// to skip work: the substitution-vs-match cost and the three
// predecessors' costs are always all computed, and oblivious.Min32
// picks the cheapest one without a conditional jump keyed on which
// predecessor won.
func fillMatrix(a, b []ID) *matrix {
	n, m := len(a), len(b)
	mx := newMatrix(n, m)

	for j := 0; j <= m; j++ {
		mx.set(0, j, int32(j))
		mx.setTrace(0, j, tieLeft)
	}
	for i := 0; i <= n; i++ {
		mx.set(i, 0, int32(i))
		mx.setTrace(i, 0, tieUp)
	}
	mx.setTrace(0, 0, tieDiag)

	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			eq := oblivious.Eq32(int32(a[i-1]), int32(b[j-1]))
			substCost := oblivious.Select32(eq, 0, 1)

			diag := mx.at(i-1, j-1) + substCost
			up := mx.at(i-1, j) + 1
			left := mx.at(i, j-1) + 1

			best := oblivious.Min32(diag, oblivious.Min32(up, left))
			mx.set(i, j, best)

			// Fixed tie-break priority: diag wins ties against up and
			// left; up wins ties against left. Every comparison below
			// runs regardless of which branch "wins", and the final
			// trace code is chosen with nested oblivious selects, not
			// an if/else on the costs.
			diagWins := oblivious.Eq32(diag, best)
			upWins := oblivious.Eq32(up, best)

			codeIfNotDiag := oblivious.Select32(upWins, int32(tieUp), int32(tieLeft))
			code := oblivious.Select32(diagWins, int32(tieDiag), codeIfNotDiag)
			mx.setTrace(i, j, byte(code))
		}
	}

	return mx
}

// EditDistance is the cost of the cheapest edit script transforming a
// into b, i.e. the bottom-right cell of the filled matrix.
func (mx *matrix) EditDistance() int {
	return int(mx.at(mx.n, mx.m))
}
