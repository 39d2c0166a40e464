package ctdiff

import (
	"context"
	"os"

	"github.com/ericlagergren/ctdiff/engine"
)

// CompareBytes compares a and b one byte at a time.
func (d *Differ) CompareBytes(a, b []byte) (*Result, error) {
	return d.diff(engine.TokenizeBytes(a), engine.TokenizeBytes(b))
}

// CompareText compares a and b one line at a time, per spec.md §9's
// resolved text-mode tokenization (each token includes its
// terminator).
func (d *Differ) CompareText(a, b string) (*Result, error) {
	tokA, tokB := engine.TokenizeLinePair([]byte(a), []byte(b))
	return d.diff(tokA, tokB)
}

// CompareTokens compares two already-segmented token sequences
// directly, for callers with a domain-specific notion of "token" the
// byte- and line-granularities don't fit (e.g. AST nodes, CSV
// records).
func (d *Differ) CompareTokens(a, b []engine.Token) (*Result, error) {
	tokA, tokB := engine.TokenizeTokenPair(a, b)
	return d.diff(tokA, tokB)
}

// CompareFiles reads leftPath and rightPath fully into memory and
// compares them byte-for-byte.
func (d *Differ) CompareFiles(leftPath, rightPath string) (*Result, error) {
	left, err := os.ReadFile(leftPath)
	if err != nil {
		return nil, &IOError{Path: leftPath, Err: err}
	}
	right, err := os.ReadFile(rightPath)
	if err != nil {
		return nil, &IOError{Path: rightPath, Err: err}
	}
	return d.CompareBytes(left, right)
}

// CompareFilesContext is CompareFiles with a caller-supplied deadline.
// The context is checked once, at admission, before the engine's
// FillingMatrix phase begins; per spec.md §5 the engine itself is
// synchronous and non-cancellable mid-fill, so ctx is never consulted
// again once the blocking diff has started — mirroring how the
// reference implementation's compare_files_async hands the already-
// read buffers to tokio::task::spawn_blocking and awaits it to
// completion rather than racing it against the caller's runtime.
func (d *Differ) CompareFilesContext(ctx context.Context, leftPath, rightPath string) (*Result, error) {
	left, err := os.ReadFile(leftPath)
	if err != nil {
		return nil, &IOError{Path: leftPath, Err: err}
	}
	right, err := os.ReadFile(rightPath)
	if err != nil {
		return nil, &IOError{Path: rightPath, Err: err}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	type outcome struct {
		res *Result
		err error
	}
	done := make(chan outcome, 1)
	go func() {
		res, err := d.CompareBytes(left, right)
		done <- outcome{res, err}
	}()

	out := <-done
	return out.res, out.err
}
