package ctdiff

import (
	"errors"

	"github.com/ericlagergren/ctdiff/engine"
	"github.com/ericlagergren/ctdiff/security"
)

// Differ runs comparisons under a fixed, validated security policy.
// It is safe for concurrent use: each call to a Compare* method builds
// its own engine.Engine, so no mutable state is shared across calls.
type Differ struct {
	cfg security.Config
}

// New builds a Differ from opts applied in order over
// security.Default(), then validates the resulting Config exactly as
// security.rs::validate does (SecurityError on failure).
func New(opts ...Option) (*Differ, error) {
	cfg := security.Default()
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, &SecurityError{Op: "configure", Err: err}
		}
	}
	if err := security.Validate(cfg); err != nil {
		return nil, &SecurityError{Op: "validate", Err: err}
	}
	return &Differ{cfg: cfg}, nil
}

// Config returns the Differ's resolved, validated security policy.
func (d *Differ) Config() security.Config { return d.cfg }

func (d *Differ) diff(a, b engine.Tokens) (*Result, error) {
	eng := engine.New(d.cfg)
	res, err := eng.Diff(a, b)
	if errors.Is(err, engine.ErrTooManyEdits) {
		// Per spec.md §9: returning the precise distance here would
		// defeat the cap's purpose, since the distance itself is a
		// content-similarity measure. The caller gets only the fact
		// that the cap was exceeded, not the value that exceeded it.
		return nil, &SecurityError{Op: "compare", Err: engine.ErrTooManyEdits}
	}
	if err != nil {
		return nil, &SecurityError{Op: "compare", Err: err}
	}
	return &Result{r: res}, nil
}
