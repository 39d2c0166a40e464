package engine

import (
	"errors"
	"fmt"

	"github.com/ericlagergren/ctdiff/oblivious"
	"github.com/ericlagergren/ctdiff/security"
)

// Phase is one state of the engine's fixed execution pipeline, per
// spec.md §5: admission and allocation are the only phases that can
// fail, and once FillingMatrix begins the computation runs to
// completion unconditionally.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseValidating
	PhaseNormalizing
	PhaseFillingMatrix
	PhaseBacktracing
	PhaseScrubbing
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseValidating:
		return "validating"
	case PhaseNormalizing:
		return "normalizing"
	case PhaseFillingMatrix:
		return "filling_matrix"
	case PhaseBacktracing:
		return "backtracing"
	case PhaseScrubbing:
		return "scrubbing"
	default:
		return "unknown"
	}
}

// ErrTooManyEdits is returned when a comparison's edit distance would
// exceed the configured MaxEditDistance. Checked only after the full,
// unconditional matrix fill and backtrace have already run — the
// check itself does not shortcut any engine phase, it only decides
// whether the already-computed Result is returned to the caller.
var ErrTooManyEdits = errors.New("engine: edit distance exceeds configured maximum")

// Engine runs the fixed Idle -> Validating -> Normalizing ->
// FillingMatrix -> Backtracing -> Scrubbing -> Idle pipeline of
// spec.md §5 over a pair of already-tokenized inputs.
type Engine struct {
	cfg   security.Config
	phase Phase
}

// New builds an Engine bound to cfg.
func New(cfg security.Config) *Engine {
	return &Engine{cfg: cfg, phase: PhaseIdle}
}

// Phase reports the engine's current pipeline phase. An Engine is
// single-use per Diff call and always returns to PhaseIdle once Diff
// returns, whether it succeeded or failed.
func (e *Engine) Phase() Phase { return e.phase }

// Diff runs one full comparison of a against b, both already-interned
// token streams whose IDs come from one shared ID space (see
// TokenizeBytes, TokenizeLinePair and TokenizeTokenPair). It is synchronous and non-cancellable
// once FillingMatrix begins, per spec.md §5 — callers needing a
// deadline must check it themselves before calling Diff.
func (e *Engine) Diff(a, b Tokens) (Result, error) {
	defer func() { e.phase = PhaseIdle }()

	e.phase = PhaseValidating
	if err := security.Admit(e.cfg, len(a.Ids), len(b.Ids)); err != nil {
		return Result{}, fmt.Errorf("engine: %w", err)
	}

	e.phase = PhaseNormalizing
	idsA, idsB := idSlicesAsInt32(a.Ids), idSlicesAsInt32(b.Ids)
	paddedA, paddedB := security.Normalize(e.cfg, idsA, idsB, int32(IDPad))

	e.phase = PhaseFillingMatrix
	normA, normB := int32SliceAsIDs(paddedA), int32SliceAsIDs(paddedB)
	mx := fillMatrix(normA, normB)

	e.phase = PhaseBacktracing
	ops := extractScript(mx, normA, normB, a, b, len(a.Ids), len(b.Ids))

	e.phase = PhaseScrubbing
	if e.cfg.MemoryProtection {
		defer scrub(paddedA, paddedB, mx.cost)
		defer oblivious.Wipe(mx.trace)
	}

	stats := computeStats(ops)
	result := Result{
		script:   Script{Ops: ops},
		distance: int(mx.at(len(a.Ids), len(b.Ids))),
		stats:    stats,
		lenA:     len(a.Ids),
		lenB:     len(b.Ids),
	}

	if e.cfg.MaxEditDistance != security.NoMaxEditDistance && result.distance > e.cfg.MaxEditDistance {
		return Result{}, ErrTooManyEdits
	}
	return result, nil
}

// scrub overwrites every content-derived scratch buffer — the padded
// token-ID streams and the cost matrix itself — with zero. Per
// spec.md §5, this only runs when Config.MemoryProtection is set; the
// matrix's trace bytes are wiped separately with oblivious.Wipe since
// they are a []byte, not a []int32.
func scrub(buffers ...[]int32) {
	for _, buf := range buffers {
		oblivious.WipeInt32(buf)
	}
}

func idSlicesAsInt32(ids []ID) []int32 {
	out := make([]int32, len(ids))
	for i, id := range ids {
		out[i] = int32(id)
	}
	return out
}

func int32SliceAsIDs(xs []int32) []ID {
	out := make([]ID, len(xs))
	for i, x := range xs {
		out[i] = ID(x)
	}
	return out
}
