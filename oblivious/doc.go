// Package oblivious provides the fixed catalog of branch-free,
// data-independent primitives the rest of ctdiff is built on.
//
// Every function here is total over the lengths of its arguments: its
// instruction count, its memory-access pattern, and (to the extent the
// target's compiler and hardware cooperate) its wall-clock time depend
// only on those lengths, never on the values being compared. Callers in
// ctdiff/engine and ctdiff/security must never wrap these in a
// value-dependent branch — doing so reintroduces exactly the timing
// leak this package exists to close.
package oblivious
