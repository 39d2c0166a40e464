// Package ctdiff is the public facade over the constant-time diff
// engine: it wires together ctdiff/security's admission envelope and
// ctdiff/engine's branch-free Myers matrix and backtrace, and exposes
// the small surface most callers need without touching either
// subpackage directly.
package ctdiff
