// Package deps decides which installed formulas nothing else needs.
//
// BuildSet turns formula metadata into the Dependency Set: every name that
// some installed formula declares as a dependency, links at runtime, or, when
// it has no bottle, needs to build. Former names are folded in afterwards so
// that a formula used under its canonical name is also considered used under
// each of its old names. The reverse is not applied: an old name referenced
// by a stale dependency list does not mark the canonical name as used.
//
// Orphans subtracts that set from the installed list. Both are recomputed
// from live brew state on every call.
package deps
