// Package brew is the boundary between unbrew and the Homebrew executable.
//
// It knows the three invocation shapes unbrew needs and nothing else:
//
//	brew list --formula          installed formula names, whitespace separated
//	brew info --json <names...>  JSON array of formula records
//	brew rm <name>               removal, only the exit status matters
//
// Every call spawns exactly one process through a Runner and is never
// retried. A non-zero exit becomes an ErrBrewExec error carrying the call's
// stderr verbatim; output that is not UTF-8 text, or JSON that does not match
// the expected schema, becomes ErrBrewDecode. The package makes no decisions
// about which formulas are needed.
package brew
