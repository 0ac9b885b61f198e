package automaton

import "errors"

// ErrInvariant marks a terminal evaluator producing a score below its
// automaton's minimum (0 for Flush-Suit, 1 for Flush-Rank and No-Flush)
// for a 9-card id reached through a well-formed enumeration path. The
// original C++ evaluators return -1 defensively when they encounter a
// card slot they don't expect (a sentinel that should be impossible to
// reach once an id is exactly 9 cards deep); rather than writing that -1
// into an int32 table cell — where a later query would silently treat it
// as a valid chain pointer — assembly surfaces it as an error.
var ErrInvariant = errors.New("automaton: invariant violation: terminal evaluator returned a non-positive score")
