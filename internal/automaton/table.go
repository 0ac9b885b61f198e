package automaton

// Table is the assembled HR lookup table described by spec.md §4: a
// single dense int32 array addressed by the chained-array-index query
// protocol in query.go. HR[0] holds the no-flush block's base offset,
// HR[1] the suit-4 flush-rank block's base offset (before the caller
// adds 56 and the per-suit pointer shift).
type Table struct {
	HR []int32
}
