package automaton

// flushSuitStart is the fixed entry point for the suit-tracking chain: it
// skips the global reserved block (53 cells) and the suit automaton's
// own header block (another 53 cells).
const flushSuitStart = 106

// Result is the outcome of a detailed hand query: the winning score, and
// the suit a winning flush was made in, when the best hand is a flush.
type Result struct {
	Score int32
	// FlushSuit is 1..4 when the winning hand is a flush in that suit,
	// or 0 if no flush contributed to the winning score.
	FlushSuit int32
}

// Eval9 scores a 9-card Omaha hand (5 board cards, 4 pocket cards) using
// the 9-step chained array indexing protocol from spec.md §4.6.
func (t *Table) Eval9(board [5]int, pocket [4]int) int32 {
	return t.eval(board[:], pocket).Score
}

// Eval8 scores an 8-card hand (4 board cards) by padding a leading zero
// onto the board, matching the original's "pass zero for the first
// board card to evaluate a 7-card hand" convention one slot short.
func (t *Table) Eval8(board [4]int, pocket [4]int) int32 {
	return t.eval([]int{0, board[0], board[1], board[2], board[3]}, pocket).Score
}

// Eval7 scores a 7-card hand (3 board cards) by padding two leading
// zeros onto the board.
func (t *Table) Eval7(board [3]int, pocket [4]int) int32 {
	return t.eval([]int{0, 0, board[0], board[1], board[2]}, pocket).Score
}

// Eval9Detail is Eval9 plus the winning flush suit, when the best hand
// is a flush.
func (t *Table) Eval9Detail(board [5]int, pocket [4]int) Result {
	return t.eval(board[:], pocket)
}

// Eval8Detail is Eval8 plus the winning flush suit.
func (t *Table) Eval8Detail(board [4]int, pocket [4]int) Result {
	return t.eval([]int{0, board[0], board[1], board[2], board[3]}, pocket)
}

// Eval7Detail is Eval7 plus the winning flush suit.
func (t *Table) Eval7Detail(board [3]int, pocket [4]int) Result {
	return t.eval([]int{0, 0, board[0], board[1], board[2]}, pocket)
}

func (t *Table) eval(board []int, pocket [4]int) Result {
	hr := t.HR

	p := int32(flushSuitStart)
	for _, c := range board {
		p = hr[p+int32(c)]
	}
	for _, c := range pocket {
		p = hr[p+int32(c)]
	}
	flushSuit := p

	p = hr[0] + 53
	for _, c := range board {
		p = hr[p+int32(c)]
	}
	for _, c := range pocket {
		p = hr[p+int32(c)]
	}
	score := p

	var winningFlushSuit int32
	if flushSuit != 0 {
		shift := 4 - flushSuit
		p = hr[1] + 56
		for _, c := range board {
			p = hr[p+int32(c)+shift]
		}
		for _, c := range pocket {
			p = hr[p+int32(c)+shift]
		}
		if p > score {
			score = p
			winningFlushSuit = flushSuit
		}
	}

	return Result{Score: score, FlushSuit: winningFlushSuit}
}
