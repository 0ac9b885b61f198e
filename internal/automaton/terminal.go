package automaton

import (
	"github.com/lox/raygen9/internal/automaton/handid"
	"github.com/lox/raygen9/internal/cactus"
	"github.com/lox/raygen9/internal/card"
)

// pocketPerms lists the 6 ways to choose 2 of 4 pocket cards, matching
// original_source/raygen9.cpp's pocket_perms.
var pocketPerms = [6][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}

// boardPerms lists the 10 ways to choose 3 of up to 5 board cards, grouped
// so the first 1/4/10 entries serve 3/4/5-card boards respectively.
var boardPerms = [10][3]int{
	{0, 1, 2},
	{0, 1, 3}, {0, 2, 3}, {1, 2, 3},
	{0, 1, 4}, {0, 2, 4}, {0, 3, 4}, {1, 2, 4}, {1, 3, 4}, {2, 3, 4},
}

func boardPermCount(n int) int {
	switch n {
	case 9:
		return 10
	case 8:
		return 4
	case 7:
		return 1
	}
	return 0
}

// skipSentinel reports whether v is the board-skip placeholder.
func skipSentinel(v int) bool { return v == int(card.SkipBoard) }

// compactBoard drops board-skip sentinels, shrinking the board to its
// real card count (3, 4 or 5 cards).
func compactBoard(board []int) []int {
	out := board[:0:0]
	for _, b := range board {
		if !skipSentinel(b) {
			out = append(out, b)
		}
	}
	return out
}

// EvalFlushSuits returns the suit (1..4) that reaches five or more shared
// cards between pocket and board, or 0 if no such suit exists. id carries
// 9 slots (4 pocket + 5 board); board slots holding card.SkipBoard, as
// 7- and 8-card hands do, are ignored.
func EvalFlushSuits(id handid.ID) int {
	pocket, board, _, _ := handid.Unpack(id)
	var nSuitPocket, nSuitBoard [5]int
	for _, p := range pocket {
		if nSuitPocket[p] < 2 {
			nSuitPocket[p]++
		}
	}
	for _, b := range board {
		if skipSentinel(b) {
			continue
		}
		if nSuitBoard[b] < 3 {
			nSuitBoard[b]++
		}
	}
	for suit := 1; suit <= 4; suit++ {
		if nSuitPocket[suit]+nSuitBoard[suit] >= 5 {
			return suit
		}
	}
	return 0
}

// EvalFlushRanks scores a 9-card id produced by the flush-rank-4
// automaton, picking the best 2-pocket/3-board combination among the
// cards that actually carry the tracked suit. Returns 0 if the id does
// not carry a legal flush shape (should not happen for a well-formed
// 9-card id from this automaton).
func EvalFlushRanks(id handid.ID) int {
	pocket, board, nPocket, nBoard := handid.Unpack(id)
	board = compactBoard(board)
	nBoard = len(board)

	if nPocket < 2 || nBoard < 3 {
		return 0
	}
	for _, p := range pocket[:2] {
		if p == anyCard {
			return 0
		}
	}
	for _, b := range board[:3] {
		if b == anyCard {
			return 0
		}
	}

	n := nPocket + nBoard
	nb := boardPermCount(n)
	best := cactus.WorstRank + 1
	for _, pp := range pocketPerms {
		r1, r2 := pocket[pp[0]]-2, pocket[pp[1]]-2
		if r1 < 0 || r1 > 12 || r2 < 0 || r2 > 12 {
			continue
		}
		for i := 0; i < nb; i++ {
			bp := boardPerms[i]
			r3, r4, r5 := board[bp[0]]-2, board[bp[1]]-2, board[bp[2]]-2
			if r3 < 0 || r3 > 12 || r4 < 0 || r4 > 12 || r5 < 0 || r5 > 12 {
				continue
			}
			mask := (1 << r1) | (1 << r2) | (1 << r3) | (1 << r4) | (1 << r5)
			if q := cactus.Flush(mask); q != 0 && q < best {
				best = q
			}
		}
	}
	return cactus.ToRay(best)
}

// EvalNoFlush scores a 9-card id produced by the suit-blind automaton,
// reintroducing arbitrary (round-robin) suits to each rank slot before
// evaluating with the cactus oracle, then takes the best 2-pocket/
// 3-board combination. Suit assignment only needs to be injective within
// the hand; which physical suits are chosen doesn't affect the category
// scoring since no flush can exist (ranks alone can't certify suitedness
// either way) among these cards.
func EvalNoFlush(id handid.ID) int {
	pocket, board, nPocket, nBoard := handid.Unpack(id)
	board = compactBoard(board)
	nBoard = len(board)

	n := nPocket + nBoard
	nb := boardPermCount(n)
	if nPocket < 4 || nBoard < 3 {
		return 0
	}

	suit := 0
	cactusPocket := make([]cactus.Card, nPocket)
	for i, p := range pocket {
		cactusPocket[i] = cactus.Encode(p, (suit%4)+1)
		suit++
	}
	cactusBoard := make([]cactus.Card, nBoard)
	for i, b := range board {
		cactusBoard[i] = cactus.Encode(b, (suit%4)+1)
		suit++
	}

	best := cactus.WorstRank + 1
	for _, pp := range pocketPerms {
		for i := 0; i < nb; i++ {
			bp := boardPerms[i]
			q := cactus.NoFlush(
				cactusPocket[pp[0]], cactusPocket[pp[1]],
				cactusBoard[bp[0]], cactusBoard[bp[1]], cactusBoard[bp[2]],
			)
			if q != 0 && q < best {
				best = q
			}
		}
	}
	return cactus.ToRay(best)
}
