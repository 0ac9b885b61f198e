// Package verify implements the brute-force cross-check described in
// spec.md §4.7: for every 7/8/9-card combination of distinct cards, the
// score produced by a generated automaton.Table must match an
// independently computed reference score.
//
// The reference score is computed directly against internal/cactus
// rather than against a second persisted HR-shaped table: the original's
// own description of the reference computation ("the best across all
// 6x{1,4,10} pocket-pair/board-triple 5-card subhands") is itself a
// complete algorithm, and re-deriving it here — without going anywhere
// near internal/automaton's fold/terminal code — is what makes this a
// genuine cross-check rather than the table checking itself.
package verify

import (
	"github.com/lox/raygen9/internal/cactus"
	"github.com/lox/raygen9/internal/card"
)

// pocketChoices enumerates the 6 ways to choose 2 of 4 pocket cards,
// independently of internal/automaton.pocketPerms.
var pocketChoices = [6][2]int{
	{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3},
}

// boardChoices enumerates the ways to choose 3 of n board cards (n is 3,
// 4, or 5 for 7/8/9-card hands), independently of
// internal/automaton.boardPerms.
func boardChoices(n int) [][3]int {
	var out [][3]int
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			for k := j + 1; k < n; k++ {
				out = append(out, [3]int{i, j, k})
			}
		}
	}
	return out
}

// Reference scores a 7, 8, or 9 card Omaha hand by brute-force search
// over every legal 2-pocket/3-board combination, in the table's
// "higher is better" convention.
func Reference(board, pocket []card.Card) int {
	best := 0
	for _, pc := range pocketChoices {
		p1, p2 := pocket[pc[0]], pocket[pc[1]]
		for _, bc := range boardChoices(len(board)) {
			b1, b2, b3 := board[bc[0]], board[bc[1]], board[bc[2]]
			score := cactus.ToRay(rank5(p1, p2, b1, b2, b3))
			if score > best {
				best = score
			}
		}
	}
	return best
}

// rank5 computes the Cactus-Kev-style rank (lower is better) of 5 raw
// cards, detecting a flush directly from their suits rather than relying
// on any code path shared with internal/automaton.
func rank5(c1, c2, c3, c4, c5 card.Card) int {
	cards := [5]card.Card{c1, c2, c3, c4, c5}

	flush := true
	for _, c := range cards[1:] {
		if c.Suit() != cards[0].Suit() {
			flush = false
			break
		}
	}

	encoded := make([]cactus.Card, 5)
	for i, c := range cards {
		encoded[i] = cactus.Encode(c.Rank(), c.Suit())
	}

	if flush {
		return cactus.Flush(cactus.RankMask(encoded...))
	}
	return cactus.NoFlush(encoded[0], encoded[1], encoded[2], encoded[3], encoded[4])
}
