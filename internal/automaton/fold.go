// Package automaton implements the three folding automata that share one
// HR address space — Flush-Suit (FS), Flush-Rank (FR) and No-Flush (NF) —
// and the chained-index query protocol that walks their tables at lookup
// time.
//
// Grounded on original_source/raygen9.cpp's add_card_to_id_flush_suits,
// add_card_to_id_flush_ranks and add_card_to_id_no_flush.
package automaton

import (
	"github.com/lox/raygen9/internal/automaton/handid"
	"github.com/lox/raygen9/internal/card"
)

// anyCard is the Flush-Rank automaton's placeholder for a real card that
// exists in the hand but does not carry the suit currently being tracked.
// It deliberately shares raw-card value 1 so the table's "off-suit" slots
// can be filled by sampling a single representative transition (see
// dummyCard in assemble.go).
const anyCard = 1

// Step is a fold transition: given the automaton's current packed ID and
// the next raw card to add (1..52, or 0 to skip a board slot), it returns
// the extended canonical ID and whether the extension is legal. An
// illegal extension (duplicate card, or a path provably unable to reach
// a valid 9-card hand) returns ok == false.
type Step func(id handid.ID, newCard int) (handid.ID, bool)

// StepFlushSuits extends id with newCard for the suit-tracking automaton.
// Every real card collapses to its bare suit (1..4); a skipped board slot
// becomes card.SkipBoard. There is no invalid extension — the suit
// automaton accepts everything, since the only thing it is disallowed
// from answering with is "any given id"'s own safety fallback.
func StepFlushSuits(id handid.ID, newCard int) (handid.ID, bool) {
	pocket, board, nPocket, nBoard := handid.Unpack(id)
	transformed := transformSkip(newCard, func(c int) int { return card.Card(c).Suit() })
	pocket, board, nPocket, nBoard = handid.AddCard(transformed, pocket, board, nPocket, nBoard)
	return handid.Pack(pocket, board), true
}

// StepFlushRanks returns a Step specialized to targetSuit: cards of that
// suit fold to their face rank (2..14), every other card folds to
// anyCard, and a skipped board slot folds to card.SkipBoard.
func StepFlushRanks(targetSuit int) Step {
	return func(id handid.ID, newCard int) (handid.ID, bool) {
		transformed := transformSkip(newCard, func(c int) int {
			raw := card.Card(c)
			if raw.Suit() == targetSuit {
				return raw.Rank() + 1 // face value 2..14
			}
			return anyCard
		})

		pocket, board, nPocket, nBoard := handid.Unpack(id)
		for _, p := range pocket {
			if p != anyCard && p != int(card.SkipBoard) && p == transformed {
				return 0, false
			}
		}
		for _, b := range board {
			if b != anyCard && b != int(card.SkipBoard) && b == transformed {
				return 0, false
			}
		}

		pocket, board, nPocket, nBoard = handid.AddCard(transformed, pocket, board, nPocket, nBoard)

		nsp, nsb := 0, 0
		for _, p := range pocket {
			if p != anyCard && p != 0 {
				nsp++
			}
		}
		for _, b := range board {
			if b != anyCard && b != int(card.SkipBoard) && b != 0 {
				nsb++
			}
		}

		switch {
		case nBoard == 4 && nsb <= 1:
			return 0, false
		case nBoard == 5 && nsb <= 2:
			return 0, false
		case nBoard == 5 && nPocket == 3 && nsp == 0:
			return 0, false
		case nBoard == 5 && nPocket == 4 && nsp <= 1:
			return 0, false
		}

		return handid.Pack(pocket, board), true
	}
}

// StepNoFlush extends id with newCard for the suit-blind automaton: every
// real card folds to its bare rank (1..13), a skipped board slot folds to
// card.SkipBoard. The extension is illegal if it would require a fifth
// card of some rank (impossible with a standard deck once suits are
// reintroduced at terminal evaluation).
func StepNoFlush(id handid.ID, newCard int) (handid.ID, bool) {
	pocket, board, nPocket, nBoard := handid.Unpack(id)

	var rankCount [14]int
	for _, p := range pocket {
		rankCount[p]++
	}
	for _, b := range board {
		if b != int(card.SkipBoard) {
			rankCount[b]++
		}
	}

	transformed := transformSkip(newCard, func(c int) int { return card.Card(c).Rank() })
	pocket, board, nPocket, nBoard = handid.AddCard(transformed, pocket, board, nPocket, nBoard)
	if transformed != int(card.SkipBoard) {
		rankCount[transformed]++
	}
	for r := 1; r <= 13; r++ {
		if rankCount[r] > 4 {
			return 0, false
		}
	}
	return handid.Pack(pocket, board), true
}

// transformSkip maps the query-time "skip this board slot" sentinel (raw
// card value 0) to card.SkipBoard, and applies fn to every real card.
func transformSkip(newCard int, fn func(int) int) int {
	if newCard == 0 {
		return int(card.SkipBoard)
	}
	return fn(newCard)
}
