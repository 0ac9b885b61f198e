package verify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lox/raygen9/internal/card"
)

func TestReferencePicksBestOfTwoPocketThreeBoard(t *testing.T) {
	t.Parallel()

	// Board carries a pair of nines plus filler; one pocket pair (aces)
	// beats the other (fours) — Reference must pick the ace-up two pair.
	board := []card.Card{card.New(1, 9), card.New(2, 9), card.New(3, 2)}
	pocket := []card.Card{card.New(1, 13), card.New(2, 13), card.New(3, 4), card.New(4, 4)}

	got := Reference(board, pocket)
	assert.Positive(t, got)

	// Swap in a worse pocket pair and confirm the score drops.
	worsePocket := []card.Card{card.New(1, 3), card.New(2, 3), card.New(3, 4), card.New(4, 4)}
	worse := Reference(board, worsePocket)
	assert.Greater(t, got, worse)
}

func TestReferenceDetectsFlushAcrossPocketAndBoard(t *testing.T) {
	t.Parallel()

	// Three low cards of suit 1 on the board, two high cards of suit 1
	// in the pocket: a flush is reachable only by using exactly 2 pocket
	// + 3 board cards, all of suit 1.
	board := []card.Card{card.New(1, 2), card.New(1, 5), card.New(1, 8)}
	pocket := []card.Card{card.New(1, 11), card.New(1, 13), card.New(2, 4), card.New(3, 6)}

	flushScore := Reference(board, pocket)

	// Replace the board with an unsuited set of the same ranks: no flush
	// is reachable, so the score must be strictly lower.
	offSuitBoard := []card.Card{card.New(2, 2), card.New(3, 5), card.New(4, 8)}
	noFlushScore := Reference(offSuitBoard, pocket)

	assert.Greater(t, flushScore, noFlushScore)
}
