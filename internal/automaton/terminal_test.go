package automaton

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/raygen9/internal/automaton/handid"
	"github.com/lox/raygen9/internal/cactus"
	"github.com/lox/raygen9/internal/card"
)

// buildID folds cards into an id one at a time through step, in order
// (the first 5 land on the board, the rest in the pocket, matching how
// generation always fills board before pocket).
func buildID(t *testing.T, step Step, cards ...card.Card) handid.ID {
	t.Helper()
	id := handid.ID(0)
	for _, c := range cards {
		var ok bool
		id, ok = step(id, int(c))
		require.True(t, ok, "card %v rejected", c)
	}
	return id
}

func TestEvalFlushSuitsFindsSharedSuit(t *testing.T) {
	t.Parallel()
	board := []card.Card{card.New(2, 1), card.New(2, 2), card.New(2, 3), card.New(1, 4), card.New(1, 5)}
	pocket := []card.Card{card.New(2, 6), card.New(2, 7), card.New(3, 8), card.New(4, 9)}
	id := buildID(t, StepFlushSuits, append(board, pocket...)...)
	assert.Equal(t, 2, EvalFlushSuits(id))
}

func TestEvalFlushSuitsNoneFound(t *testing.T) {
	t.Parallel()
	board := []card.Card{card.New(1, 1), card.New(2, 2), card.New(3, 3), card.New(4, 4), card.New(1, 5)}
	pocket := []card.Card{card.New(2, 6), card.New(3, 7), card.New(4, 8), card.New(1, 9)}
	id := buildID(t, StepFlushSuits, append(board, pocket...)...)
	assert.Equal(t, 0, EvalFlushSuits(id))
}

func TestEvalFlushRanksMatchesCactusOracle(t *testing.T) {
	t.Parallel()
	step := StepFlushRanks(4)

	// Board carries T-J-Q of suit 4 plus two low filler cards, pocket
	// carries K-A of suit 4 plus two low fillers: the best legal
	// 2-pocket/3-board combination is T-J-Q-K-A, the broadway straight
	// flush.
	board := []card.Card{card.New(4, 9), card.New(4, 10), card.New(4, 11), card.New(4, 1), card.New(4, 2)}
	pocket := []card.Card{card.New(4, 12), card.New(4, 13), card.New(4, 3), card.New(4, 4)}
	id := buildID(t, step, append(board, pocket...)...)

	got := EvalFlushRanks(id)

	royalMask := (1 << 8) | (1 << 9) | (1 << 10) | (1 << 11) | (1 << 12)
	want := cactus.ToRay(cactus.Flush(royalMask))
	assert.Equal(t, want, got)
}

func TestEvalNoFlushTripsBeatsPair(t *testing.T) {
	t.Parallel()

	// Two leading skips pad the board down to 3 real cards (a 7-card
	// hand), matching Eval7's zero-padding convention.
	skip := []card.Card{card.Absent, card.Absent}

	tripsBoard := []card.Card{card.New(1, 7), card.New(2, 7), card.New(3, 7)}
	tripsPocket := []card.Card{card.New(1, 2), card.New(2, 4), card.New(3, 9), card.New(4, 11)}
	tripsID := buildID(t, StepNoFlush, append(append(skip, tripsBoard...), tripsPocket...)...)

	pairBoard := []card.Card{card.New(1, 7), card.New(2, 7), card.New(3, 2)}
	pairPocket := []card.Card{card.New(1, 4), card.New(2, 9), card.New(3, 11), card.New(4, 13)}
	pairID := buildID(t, StepNoFlush, append(append(skip, pairBoard...), pairPocket...)...)

	tripsScore := EvalNoFlush(tripsID)
	pairScore := EvalNoFlush(pairID)
	require.NotZero(t, tripsScore)
	require.NotZero(t, pairScore)
	assert.Greater(t, tripsScore, pairScore)
}
