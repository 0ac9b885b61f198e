package automaton

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/raygen9/internal/automaton/handid"
	"github.com/lox/raygen9/internal/card"
)

func TestStepFlushSuitsCollapsesToSuit(t *testing.T) {
	t.Parallel()
	id, ok := StepFlushSuits(0, int(card.New(card.Suit3, 7))) // any rank, suit 3
	require.True(t, ok)
	pocket, board, nPocket, nBoard := handid.Unpack(id)
	assert.Equal(t, 0, nPocket)
	assert.Equal(t, 1, nBoard)
	assert.Equal(t, []int{card.Suit3}, board)
	assert.Empty(t, pocket)
}

func TestStepFlushSuitsSkipFoldsToSkipBoard(t *testing.T) {
	t.Parallel()
	id, ok := StepFlushSuits(0, 0)
	require.True(t, ok)
	_, board, _, nBoard := handid.Unpack(id)
	assert.Equal(t, 1, nBoard)
	assert.Equal(t, int(card.SkipBoard), board[0])
}

func TestStepFlushRanksSuitedCardBecomesFaceRank(t *testing.T) {
	t.Parallel()
	step := StepFlushRanks(4)
	ace := card.New(4, 13) // suit 4, rank 13 (Ace)
	id, ok := step(0, int(ace))
	require.True(t, ok)
	_, board, _, _ := handid.Unpack(id)
	require.Len(t, board, 1)
	assert.Equal(t, 14, board[0]) // face value of Ace
}

func TestStepFlushRanksOffSuitCollapsesToAnyCard(t *testing.T) {
	t.Parallel()
	step := StepFlushRanks(4)
	offSuit := card.New(1, 5)
	id, ok := step(0, int(offSuit))
	require.True(t, ok)
	_, board, _, _ := handid.Unpack(id)
	assert.Equal(t, anyCard, board[0])
}

func TestStepFlushRanksRejectsDuplicateSuitedRank(t *testing.T) {
	t.Parallel()
	step := StepFlushRanks(4)
	king := card.New(4, 12)
	id, ok := step(0, int(king))
	require.True(t, ok)
	_, ok = step(id, int(king))
	assert.False(t, ok, "adding the identical card twice must be rejected")
}

func TestStepFlushRanksPrunesUnreachableFlush(t *testing.T) {
	t.Parallel()
	step := StepFlushRanks(4)
	id := handid.ID(0)
	var ok bool
	// Once a 4th off-suit board card lands, at most 1 suited board card
	// could ever follow (there's only one slot left) — short of the 3
	// needed for a flush, so the extension must be pruned.
	offSuitCards := []card.Card{
		card.New(1, 2), card.New(2, 3), card.New(3, 4), card.New(1, 5),
	}
	for i, c := range offSuitCards {
		id, ok = step(id, int(c))
		if i < 3 {
			require.True(t, ok, "card %d", i)
		}
	}
	assert.False(t, ok, "4th off-suit board card should be pruned")
}

func TestStepNoFlushCollapsesToRank(t *testing.T) {
	t.Parallel()
	id, ok := StepNoFlush(0, int(card.New(2, 9)))
	require.True(t, ok)
	_, board, _, _ := handid.Unpack(id)
	assert.Equal(t, 9, board[0])
}

func TestStepNoFlushRejectsFifthOfARank(t *testing.T) {
	t.Parallel()
	// StepNoFlush drops suit information, so it can't tell this is the
	// same physical card repeated; the rank-count guard is what catches
	// an impossible fifth card of one rank.
	nine := card.New(1, 9)
	id := handid.ID(0)
	var ok bool
	for i := 0; i < 4; i++ {
		id, ok = StepNoFlush(id, int(nine))
		require.True(t, ok)
	}
	_, ok = StepNoFlush(id, int(nine))
	assert.False(t, ok)
}
