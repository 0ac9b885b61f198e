package automaton

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/raygen9/internal/automaton/handid"
)

// capStep is a minimal synthetic transition used to exercise
// EnumerateIDs's generation/dedup machinery independently of any real
// automaton's fold semantics: it accepts raw cards 1-4 unconditionally
// and folds each straight through handid.AddCard/Pack, relying only on
// canonicalization to collapse permutations of the same multiset.
func capStep(id handid.ID, newCard int) (handid.ID, bool) {
	if newCard < 1 || newCard > 4 {
		return 0, false
	}
	pocket, board, nPocket, nBoard := handid.Unpack(id)
	pocket, board, _, _ = handid.AddCard(newCard, pocket, board, nPocket, nBoard)
	return handid.Pack(pocket, board), true
}

func TestEnumerateIDsProducesSortedDedupedIDs(t *testing.T) {
	t.Parallel()

	ids, err := EnumerateIDs(context.Background(), capStep, nil)
	require.NoError(t, err)
	require.NotEmpty(t, ids)

	assert.True(t, sort.SliceIsSorted(ids, func(i, j int) bool { return ids[i] < ids[j] }))

	seen := make(map[handid.ID]bool, len(ids))
	for _, id := range ids {
		require.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}

	// Two different orderings of the same multiset (e.g. [2] extended by
	// 3, and [3] extended by 2) canonicalize to one descending-sorted
	// id; the id list must still only carry it once.
	twoThen3 := capStepChain(t, handid.ID(0), 2, 3)
	threeThen2 := capStepChain(t, handid.ID(0), 3, 2)
	require.Equal(t, twoThen3, threeThen2)
	assert.True(t, seen[twoThen3])

	assert.True(t, seen[handid.ID(0)], "the empty hand is always present")
}

func TestEnumerateIDsCapsAtEightCards(t *testing.T) {
	t.Parallel()

	ids, err := EnumerateIDs(context.Background(), capStep, nil)
	require.NoError(t, err)

	maxSeen := 0
	for _, id := range ids {
		n := handid.CountCards(id)
		assert.LessOrEqual(t, n, 8, "id %d has more than 8 cards", id)
		if n > maxSeen {
			maxSeen = n
		}
	}
	assert.Equal(t, 8, maxSeen, "enumeration should reach the 8-card generation")
}

func capStepChain(t *testing.T, id handid.ID, cards ...int) handid.ID {
	t.Helper()
	for _, c := range cards {
		var ok bool
		id, ok = capStep(id, c)
		require.True(t, ok)
	}
	return id
}
