// Package handid implements the packed 64-bit hand identifier described in
// spec.md §3/§4.1: up to five 7-bit board slots in the low 35 bits and up
// to four 7-bit pocket slots in the next 28 bits, each group held in
// descending sort order so the identifier is canonical under permutation
// of same-group cards.
//
// Grounded on original_source/raygen9.cpp's pack64/unpack64/add_card/
// count_cards.
package handid

import "sort"

// ID is a packed hand identifier. The zero value is the initial
// (empty-hand) state.
type ID int64

const (
	slotBits = 7
	slotMask = int64(1)<<slotBits - 1

	maxBoard  = 5
	maxPocket = 4
)

// Unpack decomposes id into its board and pocket slots, read from the
// lowest slot up, which yields each group in descending value order.
// Board has up to 5 entries, Pocket up to 4; trailing zero slots are
// omitted from both. nBoard and nPocket report each slice's length.
func Unpack(id ID) (pocket []int, board []int, nPocket, nBoard int) {
	pocket = make([]int, 0, maxPocket)
	board = make([]int, 0, maxBoard)
	v := int64(id)
	for i := 0; i < maxBoard+maxPocket; i++ {
		slot := int((v >> (slotBits * i)) & slotMask)
		if slot == 0 {
			continue
		}
		if i < maxBoard {
			board = append(board, slot)
		} else {
			pocket = append(pocket, slot)
		}
	}
	nBoard = len(board)
	nPocket = len(pocket)
	return pocket, board, nPocket, nBoard
}

// CountCards returns the number of non-zero 7-bit slots packed into id.
func CountCards(id ID) int {
	n := 0
	v := int64(id)
	for i := 0; i < maxBoard+maxPocket; i++ {
		if (v>>(slotBits*i))&slotMask != 0 {
			n++
		}
	}
	return n
}

// Pack sorts pocket and board each into descending order and packs them
// into the canonical ID: board occupies the low 5 slots, pocket the next
// 4. Both slices are copied before sorting; the caller's slices are left
// unchanged.
func Pack(pocket, board []int) ID {
	padded := func(vals []int, n int) []int {
		out := make([]int, n)
		copy(out, vals)
		sort.Sort(sort.Reverse(sort.IntSlice(out)))
		return out
	}
	b := padded(board, maxBoard)
	p := padded(pocket, maxPocket)

	var v int64
	for i, c := range b {
		v |= int64(c) << (slotBits * i)
	}
	for i, c := range p {
		v |= int64(c) << (slotBits * (maxBoard + i))
	}
	return ID(v)
}

// AddCard appends newCard to board while board has room (fewer than 5
// non-zero slots), otherwise to pocket. It returns the extended,
// un-canonicalized slices; callers must re-Pack to canonicalize.
func AddCard(newCard int, pocket, board []int, nPocket, nBoard int) (outPocket, outBoard []int, outNPocket, outNBoard int) {
	if nBoard < maxBoard {
		board = append(board[:nBoard], newCard)
		return pocket[:nPocket], board, nPocket, nBoard + 1
	}
	pocket = append(pocket[:nPocket], newCard)
	return pocket, board[:nBoard], nPocket + 1, nBoard
}

// MinCard reports the lowest card value a transition function is allowed
// to try next, given the ID being extended currently holds n non-zero
// card slots: 0 (permit the board-skip sentinel) while n <= 1, 1 (no
// skipping) otherwise. The same rule governs both the enumerator (§4.3)
// and the assembler (§4.5) — skipping is only ever legal while extending
// a 0- or 1-card hand into a 1- or 2-card hand.
func MinCard(n int) int {
	if n <= 1 {
		return 0
	}
	return 1
}
