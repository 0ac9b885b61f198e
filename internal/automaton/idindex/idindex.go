// Package idindex builds a minimal perfect hash from a set of packed
// hand identifiers to a dense 0..n-1 block index, for use during table
// assembly (internal/automaton's assembler).
//
// The no-flush automaton's id set runs into the hundreds of millions of
// entries; a general-purpose map[handid.ID]int pays substantial
// per-entry overhead at that scale. go-chd's compressed hash-and-displace
// construction gives the same id->index lookup in close to the
// information-theoretic minimum space, at the cost of needing the full
// key set up front — which assembly already has, since enumeration
// completes before assembly begins.
//
// The index assigned to an id must equal its position in the sorted,
// deduplicated id slice passed to Build, not whatever bucket go-chd's
// own hash-and-displace construction happens to land it in: the query
// protocol's fixed constants (the flush-suit chain's start cell, and the
// two header cells at HR[0]/HR[1]) all assume the all-skip empty-hand id
// — always 0, always first in sorted order — sits at index 0. go-chd
// only promises a collision-free bucket per key, not that the bucket
// equals sorted rank, so Build lays an indirection table over the raw
// hash to recover the sorted position.
package idindex

import (
	"fmt"

	chd "github.com/opencoff/go-chd"

	"github.com/lox/raygen9/internal/automaton/handid"
)

// Index is a read-only id -> dense-index perfect hash, where the index
// returned for id is exactly its position in the slice passed to Build.
type Index struct {
	h   *chd.Chd
	pos []int32
}

// Build constructs a perfect hash over ids, which must be sorted,
// deduplicated, and contain no duplicates — EnumerateIDs already
// guarantees this of its output.
func Build(ids []handid.ID) (*Index, error) {
	keys := make([]uint64, len(ids))
	for i, id := range ids {
		keys[i] = encodeKey(id)
	}

	b, err := chd.New()
	if err != nil {
		return nil, fmt.Errorf("idindex: new builder: %w", err)
	}
	for _, k := range keys {
		b.Add(k)
	}
	h, err := b.Freeze(0.9)
	if err != nil {
		return nil, fmt.Errorf("idindex: freeze %d keys: %w", len(keys), err)
	}

	pos := make([]int32, h.Len())
	for i, k := range keys {
		pos[h.Find(k)] = int32(i)
	}

	return &Index{h: h, pos: pos}, nil
}

// Find returns the dense block index assigned to id: its position in
// the slice originally passed to Build. Behavior is undefined if id was
// not part of that set.
func (idx *Index) Find(id handid.ID) int {
	return int(idx.pos[idx.h.Find(encodeKey(id))])
}

// Len reports how many keys the index was built over.
func (idx *Index) Len() int { return len(idx.pos) }

func encodeKey(id handid.ID) uint64 {
	return uint64(id)
}
