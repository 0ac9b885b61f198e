package automaton

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/lox/raygen9/internal/automaton/handid"
	"github.com/lox/raygen9/internal/progress"
)

// EnumerateIDs performs the breadth-first generation described in
// spec.md §4.3: starting from the empty hand, it extends every id in the
// current generation by every legal next card, sorts and deduplicates
// the result, and folds it into the running id list before advancing to
// the next generation. It stops after the 8-card generation, since the
// caller (table assembly) derives the 9-card terminal transitions
// on-the-fly rather than materializing them.
//
// Grounded on original_source/raygen9.cpp's generate_ids.
func EnumerateIDs(ctx context.Context, step Step, report progress.Reporter) ([]handid.ID, error) {
	idList := []handid.ID{0}
	gen1 := []handid.ID{0}

	for depth := 1; depth <= 8; depth++ {
		gen2, err := expandGeneration(ctx, gen1, step)
		if err != nil {
			return nil, err
		}
		sort.Slice(gen2, func(i, j int) bool { return gen2[i] < gen2[j] })
		gen2 = dedupSorted(gen2)

		idList = append(idList, gen2...)
		if report != nil {
			report.Progress(progress.Event{Stage: "enumerate", Depth: depth, Generated: len(gen2), Total: len(idList)})
		}
		gen1 = gen2
	}

	sort.Slice(idList, func(i, j int) bool { return idList[i] < idList[j] })
	return idList, nil
}

// expandGeneration extends every id in gen1 by every legal next card,
// fanning the work out across workers since the step functions are pure.
func expandGeneration(ctx context.Context, gen1 []handid.ID, step Step) ([]handid.ID, error) {
	if len(gen1) == 0 {
		return nil, nil
	}

	const chunkSize = 4096
	nChunks := (len(gen1) + chunkSize - 1) / chunkSize
	results := make([][]handid.ID, nChunks)

	g, gctx := errgroup.WithContext(ctx)
	for c := 0; c < nChunks; c++ {
		c := c
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			lo, hi := c*chunkSize, (c+1)*chunkSize
			if hi > len(gen1) {
				hi = len(gen1)
			}
			var out []handid.ID
			for _, id := range gen1[lo:hi] {
				minCard := handid.MinCard(handid.CountCards(id))
				for newCard := minCard; newCard <= 52; newCard++ {
					if newID, ok := step(id, newCard); ok {
						out = append(out, newID)
					}
				}
			}
			results[c] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := 0
	for _, r := range results {
		total += len(r)
	}
	merged := make([]handid.ID, 0, total)
	for _, r := range results {
		merged = append(merged, r...)
	}
	return merged, nil
}

// dedupSorted removes adjacent duplicates from an already-sorted slice.
func dedupSorted(ids []handid.ID) []handid.ID {
	if len(ids) == 0 {
		return ids
	}
	out := ids[:1]
	for _, id := range ids[1:] {
		if id != out[len(out)-1] {
			out = append(out, id)
		}
	}
	return out
}
