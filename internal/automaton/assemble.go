package automaton

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/lox/raygen9/internal/automaton/handid"
	"github.com/lox/raygen9/internal/automaton/idindex"
	"github.com/lox/raygen9/internal/progress"
)

// Generator runs the two-phase table build: enumerate every automaton's
// id set, then assemble them into one HR table. Grounded on
// original_source/raygen9.cpp's generate_handranks ("PHASE 1 GENERATE
// IDS" / "PHASE 2 PROCESS IDS").
type Generator struct {
	// Report receives progress events for both phases. Defaults to
	// progress.Noop if left nil.
	Report progress.Reporter
}

// NewGenerator returns a Generator with a no-op progress reporter.
func NewGenerator() *Generator {
	return &Generator{Report: progress.Noop}
}

func (g *Generator) report() progress.Reporter {
	if g.Report == nil {
		return progress.Noop
	}
	return g.Report
}

// automatonSet bundles everything processIDs needs for one of the three
// automata sharing the HR address space.
type automatonSet struct {
	name        string
	step        Step
	eval        func(handid.ID) int
	nDummy      int
	dummyCard   int
	headerValue int32
	// minScore is the lowest terminal score processIDs accepts from eval
	// without treating it as an invariant violation. The Flush-Suit
	// automaton's EvalFlushSuits legitimately returns 0 for the common
	// "no suit reaches five shared cards" case (see terminal.go), so its
	// set uses minScore 0; Flush-Rank and No-Flush only ever return 0
	// defensively, for a shape that should be unreachable on a
	// well-formed 9-card id, so their sets use minScore 1.
	minScore int32

	ids []handid.ID
	idx *idindex.Index
}

// Build runs ID enumeration for all three automata, then assembles them
// into a single Table. The three enumeration passes (and, afterward, the
// three assembly passes) are independent and run concurrently.
func (g *Generator) Build(ctx context.Context) (*Table, error) {
	sets := []*automatonSet{
		{name: "flush-suits", step: StepFlushSuits, eval: EvalFlushSuits, minScore: 0},
		{name: "flush-ranks", step: StepFlushRanks(4), eval: EvalFlushRanks, nDummy: 3, dummyCard: anyCard, minScore: 1},
		{name: "no-flush", step: StepNoFlush, eval: EvalNoFlush, minScore: 1},
	}

	eg, egctx := errgroup.WithContext(ctx)
	for _, s := range sets {
		s := s
		eg.Go(func() error {
			ids, err := EnumerateIDs(egctx, s.step, namedReporter{g.report(), s.name})
			if err != nil {
				return fmt.Errorf("enumerate %s: %w", s.name, err)
			}
			s.ids = ids
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	fs, fr4, nf := sets[0], sets[1], sets[2]

	const (
		globalReserved = 53
		fsBlock        = 53
		fr4Block       = 56
		nfBlock        = 53
	)
	offsetFS := globalReserved
	offsetFR4 := offsetFS + fsBlock + len(fs.ids)*fsBlock
	offsetNF := offsetFR4 + fr4Block + len(fr4.ids)*fr4Block
	maxRank := offsetNF + nfBlock + len(nf.ids)*nfBlock

	hr := make([]int32, maxRank)
	hr[0] = int32(offsetNF)
	hr[1] = int32(offsetFR4)

	fs.headerValue = int32(offsetNF)
	fr4.headerValue = 0
	nf.headerValue = 0

	eg = &errgroup.Group{}
	for _, s := range sets {
		s := s
		eg.Go(func() error {
			idx, err := idindex.Build(s.ids)
			if err != nil {
				return fmt.Errorf("build index %s: %w", s.name, err)
			}
			s.idx = idx
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	eg = &errgroup.Group{}
	eg.Go(func() error {
		return processIDs(hr, fs, offsetFS, g.report())
	})
	eg.Go(func() error {
		return processIDs(hr, fr4, offsetFR4, g.report())
	})
	eg.Go(func() error {
		return processIDs(hr, nf, offsetNF, g.report())
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return &Table{HR: hr}, nil
}

// processIDs writes one automaton's block family into hr at offset,
// following original_source/raygen9.cpp's process_ids. hr is shared
// across concurrent calls for different automata, but each call only
// ever writes within its own [offset, offset+blockSize*(1+len(ids)))
// span, so no synchronization is needed between them.
func processIDs(hr []int32, s *automatonSet, offset int, report progress.Reporter) error {
	blockSize := 53 + s.nDummy

	hr[offset] = s.headerValue
	for i := 1; i < blockSize; i++ {
		hr[offset+i] = int32(offset)
	}

	n := len(s.ids)
	const reportEvery = 1 << 16
	for i, id := range s.ids {
		blockStart := offset + blockSize + s.idx.Find(id)*blockSize
		hr[blockStart] = int32(offset)

		numCards := handid.CountCards(id)
		minCard := handid.MinCard(numCards)

		var dummyValue int32
		haveDummy := false

		for newCard := minCard; newCard <= 52; newCard++ {
			newID, ok := s.step(id, newCard)

			var cell int32
			switch {
			case ok && numCards+1 == 9:
				score := s.eval(newID)
				if int32(score) < s.minScore {
					return fmt.Errorf("%s: %w (id=%d new_card=%d score=%d)",
						s.name, ErrInvariant, id, newCard, score)
				}
				cell = int32(score)
			case ok:
				cell = int32(offset + blockSize + s.idx.Find(newID)*blockSize)
			default:
				cell = int32(offset)
			}

			hr[blockStart+newCard] = cell
			if newCard == s.dummyCard {
				dummyValue = cell
				haveDummy = true
			}
		}

		if haveDummy {
			for newCard := 53; newCard < blockSize; newCard++ {
				hr[blockStart+newCard] = dummyValue
			}
		}

		if i%reportEvery == 0 {
			report.Progress(progress.Event{Stage: "assemble", Automaton: s.name, Processed: i, Total: n})
		}
	}
	report.Progress(progress.Event{Stage: "assemble", Automaton: s.name, Processed: n, Total: n})
	return nil
}

// namedReporter tags every event passed through with an automaton name,
// so a single shared Reporter can distinguish the three concurrent
// enumeration passes.
type namedReporter struct {
	r    progress.Reporter
	name string
}

func (n namedReporter) Progress(ev progress.Event) {
	ev.Automaton = n.name
	n.r.Progress(ev)
}
