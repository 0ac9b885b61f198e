// Package cactus implements the 5-card "opaque oracle" spec.md treats as
// an external collaborator: a Cactus-Kev-style card encoding, the
// flush/straight lookup tables, a prime-product perfect hash for the
// remaining duplicate-rank hands, and the cactus_to_ray remap to this
// repository's "higher is better" score convention.
//
// Grounded on original_source/raygen9.cpp's card_to_cactus,
// eval_cactus_no_flush and flushes[bitmask] usage; the ascending-index/
// reversed-detail bucketing technique below mirrors
// lox-pokerforbots/poker/evaluator.go's rankFromMasks.
package cactus

import "math/bits"

// Card is the oracle's internal per-card encoding: bits 0-7 hold a prime
// unique to the rank (for the duplicate-rank perfect hash), bits 8-11 the
// zero-based rank, bits 12-15 one-hot the suit, and bits 16-28 one-hot the
// rank (for flush/straight bitmask lookups).
type Card int64

var primes = [13]int64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41}

// Encode builds a Card from a 1-indexed rank (1..13) and suit (1..4).
func Encode(rank, suit int) Card {
	r := int64(rank - 1)
	return Card(primes[rank-1] | (r << 8) | (1 << (int64(suit) + 11)) | (1 << (16 + r)))
}

func (c Card) prime() int64 { return int64(c & 0xFF) }
func (c Card) rankBit() int64 {
	return int64(c>>16) & 0x1FFF
}

// Score categories, strongest first (ascending cactus rank). Lower numeric rank means a
// better hand throughout this package, matching the classical Cactus Kev
// convention; ToRay inverts this for the table's own "higher is better"
// scores.
const (
	straightFlushCount = 10
	fourKindCount      = 13 * 12
	fullHouseCount     = 13 * 12
	flushCount         = 1277
	straightCount      = 10
	tripsCount         = 13 * 66
	twoPairCount       = 78 * 11
	pairCount          = 13 * 220
	highCardCount      = 1277
)

const (
	baseStraightFlush = 1
	baseFourKind      = baseStraightFlush + straightFlushCount
	baseFullHouse     = baseFourKind + fourKindCount
	baseFlush         = baseFullHouse + fullHouseCount
	baseStraight      = baseFlush + flushCount
	baseTrips         = baseStraight + straightCount
	baseTwoPair       = baseTrips + tripsCount
	basePair          = baseTwoPair + twoPairCount
	baseHighCard      = basePair + pairCount

	// WorstRank is the weakest possible cactus score (worst high card).
	WorstRank = baseHighCard + highCardCount - 1
)

// flushes and unique5 are both indexed by a 13-bit rank bitmask (bit i set
// means rank i+2 is present). flushes holds the straight-flush/flush score
// for a 5-card hand known to be a single suit; unique5 holds the
// straight/high-card score for a 5-distinct-rank hand that is *not* a
// flush. Both are zero for masks that don't have exactly 5 bits set.
var flushes [1 << 13]int
var unique5 [1 << 13]int

// dupValues is the perfect-hash target for every duplicate-rank 5-card
// pattern (pair, two pair, trips, full house, four of a kind), keyed by
// the product of the five cards' primes.
var dupValues = map[int64]int{}

func init() {
	buildDistinctRankTables()
	buildDuplicateRankTable()
}

// straightMasks lists the 10 possible straights' rank bitmasks in
// ascending strength (the wheel A-2-3-4-5 first, broadway last).
func straightMasks() []int {
	masks := make([]int, 0, 10)
	wheel := (1 << 0) | (1 << 1) | (1 << 2) | (1 << 3) | (1 << 12)
	masks = append(masks, wheel)
	for low := 0; low <= 8; low++ {
		m := 0
		for r := low; r <= low+4; r++ {
			m |= 1 << r
		}
		masks = append(masks, m)
	}
	return masks
}

func buildDistinctRankTables() {
	straights := straightMasks()
	straightSet := make(map[int]int, len(straights)) // mask -> ascending strength index
	for i, m := range straights {
		straightSet[m] = i
	}

	// All 5-distinct-rank masks, in ascending numeric order; numeric
	// order over these bitmasks already matches poker high-card
	// strength (comparison from the most significant set bit down).
	nonStraight := make([]int, 0, flushCount)
	for mask := 0; mask < (1 << 13); mask++ {
		if bits.OnesCount(uint(mask)) != 5 {
			continue
		}
		if _, isStraight := straightSet[mask]; isStraight {
			continue
		}
		nonStraight = append(nonStraight, mask)
	}

	for s, mask := range straights {
		flushes[mask] = baseStraightFlush + (straightFlushCount - 1 - s)
		unique5[mask] = baseStraight + (straightCount - 1 - s)
	}
	for idx, mask := range nonStraight {
		flushes[mask] = baseFlush + (flushCount - 1 - idx)
		unique5[mask] = baseHighCard + (highCardCount - 1 - idx)
	}
}

// rankComboIndex returns, for every k-bit subset of the low n bits (in
// ascending numeric order), its position in that ascending sequence.
func rankComboIndex(n, k int) map[int]int {
	out := map[int]int{}
	idx := 0
	for mask := 0; mask < (1 << n); mask++ {
		if bits.OnesCount(uint(mask)) == k {
			out[mask] = idx
			idx++
		}
	}
	return out
}

func buildDuplicateRankTable() {
	pairKickers := rankComboIndex(12, 3)
	tripKickers := rankComboIndex(12, 2)
	pairRanks := rankComboIndex(13, 2)

	product := func(counts [13]int) int64 {
		p := int64(1)
		for r, n := range counts {
			for i := 0; i < n; i++ {
				p *= primes[r]
			}
		}
		return p
	}

	// Four of a kind: quad rank ascending, kicker rank ascending.
	idx := 0
	for qr := 0; qr < 13; qr++ {
		for kr := 0; kr < 13; kr++ {
			if kr == qr {
				continue
			}
			var counts [13]int
			counts[qr] = 4
			counts[kr] = 1
			rank := baseFourKind + (fourKindCount - 1 - idx)
			dupValues[product(counts)] = rank
			idx++
		}
	}

	// Full house: trip rank ascending, pair rank ascending.
	idx = 0
	for tr := 0; tr < 13; tr++ {
		for pr := 0; pr < 13; pr++ {
			if pr == tr {
				continue
			}
			var counts [13]int
			counts[tr] = 3
			counts[pr] = 2
			rank := baseFullHouse + (fullHouseCount - 1 - idx)
			dupValues[product(counts)] = rank
			idx++
		}
	}

	// Three of a kind (no pair): trip rank ascending, then kicker pair
	// ascending by combo index.
	for tr := 0; tr < 13; tr++ {
		for mask, ord := range tripKickers {
			kickers := maskToRanks(mask, tr)
			var counts [13]int
			counts[tr] = 3
			counts[kickers[0]] = 1
			counts[kickers[1]] = 1
			linear := tr*66 + ord
			rank := baseTrips + (tripsCount - 1 - linear)
			dupValues[product(counts)] = rank
		}
	}

	// Two pair: pair-rank-pair ascending by combo index, then kicker
	// ascending.
	for mask, pairOrd := range pairRanks {
		ranks := maskToRanksFull(mask)
		hi, lo := ranks[1], ranks[0]
		for kr := 0; kr < 13; kr++ {
			if kr == hi || kr == lo {
				continue
			}
			var counts [13]int
			counts[hi] = 2
			counts[lo] = 2
			counts[kr] = 1
			kickerOrd := kickerOrdinal(kr, hi, lo)
			linear := pairOrd*11 + kickerOrd
			rank := baseTwoPair + (twoPairCount - 1 - linear)
			dupValues[product(counts)] = rank
		}
	}

	// One pair: pair rank ascending, then 3 kickers by combo index.
	for pr := 0; pr < 13; pr++ {
		for mask, ord := range pairKickers {
			kickers := maskToRanks3(mask, pr)
			var counts [13]int
			counts[pr] = 2
			for _, k := range kickers {
				counts[k] = 1
			}
			linear := pr*220 + ord
			rank := basePair + (pairCount - 1 - linear)
			dupValues[product(counts)] = rank
		}
	}
}

// maskToRanks decodes a 2-bit combo (chosen from rankComboIndex(12, 2))
// back into the two actual ranks, skipping the excluded rank.
func maskToRanks(mask, excl int) [2]int {
	var out [2]int
	n := 0
	bit := 0
	for r := 0; r < 13; r++ {
		if r == excl {
			continue
		}
		if mask&(1<<bit) != 0 {
			out[n] = r
			n++
		}
		bit++
	}
	return out
}

// maskToRanks3 decodes a 3-bit combo (chosen from rankComboIndex(12, 3))
// into the three actual ranks, skipping the excluded rank.
func maskToRanks3(mask, excl int) [3]int {
	var out [3]int
	n := 0
	bit := 0
	for r := 0; r < 13; r++ {
		if r == excl {
			continue
		}
		if mask&(1<<bit) != 0 {
			out[n] = r
			n++
		}
		bit++
	}
	return out
}

// maskToRanksFull decodes a 2-bit combo over all 13 ranks (no exclusion)
// into its two ranks, ascending.
func maskToRanksFull(mask int) [2]int {
	var out [2]int
	n := 0
	for r := 0; r < 13; r++ {
		if mask&(1<<r) != 0 {
			out[n] = r
			n++
		}
	}
	return out
}

func kickerOrdinal(kr, hi, lo int) int {
	ord := kr
	if hi < kr {
		ord--
	}
	if lo < kr {
		ord--
	}
	return ord
}

// Flush returns the straight-flush/flush cactus score for a 13-bit rank
// bitmask known to come from 5 cards of a single suit. Returns 0 if mask
// does not describe a valid 5-distinct-rank hand.
func Flush(mask13 int) int {
	return flushes[mask13&0x1FFF]
}

// NoFlush returns the cactus score for 5 cards that are not all one suit
// (or whose suits the caller does not care about), following
// eval_cactus_no_flush's contract: try the distinct-rank table first,
// fall back to the duplicate-rank perfect hash.
func NoFlush(c1, c2, c3, c4, c5 Card) int {
	mask := int((c1 | c2 | c3 | c4 | c5).rankBit())
	if s := unique5[mask]; s != 0 {
		return s
	}
	product := c1.prime() * c2.prime() * c3.prime() * c4.prime() * c5.prime()
	return dupValues[product]
}

// RankMask ORs together the rank bits of up to 5 cards, for direct use
// with Flush.
func RankMask(cards ...Card) int {
	var m int64
	for _, c := range cards {
		m |= c.rankBit()
	}
	return int(m)
}

// ToRay remaps a cactus score (1..WorstRank, lower is better) to this
// repository's table convention (higher is better), monotone-inverting as
// required by spec.md §9.
func ToRay(cactusRank int) int {
	return WorstRank + 1 - cactusRank
}
