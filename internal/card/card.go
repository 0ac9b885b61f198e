// Package card implements the raw 1..52 card encoding shared by every
// automaton in this repository: suit = ((card-1) mod 4) + 1, rank =
// ((card-1) div 4) + 1 (1=deuce .. 13=Ace). It also carries the two
// sentinel values the table-generation engine folds cards into: Absent
// (0) and SkipBoard (53).
package card

import "fmt"

// Card is a raw card in the 1..52 domain, or one of the two sentinels.
type Card int

const (
	// Absent marks an empty ID slot.
	Absent Card = 0
	// SkipBoard pads a short board to the uniform 9-slot representation.
	SkipBoard Card = 53

	// Min and Max bound the legal range of real (non-sentinel) cards.
	Min Card = 1
	Max Card = 52
)

// Suit numbers, matching the original encoding (1-indexed, no semantic
// color/name attached at this layer).
const (
	Suit1 = 1
	Suit2 = 2
	Suit3 = 3
	Suit4 = 4
)

// Suit returns the card's suit in 1..4. Behavior is undefined for
// sentinel values.
func (c Card) Suit() int {
	return int((c-1)%4) + 1
}

// Rank returns the card's rank in 1..13 (2 through Ace). Behavior is
// undefined for sentinel values.
func (c Card) Rank() int {
	return int((c-1)/4) + 1
}

// Valid reports whether c is a real, in-range card (not a sentinel, not
// out of bounds).
func (c Card) Valid() bool {
	return c >= Min && c <= Max
}

var rankNames = [...]string{"2", "3", "4", "5", "6", "7", "8", "9", "T", "J", "Q", "K", "A"}
var suitNames = [...]string{"c", "d", "h", "s"}

// String renders a card as e.g. "As" (ace of suit 4), or a sentinel name.
func (c Card) String() string {
	switch c {
	case Absent:
		return "--"
	case SkipBoard:
		return "skip"
	}
	if !c.Valid() {
		return fmt.Sprintf("card(%d)", int(c))
	}
	return rankNames[c.Rank()-1] + suitNames[c.Suit()-1]
}

// New builds a Card from a 1-indexed suit and rank, matching Suit/Rank's
// decomposition.
func New(suit, rank int) Card {
	return Card((rank-1)*4 + suit)
}
