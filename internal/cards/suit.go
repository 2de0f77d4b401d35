package cards

// Suit orders Clubs < Diamonds < Hearts < Spades. The ordering only matters
// for UI sorting and the tie-breaks noted in the bid ordering; trick-taking
// compares suits structurally (lead suit vs trump), never by this order.
type Suit int

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

// AllSuits lists every suit in ascending order.
var AllSuits = [4]Suit{Clubs, Diamonds, Hearts, Spades}

// IsMajor reports whether the suit is a major (Hearts or Spades).
func (s Suit) IsMajor() bool {
	return s == Hearts || s == Spades
}

func (s Suit) String() string {
	switch s {
	case Clubs:
		return "Clubs"
	case Diamonds:
		return "Diamonds"
	case Hearts:
		return "Hearts"
	case Spades:
		return "Spades"
	default:
		return "Unknown"
	}
}

// Letter is the single-letter wire abbreviation used in Card JSON ("C","D","H","S").
func (s Suit) Letter() string {
	return string(s.String()[0])
}

// SuitFromLetter parses the single-letter wire abbreviation.
func SuitFromLetter(l string) (Suit, bool) {
	switch l {
	case "C":
		return Clubs, true
	case "D":
		return Diamonds, true
	case "H":
		return Hearts, true
	case "S":
		return Spades, true
	default:
		return 0, false
	}
}
