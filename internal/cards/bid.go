package cards

// BidType is either a trump suit or no-trump. Ordering for auction
// comparisons: Clubs < Diamonds < Hearts < Spades < NoTrump.
type BidType struct {
	noTrump bool
	trump   Suit
}

// TrumpType builds a BidType naming s as trump.
func TrumpType(s Suit) BidType { return BidType{trump: s} }

// NoTrumpType is the no-trump denomination.
var NoTrumpType = BidType{noTrump: true}

// IsNoTrump reports whether this denomination is no-trump.
func (b BidType) IsNoTrump() bool { return b.noTrump }

// Suit returns the trump suit. Only meaningful when !IsNoTrump().
func (b BidType) Suit() Suit { return b.trump }

func (b BidType) rankValue() int {
	if b.noTrump {
		return 4
	}
	return int(b.trump)
}

// Less reports whether b denotes a strictly lower-ranked denomination than other.
func (b BidType) Less(other BidType) bool { return b.rankValue() < other.rankValue() }

// Equal reports denomination equality.
func (b BidType) Equal(other BidType) bool { return b.rankValue() == other.rankValue() }

func (b BidType) String() string {
	if b.noTrump {
		return "NoTrump"
	}
	return b.trump.String()
}

// BidKind discriminates the four Bid variants.
type BidKind int

const (
	Pass BidKind = iota
	Play
	Double
	Redouble
)

// Bid is a single auction call. Level and Type are meaningful only for Play.
type Bid struct {
	Kind  BidKind
	Level int // 1..7, meaningful only for Play
	Type  BidType
}

// PassBid is the Pass call.
var PassBid = Bid{Kind: Pass}

// DoubleBid is the Double call.
var DoubleBid = Bid{Kind: Double}

// RedoubleBid is the Redouble call.
var RedoubleBid = Bid{Kind: Redouble}

// PlayBid constructs a contract call at the given level and denomination.
func PlayBid(level int, t BidType) Bid {
	return Bid{Kind: Play, Level: level, Type: t}
}

// LessPlay compares two Play bids lexicographically on (level, BidType).
// Only meaningful when both bids are Play; Pass/Double/Redouble are not
// ordered by magnitude against Play (legality is governed by the auction
// rules, not by this ordering).
func (b Bid) LessPlay(other Bid) bool {
	if b.Level != other.Level {
		return b.Level < other.Level
	}
	return b.Type.Less(other.Type)
}
