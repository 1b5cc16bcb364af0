package poker

import (
	"fmt"
	"sort"
)

// Category enumerates poker hand categories ordered from weakest to
// strongest. The zero value is not a valid category.
type Category int

const (
	HighCard Category = iota + 1
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

// String returns a human-readable category name.
func (c Category) String() string {
	switch c {
	case HighCard:
		return "High Card"
	case OnePair:
		return "Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	default:
		return "Unknown"
	}
}

// EvaluatedHand is the classification of the best five-card hand that
// can be made from a card set. It is derived deterministically from the
// cards and never mutated after creation.
type EvaluatedHand struct {
	Category Category `json:"category"`
	Tiebreak []Rank   `json:"tiebreak"`
	Label    string   `json:"label"`
}

const insufficientLabel = "Insufficient cards"

// Evaluate classifies the best five-card poker hand from 5 to 7 cards.
// With 6 or 7 cards it exhaustively checks every five-card selection
// (21 combinations at most) and keeps the strongest; correctness is
// worth more here than cleverness. Fewer than 5 cards yields the
// insufficient-cards sentinel rather than an error. The result does not
// depend on input order.
func Evaluate(cards []Card) EvaluatedHand {
	if len(cards) < 5 {
		return EvaluatedHand{Category: HighCard, Label: insufficientLabel}
	}
	if len(cards) == 5 {
		return evaluateFive(cards)
	}

	var best EvaluatedHand
	five := make([]Card, 5)
	searchFive(cards, five, 0, 0, &best)
	return best
}

// Compare orders evaluated hands: category first, then the tiebreak
// vectors position by position, missing positions treated as zero.
// Returns 1 if a is stronger, -1 if b is stronger, 0 on a tie.
func Compare(a, b EvaluatedHand) int {
	if a.Category != b.Category {
		if a.Category > b.Category {
			return 1
		}
		return -1
	}
	n := len(a.Tiebreak)
	if len(b.Tiebreak) > n {
		n = len(b.Tiebreak)
	}
	for i := 0; i < n; i++ {
		var av, bv Rank
		if i < len(a.Tiebreak) {
			av = a.Tiebreak[i]
		}
		if i < len(b.Tiebreak) {
			bv = b.Tiebreak[i]
		}
		if av != bv {
			if av > bv {
				return 1
			}
			return -1
		}
	}
	return 0
}

func searchFive(cards, five []Card, start, depth int, best *EvaluatedHand) {
	if depth == 5 {
		eh := evaluateFive(five)
		if best.Category == 0 || Compare(eh, *best) > 0 {
			*best = eh
		}
		return
	}
	for i := start; i <= len(cards)-(5-depth); i++ {
		five[depth] = cards[i]
		searchFive(cards, five, i+1, depth+1, best)
	}
}

type rankGroup struct {
	rank  Rank
	count int
}

func evaluateFive(cards []Card) EvaluatedHand {
	flush := true
	for _, c := range cards[1:] {
		if c.Suit != cards[0].Suit {
			flush = false
			break
		}
	}

	ranks := make([]Rank, len(cards))
	for i, c := range cards {
		ranks[i] = c.Rank
	}
	straightHigh := straightHighRank(ranks)

	if straightHigh > 0 && flush {
		return newEvaluated(StraightFlush, []Rank{straightHigh})
	}

	groups := groupRanks(ranks)

	switch {
	case groups[0].count == 4:
		return newEvaluated(FourOfAKind, groupRankList(groups))
	case groups[0].count == 3 && groups[1].count == 2:
		return newEvaluated(FullHouse, groupRankList(groups))
	case flush:
		sort.Slice(ranks, func(i, j int) bool { return ranks[i] > ranks[j] })
		return newEvaluated(Flush, ranks)
	case straightHigh > 0:
		return newEvaluated(Straight, []Rank{straightHigh})
	case groups[0].count == 3:
		return newEvaluated(ThreeOfAKind, groupRankList(groups))
	case groups[0].count == 2 && groups[1].count == 2:
		return newEvaluated(TwoPair, groupRankList(groups))
	case groups[0].count == 2:
		return newEvaluated(OnePair, groupRankList(groups))
	default:
		return newEvaluated(HighCard, groupRankList(groups))
	}
}

func newEvaluated(cat Category, tiebreak []Rank) EvaluatedHand {
	return EvaluatedHand{
		Category: cat,
		Tiebreak: tiebreak,
		Label:    handLabel(cat, tiebreak),
	}
}

// groupRanks buckets ranks by multiplicity and orders the buckets by
// (count descending, rank descending), so the grouping ranks come first
// and remaining kickers follow in descending order.
func groupRanks(ranks []Rank) []rankGroup {
	counts := make(map[Rank]int, len(ranks))
	for _, r := range ranks {
		counts[r]++
	}
	groups := make([]rankGroup, 0, len(counts))
	for r, n := range counts {
		groups = append(groups, rankGroup{rank: r, count: n})
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].count != groups[j].count {
			return groups[i].count > groups[j].count
		}
		return groups[i].rank > groups[j].rank
	})
	return groups
}

func groupRankList(groups []rankGroup) []Rank {
	out := make([]Rank, len(groups))
	for i, g := range groups {
		out[i] = g.rank
	}
	return out
}

// straightHighRank returns the high card of a five-card straight, or 0
// when the cards do not form one. The Ace is also tested as rank one so
// the wheel (A-2-3-4-5) registers as a five-high straight.
func straightHighRank(ranks []Rank) Rank {
	uniq := make(map[Rank]bool, len(ranks))
	for _, r := range ranks {
		uniq[r] = true
	}
	if len(uniq) != len(ranks) {
		return 0
	}

	sorted := make([]Rank, 0, len(ranks))
	for r := range uniq {
		sorted = append(sorted, r)
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	if sorted[len(sorted)-1]-sorted[0] == 4 {
		return sorted[len(sorted)-1]
	}

	// Wheel: Ace plays low under 2-3-4-5.
	if sorted[len(sorted)-1] == Ace {
		low := append([]Rank{1}, sorted[:len(sorted)-1]...)
		if low[len(low)-1]-low[0] == 4 {
			return low[len(low)-1]
		}
	}
	return 0
}

func handLabel(cat Category, tb []Rank) string {
	switch cat {
	case StraightFlush:
		return fmt.Sprintf("Straight Flush, %s High", tb[0].Name())
	case FourOfAKind:
		return fmt.Sprintf("Four of a Kind, %s", tb[0].Plural())
	case FullHouse:
		return fmt.Sprintf("Full House, %s over %s", tb[0].Plural(), tb[1].Plural())
	case Flush:
		return fmt.Sprintf("Flush, %s High", tb[0].Name())
	case Straight:
		return fmt.Sprintf("Straight, %s High", tb[0].Name())
	case ThreeOfAKind:
		return fmt.Sprintf("Three of a Kind, %s", tb[0].Plural())
	case TwoPair:
		return fmt.Sprintf("Two Pair, %s and %s", tb[0].Plural(), tb[1].Plural())
	case OnePair:
		return fmt.Sprintf("Pair of %s", tb[0].Plural())
	default:
		if len(tb) == 0 {
			return insufficientLabel
		}
		return fmt.Sprintf("High Card, %s", tb[0].Name())
	}
}
