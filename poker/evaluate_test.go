package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cards(t *testing.T, text string) []Card {
	t.Helper()
	parsed := ParseMany(text)
	require.NotEmpty(t, parsed, "no cards in %q", text)
	return parsed
}

func TestEvaluateFiveCardCategories(t *testing.T) {
	tests := []struct {
		name     string
		cards    string
		category Category
		label    string
	}{
		{"straight flush", "5h 4h 3h 2h Ah", StraightFlush, "Straight Flush, Five High"},
		{"royal", "Ah Kh Qh Jh Th", StraightFlush, "Straight Flush, Ace High"},
		{"four of a kind", "Kh Kd Ks Kc 2h", FourOfAKind, "Four of a Kind, Kings"},
		{"full house", "Kh Kd Ks 5c 5h", FullHouse, "Full House, Kings over Fives"},
		{"flush", "Kh 9h 7h 4h 2h", Flush, "Flush, King High"},
		{"straight", "9h 8d 7s 6c 5h", Straight, "Straight, Nine High"},
		{"wheel", "Ah 2d 3s 4c 5h", Straight, "Straight, Five High"},
		{"three of a kind", "7h 7d 7s Kc 2h", ThreeOfAKind, "Three of a Kind, Sevens"},
		{"two pair", "Kh Kd 5s 5c 2h", TwoPair, "Two Pair, Kings and Fives"},
		{"one pair", "Kh Kd 9s 5c 2h", OnePair, "Pair of Kings"},
		{"high card", "Ah Kd 9s 5c 2h", HighCard, "High Card, Ace"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Evaluate(cards(t, tt.cards))
			assert.Equal(t, tt.category, got.Category)
			assert.Equal(t, tt.label, got.Label)
		})
	}
}

func TestEvaluateTiebreaks(t *testing.T) {
	tests := []struct {
		name  string
		cards string
		want  []Rank
	}{
		{"quads then kicker", "Kh Kd Ks Kc 2h", []Rank{King, Two}},
		{"boat trips then pair", "Kh Kd Ks 5c 5h", []Rank{King, Five}},
		{"flush all five desc", "Kh 9h 7h 4h 2h", []Rank{King, Nine, Seven, Four, Two}},
		{"straight high only", "9h 8d 7s 6c 5h", []Rank{Nine}},
		{"wheel high is five", "Ah 2d 3s 4c 5h", []Rank{Five}},
		{"trips then kickers desc", "7h 7d 7s Kc 2h", []Rank{Seven, King, Two}},
		{"two pair high low kicker", "5s 5c Kh Kd 2h", []Rank{King, Five, Two}},
		{"pair then kickers desc", "Kh Kd 9s 5c 2h", []Rank{King, Nine, Five, Two}},
		{"high card five desc", "Ah Kd 9s 5c 2h", []Rank{Ace, King, Nine, Five, Two}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Evaluate(cards(t, tt.cards)).Tiebreak)
		})
	}
}

func TestEvaluateInsufficientCards(t *testing.T) {
	for _, text := range []string{"", "Kh", "Kh Qd 9s 5c"} {
		got := Evaluate(ParseMany(text))
		assert.Equal(t, HighCard, got.Category)
		assert.Nil(t, got.Tiebreak)
		assert.Equal(t, "Insufficient cards", got.Label)
	}
}

// With seven cards the evaluator must find the best five-card subset,
// not the most obvious one.
func TestEvaluateSevenCards(t *testing.T) {
	tests := []struct {
		name     string
		cards    string
		category Category
		label    string
	}{
		{
			"straight flush hiding in a flush",
			"9h 8h 7h 6h 5h Ah Kh",
			StraightFlush,
			"Straight Flush, Nine High",
		},
		{
			"boat beats two pair reading",
			"Kh Kd 5s 5c 5h 2d 9s",
			FullHouse,
			"Full House, Fives over Kings",
		},
		{
			"board plays straight",
			"2h 2d 9s 8c 7h 6d 5s",
			Straight,
			"Straight, Nine High",
		},
		{
			"kickers picked from seven",
			"Ah Ad Ks 9c 7h 4d 2s",
			OnePair,
			"Pair of Aces",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Evaluate(cards(t, tt.cards))
			assert.Equal(t, tt.category, got.Category)
			assert.Equal(t, tt.label, got.Label)
		})
	}
}

func TestEvaluateSevenCardKickers(t *testing.T) {
	got := Evaluate(cards(t, "Ah Ad Ks 9c 7h 4d 2s"))
	assert.Equal(t, []Rank{Ace, King, Nine, Seven}, got.Tiebreak)
}

func TestEvaluateOrderInvariant(t *testing.T) {
	a := Evaluate(cards(t, "Kh Kd Ks 5c 5h 2d 9s"))
	b := Evaluate(cards(t, "9s 2d 5h 5c Ks Kd Kh"))
	assert.Equal(t, a, b)
}

func TestCompare(t *testing.T) {
	flush := Evaluate(cards(t, "Kh 9h 7h 4h 2h"))
	straight := Evaluate(cards(t, "9h 8d 7s 6c 5h"))
	pairKings := Evaluate(cards(t, "Kh Kd 9s 5c 2h"))
	pairKingsBetterKicker := Evaluate(cards(t, "Kh Kd As 5c 2h"))

	assert.Equal(t, 1, Compare(flush, straight))
	assert.Equal(t, -1, Compare(straight, flush))
	assert.Equal(t, 0, Compare(flush, flush))
	assert.Equal(t, 1, Compare(pairKingsBetterKicker, pairKings))
	assert.Equal(t, -1, Compare(pairKings, pairKingsBetterKicker))
}

func TestCompareMissingTiebreakTreatedAsZero(t *testing.T) {
	a := EvaluatedHand{Category: Straight, Tiebreak: []Rank{Nine}}
	b := EvaluatedHand{Category: Straight}
	assert.Equal(t, 1, Compare(a, b))
	assert.Equal(t, -1, Compare(b, a))
}

func TestCategoryOrdering(t *testing.T) {
	order := []Category{
		HighCard, OnePair, TwoPair, ThreeOfAKind, Straight,
		Flush, FullHouse, FourOfAKind, StraightFlush,
	}
	for i := 1; i < len(order); i++ {
		assert.Greater(t, order[i], order[i-1])
	}
}
