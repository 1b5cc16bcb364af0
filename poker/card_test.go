package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCardString(t *testing.T) {
	tests := []struct {
		card Card
		want string
	}{
		{NewCard(Ace, Spades), "As"},
		{NewCard(Ten, Hearts), "Th"},
		{NewCard(Two, Clubs), "2c"},
		{NewCard(King, Diamonds), "Kd"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.card.String())
		})
	}
}

func TestCardGlyph(t *testing.T) {
	assert.Equal(t, "K♥", NewCard(King, Hearts).Glyph())
	assert.Equal(t, "T♠", NewCard(Ten, Spades).Glyph())
}

func TestCardRoundTrip(t *testing.T) {
	for r := Two; r <= Ace; r++ {
		for _, s := range []Suit{Spades, Hearts, Diamonds, Clubs} {
			card := NewCard(r, s)
			parsed, ok := ParseCard(card.String())
			require.True(t, ok, "card %s should parse", card)
			assert.Equal(t, card, parsed)
		}
	}
}

func TestRankNames(t *testing.T) {
	assert.Equal(t, "King", King.Name())
	assert.Equal(t, "Kings", King.Plural())
	assert.Equal(t, "Sixes", Six.Plural())
	assert.Equal(t, "Twos", Two.Plural())
	assert.Equal(t, "T", Ten.String())
	assert.Equal(t, "Ten", Ten.Name())
}

func TestSuitIsRed(t *testing.T) {
	assert.True(t, Hearts.IsRed())
	assert.True(t, Diamonds.IsRed())
	assert.False(t, Spades.IsRed())
	assert.False(t, Clubs.IsRed())
}
