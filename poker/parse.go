package poker

import (
	"strings"
	"unicode"
)

// ParseCard converts a single token into a Card. It tolerates the
// notations users actually type: "Kh", "K h", "K♥", "10h", "th".
// ok is false when the token is not a card; callers treat that as
// "skip this token", never as a fatal error.
func ParseCard(token string) (Card, bool) {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, token)

	runes := []rune(cleaned)
	if len(runes) < 2 {
		return Card{}, false
	}

	suit, ok := parseSuitRune(runes[len(runes)-1])
	if !ok {
		return Card{}, false
	}

	rank, ok := parseRankToken(string(runes[:len(runes)-1]))
	if !ok {
		return Card{}, false
	}

	return Card{Rank: rank, Suit: suit}, true
}

// ParseMany extracts every parseable card from a free-form string,
// splitting on whitespace, commas, pipes and slashes. Tokens that are
// not cards are silently discarded; order of appearance is preserved.
func ParseMany(text string) []Card {
	tokens := strings.FieldsFunc(text, func(r rune) bool {
		return unicode.IsSpace(r) || r == ',' || r == '|' || r == '/'
	})

	var cards []Card
	for _, tok := range tokens {
		if card, ok := ParseCard(tok); ok {
			cards = append(cards, card)
		}
	}
	return cards
}

func parseSuitRune(r rune) (Suit, bool) {
	switch r {
	case 's', 'S', '♠':
		return Spades, true
	case 'h', 'H', '♥':
		return Hearts, true
	case 'd', 'D', '♦':
		return Diamonds, true
	case 'c', 'C', '♣':
		return Clubs, true
	default:
		return 0, false
	}
}

func parseRankToken(s string) (Rank, bool) {
	switch strings.ToUpper(s) {
	case "A":
		return Ace, true
	case "K":
		return King, true
	case "Q":
		return Queen, true
	case "J":
		return Jack, true
	case "T", "10":
		return Ten, true
	case "9":
		return Nine, true
	case "8":
		return Eight, true
	case "7":
		return Seven, true
	case "6":
		return Six, true
	case "5":
		return Five, true
	case "4":
		return Four, true
	case "3":
		return Three, true
	case "2":
		return Two, true
	default:
		return 0, false
	}
}
