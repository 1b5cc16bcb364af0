package poker

// HoleCardCategory represents the strength category of hole cards
type HoleCardCategory string

const (
	CategoryPremium HoleCardCategory = "Premium"
	CategoryStrong  HoleCardCategory = "Strong"
	CategoryMedium  HoleCardCategory = "Medium"
	CategoryWeak    HoleCardCategory = "Weak"
	CategoryTrash   HoleCardCategory = "Trash"
	CategoryUnknown HoleCardCategory = "Unknown"
)

// CategorizeHoleCards provides a simple preflop hand categorization.
// Categories: Premium (JJ+, AK), Strong (TT+, AQ/AJ), Medium (77+, suited broadway),
// Weak (small pairs, suited connectors), Trash (everything else).
func CategorizeHoleCards(card1, card2 Card) HoleCardCategory {
	if card1.Rank < Two || card1.Rank > Ace || card2.Rank < Two || card2.Rank > Ace {
		return CategoryUnknown
	}

	suited := card1.Suit == card2.Suit

	// Order ranks (smaller first)
	small, big := card1.Rank, card2.Rank
	if small > big {
		small, big = big, small
	}

	// Premium: JJ+, AK (any suit)
	isPair := small == big
	if isPair && small >= Jack {
		return CategoryPremium
	}
	if small == King && big == Ace {
		return CategoryPremium
	}

	// Strong: TT, AQ, AJ
	if isPair && small == Ten {
		return CategoryStrong
	}
	if big == Ace && (small == Queen || small == Jack) {
		return CategoryStrong
	}

	// Medium: 77-99, suited broadway cards (KQ, KJ, QJ suited)
	if isPair && small >= Seven && small <= Nine {
		return CategoryMedium
	}
	if suited && small >= Ten {
		return CategoryMedium
	}

	// Weak: small pairs (22-66) or suited connectors
	if isPair && small <= Six {
		return CategoryWeak
	}
	if suited && big-small <= 2 {
		return CategoryWeak
	}

	return CategoryTrash
}

// CategorizeHoleCardsFromStrings categorizes hole cards from string
// representations, tolerating any notation ParseCard accepts.
func CategorizeHoleCardsFromStrings(cards []string) string {
	if len(cards) != 2 {
		return string(CategoryUnknown)
	}

	card1, ok1 := ParseCard(cards[0])
	card2, ok2 := ParseCard(cards[1])
	if !ok1 || !ok2 {
		return string(CategoryUnknown)
	}

	return string(CategorizeHoleCards(card1, card2))
}
