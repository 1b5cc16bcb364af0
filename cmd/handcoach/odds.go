package main

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/lox/handcoach/poker"
	"github.com/lox/handcoach/spr"
)

// OddsCmd estimates hero equity by dealing random runouts, and turns
// it into an implied-odds threshold when pot and call sizes are given
type OddsCmd struct {
	Hand       string  `kong:"arg,help='Hero hole cards, e.g. \"Ah Kh\"'"`
	Board      string  `kong:"help='Known board cards'"`
	Opponents  int     `kong:"default='1',help='Number of opponents'"`
	Iterations int     `kong:"default='10000',help='Runouts to sample'"`
	Seed       *int64  `kong:"help='Deterministic RNG seed (optional)'"`
	Pot        float64 `kong:"help='Pot size for the implied-odds read'"`
	Call       float64 `kong:"help='Call amount for the implied-odds read'"`
}

func (c *OddsCmd) Run() error {
	hero := poker.ParseMany(c.Hand)
	if len(hero) != 2 {
		return fmt.Errorf("expected two hole cards, got %d from %q", len(hero), c.Hand)
	}
	board := poker.ParseMany(c.Board)
	if len(board) > 5 {
		return errors.New("board cannot exceed five cards")
	}
	if c.Opponents < 1 || c.Opponents > 8 {
		return errors.New("opponents must be between 1 and 8")
	}

	seed := time.Now().UnixNano()
	if c.Seed != nil {
		seed = *c.Seed
	}
	equity := simulateEquity(hero, board, c.Opponents, c.Iterations, rand.New(rand.NewSource(seed)))

	fmt.Printf("%s  %s\n", labelStyle.Render("Hand:"), valueStyle.Render(renderGlyphs(hero)))
	if len(board) > 0 {
		fmt.Printf("%s  %s\n", labelStyle.Render("Board:"), valueStyle.Render(renderGlyphs(board)))
	}
	fmt.Printf("%s  %s\n", labelStyle.Render("Equity:"),
		handStyle.Render(fmt.Sprintf("%.1f%%", equity*100)))

	if c.Pot > 0 && c.Call > 0 && equity > 0 {
		odds := spr.ImpliedOddsThreshold(c.Pot, c.Call, equity)
		if odds.IsDrawProfitable {
			fmt.Printf("%s  %s\n", labelStyle.Render("Call:"),
				valueStyle.Render("profitable on direct odds"))
		} else {
			fmt.Printf("%s  %s\n", labelStyle.Render("Call:"),
				valueStyle.Render(fmt.Sprintf("needs %.1f more (%s) to break even",
					odds.MinToWin, odds.ImpliedOddsRatio)))
		}
	}
	return nil
}

// simulateEquity samples random runouts and counts how often the hero
// beats every opponent. Ties are worth half a win.
func simulateEquity(hero, board []poker.Card, opponents, iterations int, rng *rand.Rand) float64 {
	if iterations < 1 {
		iterations = 1
	}
	deck := poker.NewDeck(rng)

	var score float64
	for i := 0; i < iterations; i++ {
		deck.Shuffle()
		deck.Remove(hero...)
		deck.Remove(board...)

		runout := append(append([]poker.Card{}, board...), deck.Deal(5-len(board))...)
		heroHand := poker.Evaluate(append(append([]poker.Card{}, hero...), runout...))

		best := 1.0
		for o := 0; o < opponents; o++ {
			oppHole := deck.Deal(2)
			oppHand := poker.Evaluate(append(append([]poker.Card{}, oppHole...), runout...))
			switch poker.Compare(heroHand, oppHand) {
			case -1:
				best = 0
			case 0:
				if best > 0.5 {
					best = 0.5
				}
			}
		}
		score += best
	}
	return score / float64(iterations)
}

func renderGlyphs(cards []poker.Card) string {
	tokens := make([]string, len(cards))
	for i, c := range cards {
		tokens[i] = c.Glyph()
	}
	return strings.Join(tokens, " ")
}
