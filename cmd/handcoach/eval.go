package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/lox/handcoach/poker"
)

// EvalCmd classifies the best five-card hand from card tokens
type EvalCmd struct {
	Cards []string `kong:"arg,help='Card tokens, e.g. Kh Kd Ks 5c 5h'"`
	JSON  bool     `kong:"help='Emit JSON instead of styled output'"`
}

func (c *EvalCmd) Run() error {
	cards := poker.ParseMany(strings.Join(c.Cards, " "))
	hand := poker.Evaluate(cards)

	if c.JSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(hand)
	}

	tokens := make([]string, len(cards))
	for i, card := range cards {
		tokens[i] = card.Glyph()
	}
	fmt.Printf("%s  %s\n", labelStyle.Render("Cards:"), valueStyle.Render(strings.Join(tokens, " ")))
	fmt.Printf("%s  %s\n", labelStyle.Render("Hand:"), handStyle.Render(hand.Label))
	return nil
}
