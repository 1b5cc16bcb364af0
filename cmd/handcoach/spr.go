package main

import (
	"fmt"

	"github.com/lox/handcoach/spr"
)

// SprCmd computes stack-to-pot ratios and commitment bands
type SprCmd struct {
	Hero     float64 `kong:"required,help='Hero remaining stack'"`
	Villain  float64 `kong:"required,help='Villain remaining stack'"`
	FlopPot  float64 `kong:"help='Pot size on the flop'"`
	TurnPot  float64 `kong:"help='Pot size on the turn'"`
	RiverPot float64 `kong:"help='Pot size on the river'"`
	Bet      float64 `kong:"help='Project pot geometry after this flop bet'"`
	Debug    bool    `kong:"help='Enable debug logging'"`
}

func (c *SprCmd) Run() error {
	logger := setupLogger(c.Debug)
	calc := spr.New(logger, nil)

	result := calc.Calculate(
		spr.PotSizes{Flop: c.FlopPot, Turn: c.TurnPot, River: c.RiverPot},
		spr.Stacks{Hero: c.Hero, Villain: c.Villain},
	)

	fmt.Printf("%s  %s\n", labelStyle.Render("Effective:"),
		valueStyle.Render(fmt.Sprintf("%.1f", result.EffectiveStack)))
	printStreet("Flop", result.Flop)
	printStreet("Turn", result.Turn)
	printStreet("River", result.River)

	if c.Bet > 0 && c.FlopPot > 0 {
		g := spr.PotGeometry(c.FlopPot, c.Bet, result.EffectiveStack)
		fmt.Printf("%s  %s\n", labelStyle.Render("After bet:"),
			valueStyle.Render(fmt.Sprintf("%s pot bet, new pot %.1f, new SPR %.1f",
				g.PotPercentage, g.NewPot, g.NewSPR)))
		if g.IsCommittedAfter {
			fmt.Println(mutedStyle.Render("betting this size commits the stack"))
		}
	}
	return nil
}

func printStreet(label string, street *spr.StreetSPR) {
	if street == nil {
		return
	}
	fmt.Printf("%s  %s\n", labelStyle.Render(label+":"), valueStyle.Render(street.Commitment))
}
