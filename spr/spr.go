// Package spr computes stack-to-pot ratios, commitment bands, pot
// geometry and implied-odds thresholds. Pure numeric functions over
// caller-supplied pot and stack figures; no text parsing.
package spr

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
)

// PotSizes carries the pot at each street. Zero means the street's pot
// was not supplied and its SPR stays undefined.
type PotSizes struct {
	Flop  float64 `json:"flop,omitempty"`
	Turn  float64 `json:"turn,omitempty"`
	River float64 `json:"river,omitempty"`
}

// Stacks are the two players' remaining stacks. The effective stack is
// always the smaller of the two.
type Stacks struct {
	Hero    float64 `json:"hero"`
	Villain float64 `json:"villain"`
}

// StreetSPR is the ratio for one street plus its commitment read.
type StreetSPR struct {
	SPR        float64 `json:"spr"`
	Commitment string  `json:"commitment"`
}

// Result is the per-street SPR breakdown. Streets without a supplied
// pot are nil.
type Result struct {
	EffectiveStack float64    `json:"effective_stack"`
	Flop           *StreetSPR `json:"flop,omitempty"`
	Turn           *StreetSPR `json:"turn,omitempty"`
	River          *StreetSPR `json:"river,omitempty"`
}

// Calculator computes SPR results. The clock feeds the diagnostic
// timing log only; the math itself is pure.
type Calculator struct {
	logger *log.Logger
	clock  quartz.Clock
}

// New creates a calculator. A nil logger disables the diagnostic log;
// a nil clock falls back to the real one.
func New(logger *log.Logger, clock quartz.Clock) *Calculator {
	if clock == nil {
		clock = quartz.NewReal()
	}
	return &Calculator{logger: logger, clock: clock}
}

// Calculate derives the effective stack and the SPR for every street
// with a supplied pot.
func (c *Calculator) Calculate(pots PotSizes, stacks Stacks) Result {
	start := c.clock.Now()

	eff := stacks.Hero
	if stacks.Villain < eff {
		eff = stacks.Villain
	}

	result := Result{EffectiveStack: eff}
	if pots.Flop > 0 {
		result.Flop = streetSPR(eff, pots.Flop)
	}
	if pots.Turn > 0 {
		result.Turn = streetSPR(eff, pots.Turn)
	}
	if pots.River > 0 {
		result.River = streetSPR(eff, pots.River)
	}

	if c.logger != nil {
		c.logger.Debug("spr calculated",
			"effective_stack", eff,
			"took", c.clock.Since(start))
	}
	return result
}

func streetSPR(effective, pot float64) *StreetSPR {
	ratio := effective / pot
	return &StreetSPR{SPR: ratio, Commitment: Commitment(ratio)}
}

// Commitment maps an SPR onto its narrative band. Thresholds are
// fixed: >13 fold-capable, 8-13 commit with TPTK or better, 4-8 commit
// with top pair or better, 2-4 hard to fold, <2 pot committed.
func Commitment(spr float64) string {
	switch {
	case spr > 13:
		return fmt.Sprintf("SPR %.1f: high, stacks are deep and folding big hands stays possible", spr)
	case spr >= 8:
		return fmt.Sprintf("SPR %.1f: medium-high, commit with TPTK or better", spr)
	case spr >= 4:
		return fmt.Sprintf("SPR %.1f: medium, commit with top pair or better", spr)
	case spr >= 2:
		return fmt.Sprintf("SPR %.1f: low, hard to fold anything decent", spr)
	default:
		return fmt.Sprintf("SPR %.1f: very low, pot committed", spr)
	}
}

// Geometry is the state of the pot after a bet is made and called.
type Geometry struct {
	NewPot           float64 `json:"new_pot"`
	NewSPR           float64 `json:"new_spr"`
	PotPercentage    string  `json:"pot_percentage"`
	IsCommittedAfter bool    `json:"is_committed_after"`
}

// PotGeometry projects the pot and SPR after both players put in bet.
func PotGeometry(pot, bet, remainingStack float64) Geometry {
	newPot := pot + 2*bet
	newSPR := remainingStack / newPot
	return Geometry{
		NewPot:           newPot,
		NewSPR:           newSPR,
		PotPercentage:    fmt.Sprintf("%d%%", int(bet/pot*100)),
		IsCommittedAfter: newSPR < 2,
	}
}

// ImpliedOdds says how much future money a call needs to win to break
// even at the given equity.
type ImpliedOdds struct {
	MinToWin         float64 `json:"min_to_win"`
	ImpliedOddsRatio string  `json:"implied_odds_ratio"`
	IsDrawProfitable bool    `json:"is_draw_profitable"`
}

// ImpliedOddsThreshold computes the extra winnings a drawing call must
// extract. Equity must be in (0,1]; equity of zero is the caller's
// contract to avoid.
func ImpliedOddsThreshold(potSize, callAmount, equity float64) ImpliedOdds {
	minToWin := callAmount*(1-equity)/equity - potSize
	profitable := minToWin <= 0
	if minToWin < 0 {
		minToWin = 0
	}
	ratio := "0x pot"
	if minToWin > 0 {
		ratio = fmt.Sprintf("%.1fx pot", minToWin/potSize)
	}
	return ImpliedOdds{
		MinToWin:         minToWin,
		ImpliedOddsRatio: ratio,
		IsDrawProfitable: profitable,
	}
}
