// Package handtext turns loosely structured poker narration into
// structured fields: typo and slang normalization, regex field
// extraction, learning-tag slugs, and pasted hand-history helpers.
package handtext

import (
	"fmt"
	"regexp"
)

// Rule is a single case-insensitive rewrite applied during
// normalization. Rules target disjoint vocabulary so applying the
// table twice leaves already-canonical text unchanged.
type Rule struct {
	re      *regexp.Regexp
	replace string
}

// NewRule compiles a rewrite rule. The pattern is made
// case-insensitive; use \b anchors for whole-word targets.
func NewRule(pattern, replace string) (Rule, error) {
	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		return Rule{}, fmt.Errorf("compiling rewrite rule %q: %w", pattern, err)
	}
	return Rule{re: re, replace: replace}, nil
}

func mustRule(pattern, replace string) Rule {
	r, err := NewRule(pattern, replace)
	if err != nil {
		panic(err)
	}
	return r
}

// Normalizer rewrites free-form poker narration into canonical
// vocabulary before field extraction. Zero value is unusable; build
// with NewNormalizer.
type Normalizer struct {
	rules []Rule
}

// NewNormalizer returns a normalizer with the built-in typo, position,
// slang and street-shorthand tables, followed by any extra rules in
// the order given.
func NewNormalizer(extra ...Rule) *Normalizer {
	rules := make([]Rule, 0, len(defaultRules)+len(extra))
	rules = append(rules, defaultRules...)
	rules = append(rules, extra...)
	return &Normalizer{rules: rules}
}

// Normalize applies every rule in order. Pure string transform.
func (n *Normalizer) Normalize(text string) string {
	for _, r := range n.rules {
		text = r.re.ReplaceAllString(text, r.replace)
	}
	return text
}

var defaultRules = []Rule{
	// Common typos.
	mustRule(`\brasie(s|d)?\b`, "raise$1"),
	mustRule(`\bvillian(s)?\b`, "villain$1"),
	mustRule(`\bagressive\b`, "aggressive"),
	mustRule(`\bsuted\b`, "suited"),

	// Verbose position names to abbreviations.
	mustRule(`\bunder\s+the\s+gun\b`, "UTG"),
	mustRule(`\bcut-?off\b`, "CO"),
	mustRule(`\bhijack\b`, "HJ"),
	mustRule(`\blojack\b`, "LJ"),
	mustRule(`\bmiddle\s+position\b`, "MP"),
	mustRule(`\bbig\s+blind\b`, "BB"),
	mustRule(`\bsmall\s+blind\b`, "SB"),
	mustRule(`\b(button|dealer)\b`, "BTN"),

	// Action slang to canonical verbs.
	mustRule(`\b(?:jam(?:s|med)?|shove(?:s|d)?|rip(?:s|ped)?)\b`, "all-in"),
	mustRule(`\b(?:peel(?:s|ed)?|flat(?:s|ted)?)\b`, "calls"),
	mustRule(`\b(?:fire(?:s|d)?|barrel(?:s|led)?)\b`, "bets"),
	mustRule(`\bx\b`, "checks"),
	mustRule(`\bb(\d+)\b`, "bets $1% pot"),

	// Street shorthand: "F(Ks 7h 2d)" style.
	mustRule(`\bF\(`, "Flop ("),
	mustRule(`\bT\(`, "Turn ("),
	mustRule(`\bR\(`, "River ("),
}

var defaultNormalizer = NewNormalizer()

// Normalize rewrites text with the built-in rule table.
func Normalize(text string) string {
	return defaultNormalizer.Normalize(text)
}
