package handtext

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/lox/handcoach/poker"
)

// HeroCards is the hero's hole cards as canonical two-token text.
// Defaulted marks suits that were fabricated because the narration
// never specified them; downstream flush reasoning must not trust
// defaulted suits.
type HeroCards struct {
	Text      string `json:"text"`
	Defaulted bool   `json:"defaulted"`
}

// Fields is the structured result of parsing free-form hand narration.
// Every field is independently optional; the zero value means "not
// detected", never an error.
type Fields struct {
	Date           string    `json:"date"`
	Stakes         string    `json:"stakes"`
	Position       string    `json:"position"`
	HeroCards      HeroCards `json:"hero_cards"`
	Board          string    `json:"board"`
	Mode           string    `json:"mode"`
	EffectiveStack int       `json:"effective_stack_bb"`
	Blinds         string    `json:"blinds"`
	ICMContext     bool      `json:"icm_context"`
	Tags           []string  `json:"tags"`
}

// ParseFields normalizes the text and runs every extractor, returning
// a fully populated Fields with empty values where nothing matched.
func ParseFields(text string) Fields {
	return ParseFieldsWith(defaultNormalizer, text)
}

// ParseFieldsWith is ParseFields with a caller-supplied normalizer,
// used when config adds extra rewrite rules.
func ParseFieldsWith(n *Normalizer, text string) Fields {
	norm := n.Normalize(text)
	return Fields{
		Date:           ExtractDate(norm),
		Stakes:         ExtractStakes(norm),
		Position:       ExtractPosition(norm),
		HeroCards:      ExtractHeroCards(norm),
		Board:          ExtractBoard(norm),
		Mode:           ExtractMode(norm),
		EffectiveStack: ExtractEffectiveStackBB(norm),
		Blinds:         ExtractBlinds(norm),
		ICMContext:     ExtractICMContext(norm),
	}
}

var dateRe = regexp.MustCompile(`\b\d{4}-\d{2}-\d{2}\b`)

// ExtractDate picks up an ISO date if one is present. Slashed date
// forms are deliberately not matched; they collide with stakes.
func ExtractDate(text string) string {
	return dateRe.FindString(text)
}

var stakesRe = regexp.MustCompile(`\$?\s*\d+(?:\.\d+)?\s*[/-]\s*\$?\s*\d+(?:\.\d+)?`)

// ExtractStakes finds the first stakes-like pattern, e.g. "$2/$5" or
// "1/3". First match wins.
func ExtractStakes(text string) string {
	return strings.TrimSpace(stakesRe.FindString(text))
}

// positionPriority is ordered so overlapping tokens resolve
// deterministically; the first token found anywhere in the text wins.
var positionPriority = []string{"SB", "BB", "BTN", "CO", "HJ", "MP", "UTG+2", "UTG+1", "UTG"}

var positionRes = func() map[string]*regexp.Regexp {
	res := make(map[string]*regexp.Regexp, len(positionPriority))
	for _, p := range positionPriority {
		res[p] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(p) + `\b`)
	}
	return res
}()

var heroPositionRe = regexp.MustCompile(
	`(?i)\bhero\b.{0,40}?\b(?:on|from|in)\s+(?:the\s+)?` +
		`(utg\+2|utg\+1|utg|mp|hj|co|btn|sb|bb|button|dealer|cut-?off|hijack|small\s+blind|big\s+blind|under\s+the\s+gun|middle\s+position)`)

var verbosePositions = map[string]string{
	"button": "BTN", "dealer": "BTN",
	"cutoff": "CO", "cut-off": "CO",
	"hijack":          "HJ",
	"small blind":     "SB",
	"big blind":       "BB",
	"under the gun":   "UTG",
	"middle position": "MP",
}

// ExtractPosition finds the hero's seat label. Bare abbreviation
// tokens win in priority order; failing that, "Hero ... on/from/in
// POSITION" phrasing is tried, accepting verbose names.
func ExtractPosition(text string) string {
	for _, p := range positionPriority {
		if positionRes[p].MatchString(text) {
			return p
		}
	}
	if m := heroPositionRe.FindStringSubmatch(text); m != nil {
		raw := strings.ToLower(strings.Join(strings.Fields(m[1]), " "))
		if abbr, ok := verbosePositions[raw]; ok {
			return abbr
		}
		return strings.ToUpper(raw)
	}
	return ""
}

const cardToken = `(?:10|[2-9tjqka])\s?[shdc♠♥♦♣]`

var (
	verbCardsRe = regexp.MustCompile(`(?i)\b(?:with|holding|have|has|dealt)\s+(` + cardToken + `)[\s,]*(` + cardToken + `)`)
	gluedPairRe = regexp.MustCompile(`(?i)\b((?:10|[2-9tjqka])[shdc♠♥♦♣])((?:10|[2-9tjqka])[shdc♠♥♦♣])(?:\b|$)`)
)

var rankWords = map[string]poker.Rank{
	"ace": poker.Ace, "king": poker.King, "queen": poker.Queen,
	"jack": poker.Jack, "ten": poker.Ten, "nine": poker.Nine,
	"eight": poker.Eight, "seven": poker.Seven, "six": poker.Six,
	"five": poker.Five, "four": poker.Four, "three": poker.Three,
	"trey": poker.Three, "two": poker.Two, "deuce": poker.Two,
}

var suitWords = map[string]poker.Suit{
	"spades": poker.Spades, "hearts": poker.Hearts,
	"diamonds": poker.Diamonds, "clubs": poker.Clubs,
}

const rankWord = `ace|king|queen|jack|ten|nine|eight|seven|six|five|four|trey|three|deuce|two`

var (
	narrativePairRe = regexp.MustCompile(
		`(?i)\b(` + rankWord + `)[\s-]+(` + rankWord + `)\b` +
			`(?:\s+(suited|offsuit))?(?:\s+of\s+(spades|hearts|diamonds|clubs))?`)
	pocketPairRe = regexp.MustCompile(
		`(?i)\bpocket\s+(aces|kings|queens|jacks|tens|nines|eights|sevens|sixes|fives|fours|threes|deuces|twos)\b`)
)

// ExtractHeroCards recovers the hero's hole cards. Explicit card
// tokens win; narrative rank-word phrasing is the fallback, with suits
// resolved from "of <suit>" or "suited", else defaulted to one spade
// plus one heart with the Defaulted flag set.
func ExtractHeroCards(text string) HeroCards {
	if m := verbCardsRe.FindStringSubmatch(text); m != nil {
		if out, ok := canonicalPair(m[1], m[2]); ok {
			return HeroCards{Text: out}
		}
	}
	if m := gluedPairRe.FindStringSubmatch(text); m != nil {
		if out, ok := canonicalPair(m[1], m[2]); ok {
			return HeroCards{Text: out}
		}
	}
	if m := pocketPairRe.FindStringSubmatch(text); m != nil {
		word := strings.ToLower(strings.TrimSuffix(m[1], "s"))
		if word == "sixe" {
			word = "six"
		}
		if r, ok := rankWords[word]; ok {
			a := poker.NewCard(r, poker.Spades)
			b := poker.NewCard(r, poker.Hearts)
			return HeroCards{Text: a.String() + " " + b.String(), Defaulted: true}
		}
	}
	if m := narrativePairRe.FindStringSubmatch(text); m != nil {
		r1 := rankWords[strings.ToLower(m[1])]
		r2 := rankWords[strings.ToLower(m[2])]
		switch {
		case m[4] != "": // of <suit>
			s := suitWords[strings.ToLower(m[4])]
			a := poker.NewCard(r1, s)
			b := poker.NewCard(r2, s)
			return HeroCards{Text: a.String() + " " + b.String()}
		case strings.EqualFold(m[3], "suited"):
			a := poker.NewCard(r1, poker.Spades)
			b := poker.NewCard(r2, poker.Spades)
			return HeroCards{Text: a.String() + " " + b.String(), Defaulted: true}
		default: // offsuit or unspecified
			a := poker.NewCard(r1, poker.Spades)
			b := poker.NewCard(r2, poker.Hearts)
			return HeroCards{Text: a.String() + " " + b.String(), Defaulted: true}
		}
	}
	return HeroCards{}
}

func canonicalPair(tok1, tok2 string) (string, bool) {
	a, ok1 := poker.ParseCard(tok1)
	b, ok2 := poker.ParseCard(tok2)
	if !ok1 || !ok2 {
		return "", false
	}
	return a.String() + " " + b.String(), true
}

// Anchors tolerate up to two filler words before the card run, so
// "flop comes Ks 7h 2d" and "the flop is Ah 7d 2c" still match. The
// word run is lazy: card tokens are never swallowed as filler.
const boardAnchorGap = `[^0-9a-z]*(?:\w+\s+){0,2}?`
const boardCardRun = `((?:(?:10|[2-9tjqka])\s?[shdc♠♥♦♣][\s,/|]*)+)`

var (
	flopAnchorRe  = regexp.MustCompile(`(?i)\bflop\b` + boardAnchorGap + boardCardRun)
	turnAnchorRe  = regexp.MustCompile(`(?i)\bturn\b` + boardAnchorGap + boardCardRun)
	riverAnchorRe = regexp.MustCompile(`(?i)\briver\b` + boardAnchorGap + boardCardRun)
)

// ExtractBoard locates flop/turn/river anchor words and takes the run
// of card tokens after each. When no anchors are present but the text
// holds at least five card tokens, positions 0-2 become the flop, 3
// the turn and 4 the river. Streets found are joined, each labeled.
func ExtractBoard(text string) string {
	var parts []string
	addStreet := func(label string, re *regexp.Regexp) bool {
		m := re.FindStringSubmatch(text)
		if m == nil {
			return false
		}
		cards := poker.ParseMany(m[1])
		if len(cards) == 0 {
			return false
		}
		parts = append(parts, label+": "+renderCards(cards))
		return true
	}

	found := addStreet("Flop", flopAnchorRe)
	found = addStreet("Turn", turnAnchorRe) || found
	found = addStreet("River", riverAnchorRe) || found

	if !found {
		cards := poker.ParseMany(text)
		if len(cards) >= 5 {
			parts = append(parts,
				"Flop: "+renderCards(cards[0:3]),
				"Turn: "+renderCards(cards[3:4]),
				"River: "+renderCards(cards[4:5]))
		}
	}
	return strings.Join(parts, "; ")
}

func renderCards(cards []poker.Card) string {
	tokens := make([]string, len(cards))
	for i, c := range cards {
		tokens[i] = c.String()
	}
	return strings.Join(tokens, " ")
}

var (
	mttVocabRe = regexp.MustCompile(`(?i)\b(icm|bubble|final\s+table|day\s*\d|antes?)\b|(?i)\bblinds?\s+\d{3,}`)
)

// ExtractMode reports "mtt" when tournament vocabulary is present,
// "cash" when a stakes-like pattern is, else empty. Tournament
// vocabulary takes priority.
func ExtractMode(text string) string {
	if mttVocabRe.MatchString(text) {
		return "mtt"
	}
	if stakesRe.MatchString(text) {
		return "cash"
	}
	return ""
}

var (
	stackEffRe = regexp.MustCompile(`(?i)\b(\d+)\s*bb\b\s*(?:eff\w*)`)
	stackRe    = regexp.MustCompile(`(?i)\b(\d+)\s*bb\b`)
)

// ExtractEffectiveStackBB finds the effective stack in big blinds,
// preferring a figure annotated "eff"/"effective". Floors at 1 so a
// parsed zero never divides downstream math. Returns 0 when absent.
func ExtractEffectiveStackBB(text string) int {
	m := stackEffRe.FindStringSubmatch(text)
	if m == nil {
		m = stackRe.FindStringSubmatch(text)
	}
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	if n < 1 {
		return 1
	}
	return n
}

var (
	cashBlindsRe  = regexp.MustCompile(`\$\d+(?:\.\d+)?\s*/\s*\$\d+(?:\.\d+)?`)
	levelBlindsRe = regexp.MustCompile(`(?i)\b\d+(?:\.\d+)?[km]?\s*/\s*\d+(?:\.\d+)?[km]?(?:\s*/\s*\d+(?:\.\d+)?[km]?)?(?:\s*ante\s*\d*[km]?)?`)
)

// ExtractBlinds prefers a cash "$X/$Y" pattern and falls back to a
// tournament level pattern with optional k/m suffixes and ante.
func ExtractBlinds(text string) string {
	if m := cashBlindsRe.FindString(text); m != "" {
		return m
	}
	return strings.TrimSpace(levelBlindsRe.FindString(text))
}

var icmVocabRe = regexp.MustCompile(`(?i)\b(icm|bubble|final\s+table|ladder|payouts?|itm|in\s+the\s+money)\b`)

// ExtractICMContext reports whether tournament-equity vocabulary
// appears anywhere in the text.
func ExtractICMContext(text string) bool {
	return icmVocabRe.MatchString(text)
}

// SmellReport says whether text looks like a tournament hand and which
// keywords triggered, so callers gating cash-only analysis can show
// their work.
type SmellReport struct {
	Tournament bool     `json:"tournament"`
	Triggers   []string `json:"triggers"`
}

var smellKeywords = []string{
	"icm", "bubble", "final table", "itm", "in the money",
	"tournament", "mtt", "ante", "bba", "day 2", "satellite",
}

var levelNearAnteRe = regexp.MustCompile(`(?i)\d+[km]?/\d+[km]?(?:/\d+[km]?)?.{0,20}\b(ante|bba)\b|(?i)\b(ante|bba)\b.{0,20}\d+[km]?/\d+[km]?`)

// TournamentSmell scans for tournament-indicating keywords plus a
// blind-level pattern near "ante"/"bba".
func TournamentSmell(text string) SmellReport {
	lower := strings.ToLower(text)
	var report SmellReport
	for _, kw := range smellKeywords {
		if strings.Contains(lower, kw) {
			report.Triggers = append(report.Triggers, kw)
		}
	}
	if levelNearAnteRe.MatchString(text) {
		report.Triggers = append(report.Triggers, "blind-level")
	}
	report.Tournament = len(report.Triggers) > 0
	return report
}

// Analysis pairs the extracted fields with a hand strength read when
// both hero cards and a board were recovered.
type Analysis struct {
	Fields Fields               `json:"fields"`
	Hand   *poker.EvaluatedHand `json:"hand,omitempty"`
}

// Analyze parses the text and, when hero cards plus board are both
// present, evaluates the combined hand.
func Analyze(text string) Analysis {
	return AnalyzeWith(defaultNormalizer, text)
}

// AnalyzeWith is Analyze with a caller-supplied normalizer.
func AnalyzeWith(n *Normalizer, text string) Analysis {
	fields := ParseFieldsWith(n, text)
	out := Analysis{Fields: fields}
	if fields.HeroCards.Text == "" || fields.Board == "" {
		return out
	}
	cards := poker.ParseMany(fields.HeroCards.Text)
	cards = append(cards, poker.ParseMany(fields.Board)...)
	if len(cards) >= 5 {
		hand := poker.Evaluate(cards)
		out.Hand = &hand
	}
	return out
}
