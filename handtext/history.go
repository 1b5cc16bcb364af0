package handtext

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Helpers for pasted site hand histories, the other flavor of loosely
// structured input. Seat lines plus the button marker are enough to
// recover every player's preflop position.

var (
	seatLineRe   = regexp.MustCompile(`(?im)^seat\s+(\d+):\s+(.+?)\s+\(`)
	buttonLineRe = regexp.MustCompile(`(?i)seat\s*#\s*(\d+)\s+is\s+the\s+button`)
	postsSBRe    = regexp.MustCompile(`(?im)^(\S+?)(?:\s*:\s*|\s+)posts\s+(?:the\s+)?small\s+blind`)

	dealtToRe      = regexp.MustCompile(`(?m)^Dealt\s+to\s+(\S+)`)
	dealtToCardsRe = regexp.MustCompile(`(?i)dealt\s+to\s+\S+\s*\[((?:10|[2-9tjqka])[cdhs])\s+((?:10|[2-9tjqka])[cdhs])\]`)

	flopTagRe     = regexp.MustCompile(`(?i)\*\*\*\s*flop\s*\*\*\*`)
	turnTagRe     = regexp.MustCompile(`(?i)\*\*\*\s*turn\s*\*\*\*`)
	riverTagRe    = regexp.MustCompile(`(?i)\*\*\*\s*river\s*\*\*\*`)
	showdownTagRe = regexp.MustCompile(`(?i)\bshow\s*down|showdown\b`)

	inactiveRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(\w+)\s+sits?\s+out`),
		regexp.MustCompile(`(?i)(\w+)\s+waits\s+for\s+big\s+blind`),
		regexp.MustCompile(`(?i)(\w+)\s+will\s+be\s+allowed\s+to\s+play`),
	}
)

// preflopOrder maps table size to seat labels in preflop acting order.
// Heads-up the small blind holds the button.
var preflopOrder = map[int][]string{
	2: {"SB/BTN", "BB"},
	3: {"BTN", "SB", "BB"},
	4: {"UTG", "BTN", "SB", "BB"},
	5: {"UTG", "CO", "BTN", "SB", "BB"},
	6: {"UTG", "HJ", "CO", "BTN", "SB", "BB"},
	7: {"UTG", "UTG+1", "HJ", "CO", "BTN", "SB", "BB"},
	8: {"UTG", "UTG+1", "LJ", "HJ", "CO", "BTN", "SB", "BB"},
	9: {"UTG", "UTG+1", "UTG+2", "LJ", "HJ", "CO", "BTN", "SB", "BB"},
}

func labelsAroundButton(numPlayers int) []string {
	order, ok := preflopOrder[numPlayers]
	if !ok {
		order = preflopOrder[6]
	}
	btn := 0
	for i, label := range order {
		if label == "BTN" || label == "SB/BTN" {
			btn = i
			break
		}
	}
	out := make([]string, 0, len(order))
	out = append(out, order[btn:]...)
	out = append(out, order[:btn]...)
	return out
}

// InferPositions maps player names to seat labels using the "Seat N:"
// lines and the button marker. Sitting-out players are excluded. When
// the marked button seat is empty (dead button), the seat before the
// small blind poster acts as button. Returns an empty map when the
// history gives too little to work with.
func InferPositions(text string) map[string]string {
	if text == "" {
		return map[string]string{}
	}

	// Summary sections repeat the seat lines.
	if i := strings.Index(text, "*** SUMMARY ***"); i >= 0 {
		text = text[:i]
	}

	mBtn := buttonLineRe.FindStringSubmatch(text)
	if mBtn == nil {
		return map[string]string{}
	}
	btnSeat, err := strconv.Atoi(mBtn[1])
	if err != nil {
		return map[string]string{}
	}

	inactive := make(map[string]bool)
	for _, re := range inactiveRes {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			inactive[strings.TrimSpace(m[1])] = true
		}
	}

	type seat struct {
		num  int
		name string
	}
	var seats []seat
	for _, loc := range seatLineRe.FindAllStringSubmatchIndex(text, -1) {
		num, err := strconv.Atoi(text[loc[2]:loc[3]])
		if err != nil {
			continue
		}
		name := strings.TrimSpace(text[loc[4]:loc[5]])
		if name == "" || inactive[name] {
			continue
		}
		lineEnd := strings.IndexByte(text[loc[0]:], '\n')
		line := text[loc[0]:]
		if lineEnd >= 0 {
			line = text[loc[0] : loc[0]+lineEnd]
		}
		if strings.Contains(strings.ToLower(line), "sitting out") {
			continue
		}
		seats = append(seats, seat{num: num, name: name})
	}
	if len(seats) == 0 {
		return map[string]string{}
	}

	occupied := make([]int, 0, len(seats))
	seatToName := make(map[int]string, len(seats))
	nameToSeat := make(map[string]int, len(seats))
	for _, s := range seats {
		occupied = append(occupied, s.num)
		seatToName[s.num] = s.name
		nameToSeat[s.name] = s.num
	}
	sort.Ints(occupied)

	actualBtn := -1
	if _, ok := seatToName[btnSeat]; ok {
		actualBtn = btnSeat
	} else if m := postsSBRe.FindStringSubmatch(text); m != nil {
		// Dead button: the active seat before the small blind poster
		// holds the button.
		if sbSeat, ok := nameToSeat[strings.TrimSpace(m[1])]; ok {
			for i, s := range occupied {
				if s == sbSeat {
					actualBtn = occupied[(i-1+len(occupied))%len(occupied)]
					break
				}
			}
		}
	}
	if actualBtn < 0 {
		return map[string]string{}
	}

	start := 0
	for i, s := range occupied {
		if s == actualBtn {
			start = i
			break
		}
	}
	clockwise := append(append([]int{}, occupied[start:]...), occupied[:start]...)
	labels := labelsAroundButton(len(clockwise))

	positions := make(map[string]string, len(clockwise))
	for i, s := range clockwise {
		if i >= len(labels) {
			break
		}
		label := labels[i]
		if label == "SB/BTN" {
			label = "BTN"
		}
		positions[seatToName[s]] = label
	}
	return positions
}

// HeroName reads the "Dealt to" line to identify which player is the
// hero.
func HeroName(text string) string {
	if m := dealtToRe.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return ""
}

// HeroPosition combines HeroName with InferPositions.
func HeroPosition(text string) string {
	name := HeroName(text)
	if name == "" {
		return ""
	}
	return InferPositions(text)[name]
}

// HeroHistoryCards pulls the hero's hole cards from the bracketed
// "Dealt to X [Kd Jc]" line, canonicalized.
func HeroHistoryCards(text string) HeroCards {
	if m := dealtToCardsRe.FindStringSubmatch(text); m != nil {
		if out, ok := canonicalPair(m[1], m[2]); ok {
			return HeroCards{Text: out}
		}
	}
	return HeroCards{}
}

// StreetReached reports the last street the hand saw, from the site
// street markers.
func StreetReached(text string) string {
	switch {
	case riverTagRe.MatchString(text) || showdownTagRe.MatchString(text):
		return "river"
	case turnTagRe.MatchString(text):
		return "turn"
	case flopTagRe.MatchString(text):
		return "flop"
	default:
		return "preflop"
	}
}
