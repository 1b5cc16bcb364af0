package handtext

import (
	"regexp"
	"strings"
)

// tagAliases folds known phrasing variants onto stable slug keys so
// the same leak always lands in the same bucket.
var tagAliases = map[string]string{
	"call 3bet too wide":     "call_3bet_too_wide",
	"call3bet_too_wide":      "call_3bet_too_wide",
	"miss value river":       "miss_value_river",
	"check back frequency":   "check_back_frequency",
	"trip hands management":  "trips_management",
	"trips_management":       "trips_management",
}

var tagSlugRe = regexp.MustCompile(`[^a-z0-9_]+`)

// NormalizeTags lowercases, slugs and alias-folds learning tags,
// deduplicating while preserving first-seen order.
func NormalizeTags(tags []string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, t := range tags {
		raw := strings.ToLower(strings.TrimSpace(t))
		key := strings.Trim(tagSlugRe.ReplaceAllString(raw, "_"), "_")
		norm := key
		if alias, ok := tagAliases[raw]; ok {
			norm = alias
		} else if alias, ok := tagAliases[key]; ok {
			norm = alias
		}
		if norm == "" || seen[norm] {
			continue
		}
		seen[norm] = true
		out = append(out, norm)
	}
	return out
}
