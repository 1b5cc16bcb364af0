package handtext

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTags(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			"aliases fold to stable keys",
			[]string{"Call 3bet too wide", "Trip Hands Management"},
			[]string{"call_3bet_too_wide", "trips_management"},
		},
		{
			"slug punctuation",
			[]string{"miss value river!", "Check-back frequency"},
			[]string{"miss_value_river", "check_back_frequency"},
		},
		{
			"dedupe preserves first-seen order",
			[]string{"b leak", "a leak", "B Leak"},
			[]string{"b_leak", "a_leak"},
		},
		{
			"alias and slug collide to one",
			[]string{"call 3bet too wide", "call3bet_too_wide"},
			[]string{"call_3bet_too_wide"},
		},
		{
			"empty and whitespace dropped",
			[]string{"", "   ", "!!!"},
			nil,
		},
		{"nil input", nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeTags(tt.in))
		})
	}
}
