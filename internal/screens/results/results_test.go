package results

import (
	"image/color"
	"testing"

	"github.com/abhisek/quizmaster/internal/ui/theme"
)

func TestTierStyleMatchesMessageTier(t *testing.T) {
	cases := []struct {
		pct     float64
		color   color.Color
		message string
	}{
		{100, theme.Success, "Amazing! You're a quiz champion! 🌟"},
		{80, theme.Success, "Amazing! You're a quiz champion! 🌟"},
		{79.9, theme.Warning, "Good work! Keep it up! 👍"},
		{60, theme.Warning, "Good work! Keep it up! 👍"},
		{59.9, theme.Error, "Nice try! Practice makes perfect! 💪"},
		{0, theme.Error, "Nice try! Practice makes perfect! 💪"},
	}
	for _, tc := range cases {
		if got := tierStyle(tc.pct).GetForeground(); got != tc.color {
			t.Errorf("tierStyle(%v) foreground = %v, want %v", tc.pct, got, tc.color)
		}
		if got := performanceMessage(tc.pct); got != tc.message {
			t.Errorf("performanceMessage(%v) = %q, want %q", tc.pct, got, tc.message)
		}
	}
}
