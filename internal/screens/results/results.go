package results

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizmaster/internal/game"
	"github.com/abhisek/quizmaster/internal/quiz"
	"github.com/abhisek/quizmaster/internal/router"
	"github.com/abhisek/quizmaster/internal/screen"
	"github.com/abhisek/quizmaster/internal/textdir"
	"github.com/abhisek/quizmaster/internal/ui/layout"
	"github.com/abhisek/quizmaster/internal/ui/theme"
)

// ResultsScreen shows the final score of a completed session.
type ResultsScreen struct {
	st       *game.State
	category string
	result   quiz.Result
	replay   func() screen.Screen
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates a results screen. The score has already been recorded in the
// ledger by the caller. replay builds a fresh play screen for "Play Again";
// it is injected by the play package so the two screens don't import each
// other.
func New(st *game.State, category string, result quiz.Result, replay func() screen.Screen) *ResultsScreen {
	return &ResultsScreen{st: st, category: category, result: result, replay: replay}
}

func (r *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (r *ResultsScreen) Title() string {
	return "Results"
}

func (r *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Play again"},
		{Key: "Esc", Description: "Main menu"},
	}
}

func (r *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return r, nil
	}

	switch kmsg.String() {
	case "enter", "p":
		if r.replay == nil {
			return r, nil
		}
		replay := r.replay
		return r, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: replay()}
		}
	case "esc", "m":
		return r, func() tea.Msg { return router.PopToRootMsg{} }
	}
	return r, nil
}

func (r *ResultsScreen) View(width, height int) string {
	res := r.result
	rtl := textdir.IsRTL(r.category)

	var b strings.Builder
	b.WriteString("\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render("🏆"))
	b.WriteString("\n\n")

	title := "Quiz Complete!"
	if rtl {
		title = "انتهى الاختبار!"
	}
	b.WriteString(theme.Title.Width(width).Render(title))
	b.WriteString("\n\n")

	catLine := "Topic: " + r.category
	b.WriteString(theme.Subtitle.Width(width).Render(catLine))
	b.WriteString("\n\n")

	score := theme.Correct.Render(fmt.Sprintf("%d", res.Correct)) +
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(" - ") +
		theme.Incorrect.Render(fmt.Sprintf("%d", res.Wrong))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, score))
	b.WriteString("\n\n")

	style := tierStyle(res.Percentage)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		style.Bold(true).Render(fmt.Sprintf("%.1f%%", res.Percentage))))
	b.WriteString("\n\n")

	b.WriteString(style.Width(width).Align(lipgloss.Center).Render(performanceMessage(res.Percentage)))

	return b.String()
}

// tierStyle colors both the percentage and the encouragement line by score
// tier, so the two never disagree.
func tierStyle(pct float64) lipgloss.Style {
	switch {
	case pct >= 80:
		return lipgloss.NewStyle().Foreground(theme.Success)
	case pct >= 60:
		return lipgloss.NewStyle().Foreground(theme.Warning)
	default:
		return lipgloss.NewStyle().Foreground(theme.Error)
	}
}

// performanceMessage picks the encouragement line by score tier.
func performanceMessage(pct float64) string {
	switch {
	case pct >= 80:
		return "Amazing! You're a quiz champion! 🌟"
	case pct >= 60:
		return "Good work! Keep it up! 👍"
	default:
		return "Nice try! Practice makes perfect! 💪"
	}
}
