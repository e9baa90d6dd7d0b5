package highscores

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/quizmaster/internal/game"
	"github.com/abhisek/quizmaster/internal/router"
	"github.com/abhisek/quizmaster/internal/scores"
	"github.com/abhisek/quizmaster/internal/screen"
	"github.com/abhisek/quizmaster/internal/textdir"
	"github.com/abhisek/quizmaster/internal/ui/layout"
	"github.com/abhisek/quizmaster/internal/ui/theme"
)

// ledgerLoadedMsg carries the freshly read ledger.
type ledgerLoadedMsg struct {
	ledger *scores.Ledger
}

// HighScoresScreen lists the per-category top scores.
type HighScoresScreen struct {
	st     *game.State
	ledger *scores.Ledger
	loaded bool
}

var _ screen.Screen = (*HighScoresScreen)(nil)
var _ screen.KeyHintProvider = (*HighScoresScreen)(nil)

// New creates the high-scores screen.
func New(st *game.State) *HighScoresScreen {
	return &HighScoresScreen{st: st}
}

// Init re-reads the score file so the display reflects what is on disk.
func (s *HighScoresScreen) Init() tea.Cmd {
	return func() tea.Msg {
		ledger, err := scores.Load(s.st.Cfg.ScoresPath)
		if err != nil {
			s.st.Log.Warn("score ledger unreadable at display time", zap.Error(err))
		}
		return ledgerLoadedMsg{ledger: ledger}
	}
}

func (s *HighScoresScreen) Title() string {
	return "Hall of Fame"
}

func (s *HighScoresScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back to menu"},
	}
}

func (s *HighScoresScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case ledgerLoadedMsg:
		s.ledger = msg.ledger
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "enter":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *HighScoresScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render("🏆 Hall of Fame"))
	b.WriteString("\n\n")

	if !s.loaded {
		b.WriteString(theme.Subtitle.Width(width).Render("Loading scores..."))
		return b.String()
	}

	if s.ledger == nil || s.ledger.Empty() {
		b.WriteString(theme.Subtitle.Width(width).Render("No scores recorded yet!"))
		return b.String()
	}

	for _, cat := range s.ledger.Categories() {
		align := lipgloss.Center
		if textdir.IsRTL(cat) {
			align = lipgloss.Right
		}

		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(align).
			Foreground(theme.Primary).
			Bold(true).
			Render(cat))
		b.WriteString("\n")

		// Scores can outlive the bank they were earned on; skip the
		// denominator when the category is gone.
		maxScore := s.st.Bank.Count(cat)
		for rank, entry := range s.ledger.Top(cat) {
			line := fmt.Sprintf("%d. %d - %s", rank+1, entry.Score, entry.Date)
			if maxScore > 0 {
				line = fmt.Sprintf("%d. %d/%d - %s", rank+1, entry.Score, maxScore, entry.Date)
			}
			b.WriteString(lipgloss.NewStyle().
				Width(width).
				Align(align).
				Foreground(theme.Text).
				Render(line))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	return b.String()
}
