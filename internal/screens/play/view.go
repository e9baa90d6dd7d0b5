package play

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizmaster/internal/quiz"
	"github.com/abhisek/quizmaster/internal/textdir"
	"github.com/abhisek/quizmaster/internal/ui/components"
	"github.com/abhisek/quizmaster/internal/ui/theme"
)

// urgentThreshold is the remaining-seconds mark where the timer turns red.
const urgentThreshold = 10

func (p *PlayScreen) View(width, height int) string {
	if p.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render("\n\nCould not start quiz: " + p.errMsg + "\n\nPress any key to go back.")
	}
	if p.sess == nil {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\nShuffling questions...")
	}

	q, ok := p.sess.CurrentQuestion()
	if !ok {
		return ""
	}
	rtl := textdir.IsRTL(q.Text)

	var b strings.Builder

	// Topic on the left, correct-wrong split on the right.
	topic := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("  Topic: " + p.sess.Category)
	score := theme.Correct.Render(fmt.Sprintf("%d", p.sess.Correct)) +
		lipgloss.NewStyle().Foreground(theme.Text).Render(" - ") +
		theme.Incorrect.Render(fmt.Sprintf("%d", p.sess.Wrong))

	gap := width - lipgloss.Width(topic) - lipgloss.Width(score) - 4
	if gap < 1 {
		gap = 1
	}
	b.WriteString(topic + strings.Repeat(" ", gap) + score)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	// Progress bar and question counter.
	bar := components.NewProgressBar("", p.sess.Progress(), false, min(width-8, 50))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n")
	counter := fmt.Sprintf("Question %d of %d", p.sess.Current+1, len(p.sess.Questions))
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(counter))
	b.WriteString("\n")

	// Countdown.
	timerStyle := theme.TimerCalm
	if p.sess.Remaining <= urgentThreshold {
		timerStyle = theme.TimerUrgent
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		timerStyle.Render(fmt.Sprintf("Time: %ds", p.sess.Remaining))))
	b.WriteString("\n\n")

	// Question text, right-aligned for RTL scripts.
	questionAlign := lipgloss.Center
	if rtl {
		questionAlign = lipgloss.Right
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(questionAlign).
		Foreground(theme.Text).
		Bold(true).
		Render(q.Text))
	b.WriteString("\n\n")

	// Options.
	optBlock := p.opts.View(min(width-8, 70))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, optBlock))

	// Feedback line after reveal.
	if p.sess.Phase() == quiz.PhaseAnswerRevealed {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, p.feedbackLine()))
	}

	return b.String()
}

func (p *PlayScreen) feedbackLine() string {
	switch {
	case p.sess.TimedOut():
		return theme.TimerUrgent.Render("Time's up!")
	case p.sess.Chosen == p.currentAnswer():
		return theme.Correct.Render("Correct!")
	default:
		return theme.Incorrect.Render("Wrong!")
	}
}

func (p *PlayScreen) currentAnswer() int {
	q, ok := p.sess.CurrentQuestion()
	if !ok {
		return -1
	}
	return q.Answer
}
