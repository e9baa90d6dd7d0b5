package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizmaster/internal/textdir"
	"github.com/abhisek/quizmaster/internal/ui/theme"
)

// OptionList renders a question's answer options and, after reveal,
// highlights the correct option in green and a wrong pick in red. This is
// the presentation side of the session's answer contract: CorrectIndex is
// always highlighted on reveal, ChosenIndex only when it differs.
type OptionList struct {
	Options      []string
	CorrectIndex int
	Selected     int
	Revealed     bool
	ChosenIndex  int // -1 when the timer expired with no selection
	direction    textdir.Direction
}

// NewOptionList creates an option list for the current question.
func NewOptionList(question string, options []string, correctIndex int) OptionList {
	return OptionList{
		Options:      options,
		CorrectIndex: correctIndex,
		Selected:     0,
		ChosenIndex:  -1,
		direction:    textdir.Detect(question),
	}
}

// Update handles arrow/vim navigation. Selection keys and submission are
// owned by the play screen; once revealed the list is inert.
func (o OptionList) Update(msg tea.Msg) (OptionList, tea.Cmd) {
	if o.Revealed {
		return o, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return o, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if o.Selected > 0 {
			o.Selected--
		}
	case "down", "j":
		if o.Selected < len(o.Options)-1 {
			o.Selected++
		}
	}

	return o, nil
}

// Reveal locks the list and records the chosen index (-1 for timeout).
func (o *OptionList) Reveal(chosen int) {
	o.Revealed = true
	o.ChosenIndex = chosen
}

// View renders the option lines, right-aligned for RTL questions.
func (o OptionList) View(width int) string {
	var s string
	align := lipgloss.Left
	if o.direction == textdir.RTL {
		align = lipgloss.Right
	}

	for i, opt := range o.Options {
		prefix := "  "
		if i == o.Selected && !o.Revealed {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%d) %s", prefix, i+1, opt)

		var style lipgloss.Style
		switch {
		case o.Revealed && i == o.CorrectIndex:
			style = theme.Correct
		case o.Revealed && i == o.ChosenIndex:
			style = theme.Incorrect
		case o.Revealed:
			style = lipgloss.NewStyle().Foreground(theme.TextDim)
		case i == o.Selected:
			style = theme.Selected
		default:
			style = theme.Unselected
		}

		s += style.Width(width).Align(align).Render(line) + "\n"
	}
	return s
}
