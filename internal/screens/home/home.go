package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizmaster/internal/game"
	"github.com/abhisek/quizmaster/internal/router"
	"github.com/abhisek/quizmaster/internal/screen"
	"github.com/abhisek/quizmaster/internal/screens/highscores"
	"github.com/abhisek/quizmaster/internal/screens/play"
	"github.com/abhisek/quizmaster/internal/ui/components"
	"github.com/abhisek/quizmaster/internal/ui/layout"
	"github.com/abhisek/quizmaster/internal/ui/theme"
)

// HomeScreen is the category-selection menu plus bank management actions.
type HomeScreen struct {
	st       *game.State
	menu     components.Menu
	input    components.TextInput
	entering bool // bank path prompt active
	status   string
	statusOK bool
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates the home screen over the current bank.
func New(st *game.State) *HomeScreen {
	h := &HomeScreen{st: st}
	if st.StartupWarning != "" {
		h.status = st.StartupWarning
		h.statusOK = false
	}
	h.menu = components.NewMenu(h.buildItems())
	return h
}

// buildItems creates one menu item per category followed by the action
// items. Empty categories are listed but disabled: loadable, not playable.
func (h *HomeScreen) buildItems() []components.MenuItem {
	st := h.st
	var items []components.MenuItem

	for _, cat := range st.Bank.Categories() {
		cat := cat
		n := st.Bank.Count(cat)
		items = append(items, components.MenuItem{
			Label:    fmt.Sprintf("%s  (%d)", cat, n),
			Disabled: n == 0,
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: play.New(st, cat)}
				}
			},
		})
	}

	items = append(items,
		components.MenuItem{Label: "── High Scores", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: highscores.New(st)}
			}
		}},
		components.MenuItem{Label: "── Reload Questions", Action: func() tea.Cmd {
			h.reloadBank()
			return nil
		}},
		components.MenuItem{Label: "── Change Question Bank", Action: func() tea.Cmd {
			h.entering = true
			h.input = components.NewTextInput("path/to/questions.json", 200)
			return h.input.Init()
		}},
		components.MenuItem{Label: "── Quit", Action: func() tea.Cmd {
			return tea.Quit
		}},
	)
	return items
}

func (h *HomeScreen) reloadBank() {
	if err := h.st.ReloadBank(); err != nil {
		h.status = fmt.Sprintf("Reload failed: %v", err)
		h.statusOK = false
		return
	}
	h.status = "Questions reloaded."
	h.statusOK = true
	h.menu = components.NewMenu(h.buildItems())
}

func (h *HomeScreen) switchBank(path string) {
	if err := h.st.SwitchBank(path); err != nil {
		h.input.SetError(err.Error())
		return
	}
	h.entering = false
	h.status = "Question bank loaded."
	h.statusOK = true
	h.menu = components.NewMenu(h.buildItems())
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	if h.entering {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Load"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if h.entering {
		if kmsg, ok := msg.(tea.KeyMsg); ok {
			switch kmsg.String() {
			case "esc":
				h.entering = false
				return h, nil
			case "enter":
				path := strings.TrimSpace(h.input.Value())
				if path != "" {
					h.switchBank(path)
				}
				return h, nil
			}
		}
		var cmd tea.Cmd
		h.input, cmd = h.input.Update(msg)
		return h, cmd
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render("🎯 Quiz Master"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render("Challenge yourself with questions from different topics!"))
	b.WriteString("\n\n")

	if h.entering {
		prompt := lipgloss.NewStyle().Foreground(theme.Text).Render("Question bank file: ") + h.input.View()
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, prompt))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Pick a category:"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View()))

	if h.status != "" {
		style := theme.Correct
		if !h.statusOK {
			style = theme.Incorrect
		}
		b.WriteString("\n")
		b.WriteString(style.Width(width).Align(lipgloss.Center).Render(h.status))
	}

	return b.String()
}
