package play

import (
	"strconv"
	"time"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/quizmaster/internal/game"
	"github.com/abhisek/quizmaster/internal/quiz"
	"github.com/abhisek/quizmaster/internal/router"
	"github.com/abhisek/quizmaster/internal/screen"
	"github.com/abhisek/quizmaster/internal/screens/results"
	"github.com/abhisek/quizmaster/internal/ui/components"
	"github.com/abhisek/quizmaster/internal/ui/layout"
)

// PlayScreen drives one quiz session for a chosen category.
type PlayScreen struct {
	st       *game.State
	category string
	sess     *quiz.Session
	opts     components.OptionList
	timerGen int
	errMsg   string
}

var _ screen.Screen = (*PlayScreen)(nil)
var _ screen.KeyHintProvider = (*PlayScreen)(nil)

// New creates a play screen for a category. The session itself is started
// in Init so start failures surface as a screen message, not a crash.
func New(st *game.State, category string) *PlayScreen {
	return &PlayScreen{st: st, category: category}
}

func (p *PlayScreen) Init() tea.Cmd {
	return func() tea.Msg {
		sess, err := quiz.Start(p.st.Bank, p.category,
			quiz.WithQuestionSeconds(p.st.Cfg.QuestionSeconds))
		if err != nil {
			return sessionStartedMsg{err: err}
		}
		return sessionStartedMsg{sess: sess}
	}
}

func (p *PlayScreen) Title() string {
	return "Quiz"
}

func (p *PlayScreen) KeyHints() []layout.KeyHint {
	if p.sess != nil && p.sess.Phase() == quiz.PhaseAnswerRevealed {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Next"},
			{Key: "Esc", Description: "Menu"},
		}
	}
	return []layout.KeyHint{
		{Key: "1-9", Description: "Answer"},
		{Key: "↑↓ Enter", Description: "Pick"},
		{Key: "Esc", Description: "Menu"},
	}
}

func (p *PlayScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionStartedMsg:
		return p.handleStarted(msg)
	case timerTickMsg:
		return p.handleTimerTick(msg)
	case revealDoneMsg:
		return p.handleRevealDone(msg)
	case tea.KeyMsg:
		return p.handleKey(msg)
	}
	return p, nil
}

func (p *PlayScreen) handleStarted(msg sessionStartedMsg) (screen.Screen, tea.Cmd) {
	if msg.err != nil {
		p.errMsg = msg.err.Error()
		return p, nil
	}
	p.sess = msg.sess
	p.st.Log.Info("session started",
		zap.String("session_id", p.sess.ID),
		zap.String("category", p.sess.Category),
		zap.Int("questions", len(p.sess.Questions)))
	p.resetOptions()
	return p, p.tickCmd()
}

// resetOptions rebuilds the option list for the current question and bumps
// the timer generation, invalidating any tick still in flight.
func (p *PlayScreen) resetOptions() {
	q, ok := p.sess.CurrentQuestion()
	if !ok {
		return
	}
	p.opts = components.NewOptionList(q.Text, q.Options, q.Answer)
	p.timerGen++
}

func (p *PlayScreen) tickCmd() tea.Cmd {
	gen := p.timerGen
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return timerTickMsg{gen: gen}
	})
}

func (p *PlayScreen) revealCmd() tea.Cmd {
	gen := p.timerGen
	return tea.Tick(p.st.Cfg.RevealDelay, func(time.Time) tea.Msg {
		return revealDoneMsg{gen: gen}
	})
}

func (p *PlayScreen) handleTimerTick(msg timerTickMsg) (screen.Screen, tea.Cmd) {
	if p.sess == nil || msg.gen != p.timerGen {
		return p, nil
	}
	expired := p.sess.Tick()
	if expired {
		p.opts.Reveal(-1)
		return p, p.revealCmd()
	}
	if p.sess.Phase() != quiz.PhaseQuestionActive {
		// Answer already revealed; stop rescheduling.
		return p, nil
	}
	return p, p.tickCmd()
}

func (p *PlayScreen) handleRevealDone(msg revealDoneMsg) (screen.Screen, tea.Cmd) {
	if p.sess == nil || msg.gen != p.timerGen {
		return p, nil
	}
	if !p.sess.Advance() {
		return p, nil
	}

	if p.sess.Phase() == quiz.PhaseCompleted {
		return p, p.finish()
	}

	p.resetOptions()
	return p, p.tickCmd()
}

// finish records the final score and swaps this screen for the results
// screen.
func (p *PlayScreen) finish() tea.Cmd {
	result, err := p.sess.Result()
	if err != nil {
		p.errMsg = err.Error()
		return nil
	}
	p.st.Log.Info("session completed",
		zap.String("session_id", p.sess.ID),
		zap.Int("correct", result.Correct),
		zap.Int("wrong", result.Wrong),
		zap.Float64("percentage", result.Percentage))
	p.st.RecordScore(p.sess.Category, result.Correct)

	st, cat := p.st, p.sess.Category
	replay := func() screen.Screen { return New(st, cat) }
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: results.New(st, cat, result, replay)}
	}
}

func (p *PlayScreen) submit(i int) (screen.Screen, tea.Cmd) {
	correct, accepted := p.sess.SubmitAnswer(i)
	if !accepted {
		return p, nil
	}
	p.st.Log.Debug("answer submitted",
		zap.String("session_id", p.sess.ID),
		zap.Int("question", p.sess.Current),
		zap.Int("option", i),
		zap.Bool("correct", correct))
	p.opts.Reveal(p.sess.Chosen)
	p.timerGen++
	return p, p.revealCmd()
}

func (p *PlayScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	// Start failure: any key returns to the menu.
	if p.errMsg != "" {
		return p, func() tea.Msg { return router.PopScreenMsg{} }
	}
	if p.sess == nil {
		return p, nil
	}

	if key == "esc" {
		// Session discarded; back to the menu.
		return p, func() tea.Msg { return router.PopScreenMsg{} }
	}

	switch p.sess.Phase() {
	case quiz.PhaseQuestionActive:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			idx, _ := strconv.Atoi(key)
			return p.submit(idx - 1)
		}
		if key == "enter" {
			return p.submit(p.opts.Selected)
		}
		var cmd tea.Cmd
		p.opts, cmd = p.opts.Update(msg)
		return p, cmd

	case quiz.PhaseAnswerRevealed:
		if key == "enter" {
			// Skip the rest of the reveal pause.
			return p.handleRevealDone(revealDoneMsg{gen: p.timerGen})
		}
	}

	return p, nil
}
