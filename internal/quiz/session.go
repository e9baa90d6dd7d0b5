package quiz

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/quizmaster/internal/bank"
)

// DefaultQuestionSeconds is the per-question countdown.
const DefaultQuestionSeconds = 30

// ErrInvalidCategory is returned when a session is started on a category
// that is absent or has no questions.
var ErrInvalidCategory = errors.New("invalid category")

// ErrNotCompleted is returned by Result before the session has completed.
var ErrNotCompleted = errors.New("session not completed")

// Session is an in-progress quiz game. All mutation happens through Tick,
// SubmitAnswer, and Advance on a single control flow.
//
// Invariant: Correct+Wrong <= Current <= len(Questions), with
// Correct+Wrong == Current+1 while the current question is revealed.
type Session struct {
	// ID correlates log lines for one game.
	ID string

	// Category is the bank category this session plays.
	Category string

	// Questions is the shuffled play order, a permutation of the
	// category's question list fixed at Start.
	Questions []bank.Question

	// Current indexes Questions.
	Current int

	// Correct and Wrong count answered questions. A timeout counts as
	// wrong, indistinguishable from a wrong pick in the totals.
	Correct int
	Wrong   int

	// Remaining is the countdown for the current question, in seconds.
	Remaining int

	// Locked is the answer lock: once set, further submissions for the
	// current question are no-ops.
	Locked bool

	// Chosen is the submitted option index, -1 for none (timeout or not
	// yet answered). The presentation layer highlights Chosen as
	// incorrect and the question's Answer as correct after reveal.
	Chosen int

	phase           Phase
	source          []bank.Question
	questionSeconds int
	rng             *rand.Rand
}

// Option configures a session at Start.
type Option func(*Session)

// WithRand injects the random source used for shuffling. Tests use a fixed
// seed; the default seeds from the wall clock.
func WithRand(r *rand.Rand) Option {
	return func(s *Session) { s.rng = r }
}

// WithQuestionSeconds overrides the per-question countdown.
func WithQuestionSeconds(n int) Option {
	return func(s *Session) {
		if n > 0 {
			s.questionSeconds = n
		}
	}
}

// Start creates a session for a category. The category must exist and have
// at least one question, otherwise ErrInvalidCategory.
func Start(b *bank.Bank, category string, opts ...Option) (*Session, error) {
	if !b.Has(category) {
		return nil, fmt.Errorf("%w: %q not in bank", ErrInvalidCategory, category)
	}
	qs := b.Questions(category)
	if len(qs) == 0 {
		return nil, fmt.Errorf("%w: %q has no questions", ErrInvalidCategory, category)
	}
	return newSession(qs, category, opts...), nil
}

func newSession(source []bank.Question, category string, opts ...Option) *Session {
	s := &Session{
		ID:              uuid.New().String(),
		Category:        category,
		Chosen:          -1,
		questionSeconds: DefaultQuestionSeconds,
		source:          append([]bank.Question(nil), source...),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	s.Questions = append([]bank.Question(nil), s.source...)
	s.rng.Shuffle(len(s.Questions), func(i, j int) {
		s.Questions[i], s.Questions[j] = s.Questions[j], s.Questions[i]
	})
	s.Remaining = s.questionSeconds
	s.phase = PhaseQuestionActive
	return s
}

// Restart returns a fresh session over the same category with a new shuffle.
func (s *Session) Restart() *Session {
	return newSession(s.source, s.Category, WithRand(s.rng), WithQuestionSeconds(s.questionSeconds))
}

// Phase returns the current lifecycle phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// CurrentQuestion returns the active question. ok is false once the session
// has completed.
func (s *Session) CurrentQuestion() (bank.Question, bool) {
	if s.Current >= len(s.Questions) {
		return bank.Question{}, false
	}
	return s.Questions[s.Current], true
}

// Tick decrements the countdown by one second. Outside PhaseQuestionActive
// it is a no-op, so a stale timer callback can never double-fire. When the
// countdown reaches zero the question is scored as wrong with no selection
// and the answer is revealed; expired reports that transition.
func (s *Session) Tick() (expired bool) {
	if s.phase != PhaseQuestionActive {
		return false
	}
	s.Remaining--
	if s.Remaining > 0 {
		return false
	}
	s.Remaining = 0
	s.Wrong++
	s.Locked = true
	s.Chosen = -1
	s.phase = PhaseAnswerRevealed
	return true
}

// SubmitAnswer scores option index i against the current question. The
// first submission wins; repeats, submissions outside PhaseQuestionActive,
// and out-of-range indices are ignored (accepted=false), never a panic.
func (s *Session) SubmitAnswer(i int) (correct, accepted bool) {
	if s.phase != PhaseQuestionActive || s.Locked {
		return false, false
	}
	q, ok := s.CurrentQuestion()
	if !ok {
		return false, false
	}
	if i < 0 || i >= len(q.Options) {
		return false, false
	}

	s.Locked = true
	s.Chosen = i
	if i == q.Answer {
		s.Correct++
		correct = true
	} else {
		s.Wrong++
	}
	s.phase = PhaseAnswerRevealed
	return correct, true
}

// Advance moves past a revealed answer: either to the next question with a
// reset timer and lock, or to PhaseCompleted after the last one. Returns
// false outside PhaseAnswerRevealed.
func (s *Session) Advance() bool {
	if s.phase != PhaseAnswerRevealed {
		return false
	}
	s.Current++
	if s.Current >= len(s.Questions) {
		s.phase = PhaseCompleted
		return true
	}
	s.Remaining = s.questionSeconds
	s.Locked = false
	s.Chosen = -1
	s.phase = PhaseQuestionActive
	return true
}

// TimedOut reports whether the current reveal came from timer expiry rather
// than a submitted answer.
func (s *Session) TimedOut() bool {
	return s.phase == PhaseAnswerRevealed && s.Chosen == -1
}

// Progress returns the fraction of questions already advanced past, in
// [0,1], for progress display.
func (s *Session) Progress() float64 {
	if len(s.Questions) == 0 {
		return 0
	}
	return float64(s.Current) / float64(len(s.Questions))
}

// Result holds the final score of a completed session.
type Result struct {
	Correct        int
	Wrong          int
	TotalQuestions int
	Percentage     float64 // rounded to one decimal
}

// Result is valid only in PhaseCompleted. Division by zero is impossible
// because Start requires at least one question.
func (s *Session) Result() (Result, error) {
	if s.phase != PhaseCompleted {
		return Result{}, ErrNotCompleted
	}
	total := len(s.Questions)
	pct := float64(s.Correct) / float64(total) * 100
	pct = math.Round(pct*10) / 10
	return Result{
		Correct:        s.Correct,
		Wrong:          s.Wrong,
		TotalQuestions: total,
		Percentage:     pct,
	}, nil
}
