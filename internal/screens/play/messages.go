package play

import "github.com/abhisek/quizmaster/internal/quiz"

// sessionStartedMsg is sent when the session has been created (or failed).
type sessionStartedMsg struct {
	sess *quiz.Session
	err  error
}

// timerTickMsg fires every second while a question is active. gen is the
// timer generation: a tick carrying a stale generation belongs to a
// previous question's timer and is dropped, so two timers can never
// double-decrement the countdown.
type timerTickMsg struct {
	gen int
}

// revealDoneMsg ends the answer-reveal pause and advances the session.
type revealDoneMsg struct {
	gen int
}
