package quiz

// Phase is the lifecycle phase of a quiz session.
type Phase int

const (
	// PhaseAwaitingStart is the zero phase before Start.
	PhaseAwaitingStart Phase = iota
	// PhaseQuestionActive means a question is displayed and the timer runs.
	PhaseQuestionActive
	// PhaseAnswerRevealed means the answer is locked and highlighted.
	PhaseAnswerRevealed
	// PhaseCompleted means all questions have been played.
	PhaseCompleted
)

func (p Phase) String() string {
	switch p {
	case PhaseAwaitingStart:
		return "awaiting-start"
	case PhaseQuestionActive:
		return "question-active"
	case PhaseAnswerRevealed:
		return "answer-revealed"
	case PhaseCompleted:
		return "completed"
	default:
		return "unknown"
	}
}
