package bank

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when the bank file does not exist.
var ErrNotFound = errors.New("question bank not found")

// MalformedError describes a bank document that could not be loaded.
type MalformedError struct {
	Path   string
	Reason string
	Err    error
}

func (e *MalformedError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("malformed question bank %s: %s", e.Path, e.Reason)
	}
	return fmt.Sprintf("malformed question bank: %s", e.Reason)
}

func (e *MalformedError) Unwrap() error {
	return e.Err
}

// Question is a single multiple-choice question.
type Question struct {
	Text    string   `json:"question"`
	Options []string `json:"options"`
	Answer  int      `json:"answer"`
}

// Validate checks the structural invariants of a question record.
func (q Question) Validate() error {
	if q.Text == "" {
		return errors.New("missing question text")
	}
	if len(q.Options) < 2 {
		return fmt.Errorf("need at least 2 options, got %d", len(q.Options))
	}
	if q.Answer < 0 || q.Answer >= len(q.Options) {
		return fmt.Errorf("answer index %d out of range [0,%d)", q.Answer, len(q.Options))
	}
	return nil
}

// Bank maps category names to question lists. Category order follows the
// source document.
type Bank struct {
	categories []string
	questions  map[string][]Question
}

// New returns an empty bank.
func New() *Bank {
	return &Bank{questions: make(map[string][]Question)}
}

// Append adds a question to a category, creating the category if needed.
func (b *Bank) Append(category string, q Question) {
	if _, ok := b.questions[category]; !ok {
		b.categories = append(b.categories, category)
	}
	b.questions[category] = append(b.questions[category], q)
}

// AddCategory registers a category, possibly with no questions yet.
// An empty category is a degraded but tolerated state: it is listed,
// but a session cannot be started on it.
func (b *Bank) AddCategory(category string) {
	if _, ok := b.questions[category]; !ok {
		b.categories = append(b.categories, category)
		b.questions[category] = nil
	}
}

// Categories returns category names in source-document order.
func (b *Bank) Categories() []string {
	out := make([]string, len(b.categories))
	copy(out, b.categories)
	return out
}

// Has reports whether the category exists in the bank.
func (b *Bank) Has(category string) bool {
	_, ok := b.questions[category]
	return ok
}

// Questions returns the question list for a category, nil if absent.
func (b *Bank) Questions(category string) []Question {
	return b.questions[category]
}

// Count returns the number of questions in a category.
func (b *Bank) Count(category string) int {
	return len(b.questions[category])
}

// TotalQuestions returns the number of questions across all categories.
func (b *Bank) TotalQuestions() int {
	n := 0
	for _, qs := range b.questions {
		n += len(qs)
	}
	return n
}
