// Package scores persists per-category best scores. The on-disk format is a
// JSON object mapping category name to at most five entries sorted
// descending by score.
package scores

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// DefaultPath is the score file location relative to the working directory.
const DefaultPath = "quiz_scores.json"

// MaxEntriesPerCategory caps the retained scores per category.
const MaxEntriesPerCategory = 5

// dateLayout is the persisted timestamp format.
const dateLayout = "2006-01-02 15:04"

// Entry is one recorded score.
type Entry struct {
	Score int    `json:"score"`
	Date  string `json:"date"`
}

// Ledger holds per-category top scores.
type Ledger struct {
	path   string
	scores map[string][]Entry
}

// Load reads the ledger at path. A missing or malformed file yields an
// empty ledger and a non-nil degraded error for logging; scores are
// non-critical, so callers keep going either way.
func Load(path string) (*Ledger, error) {
	l := &Ledger{
		path:   path,
		scores: make(map[string][]Entry),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return l, nil
		}
		return l, fmt.Errorf("read score file %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &l.scores); err != nil {
		l.scores = make(map[string][]Entry)
		return l, fmt.Errorf("parse score file %s: %w", path, err)
	}
	return l, nil
}

// Record appends a score for a category, re-sorts descending (stable, so
// ties keep insertion order), and truncates to the top five.
func (l *Ledger) Record(category string, score int, now time.Time) {
	entries := append(l.scores[category], Entry{
		Score: score,
		Date:  now.Format(dateLayout),
	})
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})
	if len(entries) > MaxEntriesPerCategory {
		entries = entries[:MaxEntriesPerCategory]
	}
	l.scores[category] = entries
}

// Top returns the retained entries for a category, best first. Possibly
// empty, never nil-panics.
func (l *Ledger) Top(category string) []Entry {
	entries := l.scores[category]
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}

// Categories returns all categories with at least one recorded score,
// sorted for stable display.
func (l *Ledger) Categories() []string {
	cats := make([]string, 0, len(l.scores))
	for cat, entries := range l.scores {
		if len(entries) > 0 {
			cats = append(cats, cat)
		}
	}
	sort.Strings(cats)
	return cats
}

// Empty reports whether the ledger holds no scores at all.
func (l *Ledger) Empty() bool {
	for _, entries := range l.scores {
		if len(entries) > 0 {
			return false
		}
	}
	return true
}

// Save writes the ledger atomically: a temp file in the same directory is
// renamed over the target, so a concurrent Load never observes a partial
// write.
func (l *Ledger) Save() error {
	data, err := json.MarshalIndent(l.scores, "", "  ")
	if err != nil {
		return fmt.Errorf("encode scores: %w", err)
	}

	dir := filepath.Dir(l.path)
	tmp, err := os.CreateTemp(dir, ".quiz_scores-*.json")
	if err != nil {
		return fmt.Errorf("create temp score file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp score file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp score file: %w", err)
	}
	if err := os.Rename(tmpName, l.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace score file %s: %w", l.path, err)
	}
	return nil
}

// Path returns the ledger's file path.
func (l *Ledger) Path() string {
	return l.path
}

// Reset deletes the score file and clears the in-memory ledger.
func (l *Ledger) Reset() error {
	l.scores = make(map[string][]Entry)
	if err := os.Remove(l.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove score file %s: %w", l.path, err)
	}
	return nil
}
