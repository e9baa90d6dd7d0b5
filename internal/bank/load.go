package bank

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

// rawQuestion mirrors the wire format with pointer fields so that missing
// keys can be told apart from zero values.
type rawQuestion struct {
	Text    *string   `json:"question"`
	Options *[]string `json:"options"`
	Answer  *int      `json:"answer"`
}

func (r rawQuestion) toQuestion() (Question, error) {
	if r.Text == nil {
		return Question{}, fmt.Errorf("missing %q field", "question")
	}
	if r.Options == nil {
		return Question{}, fmt.Errorf("missing %q field", "options")
	}
	if r.Answer == nil {
		return Question{}, fmt.Errorf("missing %q field", "answer")
	}
	q := Question{Text: *r.Text, Options: *r.Options, Answer: *r.Answer}
	if err := q.Validate(); err != nil {
		return Question{}, err
	}
	return q, nil
}

// Load reads and parses the bank file at path. Individually malformed
// question records are skipped and reported in warnings; the whole load
// fails only when the document itself is not valid.
func Load(path string) (*Bank, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, nil, fmt.Errorf("read question bank %s: %w", path, err)
	}

	b, warnings, err := Parse(bytes.NewReader(data))
	if err != nil {
		var merr *MalformedError
		if errors.As(err, &merr) {
			merr.Path = path
			return nil, nil, merr
		}
		return nil, nil, err
	}
	return b, warnings, nil
}

// Parse decodes a bank document, preserving category order as it appears in
// the source. A json.Decoder token walk is used because encoding/json maps
// do not retain key order.
func Parse(r io.Reader) (*Bank, []string, error) {
	dec := json.NewDecoder(r)

	tok, err := dec.Token()
	if err != nil {
		return nil, nil, &MalformedError{Reason: "not valid JSON", Err: err}
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, nil, &MalformedError{Reason: "top-level value must be an object of categories"}
	}

	b := New()
	var warnings []string

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, nil, &MalformedError{Reason: "truncated document", Err: err}
		}
		category, ok := keyTok.(string)
		if !ok {
			return nil, nil, &MalformedError{Reason: "category key is not a string"}
		}

		var raws []rawQuestion
		if err := dec.Decode(&raws); err != nil {
			return nil, nil, &MalformedError{
				Reason: fmt.Sprintf("category %q is not a question list", category),
				Err:    err,
			}
		}

		b.AddCategory(category)
		for i, rq := range raws {
			q, err := rq.toQuestion()
			if err != nil {
				warnings = append(warnings, fmt.Sprintf("category %q question %d skipped: %v", category, i+1, err))
				continue
			}
			b.Append(category, q)
		}
	}

	if _, err := dec.Token(); err != nil {
		return nil, nil, &MalformedError{Reason: "truncated document", Err: err}
	}

	return b, warnings, nil
}
