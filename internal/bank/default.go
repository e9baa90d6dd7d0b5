package bank

import (
	"encoding/json"
	"fmt"
	"os"
)

// defaultBank is the bundled question bank written on first run when no bank
// file is supplied.
var defaultBank = map[string][]Question{
	"General Knowledge": {
		{
			Text:    "Which planet is known as the Red Planet?",
			Options: []string{"Venus", "Mars", "Jupiter", "Mercury"},
			Answer:  1,
		},
		{
			Text:    "What is the largest ocean on Earth?",
			Options: []string{"Atlantic", "Indian", "Pacific", "Arctic"},
			Answer:  2,
		},
		{
			Text:    "How many continents are there?",
			Options: []string{"Five", "Six", "Seven", "Eight"},
			Answer:  2,
		},
	},
	"تشريح عصبي": {
		{
			Text:    "اين مركز تنظيم التنفس وضربات القلب في الدماغ؟",
			Options: []string{"القشرة الدماغية", "النخاع المستطيل", "المخيخ", "الجسر"},
			Answer:  1,
		},
		{
			Text:    "أكبر جزء في الدماغ؟",
			Options: []string{"المخ", "المخيخ", "الجذع الدماغي", "البصلة السيسائية"},
			Answer:  0,
		},
		{
			Text:    "المادة البيضاء في الدماغ هي؟",
			Options: []string{"أجسام الخلايا العصبية", "محاور الخلايا العصبية", "المشابك العصبية", "النهايات العصبية"},
			Answer:  1,
		},
	},
}

// defaultCategoryOrder pins the document order of the bundled bank.
var defaultCategoryOrder = []string{"General Knowledge", "تشريح عصبي"}

// Default returns the bundled bank.
func Default() *Bank {
	b := New()
	for _, cat := range defaultCategoryOrder {
		for _, q := range defaultBank[cat] {
			b.Append(cat, q)
		}
	}
	return b
}

// WriteDefault writes the bundled bank to path unless a file already exists
// there. Returns true when a new file was written. Idempotent across runs.
func WriteDefault(path string) (bool, error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if os.IsExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("create default bank %s: %w", path, err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(orderedDocument(Default())); err != nil {
		return false, fmt.Errorf("write default bank %s: %w", path, err)
	}
	return true, nil
}

// orderedDocument renders a bank as a json.RawMessage-backed object that
// preserves category order when encoded.
func orderedDocument(b *Bank) json.RawMessage {
	buf := []byte("{")
	for i, cat := range b.Categories() {
		if i > 0 {
			buf = append(buf, ',')
		}
		key, _ := json.Marshal(cat)
		val, _ := json.Marshal(b.Questions(cat))
		buf = append(buf, key...)
		buf = append(buf, ':')
		buf = append(buf, val...)
	}
	buf = append(buf, '}')
	return buf
}
