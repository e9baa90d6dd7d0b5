package bank

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault_Contents(t *testing.T) {
	b := Default()
	cats := b.Categories()
	if len(cats) != 2 {
		t.Fatalf("Categories() = %v, want 2", cats)
	}
	if cats[0] != "General Knowledge" {
		t.Errorf("first category = %q, want General Knowledge", cats[0])
	}
	for _, cat := range cats {
		for i, q := range b.Questions(cat) {
			if err := q.Validate(); err != nil {
				t.Errorf("category %q question %d: %v", cat, i+1, err)
			}
		}
	}
}

func TestWriteDefault_FirstRunThenIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "default_questions.json")

	written, err := WriteDefault(path)
	if err != nil {
		t.Fatalf("WriteDefault: %v", err)
	}
	if !written {
		t.Error("written = false on first run, want true")
	}

	b, warnings, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("warnings = %v", warnings)
	}
	if got, want := b.Categories(), Default().Categories(); len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("reloaded category order = %v, want %v", got, want)
	}

	// A second run must not touch the existing file.
	if err := os.WriteFile(path, []byte(`{"Custom": []}`), 0o644); err != nil {
		t.Fatal(err)
	}
	written, err = WriteDefault(path)
	if err != nil {
		t.Fatalf("WriteDefault: %v", err)
	}
	if written {
		t.Error("written = true on existing file, want false")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"Custom": []}` {
		t.Error("existing bank file overwritten")
	}
}
