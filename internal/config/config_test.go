package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	chdirTemp(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.BankPath != "" {
		t.Errorf("BankPath = %q, want empty", cfg.BankPath)
	}
	if cfg.ScoresPath != "quiz_scores.json" {
		t.Errorf("ScoresPath = %q, want quiz_scores.json", cfg.ScoresPath)
	}
	if cfg.QuestionSeconds != 30 {
		t.Errorf("QuestionSeconds = %d, want 30", cfg.QuestionSeconds)
	}
	if cfg.RevealDelay != 1500*time.Millisecond {
		t.Errorf("RevealDelay = %s, want 1.5s", cfg.RevealDelay)
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := chdirTemp(t)
	yaml := "bank_path: my_bank.json\nquestion_seconds: 15\nreveal_delay: 2s\n"
	if err := os.WriteFile(filepath.Join(dir, "quizmaster.yaml"), []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.BankPath != "my_bank.json" {
		t.Errorf("BankPath = %q, want my_bank.json", cfg.BankPath)
	}
	if cfg.QuestionSeconds != 15 {
		t.Errorf("QuestionSeconds = %d, want 15", cfg.QuestionSeconds)
	}
	if cfg.RevealDelay != 2*time.Second {
		t.Errorf("RevealDelay = %s, want 2s", cfg.RevealDelay)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	chdirTemp(t)
	t.Setenv("QUIZMASTER_SCORES_PATH", "elsewhere.json")
	t.Setenv("QUIZMASTER_QUESTION_SECONDS", "10")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ScoresPath != "elsewhere.json" {
		t.Errorf("ScoresPath = %q, want elsewhere.json", cfg.ScoresPath)
	}
	if cfg.QuestionSeconds != 10 {
		t.Errorf("QuestionSeconds = %d, want 10", cfg.QuestionSeconds)
	}
}

func TestLoad_RejectsNonPositiveCountdown(t *testing.T) {
	dir := chdirTemp(t)
	yaml := "question_seconds: 0\n"
	if err := os.WriteFile(filepath.Join(dir, "quizmaster.yaml"), []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(); err == nil {
		t.Error("Load accepted question_seconds: 0")
	}
}
