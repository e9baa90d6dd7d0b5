package game

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/quizmaster/internal/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	return &config.Config{
		BankPath:        "",
		ScoresPath:      filepath.Join(dir, "quiz_scores.json"),
		QuestionSeconds: 30,
		RevealDelay:     1500 * time.Millisecond,
	}
}

func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

func TestLoad_FirstRunWritesDefaultBank(t *testing.T) {
	dir := chdirTemp(t)
	cfg := testConfig(t)

	st, err := Load(cfg, zap.NewNop())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if _, statErr := os.Stat(filepath.Join(dir, config.DefaultBankFile)); statErr != nil {
		t.Errorf("default bank not written: %v", statErr)
	}
	if st.BankPath != config.DefaultBankFile {
		t.Errorf("BankPath = %q, want %q", st.BankPath, config.DefaultBankFile)
	}
	if len(st.Bank.Categories()) == 0 {
		t.Error("loaded bank has no categories")
	}
	if st.Ledger == nil || !st.Ledger.Empty() {
		t.Error("ledger not empty on first run")
	}
}

func TestLoad_ExplicitBankPath(t *testing.T) {
	dir := t.TempDir()
	bankPath := filepath.Join(dir, "bank.json")
	doc := `{"Science": [{"question": "H2O?", "options": ["Salt", "Water"], "answer": 1}]}`
	if err := os.WriteFile(bankPath, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := testConfig(t)
	cfg.BankPath = bankPath

	st, err := Load(cfg, zap.NewNop())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if st.Bank.Count("Science") != 1 {
		t.Errorf("Count(Science) = %d, want 1", st.Bank.Count("Science"))
	}
}

func TestLoad_MissingExplicitBankFallsBackToDefault(t *testing.T) {
	cfg := testConfig(t)
	cfg.BankPath = filepath.Join(t.TempDir(), "absent.json")

	st, err := Load(cfg, zap.NewNop())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(st.Bank.Categories()) == 0 {
		t.Error("fallback bank has no categories")
	}
	if st.StartupWarning == "" {
		t.Error("StartupWarning empty after bank load failure")
	}
	if st.BankPath != cfg.BankPath {
		t.Errorf("BankPath = %q, want the configured path %q for retry", st.BankPath, cfg.BankPath)
	}
}

func TestLoad_MalformedExplicitBankFallsBackToDefault(t *testing.T) {
	bankPath := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(bankPath, []byte(`[not a bank]`), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := testConfig(t)
	cfg.BankPath = bankPath

	st, err := Load(cfg, zap.NewNop())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if st.Bank.TotalQuestions() == 0 {
		t.Error("fallback bank empty")
	}
	if st.StartupWarning == "" {
		t.Error("StartupWarning empty after malformed bank")
	}
}

func TestSwitchBank_ClearsStartupWarning(t *testing.T) {
	cfg := testConfig(t)
	cfg.BankPath = filepath.Join(t.TempDir(), "absent.json")
	st, err := Load(cfg, zap.NewNop())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	good := filepath.Join(t.TempDir(), "good.json")
	doc := `{"Science": [{"question": "q?", "options": ["a", "b"], "answer": 0}]}`
	if err := os.WriteFile(good, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := st.SwitchBank(good); err != nil {
		t.Fatalf("SwitchBank: %v", err)
	}
	if st.StartupWarning != "" {
		t.Errorf("StartupWarning = %q after a successful switch, want empty", st.StartupWarning)
	}
}

func TestSwitchBank_KeepsPreviousOnFailure(t *testing.T) {
	chdirTemp(t)
	cfg := testConfig(t)
	st, err := Load(cfg, zap.NewNop())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	prevBank, prevPath := st.Bank, st.BankPath

	if err := st.SwitchBank(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatal("SwitchBank succeeded with a missing file")
	}
	if st.Bank != prevBank || st.BankPath != prevPath {
		t.Error("failed switch replaced the active bank")
	}
}

func TestSwitchBank_Success(t *testing.T) {
	chdirTemp(t)
	cfg := testConfig(t)
	st, err := Load(cfg, zap.NewNop())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	other := filepath.Join(t.TempDir(), "other.json")
	doc := `{"Custom": [{"question": "q?", "options": ["a", "b"], "answer": 0}]}`
	if err := os.WriteFile(other, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := st.SwitchBank(other); err != nil {
		t.Fatalf("SwitchBank: %v", err)
	}
	if st.BankPath != other {
		t.Errorf("BankPath = %q, want %q", st.BankPath, other)
	}
	if !st.Bank.Has("Custom") {
		t.Error("switched bank missing its category")
	}
}

func TestRecordScore_PersistsImmediately(t *testing.T) {
	chdirTemp(t)
	cfg := testConfig(t)
	st, err := Load(cfg, zap.NewNop())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	st.RecordScore("Science", 7)

	data, err := os.ReadFile(cfg.ScoresPath)
	if err != nil {
		t.Fatalf("score file not written: %v", err)
	}
	if len(data) == 0 {
		t.Error("score file empty")
	}
	top := st.Ledger.Top("Science")
	if len(top) != 1 || top[0].Score != 7 {
		t.Errorf("Top(Science) = %+v, want one entry with score 7", top)
	}
}
