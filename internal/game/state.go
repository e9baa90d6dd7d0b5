// Package game wires the loaded question bank, score ledger, and settings
// into one shared state consumed by the screens.
package game

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/quizmaster/internal/bank"
	"github.com/abhisek/quizmaster/internal/config"
	"github.com/abhisek/quizmaster/internal/scores"
)

// State is the single-process application state. All mutation happens on
// the Bubble Tea event loop.
type State struct {
	Cfg      *config.Config
	Log      *zap.Logger
	Bank     *bank.Bank
	BankPath string
	Ledger   *scores.Ledger

	// StartupWarning is set when the configured bank could not be loaded
	// and the bundled default is active instead. The home screen shows it.
	StartupWarning string
}

// Load assembles the state: resolves the bank (writing the bundled default
// on first run when none is configured), loads it, and loads the ledger.
// A bank that cannot be loaded degrades to the bundled default with a
// warning for the home screen; ledger problems degrade to an empty ledger.
func Load(cfg *config.Config, log *zap.Logger) (*State, error) {
	bankPath := cfg.BankPath
	if bankPath == "" {
		bankPath = config.DefaultBankFile
		written, err := bank.WriteDefault(bankPath)
		if err != nil {
			return nil, fmt.Errorf("write default bank: %w", err)
		}
		if written {
			log.Info("wrote bundled default question bank", zap.String("path", bankPath))
		}
	}

	startupWarning := ""
	b, warnings, err := bank.Load(bankPath)
	if err != nil {
		// The configured bank is unusable; keep playing on the bundled
		// default. Reload Questions retries the configured path.
		log.Warn("question bank unusable, falling back to bundled default",
			zap.String("path", bankPath), zap.Error(err))
		b = bank.Default()
		startupWarning = fmt.Sprintf("Could not load %s: %v. Using the built-in questions.", bankPath, err)
	}
	for _, w := range warnings {
		log.Warn("question bank record skipped", zap.String("path", bankPath), zap.String("detail", w))
	}

	ledger, err := scores.Load(cfg.ScoresPath)
	if err != nil {
		// Scores are non-critical: start with the empty ledger.
		log.Warn("score ledger unreadable, starting empty", zap.Error(err))
	}

	return &State{
		Cfg:            cfg,
		Log:            log,
		Bank:           b,
		BankPath:       bankPath,
		Ledger:         ledger,
		StartupWarning: startupWarning,
	}, nil
}

// ReloadBank re-reads the current bank file. On failure the previous bank
// stays active and the error is returned for display.
func (s *State) ReloadBank() error {
	return s.SwitchBank(s.BankPath)
}

// SwitchBank loads a different bank file. On failure the previous bank and
// path stay active and the error is returned for display.
func (s *State) SwitchBank(path string) error {
	b, warnings, err := bank.Load(path)
	if err != nil {
		s.Log.Warn("bank load failed, keeping previous bank",
			zap.String("path", path), zap.Error(err))
		return err
	}
	for _, w := range warnings {
		s.Log.Warn("question bank record skipped", zap.String("path", path), zap.String("detail", w))
	}
	s.Bank = b
	s.BankPath = path
	s.StartupWarning = ""
	s.Log.Info("question bank loaded",
		zap.String("path", path),
		zap.Int("categories", len(b.Categories())),
		zap.Int("questions", b.TotalQuestions()))
	return nil
}

// RecordScore appends a completed session's score to the ledger and saves
// it immediately. Save failures are logged, not fatal.
func (s *State) RecordScore(category string, score int) {
	s.Ledger.Record(category, score, time.Now())
	if err := s.Ledger.Save(); err != nil {
		s.Log.Warn("score save failed", zap.Error(err))
		return
	}
	s.Log.Info("score recorded",
		zap.String("category", category),
		zap.Int("score", score))
}
