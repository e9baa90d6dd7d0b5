package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/abhisek/quizmaster/internal/scores"
)

// DefaultBankFile is where the bundled bank is written on first run when no
// bank path is configured.
const DefaultBankFile = "default_questions.json"

// Config holds application settings loaded from an optional config file and
// QUIZMASTER_* environment variables.
type Config struct {
	BankPath        string        `mapstructure:"bank_path"`        // question bank JSON file
	ScoresPath      string        `mapstructure:"scores_path"`      // score ledger JSON file
	QuestionSeconds int           `mapstructure:"question_seconds"` // per-question countdown
	RevealDelay     time.Duration `mapstructure:"reveal_delay"`     // pause on the revealed answer before auto-advance
	LogFile         string        `mapstructure:"log_file"`         // empty disables logging
}

// Load reads configuration from quizmaster.yaml (working directory or the
// user config dir) and the environment. Missing config files are fine.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("quizmaster")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, "quizmaster"))
	}

	v.SetDefault("bank_path", "")
	v.SetDefault("scores_path", scores.DefaultPath)
	v.SetDefault("question_seconds", 30)
	v.SetDefault("reveal_delay", "1500ms")
	v.SetDefault("log_file", "")

	v.SetEnvPrefix("QUIZMASTER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.QuestionSeconds <= 0 {
		return nil, fmt.Errorf("question_seconds must be positive, got %d", cfg.QuestionSeconds)
	}
	if cfg.RevealDelay <= 0 {
		return nil, fmt.Errorf("reveal_delay must be positive, got %s", cfg.RevealDelay)
	}

	return &cfg, nil
}
