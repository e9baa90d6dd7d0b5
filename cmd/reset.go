package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizmaster/internal/config"
	"github.com/abhisek/quizmaster/internal/scores"
)

var resetYes bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all recorded high scores",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		if !resetYes {
			fmt.Printf("This deletes %s. Re-run with --yes to confirm.\n", cfg.ScoresPath)
			return nil
		}

		ledger, _ := scores.Load(cfg.ScoresPath)
		if err := ledger.Reset(); err != nil {
			return fmt.Errorf("reset scores: %w", err)
		}
		fmt.Println("High scores cleared.")
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolVar(&resetYes, "yes", false, "skip the confirmation prompt")
}
