package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizmaster/internal/config"
	"github.com/abhisek/quizmaster/internal/scores"
)

var scoresCmd = &cobra.Command{
	Use:   "scores [CATEGORY]",
	Short: "Print recorded high scores",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		ledger, err := scores.Load(cfg.ScoresPath)
		if err != nil {
			// Degraded, not fatal: an unreadable file means no scores.
			fmt.Fprintln(cmd.ErrOrStderr(), "warning:", err)
		}

		cats := ledger.Categories()
		if len(args) == 1 {
			cats = []string{args[0]}
		}

		if ledger.Empty() {
			fmt.Println("No scores recorded yet.")
			return nil
		}

		for _, cat := range cats {
			entries := ledger.Top(cat)
			if len(entries) == 0 {
				fmt.Printf("%s: no scores\n", cat)
				continue
			}
			fmt.Println(cat)
			for rank, e := range entries {
				fmt.Printf("  %d. %-4d %s\n", rank+1, e.Score, e.Date)
			}
		}
		return nil
	},
}
