package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "quizmaster",
	Short: "Terminal quiz game with categories, timers, and high scores",
	Long: "Quiz Master is a terminal quiz game. Multiple-choice questions grouped by\n" +
		"category, a 30-second countdown per question, and persistent top-5 high\n" +
		"scores. Supports right-to-left question banks.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI(cmd)
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("bank", "", "Path to the question bank JSON file (overrides QUIZMASTER_BANK_PATH)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(bankCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}
