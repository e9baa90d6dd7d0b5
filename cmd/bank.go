package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizmaster/internal/bank"
)

var bankCmd = &cobra.Command{
	Use:   "bank",
	Short: "Inspect, validate, and import question banks",
}

var bankValidateCmd = &cobra.Command{
	Use:   "validate FILE",
	Short: "Strictly validate a question bank file",
	Long: "Validates a question bank JSON file against the bank schema. Unlike the\n" +
		"lenient in-game loader, any malformed question record fails validation.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		if err := bank.ValidateStrict(data); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		b, _, err := bank.Load(path)
		if err != nil {
			return err
		}
		fmt.Printf("%s: OK, %d categories, %d questions\n",
			path, len(b.Categories()), b.TotalQuestions())
		for _, cat := range b.Categories() {
			fmt.Printf("  %-30s %d\n", cat, b.Count(cat))
		}
		return nil
	},
}

var bankImportCmd = &cobra.Command{
	Use:   "import FILE",
	Short: "Convert an .xlsx or .csv spreadsheet into a question bank",
	Long: "Imports questions from a spreadsheet. Each row is one question:\n" +
		"category, question text, answer index (0-based), then one column per\n" +
		"option. The first row is treated as a header unless --no-header is set.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		cfg := bank.DefaultImportConfig()
		cfg.SheetName, _ = cmd.Flags().GetString("sheet")
		if noHeader, _ := cmd.Flags().GetBool("no-header"); noHeader {
			cfg.SkipHeader = false
		}

		out, _ := cmd.Flags().GetString("output")
		if out == "" {
			base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
			out = base + ".json"
		}

		b, result, err := bank.Import(path, cfg)
		if err != nil {
			return err
		}
		for _, e := range result.Errors {
			fmt.Fprintln(os.Stderr, "warning:", e)
		}
		if result.Imported == 0 {
			return fmt.Errorf("no importable questions in %s", path)
		}

		if err := bank.WriteJSON(b, out); err != nil {
			return err
		}
		fmt.Printf("Imported %d of %d rows into %s (%d categories, %d skipped)\n",
			result.Imported, result.RowsProcessed, out, len(b.Categories()), result.Skipped)
		return nil
	},
}

func init() {
	bankImportCmd.Flags().StringP("output", "o", "", "Output bank file (default: input name with .json)")
	bankImportCmd.Flags().String("sheet", "Sheet1", "Worksheet to read (Excel only)")
	bankImportCmd.Flags().Bool("no-header", false, "Treat the first row as data, not a header")

	bankCmd.AddCommand(bankValidateCmd)
	bankCmd.AddCommand(bankImportCmd)
}
