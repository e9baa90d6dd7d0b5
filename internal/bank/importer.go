package bank

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ImportConfig defines the spreadsheet import layout. Each row is one
// question: category, question text, answer index, then one column per
// option.
type ImportConfig struct {
	SheetName  string // sheet to read, Excel only
	SkipHeader bool   // skip the first row
}

// DefaultImportConfig returns the default import layout.
func DefaultImportConfig() ImportConfig {
	return ImportConfig{
		SheetName:  "Sheet1",
		SkipHeader: true,
	}
}

// ImportResult summarizes an import run.
type ImportResult struct {
	RowsProcessed int
	Imported      int
	Skipped       int
	Errors        []string
}

// Import reads a question bank from an .xlsx or .csv file.
func Import(path string, cfg ImportConfig) (*Bank, *ImportResult, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".csv" {
		return importFromCSV(path, cfg)
	}
	return importFromExcel(path, cfg)
}

func importFromExcel(path string, cfg ImportConfig) (*Bank, *ImportResult, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open spreadsheet %s: %w", path, err)
	}
	defer f.Close()

	rows, err := f.GetRows(cfg.SheetName)
	if err != nil {
		return nil, nil, fmt.Errorf("read sheet %q: %w", cfg.SheetName, err)
	}
	return importRows(rows, cfg)
}

func importFromCSV(path string, cfg ImportConfig) (*Bank, *ImportResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open CSV %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	var rows [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("read CSV %s: %w", path, err)
		}
		rows = append(rows, record)
	}
	return importRows(rows, cfg)
}

func importRows(rows [][]string, cfg ImportConfig) (*Bank, *ImportResult, error) {
	b := New()
	result := &ImportResult{}

	start := 0
	if cfg.SkipHeader && len(rows) > 0 {
		start = 1
	}

	for i := start; i < len(rows); i++ {
		row := rows[i]
		result.RowsProcessed++

		q, category, err := rowToQuestion(row)
		if err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", i+1, err))
			continue
		}
		b.Append(category, q)
		result.Imported++
	}

	return b, result, nil
}

func rowToQuestion(row []string) (Question, string, error) {
	if len(row) < 5 {
		return Question{}, "", fmt.Errorf("need at least 5 columns (category, question, answer, 2 options), got %d", len(row))
	}

	category := strings.TrimSpace(row[0])
	if category == "" {
		return Question{}, "", fmt.Errorf("empty category")
	}

	answer, err := strconv.Atoi(strings.TrimSpace(row[2]))
	if err != nil {
		return Question{}, "", fmt.Errorf("answer column is not an integer: %q", row[2])
	}

	var options []string
	for _, cell := range row[3:] {
		cell = strings.TrimSpace(cell)
		if cell == "" {
			continue
		}
		options = append(options, cell)
	}

	q := Question{
		Text:    strings.TrimSpace(row[1]),
		Options: options,
		Answer:  answer,
	}
	if err := q.Validate(); err != nil {
		return Question{}, "", err
	}
	return q, category, nil
}

// WriteJSON writes a bank to path in the bank document format, preserving
// category order.
func WriteJSON(b *Bank, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(orderedDocument(b)); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
