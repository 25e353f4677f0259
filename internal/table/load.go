package table

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Kind identifies which of the two source spreadsheets is being loaded.
// It only affects error messages; the structural requirements come from
// Options.Required.
type Kind string

const (
	KindPlanning   Kind = "planning"
	KindTechnology Kind = "technology"
)

// Options controls a Load call.
type Options struct {
	// Kind names the source for diagnostics.
	Kind Kind

	// Sheet selects the worksheet for .xlsx files. Empty means the
	// first sheet, matching how the upstream exports are produced.
	Sheet string

	// Required lists column display names that must resolve in the
	// header row. Load fails with SOURCE_FORMAT when any is absent.
	Required []string
}

// Load reads a tabular source file into a Table.
//
// The format is chosen by extension: .xlsx/.xlsm via excelize, .csv via
// encoding/csv. The header row is the first row in which every required
// column resolves, which tolerates a leading totals row above the real
// header. Fully-empty rows and repeated header rows below it are
// skipped.
//
// Errors are always *LoadError: SOURCE_NOT_FOUND for unreadable paths,
// SOURCE_FORMAT for unsupported extensions, unparsable content, or
// missing required columns.
func Load(path string, opts Options) (*Table, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, notFoundError(path, fmt.Sprintf("%s source not readable", opts.Kind), err)
	}
	if info.IsDir() {
		return nil, notFoundError(path, fmt.Sprintf("%s source is a directory", opts.Kind), nil)
	}

	var raw [][]string
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".xlsx", ".xlsm":
		raw, err = readXLSX(path, opts.Sheet)
	case ".csv":
		raw, err = readCSV(path)
	default:
		return nil, formatError(path, fmt.Sprintf("unsupported %s source type %q", opts.Kind, ext), nil)
	}
	if err != nil {
		return nil, err
	}

	headerIdx := findHeader(raw, opts.Required)
	if headerIdx < 0 {
		return nil, &LoadError{
			Code:    ErrCodeSourceFormat,
			Path:    path,
			Message: fmt.Sprintf("no header row satisfies the %s source", opts.Kind),
			Missing: missingColumns(raw, opts.Required),
		}
	}

	return newTable(raw[headerIdx], raw[headerIdx+1:]), nil
}

// findHeader returns the index of the first row that resolves every
// required column, or -1. With no required columns the first non-empty
// row is the header.
func findHeader(raw [][]string, required []string) int {
	for i, row := range raw {
		if rowEmpty(row) {
			continue
		}
		if len(required) == 0 {
			return i
		}
		keys := make(map[string]bool, len(row))
		for _, cell := range row {
			keys[NormalizeKey(cell)] = true
		}
		ok := true
		for _, want := range required {
			if !keys[NormalizeKey(want)] {
				ok = false
				break
			}
		}
		if ok {
			return i
		}
	}
	return -1
}

// missingColumns reports which required columns never appear in any
// candidate header row, for the SOURCE_FORMAT diagnostic.
func missingColumns(raw [][]string, required []string) []string {
	seen := make(map[string]bool)
	for _, row := range raw {
		for _, cell := range row {
			seen[NormalizeKey(cell)] = true
		}
	}
	var missing []string
	for _, want := range required {
		if !seen[NormalizeKey(want)] {
			missing = append(missing, want)
		}
	}
	return missing
}

func readXLSX(path, sheet string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, formatError(path, "cannot open workbook", err)
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, formatError(path, "workbook has no sheets", nil)
		}
		sheet = sheets[0]
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, formatError(path, fmt.Sprintf("cannot read sheet %q", sheet), err)
	}
	return rows, nil
}

func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, notFoundError(path, "cannot open file", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // upstream exports are ragged
	rows, err := r.ReadAll()
	if err != nil {
		return nil, formatError(path, "cannot parse CSV", err)
	}
	return rows, nil
}
