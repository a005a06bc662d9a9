package parser

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// looksLikeHeader reports whether a first row carries column labels rather
// than data.
func looksLikeHeader(row []string) bool {
	for _, cell := range row {
		cell = strings.TrimSpace(cell)
		if cell == "" {
			continue
		}
		if _, err := strconv.ParseFloat(cell, 64); err == nil {
			return false
		}
	}
	return true
}

// ParsePanelData reads a CSV file of per-panel measurements. Each record is
// either a bare value ("12.5") or an id,value pair ("P-01-01,12.5"). A
// header row is tolerated and skipped, blank rows are ignored, and rows with
// non-numeric values are skipped with a warning in ParseErrors rather than
// failing the parse.
func ParsePanelData(filepath string) (*PanelDataSeries, error) {
	file, err := os.Open(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1 // id,value and bare-value rows may mix

	allRows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV data: %w", err)
	}

	series := NewPanelDataSeries()

	for rowIdx, row := range allRows {
		if len(row) == 0 {
			continue
		}
		allEmpty := true
		for _, cell := range row {
			if strings.TrimSpace(cell) != "" {
				allEmpty = false
				break
			}
		}
		if allEmpty {
			continue
		}

		if rowIdx == 0 && looksLikeHeader(row) {
			continue
		}

		var id, valStr string
		switch {
		case len(row) >= 2 && strings.TrimSpace(row[1]) != "":
			id = strings.TrimSpace(row[0])
			valStr = strings.TrimSpace(row[1])
		default:
			valStr = strings.TrimSpace(row[0])
		}

		val, err := strconv.ParseFloat(valStr, 64)
		if err != nil {
			series.ParseErrors = append(series.ParseErrors,
				fmt.Sprintf("Warning: CSV row %d - could not convert value '%s', row skipped. Error: %v", rowIdx+1, valStr, err))
			continue
		}

		series.Values = append(series.Values, val)
		if id != "" {
			series.IDs = append(series.IDs, id)
		}
	}

	series.NumValues = len(series.Values)
	if series.NumValues == 0 {
		series.ParseErrors = append(series.ParseErrors, "Warning: no panel values parsed from file.")
	}
	if len(series.IDs) > 0 && len(series.IDs) != series.NumValues {
		series.ParseErrors = append(series.ParseErrors,
			fmt.Sprintf("Warning: %d ids for %d values; ids discarded.", len(series.IDs), series.NumValues))
		series.IDs = series.IDs[:0]
	}

	return series, nil
}
