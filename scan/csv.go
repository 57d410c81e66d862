// SPDX-License-Identifier: MIT

package scan

import (
	"encoding/csv"
	"fmt"
	"os"
)

// WriteCSV writes rows with the stable header to path, truncating any
// existing file.
func WriteCSV(path string, rows []Row) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("scan: create csv: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return fmt.Errorf("scan: write csv header: %w", err)
	}
	for i, r := range rows {
		if err := w.Write(r.record()); err != nil {
			return fmt.Errorf("scan: write csv row %d: %w", i, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("scan: flush csv: %w", err)
	}
	return f.Close()
}

// ReadCSV loads a previously written result file.
func ReadCSV(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("scan: open csv: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("scan: read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: empty file", ErrBadRow)
	}
	if len(records[0]) != len(csvHeader) || records[0][0] != csvHeader[0] {
		return nil, fmt.Errorf("%w: unexpected header", ErrBadRow)
	}

	rows := make([]Row, 0, len(records)-1)
	for i, rec := range records[1:] {
		row, err := parseRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("scan: csv line %d: %w", i+2, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}
