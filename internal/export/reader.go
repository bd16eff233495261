package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ErrEmpty is returned when a file parses cleanly but contains no data rows.
var ErrEmpty = errors.New("no rows found in file")

// ReadFile parses one delimited export file into rows.
func ReadFile(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening export file: %w", err)
	}
	defer f.Close()

	return Read(f)
}

// Read parses delimited text into rows. The first record is treated as a
// header when it looks like one; otherwise the whole table is positional and
// rows are read through Row.Field. Structural CSV failures (bad quoting,
// corrupt encoding) are returned as errors; ragged row lengths are tolerated.
func Read(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing delimited text: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrEmpty
	}

	columns := map[string]int{}
	start := 0
	if looksLikeHeader(records[0]) {
		for i, name := range records[0] {
			name = strings.ToLower(strings.TrimSpace(stripBOM(name)))
			if name == "" {
				continue
			}
			if _, taken := columns[name]; !taken {
				columns[name] = i
			}
		}
		start = 1
	}

	var rows []Row
	for _, rec := range records[start:] {
		if isBlank(rec) {
			continue
		}
		rows = append(rows, Row{values: rec, columns: columns})
	}
	if len(rows) == 0 {
		return nil, ErrEmpty
	}
	return rows, nil
}

// looksLikeHeader reports whether a record reads as column names rather than
// data. A record with any purely numeric cell is taken to be data: export
// headers are words, while even the first data row of a headerless steps or
// sleep table carries at least one number.
func looksLikeHeader(record []string) bool {
	nonEmpty := 0
	for _, cell := range record {
		cell = strings.TrimSpace(stripBOM(cell))
		if cell == "" {
			continue
		}
		nonEmpty++
		if _, err := strconv.ParseFloat(strings.ReplaceAll(cell, ",", ""), 64); err == nil {
			return false
		}
	}
	return nonEmpty > 0
}

func isBlank(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func stripBOM(s string) string {
	return strings.TrimPrefix(s, "\ufeff")
}
