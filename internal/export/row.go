package export

import "strings"

// Row is one record from a delimited export file. Values keep their original
// column order so headerless tables can still be read positionally, and the
// shared column index supports name lookups when a header row was present.
type Row struct {
	values  []string
	columns map[string]int // lower-cased header name -> value index
}

// NewRow builds a row from header names and values. Rows read from a file
// share one column index; this constructor is for callers assembling rows by
// hand. Pass no headers for a purely positional row.
func NewRow(headers []string, values []string) Row {
	columns := make(map[string]int, len(headers))
	for i, name := range headers {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		if _, taken := columns[name]; !taken {
			columns[name] = i
		}
	}
	return Row{values: values, columns: columns}
}

// Get probes the given column names in priority order and returns the first
// non-empty value. Lookups are case-insensitive. Exports disagree on header
// naming ("Time" vs "Moving Time" vs "Elapsed Time"), so callers list the
// alternatives they accept.
func (r Row) Get(names ...string) string {
	for _, name := range names {
		idx, ok := r.columns[strings.ToLower(name)]
		if !ok || idx >= len(r.values) {
			continue
		}
		if v := strings.TrimSpace(r.values[idx]); v != "" {
			return v
		}
	}
	return ""
}

// Has reports whether any of the given columns exists in the table, empty or
// not.
func (r Row) Has(names ...string) bool {
	for _, name := range names {
		if _, ok := r.columns[strings.ToLower(name)]; ok {
			return true
		}
	}
	return false
}

// Field returns the value at position i, or "" when the row is shorter.
// Used for headerless tables.
func (r Row) Field(i int) string {
	if i < 0 || i >= len(r.values) {
		return ""
	}
	return strings.TrimSpace(r.values[i])
}
