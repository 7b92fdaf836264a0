package domain

import (
	"fmt"
	"strings"
	"time"
)

const (
	// DateLayout is the canonical DD-MM-YYYY layout.
	DateLayout = "02-01-2006"

	// DefaultDataFile is the record file used when nothing else is configured.
	DefaultDataFile = "finance_data.csv"
)

// Schema describes how a Transaction is laid out in the record file.
// Store and query code share one Schema value instead of package globals.
type Schema struct {
	Columns    []string
	DateFormat string
}

// DefaultSchema returns the canonical date,amount,category,description schema.
func DefaultSchema() Schema {
	return Schema{
		Columns:    []string{"date", "amount", "category", "description"},
		DateFormat: DateLayout,
	}
}

// Header returns a copy of the column names, safe for the caller to keep.
func (s Schema) Header() []string {
	return append([]string(nil), s.Columns...)
}

// MatchesHeader reports whether row is exactly the schema's column list.
func (s Schema) MatchesHeader(row []string) bool {
	if len(row) != len(s.Columns) {
		return false
	}
	for i, col := range s.Columns {
		// Spreadsheet tools like to prepend a BOM to the first cell.
		got := row[i]
		if i == 0 {
			got = strings.TrimPrefix(got, "\ufeff")
		}
		if strings.TrimSpace(got) != col {
			return false
		}
	}
	return true
}

// FormatDate renders t in the schema's date format.
func (s Schema) FormatDate(t time.Time) string {
	return t.Format(s.DateFormat)
}

// ParseDate parses value under the schema's date format. Surrounding
// whitespace is an error.
func (s Schema) ParseDate(value string) (time.Time, error) {
	t, err := time.Parse(s.DateFormat, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date %q does not match %s: %v", ErrParse, value, s.DateFormat, err)
	}
	return t, nil
}

// ParseDate parses user input as a DD-MM-YYYY date, ignoring surrounding whitespace.
func ParseDate(value string) (time.Time, error) {
	return DefaultSchema().ParseDate(strings.TrimSpace(value))
}

// FormatDate renders t as a canonical DD-MM-YYYY date.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
