// Package table assembles extraction records into a rectangular table and
// writes it out: CSV, aligned text, or a SQLite database.
package table

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/eLbARROS13/OH-Toolkit/internal/extract"
)

// Table is a rectangular view over a sequence of records. Columns are the
// union of all record columns in first-seen order; a record without a given
// column gets a null cell there.
type Table struct {
	columns []string
	rows    [][]any
}

// FromRecords builds a table from extraction records.
func FromRecords(records []*extract.Record) *Table {
	t := &Table{}
	seen := make(map[string]int)

	for _, rec := range records {
		for _, col := range rec.Columns() {
			if _, ok := seen[col]; !ok {
				seen[col] = len(t.columns)
				t.columns = append(t.columns, col)
			}
		}
	}

	for _, rec := range records {
		row := make([]any, len(t.columns))
		for _, col := range rec.Columns() {
			v, _ := rec.Get(col)
			row[seen[col]] = v
		}
		t.rows = append(t.rows, row)
	}
	return t
}

// Columns returns the column names in order.
func (t *Table) Columns() []string {
	out := make([]string, len(t.columns))
	copy(out, t.columns)
	return out
}

// NumRows returns the number of rows.
func (t *Table) NumRows() int {
	return len(t.rows)
}

// Row returns row i. The returned slice is the table's own; callers must
// not modify it.
func (t *Table) Row(i int) []any {
	return t.rows[i]
}

// WriteCSV writes the table with a header row. Null cells become empty
// fields; non-scalar cells are JSON-encoded.
func (t *Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.columns); err != nil {
		return err
	}

	row := make([]string, len(t.columns))
	for _, cells := range t.rows {
		for i, cell := range cells {
			row[i] = formatCell(cell)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Render writes an aligned text view with uppercase headers, the way the
// CLI prints tables.
func (t *Table) Render(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	headers := make([]string, len(t.columns))
	for i, col := range t.columns {
		headers[i] = strings.ToUpper(col)
	}
	if _, err := fmt.Fprintln(tw, strings.Join(headers, "\t")); err != nil {
		return err
	}

	row := make([]string, len(t.columns))
	for _, cells := range t.rows {
		for i, cell := range cells {
			row[i] = formatCell(cell)
		}
		if _, err := fmt.Fprintln(tw, strings.Join(row, "\t")); err != nil {
			return err
		}
	}
	return tw.Flush()
}

func formatCell(cell any) string {
	switch v := cell.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	default:
		enc, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(enc)
	}
}
