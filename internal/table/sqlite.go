package table

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	// SQLite driver.
	_ "github.com/mattn/go-sqlite3"

	"github.com/eLbARROS13/OH-Toolkit/internal/types"
)

// SQLiteSink persists tables into a SQLite database file, one database table
// per extraction.
type SQLiteSink struct {
	db   *sql.DB
	path string
}

// OpenSQLite opens (creating if needed) a SQLite database for writing
// extraction output. WAL mode and a busy timeout are set through the DSN.
func OpenSQLite(path string) (*SQLiteSink, error) {
	dsn := fmt.Sprintf("file:%s?_journal_mode=WAL&_busy_timeout=%d",
		path, int((5 * time.Second).Milliseconds()))

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, types.WrapError(types.SINK_OPEN_FAILED, "cannot open sqlite database", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, types.WrapError(types.SINK_OPEN_FAILED, "cannot ping sqlite database", err)
	}

	return &SQLiteSink{db: db, path: path}, nil
}

// Path returns the database file path.
func (s *SQLiteSink) Path() string {
	return s.path
}

// Close closes the underlying database.
func (s *SQLiteSink) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Write replaces table name with the contents of t. Column affinity is
// derived from the cells actually present; missing cells insert as NULL.
// The whole write happens in one transaction.
func (s *SQLiteSink) Write(ctx context.Context, name string, t *Table) error {
	if len(t.Columns()) == 0 {
		return types.NewError(types.SINK_WRITE_FAILED, "refusing to write a table with no columns")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return types.WrapError(types.SINK_WRITE_FAILED, "cannot begin transaction", err)
	}
	defer tx.Rollback()

	quoted := quoteIdent(name)
	if _, err := tx.ExecContext(ctx, "DROP TABLE IF EXISTS "+quoted); err != nil {
		return types.WrapError(types.SINK_WRITE_FAILED, "cannot drop previous table", err)
	}

	cols := t.Columns()
	defs := make([]string, len(cols))
	for i, col := range cols {
		defs[i] = quoteIdent(col) + " " + columnAffinity(t, i)
	}
	create := fmt.Sprintf("CREATE TABLE %s (%s)", quoted, strings.Join(defs, ", "))
	if _, err := tx.ExecContext(ctx, create); err != nil {
		return types.WrapError(types.SINK_WRITE_FAILED, "cannot create table", err)
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(cols)), ", ")
	insert := fmt.Sprintf("INSERT INTO %s VALUES (%s)", quoted, placeholders)
	stmt, err := tx.PrepareContext(ctx, insert)
	if err != nil {
		return types.WrapError(types.SINK_WRITE_FAILED, "cannot prepare insert", err)
	}
	defer stmt.Close()

	args := make([]any, len(cols))
	for i := 0; i < t.NumRows(); i++ {
		for j, cell := range t.Row(i) {
			args[j] = sqlValue(cell)
		}
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return types.WrapError(types.SINK_WRITE_FAILED, fmt.Sprintf("cannot insert row %d", i), err)
		}
	}

	if err := tx.Commit(); err != nil {
		return types.WrapError(types.SINK_WRITE_FAILED, "cannot commit", err)
	}
	return nil
}

// columnAffinity picks INTEGER, REAL, or TEXT for column i by inspecting its
// non-null cells. Mixed numeric columns widen to REAL; anything else is TEXT.
func columnAffinity(t *Table, i int) string {
	affinity := ""
	for r := 0; r < t.NumRows(); r++ {
		cell := t.Row(r)[i]
		var kind string
		switch cell.(type) {
		case nil:
			continue
		case int64, bool:
			kind = "INTEGER"
		case float64:
			kind = "REAL"
		default:
			kind = "TEXT"
		}

		switch {
		case affinity == "" || affinity == kind:
			affinity = kind
		case (affinity == "INTEGER" && kind == "REAL") || (affinity == "REAL" && kind == "INTEGER"):
			affinity = "REAL"
		default:
			return "TEXT"
		}
	}
	if affinity == "" {
		return "TEXT"
	}
	return affinity
}

func sqlValue(cell any) any {
	switch v := cell.(type) {
	case nil, int64, float64, string, bool:
		return v
	default:
		return formatCell(v)
	}
}

// quoteIdent double-quotes an identifier, escaping embedded quotes. Column
// names come from document keys, which are arbitrary strings.
func quoteIdent(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
