package table

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eLbARROS13/OH-Toolkit/internal/extract"
)

func rec(pairs ...any) *extract.Record {
	r := extract.NewRecord()
	for i := 0; i < len(pairs); i += 2 {
		r.Set(pairs[i].(string), pairs[i+1])
	}
	return r
}

func TestFromRecordsColumnUnion(t *testing.T) {
	records := []*extract.Record{
		rec("subject", "P001", "date", "2024-01-01", "x", int64(5)),
		rec("subject", "P002", "date", "2024-01-02", "y", 2.5),
	}

	tbl := FromRecords(records)
	assert.Equal(t, []string{"subject", "date", "x", "y"}, tbl.Columns())
	require.Equal(t, 2, tbl.NumRows())

	// Missing columns become null cells.
	assert.Equal(t, []any{"P001", "2024-01-01", int64(5), nil}, tbl.Row(0))
	assert.Equal(t, []any{"P002", "2024-01-02", nil, 2.5}, tbl.Row(1))
}

func TestFromRecordsEmpty(t *testing.T) {
	tbl := FromRecords(nil)
	assert.Empty(t, tbl.Columns())
	assert.Equal(t, 0, tbl.NumRows())
}

func TestWriteCSV(t *testing.T) {
	records := []*extract.Record{
		rec("subject", "P001", "x", int64(5), "ok", true),
		rec("subject", "P002", "x", nil, "ok", false),
	}

	var sb strings.Builder
	require.NoError(t, FromRecords(records).WriteCSV(&sb))

	assert.Equal(t,
		"subject,x,ok\n"+
			"P001,5,true\n"+
			"P002,,false\n",
		sb.String())
}

func TestWriteCSVEncodesCompositeCells(t *testing.T) {
	records := []*extract.Record{
		rec("subject", "P001", "raw", []any{int64(1), "two"}),
	}

	var sb strings.Builder
	require.NoError(t, FromRecords(records).WriteCSV(&sb))
	assert.Contains(t, sb.String(), `"[1,""two""]"`)
}

func TestRender(t *testing.T) {
	records := []*extract.Record{
		rec("subject", "P001", "mean", 1.5),
	}

	var sb strings.Builder
	require.NoError(t, FromRecords(records).Render(&sb))

	out := sb.String()
	assert.Contains(t, out, "SUBJECT")
	assert.Contains(t, out, "MEAN")
	assert.Contains(t, out, "P001")
	assert.Contains(t, out, "1.5")
}
