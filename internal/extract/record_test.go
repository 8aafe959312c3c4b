package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordColumnOrder(t *testing.T) {
	rec := NewRecord()
	rec.Set("subject", "P001")
	rec.Set("date", "2024-01-01")
	rec.Set("x", int64(5))

	assert.Equal(t, []string{"subject", "date", "x"}, rec.Columns())
	assert.Equal(t, 3, rec.Len())
}

func TestRecordOverwriteKeepsPosition(t *testing.T) {
	rec := NewRecord()
	rec.Set("a", 1)
	rec.Set("b", 2)
	rec.Set("a", 3)

	assert.Equal(t, []string{"a", "b"}, rec.Columns())
	v, _ := rec.Get("a")
	assert.Equal(t, 3, v)
}

func TestRecordMissingCellVersusAbsentColumn(t *testing.T) {
	rec := NewRecord()
	rec.Set("y", nil)

	v, present := rec.Get("y")
	require.True(t, present)
	assert.Nil(t, v)

	_, present = rec.Get("z")
	assert.False(t, present)
}

func TestRecordMapCopies(t *testing.T) {
	rec := NewRecord()
	rec.Set("a", 1)

	m := rec.Map()
	m["a"] = 99
	m["extra"] = true

	v, _ := rec.Get("a")
	assert.Equal(t, 1, v)
	assert.Equal(t, []string{"a"}, rec.Columns())
}
