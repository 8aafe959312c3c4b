package inspect

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eLbARROS13/OH-Toolkit/internal/document"
	"github.com/eLbARROS13/OH-Toolkit/internal/profile"
)

func mustDoc(t *testing.T, src string) *document.Value {
	t.Helper()
	v, err := document.Parse([]byte(src))
	require.NoError(t, err)
	return v
}

func TestTreeDepthLimit(t *testing.T) {
	doc := mustDoc(t, `{
		"acc": {"daily": {"2024-01-01": {"mean": 1.5}}},
		"meta": {"age": 41}
	}`)

	var sb strings.Builder
	require.NoError(t, Tree(&sb, doc, 2))
	out := sb.String()

	assert.Contains(t, out, "acc")
	assert.Contains(t, out, "daily")
	// Depth 2 stops before the date layer; it shows as a key count.
	assert.NotContains(t, out, "2024-01-01")
	assert.Contains(t, out, "{1 keys}")

	assert.Contains(t, out, "age = 41")
}

func TestTreeScalarPreviews(t *testing.T) {
	doc := mustDoc(t, `{"s": "hello", "b": true, "z": null, "arr": [1, 2, 3]}`)

	var sb strings.Builder
	require.NoError(t, Tree(&sb, doc, 3))
	out := sb.String()

	assert.Contains(t, out, `s = "hello"`)
	assert.Contains(t, out, "b = true")
	assert.Contains(t, out, "z = null")
	assert.Contains(t, out, "arr [3 items]")
}

func TestTreeTruncatesLongStrings(t *testing.T) {
	long := strings.Repeat("x", 120)
	doc := mustDoc(t, `{"s": "`+long+`"}`)

	var sb strings.Builder
	require.NoError(t, Tree(&sb, doc, 1))
	assert.Contains(t, sb.String(), "...")
	assert.NotContains(t, sb.String(), long)
}

func TestTreeNonObjectRoot(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, Tree(&sb, document.String("leaf"), 3))
	assert.Contains(t, sb.String(), "not an object")
}

func TestPaths(t *testing.T) {
	doc := mustDoc(t, `{
		"acc": {"daily": {"mean": 1}},
		"meta": {"age": 41}
	}`)

	got := Paths(doc, 6)
	assert.Equal(t, []string{
		"acc",
		"acc.daily",
		"acc.daily.mean",
		"meta",
		"meta.age",
	}, got)
}

func TestPathsDepthLimit(t *testing.T) {
	doc := mustDoc(t, `{"a": {"b": {"c": {"d": 1}}}}`)

	got := Paths(doc, 2)
	assert.Equal(t, []string{"a", "a.b"}, got)
}

func TestPathsEmpty(t *testing.T) {
	assert.Empty(t, Paths(mustDoc(t, `{}`), 6))
	assert.Empty(t, Paths(nil, 6))
}

func TestSummarize(t *testing.T) {
	set := profile.NewSet()
	set.Add("P001", mustDoc(t, `{"acc": {"d1": {}, "d2": {}}, "meta": {"age": 41}}`))
	set.Add("P002", mustDoc(t, `{"meta": {"age": 52}, "note": "dropout"}`))

	tbl := Summarize(set)
	assert.Equal(t, []string{"subject", "acc", "meta", "note"}, tbl.Columns())
	require.Equal(t, 2, tbl.NumRows())

	assert.Equal(t, []any{"P001", int64(2), int64(1), nil}, tbl.Row(0))
	assert.Equal(t, []any{"P002", nil, int64(1), "string"}, tbl.Row(1))
}
