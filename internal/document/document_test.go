package document

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodePreservesKeyOrder(t *testing.T) {
	// Keys deliberately out of lexicographic order.
	src := `{"zulu": 1, "alpha": 2, "mike": {"b": true, "a": false}}`

	v, err := Parse([]byte(src))
	require.NoError(t, err)
	require.True(t, v.IsObject())

	assert.Equal(t, []string{"zulu", "alpha", "mike"}, v.Keys())

	mike, ok := v.Field("mike")
	require.True(t, ok)
	assert.Equal(t, []string{"b", "a"}, mike.Keys())
}

func TestDecodeKinds(t *testing.T) {
	src := `{"s": "x", "n": 3.5, "i": 5, "b": true, "z": null, "a": [1, "two"]}`

	v, err := Parse([]byte(src))
	require.NoError(t, err)

	s, _ := v.Field("s")
	assert.Equal(t, KindString, s.Kind())
	assert.Equal(t, "x", s.Str())

	n, _ := v.Field("n")
	assert.Equal(t, KindNumber, n.Kind())
	assert.Equal(t, 3.5, n.Interface())

	i, _ := v.Field("i")
	assert.Equal(t, int64(5), i.Interface())

	b, _ := v.Field("b")
	assert.Equal(t, KindBool, b.Kind())
	assert.True(t, b.Boolean())

	z, _ := v.Field("z")
	assert.Equal(t, KindNull, z.Kind())
	assert.Nil(t, z.Interface())

	a, _ := v.Field("a")
	assert.Equal(t, KindArray, a.Kind())
	assert.Equal(t, 2, a.Len())
	assert.Equal(t, []any{int64(1), "two"}, a.Interface())
}

func TestDecodeRejectsTrailingData(t *testing.T) {
	_, err := Parse([]byte(`{"a": 1} {"b": 2}`))
	assert.Error(t, err)
}

func TestDecodeRejectsMalformed(t *testing.T) {
	_, err := Parse([]byte(`{"a": `))
	assert.Error(t, err)
}

func TestDecodeScalarRoot(t *testing.T) {
	v, err := Decode(strings.NewReader(`42`))
	require.NoError(t, err)
	assert.Equal(t, int64(42), v.Interface())
}

func TestFieldOnNonObject(t *testing.T) {
	v := String("leaf")

	_, ok := v.Field("anything")
	assert.False(t, ok)
	assert.Nil(t, v.Keys())
}

func TestSetReplacesKeepingPosition(t *testing.T) {
	obj := NewObject()
	obj.Set("first", String("1"))
	obj.Set("second", String("2"))
	obj.Set("first", String("updated"))

	assert.Equal(t, []string{"first", "second"}, obj.Keys())
	got, _ := obj.Field("first")
	assert.Equal(t, "updated", got.Str())
}

func TestMarshalJSONRoundTripsOrder(t *testing.T) {
	src := `{"z":1,"a":{"q":[true,null],"p":"v"}}`

	v, err := Parse([]byte(src))
	require.NoError(t, err)

	out, err := v.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, src, string(out))
}

func TestNullReturnsDistinctPointers(t *testing.T) {
	assert.NotSame(t, Null(), Null())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "object", KindObject.String())
	assert.Equal(t, "null", KindNull.String())
	assert.Equal(t, "number", KindNumber.String())
}
