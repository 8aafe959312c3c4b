package pathspec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eLbARROS13/OH-Toolkit/internal/types"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		segments []string
		wildcard bool
	}{
		{name: "single segment", in: "acc", segments: []string{"acc"}},
		{name: "nested", in: "acc.daily.mean", segments: []string{"acc", "daily", "mean"}},
		{name: "wildcard segment", in: "acc.*.mean", segments: []string{"acc", "*", "mean"}, wildcard: true},
		{name: "bare wildcard", in: "*", segments: []string{"*"}, wildcard: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Parse(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.segments, p.Segments())
			assert.Equal(t, tt.wildcard, p.HasWildcard())
			assert.Equal(t, tt.in, p.String())
		})
	}
}

func TestParseEmptyPathIsRoot(t *testing.T) {
	p, err := Parse("")
	require.NoError(t, err)
	assert.True(t, p.IsEmpty())
	assert.Equal(t, 0, p.Len())
	assert.Equal(t, "", p.String())
}

func TestParseRejectsEmptySegments(t *testing.T) {
	for _, in := range []string{"a..b", ".a", "a.", "."} {
		_, err := Parse(in)
		require.Error(t, err, "input %q", in)
		assert.ErrorIs(t, err, types.NewError(types.PATH_PARSE_FAILED, ""))
	}
}

func TestMustParsePanicsOnMalformed(t *testing.T) {
	assert.Panics(t, func() { MustParse("a..b") })
	assert.NotPanics(t, func() { MustParse("a.b") })
}

func TestChildDoesNotMutateParent(t *testing.T) {
	parent := MustParse("a.b")
	child := parent.Child("c")

	assert.Equal(t, "a.b", parent.String())
	assert.Equal(t, "a.b.c", child.String())
}
