package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchGlob(t *testing.T) {
	tests := []struct {
		pattern string
		s       string
		want    bool
	}{
		{"walk", "walk", true},
		{"walk", "walking", false},
		{"Walk", "walk", false}, // case-sensitive
		{"*", "", true},
		{"*", "anything", true},
		{"walk_*", "walk_morning", true},
		{"walk_*", "run_morning", false},
		{"*_morning", "walk_morning", true},
		{"*_morning", "walk_evening", false},
		{"2024-*", "2024-01-01", true},
		{"2024-*", "2023-12-31", false},
		{"a*b*c", "abc", true},
		{"a*b*c", "axxbxxc", true},
		{"a*b*c", "acb", false},
		{"a*a", "aa", true},
		{"a*a", "a", false},
		{"", "", true},
		{"", "x", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, matchGlob(tt.pattern, tt.s),
			"pattern %q against %q", tt.pattern, tt.s)
	}
}

func TestFilterKeysIncludeThenExclude(t *testing.T) {
	keys := []string{"walk_am", "walk_pm", "run_am", "rest"}

	got := filterKeys(keys, []string{"walk_*", "run_*"}, []string{"*_pm"})
	assert.Equal(t, []string{"walk_am", "run_am"}, got)
}

func TestFilterKeysDefaults(t *testing.T) {
	keys := []string{"b", "a", "c"}

	// No patterns: everything survives, order preserved.
	assert.Equal(t, keys, filterKeys(keys, nil, nil))

	// Exclude alone.
	assert.Equal(t, []string{"b", "c"}, filterKeys(keys, nil, []string{"a"}))
}

func TestFilterKeysIdempotent(t *testing.T) {
	keys := []string{"walk_am", "walk_pm", "run_am"}
	include := []string{"walk_*"}
	exclude := []string{"*_pm"}

	once := filterKeys(keys, include, exclude)
	twice := filterKeys(once, include, exclude)
	assert.Equal(t, once, twice)
}
