package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eLbARROS13/OH-Toolkit/internal/profile"
	"github.com/eLbARROS13/OH-Toolkit/internal/types"
)

func testSet(ids ...string) *profile.Set {
	set := profile.NewSet()
	for _, id := range ids {
		set.Add(id, nil)
	}
	return set
}

func TestApplyNilSpecPassesThrough(t *testing.T) {
	set := testSet("P001", "P002")

	var s *Spec
	assert.Same(t, set, s.Apply(set))
	assert.Same(t, set, (&Spec{}).Apply(set))
}

func TestApplyAllowList(t *testing.T) {
	set := testSet("P001", "P002", "P003")

	s := &Spec{Subjects: []string{"P003", "P001"}}
	got := s.Apply(set)

	// Set order wins over allow-list order.
	assert.Equal(t, []string{"P001", "P003"}, got.Subjects())
}

func TestApplyDenyList(t *testing.T) {
	set := testSet("P001", "P002", "P003")

	s := &Spec{ExcludeSubjects: []string{"P002"}}
	assert.Equal(t, []string{"P001", "P003"}, s.Apply(set).Subjects())
}

func TestApplyDenyBeatsAllow(t *testing.T) {
	set := testSet("P001", "P002")

	s := &Spec{Subjects: []string{"P001", "P002"}, ExcludeSubjects: []string{"P001"}}
	assert.Equal(t, []string{"P002"}, s.Apply(set).Subjects())
}

func TestApplyCanEmpty(t *testing.T) {
	set := testSet("P001")

	s := &Spec{Subjects: []string{"P999"}}
	assert.Equal(t, 0, s.Apply(set).Len())
}

func TestDateRangeContains(t *testing.T) {
	r := &DateRange{From: "2024-01-01", To: "2024-01-31"}

	assert.True(t, r.Contains("2024-01-01"))
	assert.True(t, r.Contains("2024-01-15"))
	assert.True(t, r.Contains("2024-01-31"))
	assert.False(t, r.Contains("2023-12-31"))
	assert.False(t, r.Contains("2024-02-01"))
}

func TestDateRangeOpenEnds(t *testing.T) {
	lower := &DateRange{From: "2024-01-01"}
	assert.True(t, lower.Contains("2030-01-01"))
	assert.False(t, lower.Contains("2023-01-01"))

	upper := &DateRange{To: "2024-01-01"}
	assert.True(t, upper.Contains("2020-01-01"))
	assert.False(t, upper.Contains("2024-01-02"))

	var unset *DateRange
	assert.True(t, unset.Contains("2024-01-01"))
}

func TestDateRangeValidate(t *testing.T) {
	require.NoError(t, (&DateRange{From: "2024-01-01", To: "2024-02-01"}).Validate())
	require.NoError(t, (&DateRange{}).Validate())

	err := (&DateRange{From: "01/02/2024"}).Validate()
	assert.ErrorIs(t, err, types.NewError(types.FILTER_BAD_DATE_RANGE, ""))

	err = (&DateRange{From: "2024-02-01", To: "2024-01-01"}).Validate()
	assert.ErrorIs(t, err, types.NewError(types.FILTER_BAD_DATE_RANGE, ""))
}

func TestKeepKeyOnlyBoundsDateShapedKeys(t *testing.T) {
	s := &Spec{DateRange: &DateRange{From: "2024-01-01", To: "2024-01-31"}}

	assert.True(t, s.KeepKey("2024-01-10"))
	assert.False(t, s.KeepKey("2024-03-10"))

	// Non-date keys are not the range's business.
	assert.True(t, s.KeepKey("session1"))
	assert.True(t, s.KeepKey("left"))

	var unset *Spec
	assert.True(t, unset.KeepKey("2029-12-31"))
}

func TestIsDateKey(t *testing.T) {
	assert.True(t, IsDateKey("2024-01-01"))
	assert.False(t, IsDateKey("20240101"))
	assert.False(t, IsDateKey("2024-01-01T10:00"))
	assert.False(t, IsDateKey("session1"))
}
