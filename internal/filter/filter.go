// Package filter narrows the subject set and date-keyed levels an extraction
// sees. It is configuration with named, typed, optional fields: an unset
// field means "no constraint", never "match nothing".
package filter

import (
	"regexp"
	"time"

	"github.com/eLbARROS13/OH-Toolkit/internal/profile"
	"github.com/eLbARROS13/OH-Toolkit/internal/types"
)

const dateLayout = "2006-01-02"

var dateKeyPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Spec describes the optional constraints applied before and during an
// extraction. The zero value (and a nil *Spec) passes everything through.
type Spec struct {
	// Subjects is an allow-list of subject IDs. Empty means all subjects.
	Subjects []string
	// ExcludeSubjects is a deny-list of subject IDs, applied after Subjects.
	ExcludeSubjects []string
	// DateRange bounds date-shaped keys encountered during the level walk.
	// Nil means no date constraint.
	DateRange *DateRange
}

// DateRange is an inclusive [From, To] bound over ISO dates (YYYY-MM-DD).
// An empty From or To leaves that side unbounded.
type DateRange struct {
	From string
	To   string
}

// Validate checks that both bounds, when set, parse as ISO dates and are
// not inverted.
func (r *DateRange) Validate() error {
	var from, to time.Time
	var err error
	if r.From != "" {
		if from, err = time.Parse(dateLayout, r.From); err != nil {
			return types.WrapError(types.FILTER_BAD_DATE_RANGE, "bad lower bound", err)
		}
	}
	if r.To != "" {
		if to, err = time.Parse(dateLayout, r.To); err != nil {
			return types.WrapError(types.FILTER_BAD_DATE_RANGE, "bad upper bound", err)
		}
	}
	if r.From != "" && r.To != "" && to.Before(from) {
		return types.NewErrorf(types.FILTER_BAD_DATE_RANGE, "upper bound %s before lower bound %s", r.To, r.From)
	}
	return nil
}

// Contains reports whether an ISO date key falls inside the range. ISO dates
// order lexicographically, so string comparison suffices once the key shape
// is established.
func (r *DateRange) Contains(key string) bool {
	if r == nil {
		return true
	}
	if r.From != "" && key < r.From {
		return false
	}
	if r.To != "" && key > r.To {
		return false
	}
	return true
}

// IsDateKey reports whether a key is date-shaped (YYYY-MM-DD).
func IsDateKey(key string) bool {
	return dateKeyPattern.MatchString(key)
}

// Validate checks the spec for contract violations. A nil Spec is valid.
func (s *Spec) Validate() error {
	if s == nil || s.DateRange == nil {
		return nil
	}
	return s.DateRange.Validate()
}

// Apply returns the subjects of set that survive the allow- and deny-lists,
// preserving set order. A nil Spec returns set unchanged. The date range is
// not consulted here: it constrains level keys during the walk, not whole
// subjects.
func (s *Spec) Apply(set *profile.Set) *profile.Set {
	if s == nil || (len(s.Subjects) == 0 && len(s.ExcludeSubjects) == 0) {
		return set
	}

	allowed := toLookup(s.Subjects)
	denied := toLookup(s.ExcludeSubjects)

	out := profile.NewSet()
	for _, id := range set.Subjects() {
		if len(allowed) > 0 {
			if _, ok := allowed[id]; !ok {
				continue
			}
		}
		if _, ok := denied[id]; ok {
			continue
		}
		p, _ := set.Get(id)
		out.Add(id, p)
	}
	return out
}

// KeepKey reports whether a level key survives the date constraint. Only
// date-shaped keys are bounded; session names, sides, and other key kinds
// pass through untouched.
func (s *Spec) KeepKey(key string) bool {
	if s == nil || s.DateRange == nil {
		return true
	}
	if !IsDateKey(key) {
		return true
	}
	return s.DateRange.Contains(key)
}

func toLookup(ids []string) map[string]struct{} {
	if len(ids) == 0 {
		return nil
	}
	out := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		out[id] = struct{}{}
	}
	return out
}
