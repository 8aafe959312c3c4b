// Package profile holds loaded subject profiles and the directory loader
// that produces them. A profile is an arbitrarily deep JSON document; the
// core never mutates one after load.
package profile

import (
	"github.com/eLbARROS13/OH-Toolkit/internal/document"
)

// Set is an ordered collection of subject profiles. Iteration order is the
// order subjects were added, which the loader fixes to sorted subject IDs so
// repeated runs over the same directory produce identical output.
type Set struct {
	ids      []string
	profiles map[string]*document.Value
}

// NewSet returns an empty profile set.
func NewSet() *Set {
	return &Set{profiles: make(map[string]*document.Value)}
}

// Add inserts or replaces a subject's profile. New subjects are appended to
// the iteration order; replacing keeps the existing position.
func (s *Set) Add(subjectID string, profile *document.Value) {
	if _, exists := s.profiles[subjectID]; !exists {
		s.ids = append(s.ids, subjectID)
	}
	s.profiles[subjectID] = profile
}

// Subjects returns the subject IDs in iteration order.
func (s *Set) Subjects() []string {
	out := make([]string, len(s.ids))
	copy(out, s.ids)
	return out
}

// Get returns the profile for a subject, or false when the subject is absent.
func (s *Set) Get(subjectID string) (*document.Value, bool) {
	p, ok := s.profiles[subjectID]
	return p, ok
}

// Len returns the number of subjects in the set.
func (s *Set) Len() int {
	return len(s.ids)
}
