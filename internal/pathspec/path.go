// Package pathspec implements dot-delimited path addressing into profile
// documents: parsing, resolution with an explicit absence sentinel, key
// enumeration, and wildcard expansion against the runtime key set.
package pathspec

import (
	"strings"

	"github.com/eLbARROS13/OH-Toolkit/internal/types"
)

const (
	// Delimiter separates path segments in the serialized form.
	Delimiter = "."
	// Wildcard is the segment that matches every key present at its level.
	Wildcard = "*"
)

// Path is a parsed sequence of segments, each a literal key or the wildcard
// marker. Paths are immutable once parsed.
type Path struct {
	segments []string
}

// Parse parses a serialized path. The empty string parses to the empty path,
// which addresses the document root. An empty segment (doubled or dangling
// delimiter) is a caller mistake and fails fast.
func Parse(s string) (Path, error) {
	if s == "" {
		return Path{}, nil
	}

	segments := strings.Split(s, Delimiter)
	for _, seg := range segments {
		if seg == "" {
			return Path{}, types.NewErrorf(types.PATH_PARSE_FAILED, "empty segment in path %q", s)
		}
	}

	return Path{segments: segments}, nil
}

// MustParse is Parse for paths known valid at compile time; it panics on a
// malformed path. Intended for fixtures and package-internal constants.
func MustParse(s string) Path {
	p, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return p
}

// Segments returns the path segments in order.
func (p Path) Segments() []string {
	out := make([]string, len(p.segments))
	copy(out, p.segments)
	return out
}

// Len returns the number of segments.
func (p Path) Len() int {
	return len(p.segments)
}

// IsEmpty reports whether the path addresses the document root.
func (p Path) IsEmpty() bool {
	return len(p.segments) == 0
}

// HasWildcard reports whether any segment is the wildcard marker.
func (p Path) HasWildcard() bool {
	for _, seg := range p.segments {
		if seg == Wildcard {
			return true
		}
	}
	return false
}

// Child returns a new path with one more trailing segment.
func (p Path) Child(segment string) Path {
	segs := make([]string, 0, len(p.segments)+1)
	segs = append(segs, p.segments...)
	segs = append(segs, segment)
	return Path{segments: segs}
}

// String returns the serialized form of the path.
func (p Path) String() string {
	return strings.Join(p.segments, Delimiter)
}

func fromSegments(segs []string) Path {
	out := make([]string, len(segs))
	copy(out, segs)
	return Path{segments: out}
}
