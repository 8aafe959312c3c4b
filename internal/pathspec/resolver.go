package pathspec

import (
	"github.com/eLbARROS13/OH-Toolkit/internal/document"
)

// NotFound is the absence marker returned for any path that cannot be
// resolved. It is a distinct Value pointer, never an error: profiles are
// heterogeneous by nature and most subjects are missing most optional
// subtrees. Compare with IsNotFound, not by kind.
var NotFound = document.Null()

// IsNotFound reports whether v is the absence marker.
func IsNotFound(v *document.Value) bool {
	return v == NotFound
}

// Resolve descends through data one path segment at a time and returns the
// addressed value, or NotFound. The empty path resolves to data itself.
//
// A literal segment looks up that key in the current object; an absent key,
// or a non-object encountered while segments remain, yields NotFound. A
// wildcard segment yields an object mapping every key present at that level
// to the resolution of the remaining path beneath it, in document key order;
// with no remaining path the raw values are returned.
func Resolve(data *document.Value, p Path) *document.Value {
	return resolveSegments(data, p.segments)
}

// Exists reports whether the path resolves to something other than NotFound.
func Exists(data *document.Value, p Path) bool {
	return !IsNotFound(Resolve(data, p))
}

// KeysAt resolves the path to an object and returns its keys in document
// order. Returns nil when the path does not resolve to an object.
func KeysAt(data *document.Value, p Path) []string {
	v := Resolve(data, p)
	if IsNotFound(v) || !v.IsObject() {
		return nil
	}
	return v.Keys()
}

// ExpandWildcards returns every concrete path obtained by substituting each
// wildcard segment with a key actually present at that level, in depth-first
// left-to-right order. Literal segments after the final wildcard are appended
// without an existence check; resolving such a tail later simply yields
// NotFound. A path without wildcards expands to itself.
func ExpandWildcards(data *document.Value, p Path) []Path {
	var out []Path
	expand(data, p.segments, nil, &out)
	return out
}

func resolveSegments(cur *document.Value, segs []string) *document.Value {
	if len(segs) == 0 {
		if cur == nil {
			return NotFound
		}
		return cur
	}
	if cur == nil || IsNotFound(cur) || !cur.IsObject() {
		return NotFound
	}

	seg := segs[0]
	if seg == Wildcard {
		matches := document.NewObject()
		for _, key := range cur.Keys() {
			child, _ := cur.Field(key)
			matches.Set(key, resolveSegments(child, segs[1:]))
		}
		return matches
	}

	child, ok := cur.Field(seg)
	if !ok {
		return NotFound
	}
	return resolveSegments(child, segs[1:])
}

func expand(cur *document.Value, segs []string, prefix []string, out *[]Path) {
	wild := -1
	for i, seg := range segs {
		if seg == Wildcard {
			wild = i
			break
		}
	}
	if wild < 0 {
		*out = append(*out, fromSegments(append(prefix, segs...)))
		return
	}

	// Walk the literal segments ahead of the wildcard; a dead branch simply
	// contributes no expansions.
	for _, seg := range segs[:wild] {
		if cur == nil || !cur.IsObject() {
			return
		}
		child, ok := cur.Field(seg)
		if !ok {
			return
		}
		prefix = append(prefix, seg)
		cur = child
	}

	if cur == nil || !cur.IsObject() {
		return
	}
	for _, key := range cur.Keys() {
		child, _ := cur.Field(key)
		branch := make([]string, 0, len(prefix)+1)
		branch = append(branch, prefix...)
		branch = append(branch, key)
		expand(child, segs[wild+1:], branch, out)
	}
}
