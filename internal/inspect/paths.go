package inspect

import (
	"strings"

	"github.com/eLbARROS13/OH-Toolkit/internal/document"
	"github.com/eLbARROS13/OH-Toolkit/internal/pathspec"
)

// Paths enumerates every dot path addressable in the profile, to at most
// maxDepth segments, in depth-first document order. Both branch and leaf
// paths are listed, so the output doubles as a menu of valid base paths and
// value paths.
func Paths(profile *document.Value, maxDepth int) []string {
	var out []string
	if profile == nil || !profile.IsObject() {
		return out
	}
	collectPaths(profile, nil, maxDepth, &out)
	return out
}

func collectPaths(node *document.Value, prefix []string, maxDepth int, out *[]string) {
	if len(prefix) >= maxDepth {
		return
	}
	for _, key := range node.Keys() {
		child, _ := node.Field(key)
		segs := append(append([]string{}, prefix...), key)
		*out = append(*out, strings.Join(segs, pathspec.Delimiter))
		if child.IsObject() {
			collectPaths(child, segs, maxDepth, out)
		}
	}
}
