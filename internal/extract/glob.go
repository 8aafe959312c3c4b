package extract

import "strings"

// matchGlob reports whether s matches pattern, where '*' matches any run of
// characters (including none). Matching is case-sensitive and anchored to
// the whole string; there are no character classes or escapes.
func matchGlob(pattern, s string) bool {
	parts := strings.Split(pattern, "*")
	if len(parts) == 1 {
		return pattern == s
	}

	if !strings.HasPrefix(s, parts[0]) {
		return false
	}
	s = s[len(parts[0]):]

	last := parts[len(parts)-1]
	for _, part := range parts[1 : len(parts)-1] {
		idx := strings.Index(s, part)
		if idx < 0 {
			return false
		}
		s = s[idx+len(part):]
	}

	return strings.HasSuffix(s, last)
}

// filterKeys applies include patterns then exclude patterns to keys,
// preserving order. No include patterns means "match all". A key survives
// when it matches at least one include pattern and no exclude pattern.
func filterKeys(keys, include, exclude []string) []string {
	out := make([]string, 0, len(keys))
	for _, key := range keys {
		if !matchAny(include, key, true) {
			continue
		}
		if matchAny(exclude, key, false) {
			continue
		}
		out = append(out, key)
	}
	return out
}

func matchAny(patterns []string, key string, emptyMeansAll bool) bool {
	if len(patterns) == 0 {
		return emptyMeansAll
	}
	for _, p := range patterns {
		if matchGlob(p, key) {
			return true
		}
	}
	return false
}
