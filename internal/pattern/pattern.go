// Package pattern decides whether a concrete index name is selected by a
// user-supplied index pattern. It is deliberately tiny and stateless so glob
// correctness can be tested apart from capability aggregation.
package pattern

import "strings"

// All is the reserved pattern meaning "every index", independent of glob
// semantics. It matches any name, including the empty string and names that
// contain a literal wildcard character.
const All = "_all"

// Wildcard is the only glob metacharacter index patterns support.
const Wildcard = "*"

// Matches reports whether indexName is selected by pattern.
//
// Priority order: the all-indices token matches unconditionally; a pattern
// without a wildcard must equal the name byte-for-byte; otherwise the pattern
// is a simple glob where each '*' matches any substring, including the empty
// one.
func Matches(pattern, indexName string) bool {
	if pattern == All {
		return true
	}
	if !strings.Contains(pattern, Wildcard) {
		return pattern == indexName
	}
	return simpleMatch(pattern, indexName)
}

// Filter returns the subset of names selected by pattern, preserving input
// order.
func Filter(pattern string, names []string) []string {
	var matched []string
	for _, name := range names {
		if Matches(pattern, name) {
			matched = append(matched, name)
		}
	}
	return matched
}

// simpleMatch implements glob matching with '*' as the sole metacharacter.
// Greedy segment scan: split the pattern on wildcards and require the literal
// segments to appear in order, anchored at both ends.
func simpleMatch(pattern, s string) bool {
	segments := strings.Split(pattern, Wildcard)

	// Anchor the leading literal.
	if !strings.HasPrefix(s, segments[0]) {
		return false
	}
	s = s[len(segments[0]):]

	for i := 1; i < len(segments)-1; i++ {
		seg := segments[i]
		if seg == "" {
			continue
		}
		idx := strings.Index(s, seg)
		if idx < 0 {
			return false
		}
		s = s[idx+len(seg):]
	}

	// Anchor the trailing literal.
	last := segments[len(segments)-1]
	return strings.HasSuffix(s, last) && len(s) >= len(last)
}
