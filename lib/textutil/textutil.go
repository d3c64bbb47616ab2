package textutil

import (
	"regexp"
	"strings"
)

var whitespaceRegex = regexp.MustCompile(`\s+`)
var punctuationRegex = regexp.MustCompile(`[.,'"’\-]`)

// NormalizeName lowercases a name and strips whitespace and punctuation so
// that "J.P. Rosenbaum" and "jp rosenbaum" compare equal.
func NormalizeName(name string) string {
	name = strings.ToLower(name)
	name = punctuationRegex.ReplaceAllString(name, "")
	name = whitespaceRegex.ReplaceAllString(name, "")
	return name
}

// MatchName reports whether the normalized name contains any of the
// (already normalized) matchers.
func MatchName(name string, matchers []string) bool {
	name = NormalizeName(name)
	for _, m := range matchers {
		if m != "" && strings.Contains(name, m) {
			return true
		}
	}
	return false
}
