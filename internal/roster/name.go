package roster

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var initialPattern = regexp.MustCompile(`^[A-Z]\.?$`)

// NormalizeWhitespace collapses every run of whitespace in s to a single
// space and trims leading and trailing whitespace.
func NormalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// TitleCase normalizes whitespace and capitalizes each word: first letter
// upper, the rest lower. Words already in all uppercase keep their casing
// when longer than one letter, so "NASA Jones" stays "NASA Jones".
func TitleCase(s string) string {
	s = NormalizeWhitespace(s)
	if s == "" {
		return s
	}
	words := strings.Split(s, " ")
	for i, w := range words {
		if isAllUpper(w) && utf8.RuneCountInString(w) > 1 {
			continue
		}
		words[i] = capitalize(w)
	}
	return strings.Join(words, " ")
}

// CleanFirstName title-cases a given name but rejects bare initials: a
// single character, or a single uppercase letter with an optional trailing
// period, comes back empty.
func CleanFirstName(s string) string {
	s = NormalizeWhitespace(s)
	if utf8.RuneCountInString(s) == 1 || initialPattern.MatchString(s) {
		return ""
	}
	return TitleCase(s)
}

// ParseFullName splits a combined "Last, First M." value into cleaned
// (first, last) parts. Without a comma the first whitespace token is the
// given name and the final token the surname; a single token is treated as
// a given name only. Empty input yields two empty strings.
func ParseFullName(raw string) (first, last string) {
	raw = NormalizeWhitespace(raw)
	if raw == "" {
		return "", ""
	}
	if before, after, found := strings.Cut(raw, ","); found {
		given := ""
		if tokens := strings.Fields(after); len(tokens) > 0 {
			given = tokens[0]
		}
		return CleanFirstName(given), TitleCase(before)
	}
	tokens := strings.Fields(raw)
	if len(tokens) == 1 {
		return CleanFirstName(tokens[0]), ""
	}
	return CleanFirstName(tokens[0]), TitleCase(tokens[len(tokens)-1])
}

func isAllUpper(s string) bool {
	return s == strings.ToUpper(s) && s != strings.ToLower(s)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}
