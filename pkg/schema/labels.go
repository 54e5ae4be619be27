package schema

import (
	"regexp"
	"strings"
)

var wordSeparators = regexp.MustCompile(`[_\-\s]+`)

// DefaultLabeler derives a human-friendly label from a field name, splitting
// snake_case, kebab-case, and camelCase boundaries: "emailAddress" becomes
// "Email Address".
func DefaultLabeler(name string) string {
	if name == "" {
		return ""
	}

	var segments []string
	for _, word := range wordSeparators.Split(name, -1) {
		if word == "" {
			continue
		}
		segments = append(segments, titleWords(splitCamel(word))...)
	}
	return strings.Join(segments, " ")
}

func splitCamel(input string) string {
	var out strings.Builder
	for i, r := range input {
		if i > 0 && camelBoundary(rune(input[i-1]), r) {
			out.WriteRune(' ')
		}
		out.WriteRune(r)
	}
	return out.String()
}

func camelBoundary(prev, r rune) bool {
	isUpper := func(r rune) bool { return r >= 'A' && r <= 'Z' }
	isLower := func(r rune) bool { return r >= 'a' && r <= 'z' }
	isDigit := func(r rune) bool { return r >= '0' && r <= '9' }
	isLetter := func(r rune) bool { return isUpper(r) || isLower(r) }

	return (isLower(prev) && isUpper(r)) ||
		(isLetter(prev) && isDigit(r)) ||
		(isDigit(prev) && isLetter(r))
}

func titleWords(input string) []string {
	words := strings.Fields(input)
	out := make([]string, 0, len(words))
	for _, word := range words {
		lower := strings.ToLower(word)
		out = append(out, strings.ToUpper(lower[:1])+lower[1:])
	}
	return out
}
