package render

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

func toSnakeCase(s string) string {
	return joinLower(splitWords(s), "_")
}

func toKebabCase(s string) string {
	return joinLower(splitWords(s), "-")
}

func toCamelCase(s string) string {
	words := splitWords(s)
	if len(words) == 0 {
		return ""
	}
	return strings.ToLower(words[0]) + toPascalCase(strings.Join(words[1:], " "))
}

func toPascalCase(s string) string {
	var result strings.Builder
	for _, word := range splitWords(s) {
		result.WriteString(capitalize(strings.ToLower(word)))
	}
	return result.String()
}

// slugify produces an anchor/URL safe identifier: lowercase ASCII words
// joined by hyphens.
func slugify(s string) string {
	var words []string
	for _, word := range splitWords(s) {
		cleaned := strings.Map(func(r rune) rune {
			if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
				return unicode.ToLower(r)
			}
			return -1
		}, word)
		if cleaned != "" {
			words = append(words, cleaned)
		}
	}
	return strings.Join(words, "-")
}

func humanize(s string) string {
	words := splitWords(s)
	if len(words) == 0 {
		return ""
	}
	return capitalize(joinLower(words, " "))
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

func joinLower(words []string, sep string) string {
	lowered := make([]string, len(words))
	for i, word := range words {
		lowered[i] = strings.ToLower(word)
	}
	return strings.Join(lowered, sep)
}

// splitWords breaks s on anything that is not a letter or digit, on
// lower-to-upper transitions and on letter/digit boundaries:
// "HTTPServer2Go_api" -> [HTTPServer 2 Go api].
func splitWords(s string) []string {
	var words []string
	var current strings.Builder
	var prev rune

	flush := func() {
		if current.Len() > 0 {
			words = append(words, current.String())
			current.Reset()
		}
	}

	for i, r := range s {
		switch {
		case i > 0 && unicode.IsUpper(r) && (unicode.IsLower(prev) || unicode.IsDigit(prev)):
			flush()
			current.WriteRune(r)
		case i > 0 && unicode.IsLetter(r) && unicode.IsDigit(prev),
			i > 0 && unicode.IsDigit(r) && unicode.IsLetter(prev):
			flush()
			current.WriteRune(r)
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			current.WriteRune(r)
		default:
			flush()
		}
		prev = r
	}
	flush()

	return words
}
