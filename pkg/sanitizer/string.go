package sanitizer

import (
	"html"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	whitespaceRegex = regexp.MustCompile(`\s+`)
	htmlTagRegex    = regexp.MustCompile(`<[^>]*>`)
)

// Trim removes leading and trailing whitespace from a string.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// ToLower converts a string to lowercase.
func ToLower(s string) string {
	return strings.ToLower(s)
}

// ToUpper converts a string to uppercase.
func ToUpper(s string) string {
	return strings.ToUpper(s)
}

// ToTitle capitalizes the first letter of every word using Unicode word
// boundaries; the rest of each word is lowercased.
func ToTitle(s string) string {
	return cases.Title(language.Und).String(s)
}

// ToKebabCase converts a string to kebab-case by replacing non-alphanumeric
// characters with hyphens and collapsing repeats.
func ToKebabCase(s string) string {
	return joinWords(s, '-')
}

// ToSnakeCase converts a string to snake_case by replacing non-alphanumeric
// characters with underscores and collapsing repeats.
func ToSnakeCase(s string) string {
	return joinWords(s, '_')
}

func joinWords(s string, sep rune) string {
	s = strings.ToLower(strings.TrimSpace(s))

	var b strings.Builder
	prevSep := false
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			prevSep = false
			continue
		}
		if !prevSep {
			b.WriteRune(sep)
			prevSep = true
		}
	}

	return strings.Trim(b.String(), string(sep))
}

// RemoveExtraWhitespace collapses runs of whitespace into one space and trims.
func RemoveExtraWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(s, " "))
}

// RemoveControlChars removes control characters except newlines and tabs.
func RemoveControlChars(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && r != '\n' && r != '\r' && r != '\t' {
			return -1
		}
		return r
	}, s)
}

// StripHTML removes HTML tags and unescapes HTML entities.
func StripHTML(s string) string {
	return html.UnescapeString(htmlTagRegex.ReplaceAllString(s, ""))
}

// KeepDigits keeps only numeric digits.
func KeepDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, s)
}

// SingleLine joins lines with spaces and collapses whitespace.
func SingleLine(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	return RemoveExtraWhitespace(s)
}

var byName = map[string]func(string) string{
	"trim":          Trim,
	"lower":         ToLower,
	"upper":         ToUpper,
	"title":         ToTitle,
	"kebab":         ToKebabCase,
	"snake":         ToSnakeCase,
	"collapse":      RemoveExtraWhitespace,
	"strip_control": RemoveControlChars,
	"strip_html":    StripHTML,
	"digits":        KeepDigits,
	"single_line":   SingleLine,
}

// Lookup returns the string transform registered under name.
func Lookup(name string) (func(string) string, bool) {
	fn, ok := byName[strings.ToLower(strings.TrimSpace(name))]
	return fn, ok
}
