// Package fieldname turns machine field identifiers into display names for
// use as a golidator field-name mapper. The engine's own default is
// identity; pass Titlecase (or a WithOverrides wrapper) explicitly when
// records should carry human-readable field names.
package fieldname

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Small words stay lowercase mid-name, per the NYT manual of style plus
// v/vs (John Gruber's titlecase list).
var smallWords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "as": {}, "at": {}, "but": {}, "by": {},
	"en": {}, "for": {}, "if": {}, "in": {}, "of": {}, "on": {}, "or": {},
	"the": {}, "to": {}, "v": {}, "v.": {}, "via": {}, "vs": {}, "vs.": {},
}

var (
	macMc        = regexp.MustCompile(`^(mc)(\w.+)$`)
	inlinePeriod = regexp.MustCompile(`(?i)[a-z]\.[a-z]`)
)

// Titlecase converts a snake_case field identifier into a display name:
// "next_of_kin" becomes "Next of Kin". Small words stay lowercase except in
// first or last position; words with interior capitals or inline periods
// (acronyms, camelCase fragments, dotted initials) pass through unchanged;
// Mc prefixes are recapitalized.
func Titlecase(field string) string {
	caser := cases.Title(language.English)

	words := strings.Fields(strings.ReplaceAll(field, "_", " "))
	last := len(words) - 1
	for i, word := range words {
		lower := strings.ToLower(word)
		switch {
		case hasInteriorCaps(word) || inlinePeriod.MatchString(word):
			// leave as written
		case i != 0 && i != last && isSmallWord(lower):
			words[i] = lower
		case macMc.MatchString(lower):
			m := macMc.FindStringSubmatch(lower)
			words[i] = caser.String(m[1]) + caser.String(m[2])
		default:
			words[i] = caser.String(lower)
		}
	}
	return strings.Join(words, " ")
}

// WithOverrides returns a mapper that resolves exact field names through the
// given table and titlecases everything else.
func WithOverrides(overrides map[string]string) func(string) string {
	return func(field string) string {
		if name, ok := overrides[field]; ok {
			return name
		}
		return Titlecase(field)
	}
}

func isSmallWord(lower string) bool {
	_, ok := smallWords[lower]
	return ok
}

func hasInteriorCaps(word string) bool {
	for i, r := range word {
		if i > 0 && unicode.IsUpper(r) {
			return true
		}
	}
	return false
}
