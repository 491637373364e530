// Package textnorm normalizes user-entered French text for display and search.
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	lower = cases.Lower(language.French)
	title = cases.Title(language.French)
)

// SearchKey returns s lowercased with diacritics removed and inner whitespace
// collapsed, so that "Vélo Club  d'Évry" and "velo club d'evry" compare equal.
func SearchKey(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	return strings.Join(strings.Fields(lower.String(folded)), " ")
}

// PersonName trims and title-cases a first or last name ("jean-luc" -> "Jean-Luc").
func PersonName(s string) string {
	return title.String(strings.Join(strings.Fields(s), " "))
}
