package glyph

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NormalizeKey turns a raw glyph name into a safe identifier body.
//
// Hyphens become underscores, as does any other character that cannot appear
// in an enum member name (one underscore per character, whatever its encoded
// width). A leading digit gets an underscore prefix. Case is left untouched;
// see Identifier.
func NormalizeKey(name string) string {
	if name == "" {
		return "_"
	}
	var b strings.Builder
	b.Grow(len(name) + 1)
	if isDigit(rune(name[0])) {
		b.WriteByte('_')
	}
	for _, r := range name {
		if isIdentRune(r) {
			b.WriteRune(r)
			continue
		}
		b.WriteByte('_')
	}
	return b.String()
}

// Identifier returns the presentation form of a glyph name: normalized and
// uppercased.
func Identifier(name string) string {
	return cases.Upper(language.Und).String(NormalizeKey(name))
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isIdentRune(r rune) bool {
	return isDigit(r) || r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
