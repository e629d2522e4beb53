// Package icons defines the icon fonts glyphgen knows how to read.
//
// Each definition carries the two line patterns that locate glyph names and
// codepoints in the font's stylesheet, plus the escape conventions the
// generated enumeration uses for that font. Callers can still override any
// field through configuration.
package icons
