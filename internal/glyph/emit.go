package glyph

import (
	"bytes"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/tools/imports"
)

// Format selects the generated source language.
type Format string

const (
	// FormatJava renders a Java enum whose members wrap a char literal.
	FormatJava Format = "java"
	// FormatGo renders a Go rune type with one constant per glyph.
	FormatGo Format = "go"
)

// Case is the letter case applied to hex digits in emitted escapes.
type Case string

const (
	CaseLower Case = "lower"
	CaseUpper Case = "upper"
)

const (
	defaultEnumName = "Glyphs"
	defaultPackage  = "glyphs"
)

var identPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Entry is one emitted enumeration member.
type Entry struct {
	Identifier string
	Key        string
	Codepoint  string
}

// SortedEntries returns the registry contents ordered by identifier.
//
// Distinct keys that share an identifier (they differ only in case) collapse
// to the lexicographically greatest key, so the result depends only on the
// registry contents.
func SortedEntries(reg *Registry) []Entry {
	if reg == nil {
		return nil
	}
	entries := make([]Entry, 0, reg.Len())
	for key, codepoint := range reg.glyphs {
		entries = append(entries, Entry{Identifier: Identifier(key), Key: key, Codepoint: codepoint})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Identifier != entries[j].Identifier {
			return entries[i].Identifier < entries[j].Identifier
		}
		return entries[i].Key < entries[j].Key
	})

	out := entries[:0]
	for i, entry := range entries {
		if i+1 < len(entries) && entries[i+1].Identifier == entry.Identifier {
			continue
		}
		out = append(out, entry)
	}
	return out
}

// Emitter renders a registry as generated source.
type Emitter struct {
	Format Format
	// EnumName names the enumeration type. Defaults to "Glyphs".
	EnumName string
	// Package is the Go package clause for FormatGo. Defaults to "glyphs".
	Package string
	// EscapePrefix is written between `\u` and the codepoint.
	EscapePrefix  string
	CodepointCase Case
}

// Emit renders reg. Output is byte-identical for identical registry contents.
func (e Emitter) Emit(reg *Registry) ([]byte, error) {
	enumName := e.EnumName
	if enumName == "" {
		enumName = defaultEnumName
	}
	if !identPattern.MatchString(enumName) {
		return nil, fmt.Errorf("invalid enum name %q", enumName)
	}
	entries := SortedEntries(reg)

	switch e.Format {
	case "", FormatJava:
		return e.emitJava(enumName, entries), nil
	case FormatGo:
		return e.emitGo(enumName, entries)
	default:
		return nil, fmt.Errorf("unknown format %q", e.Format)
	}
}

func (e Emitter) emitJava(enumName string, entries []Entry) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "public static enum %s {\n", enumName)
	for i, entry := range entries {
		terminator := ","
		if i == len(entries)-1 {
			terminator = ";"
		}
		fmt.Fprintf(&buf, "\t%s('\\u%s%s')%s\n", entry.Identifier, e.EscapePrefix, e.applyCase(entry.Codepoint), terminator)
	}
	buf.WriteString("}\n")
	return buf.Bytes()
}

func (e Emitter) emitGo(enumName string, entries []Entry) ([]byte, error) {
	pkg := e.Package
	if pkg == "" {
		pkg = defaultPackage
	}
	if !identPattern.MatchString(pkg) {
		return nil, fmt.Errorf("invalid package name %q", pkg)
	}

	var buf bytes.Buffer
	buf.WriteString("// Code generated by glyphgen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", pkg)
	fmt.Fprintf(&buf, "// %s is a named codepoint of the icon font.\n", enumName)
	fmt.Fprintf(&buf, "type %s rune\n\n", enumName)
	buf.WriteString("const (\n")
	for _, entry := range entries {
		lit, err := e.runeLiteral(entry.Codepoint)
		if err != nil {
			return nil, fmt.Errorf("glyph %s: %w", entry.Identifier, err)
		}
		fmt.Fprintf(&buf, "\t%s %s = %s\n", entry.Identifier, enumName, lit)
	}
	buf.WriteString(")\n")

	src, err := imports.Process(pkg+".go", buf.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return nil, fmt.Errorf("format go source: %w", err)
	}
	return src, nil
}

// runeLiteral parses the escape text as a scalar value and renders it as a Go
// rune literal.
func (e Emitter) runeLiteral(codepoint string) (string, error) {
	hex := e.EscapePrefix + codepoint
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return "", fmt.Errorf("parse codepoint %q: %w", hex, err)
	}
	r := rune(v)
	if !utf8.ValidRune(r) {
		return "", fmt.Errorf("codepoint %q is not a unicode scalar value", hex)
	}
	if r <= 0xFFFF {
		return "'\\u" + e.applyCase(fmt.Sprintf("%04x", r)) + "'", nil
	}
	return "'\\U" + e.applyCase(fmt.Sprintf("%08x", r)) + "'", nil
}

func (e Emitter) applyCase(s string) string {
	if e.CodepointCase == CaseUpper {
		return strings.ToUpper(s)
	}
	return strings.ToLower(s)
}
