package icons

import (
	"sort"
	"strings"
)

// ID names a known icon font.
type ID string

const (
	FontAwesome         ID = "fontawesome"
	MaterialDesignIcons ID = "materialdesignicons"
)

// Definition describes how to extract glyphs from one icon font stylesheet.
type Definition struct {
	ID          ID
	Name        string
	Description string
	// SelectorPattern captures the glyph name from a selector line.
	SelectorPattern string
	// ContentPattern captures the codepoint from a content line.
	ContentPattern string
	// EscapePrefix is emitted ahead of the captured codepoint.
	EscapePrefix string
	// UpperCodepoints selects uppercase hex digits in emitted escapes.
	UpperCodepoints bool
}

var catalog = []Definition{
	{
		ID:              FontAwesome,
		Name:            "Font Awesome",
		Description:     "font-awesome.css from github.com/FortAwesome/Font-Awesome.",
		SelectorPattern: `\.fa-([\w-]*):before`,
		ContentPattern:  `\s*content: "\\([a-zA-Z].*)"`,
	},
	{
		ID:          MaterialDesignIcons,
		Name:        "Material Design Icons",
		Description: "materialdesignicons.css from materialdesignicons.com.",
		// The stylesheet writes "\F101"; the leading F is part of the
		// private-use codepoint and is restored through EscapePrefix.
		SelectorPattern: `\.mdi-([\w-]*):before`,
		ContentPattern:  ` *content: "\\F(.*)"`,
		EscapePrefix:    "f",
		UpperCodepoints: true,
	},
}

// Catalog returns a copy of the icon font definitions.
func Catalog() []Definition {
	result := make([]Definition, len(catalog))
	copy(result, catalog)
	return result
}

// Lookup returns the definition for id, ignoring case and surrounding space.
func Lookup(id string) (Definition, bool) {
	want := ID(strings.ToLower(strings.TrimSpace(id)))
	for _, def := range catalog {
		if def.ID == want {
			return def, true
		}
	}
	return Definition{}, false
}

// IDs returns the known font identifiers in sorted order.
func IDs() []string {
	ids := make([]string, 0, len(catalog))
	for _, def := range catalog {
		ids = append(ids, string(def.ID))
	}
	sort.Strings(ids)
	return ids
}

// CatalogMarkdown renders the icon font catalog as markdown.
func CatalogMarkdown() string {
	var builder strings.Builder
	builder.WriteString("# Icon Fonts\n\n")
	builder.WriteString("| Preset | Name | Selector | Content |\n")
	builder.WriteString("| --- | --- | --- | --- |\n")
	for _, def := range catalog {
		builder.WriteString("| ")
		builder.WriteString(string(def.ID))
		builder.WriteString(" | ")
		builder.WriteString(def.Name)
		builder.WriteString(" | `")
		builder.WriteString(def.SelectorPattern)
		builder.WriteString("` | `")
		builder.WriteString(def.ContentPattern)
		builder.WriteString("` |\n")
	}
	return builder.String()
}
