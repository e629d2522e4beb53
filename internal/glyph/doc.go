// Package glyph extracts named glyphs from icon-font stylesheets.
//
// A Scanner reads a stylesheet line by line, pairing runs of selector lines
// (".fa-bolt:before") with the content line that follows them
// (`content: "\f0e7";`). Every name in a run shares the run's codepoint.
// Results accumulate in a Registry, which an Emitter renders as a sorted
// enumeration for the host application.
package glyph
