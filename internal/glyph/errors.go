package glyph

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnresolvedBlock marks selector blocks that were not followed by a
// content line.
var ErrUnresolvedBlock = errors.New("unresolved glyph block")

// UnresolvedBlock describes a run of selector names whose next line did not
// carry a codepoint. The names are discarded and counted as unmatched.
type UnresolvedBlock struct {
	Names []string
	// Line is the offending input line.
	Line string
	// LineNumber is 1-based.
	LineNumber int
}

// Error implements the error interface.
func (b UnresolvedBlock) Error() string {
	return fmt.Sprintf("no content/unicode for [%s] at line %d: %s", strings.Join(b.Names, ", "), b.LineNumber, b.Line)
}

// Unwrap lets errors.Is match ErrUnresolvedBlock.
func (b UnresolvedBlock) Unwrap() error {
	return ErrUnresolvedBlock
}
