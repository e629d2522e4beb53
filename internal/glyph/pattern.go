package glyph

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Pattern matches one line shape and captures a single value from it.
type Pattern struct {
	name string
	re   *regexp.Regexp
}

// CompilePattern compiles expr into a Pattern anchored at line start.
//
// The expression must contain exactly one capture group; its text is the
// value Match returns. name identifies the pattern in error messages.
func CompilePattern(name, expr string) (Pattern, error) {
	if strings.TrimSpace(expr) == "" {
		return Pattern{}, fmt.Errorf("%s pattern is required", name)
	}
	re, err := regexp.Compile("^(?:" + strings.TrimPrefix(expr, "^") + ")")
	if err != nil {
		return Pattern{}, fmt.Errorf("compile %s pattern: %w", name, err)
	}
	if n := re.NumSubexp(); n != 1 {
		return Pattern{}, fmt.Errorf("%s pattern must have exactly one capture group, got %d", name, n)
	}
	return Pattern{name: name, re: re}, nil
}

// MustCompilePattern is like CompilePattern but panics on error.
func MustCompilePattern(name, expr string) Pattern {
	p, err := CompilePattern(name, expr)
	if err != nil {
		panic(err)
	}
	return p
}

// Match reports whether line starts with the pattern and returns the
// captured value.
func (p Pattern) Match(line string) (string, bool) {
	if p.re == nil {
		return "", false
	}
	m := p.re.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// Name returns the label given at compile time.
func (p Pattern) Name() string {
	return p.name
}

// String returns the anchored expression.
func (p Pattern) String() string {
	if p.re == nil {
		return ""
	}
	return p.re.String()
}

var errNilPattern = errors.New("pattern is not compiled")
