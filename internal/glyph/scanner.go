package glyph

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Stats counts scanner outcomes for one run.
type Stats struct {
	// Matched is the number of glyph names bound to a codepoint.
	Matched int
	// UniqueBlocks is the number of content lines that resolved a buffer.
	UniqueBlocks int
	// Unmatched is the number of glyph names discarded without a codepoint.
	Unmatched int
}

// Total returns Matched + Unmatched, the number of names flushed from the
// buffer.
func (s Stats) Total() int {
	return s.Matched + s.Unmatched
}

// ScannerOption configures a Scanner.
type ScannerOption func(*Scanner)

// WithUnresolvedHandler sets the callback invoked for every discarded block.
func WithUnresolvedHandler(fn func(UnresolvedBlock)) ScannerOption {
	return func(s *Scanner) {
		s.onUnresolved = fn
	}
}

// Scanner pairs selector lines with the content line that follows them.
//
// The scanner is either scanning (no pending names) or buffering. While
// buffering, the first line that is not a selector decides the fate of the
// whole buffer: a content match registers every name, anything else discards
// them. Lines between a selector block and its content declaration therefore
// make the block unmatched.
type Scanner struct {
	selector     Pattern
	content      Pattern
	onUnresolved func(UnresolvedBlock)
}

// NewScanner returns a scanner using the given selector and content patterns.
func NewScanner(selector, content Pattern, opts ...ScannerOption) *Scanner {
	s := &Scanner{selector: selector, content: content}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Scan reads r to the end, registering resolved glyphs into reg.
//
// Lines may be of any length. Names still pending at end of input have no
// candidate line and are dropped without being counted. Only read failures
// are returned as errors; the returned Stats reflect the lines consumed
// before the failure.
func (s *Scanner) Scan(r io.Reader, reg *Registry) (Stats, error) {
	if s.selector.re == nil || s.content.re == nil {
		return Stats{}, errNilPattern
	}
	if r == nil {
		return Stats{}, errors.New("input reader is required")
	}
	if reg == nil {
		return Stats{}, errors.New("registry is required")
	}

	var (
		stats  Stats
		buffer []string
		lineNo int
	)
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return stats, fmt.Errorf("read line %d: %w", lineNo+1, err)
		}
		if line == "" && err == io.EOF {
			break
		}
		lineNo++
		line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
		buffer = s.scanLine(line, lineNo, buffer, reg, &stats)
		if err == io.EOF {
			break
		}
	}
	return stats, nil
}

// scanLine applies one line to the pending buffer and returns the new buffer.
func (s *Scanner) scanLine(line string, lineNo int, buffer []string, reg *Registry, stats *Stats) []string {
	if name, ok := s.selector.Match(line); ok {
		return append(buffer, name)
	}
	if len(buffer) == 0 {
		return nil
	}

	if codepoint, ok := s.content.Match(line); ok {
		for _, name := range buffer {
			reg.Register(name, codepoint)
		}
		stats.Matched += len(buffer)
		stats.UniqueBlocks++
	} else {
		stats.Unmatched += len(buffer)
		s.report(UnresolvedBlock{Names: buffer, Line: line, LineNumber: lineNo})
	}
	return nil
}

func (s *Scanner) report(block UnresolvedBlock) {
	if s.onUnresolved != nil {
		s.onUnresolved(block)
	}
}
