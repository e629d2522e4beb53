// Package glyphgen generates glyph enumerations from icon-font stylesheets.
package glyphgen

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/louisbranch/glyphgen/internal/glyph"
	"github.com/louisbranch/glyphgen/internal/platform/icons"
)

const tracerName = "github.com/louisbranch/glyphgen/internal/tools/glyphgen"

// Run scans cfg.Input, prints a summary to out and writes the generated
// enumeration to cfg.Output.
//
// Unresolved selector blocks are reported on out and do not fail the run. Any
// I/O failure aborts the run; the output file is either fully written or left
// untouched.
func Run(ctx context.Context, cfg Config, out io.Writer) (err error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if out == nil {
		out = io.Discard
	}
	if cfg.ListPresets {
		_, err := io.WriteString(out, icons.CatalogMarkdown())
		return err
	}

	p, err := cfg.resolve()
	if err != nil {
		return err
	}

	_, span := otel.Tracer(tracerName).Start(ctx, "glyphgen.Run", trace.WithAttributes(
		attribute.String("glyphgen.input", p.input),
		attribute.String("glyphgen.output", p.output),
		attribute.String("glyphgen.format", string(p.emitter.Format)),
	))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	reg, stats, err := scanFile(p, log.New(out, "", 0))
	if err != nil {
		return err
	}
	span.SetAttributes(
		attribute.Int("glyphgen.matched", stats.Matched),
		attribute.Int("glyphgen.unique_blocks", stats.UniqueBlocks),
		attribute.Int("glyphgen.unmatched", stats.Unmatched),
		attribute.Int("glyphgen.overwrites", reg.Overwrites()),
	)
	if err := printSummary(out, stats); err != nil {
		return err
	}

	src, err := p.emitter.Emit(reg)
	if err != nil {
		return fmt.Errorf("emit %s: %w", p.emitter.Format, err)
	}
	if err := writeFileAtomic(p.output, src); err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "wrote %d glyph(s) to %s\n", reg.Len(), p.output)
	return err
}

func scanFile(p plan, logger *log.Logger) (*glyph.Registry, glyph.Stats, error) {
	f, err := os.Open(p.input)
	if err != nil {
		return nil, glyph.Stats{}, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	reg := glyph.NewRegistry()
	scanner := glyph.NewScanner(p.selector, p.content, glyph.WithUnresolvedHandler(func(block glyph.UnresolvedBlock) {
		logger.Printf("WARNING: %v", block)
	}))
	stats, err := scanner.Scan(f, reg)
	if err != nil {
		return nil, stats, fmt.Errorf("scan %s: %w", p.input, err)
	}
	return reg, stats, nil
}

func printSummary(out io.Writer, stats glyph.Stats) error {
	printer := message.NewPrinter(language.English)
	_, err := printer.Fprintf(out,
		"Glyphs ok:    \t%d (unique: %d)\nGlyphs error: \t%d\nGlyphs total: \t%d\n",
		stats.Matched, stats.UniqueBlocks, stats.Unmatched, stats.Total())
	return err
}
