package glyphgen

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"github.com/louisbranch/glyphgen/internal/glyph"
	platformcmd "github.com/louisbranch/glyphgen/internal/platform/cmd"
	"github.com/louisbranch/glyphgen/internal/platform/icons"
)

// Config holds configuration for one generator run. Environment variables
// carry the GLYPHGEN_ prefix; flags override them.
type Config struct {
	Input           string `env:"INPUT"`
	Output          string `env:"OUTPUT"`
	SelectorPattern string `env:"SELECTOR_PATTERN"`
	ContentPattern  string `env:"CONTENT_PATTERN"`
	Preset          string `env:"PRESET"`
	Format          string `env:"FORMAT" envDefault:"java"`
	EnumName        string `env:"ENUM_NAME" envDefault:"Glyphs"`
	Package         string `env:"PACKAGE" envDefault:"glyphs"`
	EscapePrefix    string `env:"ESCAPE_PREFIX"`
	CodepointCase   string `env:"CODEPOINT_CASE"`

	// ListPresets prints the preset catalog instead of generating.
	ListPresets bool
}

// ParseConfig loads env defaults and then parses flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := platformcmd.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	if fs == nil {
		return Config{}, errors.New("flag parser is required")
	}

	fs.StringVar(&cfg.Input, "in", cfg.Input, "stylesheet to scan")
	fs.StringVar(&cfg.Output, "out", cfg.Output, "path of the generated source")
	fs.StringVar(&cfg.SelectorPattern, "selector", cfg.SelectorPattern, "selector line regexp with one capture group for the glyph name")
	fs.StringVar(&cfg.ContentPattern, "content", cfg.ContentPattern, "content line regexp with one capture group for the codepoint")
	fs.StringVar(&cfg.Preset, "preset", cfg.Preset, "icon font preset ("+strings.Join(icons.IDs(), ", ")+")")
	fs.StringVar(&cfg.Format, "format", cfg.Format, "output format (java, go)")
	fs.StringVar(&cfg.EnumName, "enum", cfg.EnumName, "name of the generated enumeration")
	fs.StringVar(&cfg.Package, "package", cfg.Package, "package clause for go output")
	fs.StringVar(&cfg.EscapePrefix, "escape-prefix", cfg.EscapePrefix, "text written before the codepoint inside the escape")
	fs.StringVar(&cfg.CodepointCase, "codepoint-case", cfg.CodepointCase, "hex digit case in escapes (lower, upper)")
	fs.BoolVar(&cfg.ListPresets, "presets", false, "print the preset catalog and exit")
	if err := platformcmd.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}

	if cfg.ListPresets {
		return cfg, nil
	}
	if _, err := cfg.resolve(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// plan is a validated Config with compiled patterns.
type plan struct {
	input    string
	output   string
	selector glyph.Pattern
	content  glyph.Pattern
	emitter  glyph.Emitter
}

// resolve validates cfg and applies the preset, if any. Explicit patterns and
// escape settings win over the preset's.
func (cfg Config) resolve() (plan, error) {
	input := strings.TrimSpace(cfg.Input)
	if input == "" {
		return plan{}, errors.New("input is required")
	}
	output := strings.TrimSpace(cfg.Output)
	if output == "" {
		return plan{}, errors.New("output is required")
	}

	selectorExpr := cfg.SelectorPattern
	contentExpr := cfg.ContentPattern
	escapePrefix := cfg.EscapePrefix
	codepointCase := glyph.Case(strings.ToLower(strings.TrimSpace(cfg.CodepointCase)))
	if name := strings.TrimSpace(cfg.Preset); name != "" {
		def, ok := icons.Lookup(name)
		if !ok {
			return plan{}, fmt.Errorf("unknown preset %q (known: %s)", name, strings.Join(icons.IDs(), ", "))
		}
		if selectorExpr == "" {
			selectorExpr = def.SelectorPattern
		}
		if contentExpr == "" {
			contentExpr = def.ContentPattern
		}
		if escapePrefix == "" {
			escapePrefix = def.EscapePrefix
		}
		if codepointCase == "" && def.UpperCodepoints {
			codepointCase = glyph.CaseUpper
		}
	}
	switch codepointCase {
	case "":
		codepointCase = glyph.CaseLower
	case glyph.CaseLower, glyph.CaseUpper:
	default:
		return plan{}, fmt.Errorf("unknown codepoint case %q", cfg.CodepointCase)
	}

	format := glyph.Format(strings.ToLower(strings.TrimSpace(cfg.Format)))
	switch format {
	case "":
		format = glyph.FormatJava
	case glyph.FormatJava, glyph.FormatGo:
	default:
		return plan{}, fmt.Errorf("unknown format %q", cfg.Format)
	}

	selector, err := glyph.CompilePattern("selector", selectorExpr)
	if err != nil {
		return plan{}, err
	}
	content, err := glyph.CompilePattern("content", contentExpr)
	if err != nil {
		return plan{}, err
	}

	return plan{
		input:    input,
		output:   output,
		selector: selector,
		content:  content,
		emitter: glyph.Emitter{
			Format:        format,
			EnumName:      strings.TrimSpace(cfg.EnumName),
			Package:       strings.TrimSpace(cfg.Package),
			EscapePrefix:  escapePrefix,
			CodepointCase: codepointCase,
		},
	}, nil
}
