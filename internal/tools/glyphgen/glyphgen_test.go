package glyphgen

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const fontAwesomeCSS = `/*!
 *  Font Awesome 4.7.0 by @davegandy - http://fontawesome.io - @fontawesome
 */
.fa-glass:before {
  content: "\f000";
}
.fa-music:before {
  content: "\f001";
}
.fa-remove:before,
.fa-close:before,
.fa-times:before {
  content: "\f00d";
}
.fa-500px:before {
  content: "\f26e";
}
.fa-broken:before {
  color: red;
  content: "\f0ff";
}
.sr-only {
  position: absolute;
}
`

func writeInput(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "font-awesome.css")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}
	return path
}

func TestRunWritesJavaEnum(t *testing.T) {
	dir := t.TempDir()
	cfg := Config{
		Input:  writeInput(t, dir, fontAwesomeCSS),
		Output: filepath.Join(dir, "gen", "Glyphs.java"),
		Preset: "fontawesome",
	}
	var out bytes.Buffer

	if err := Run(context.Background(), cfg, &out); err != nil {
		t.Fatalf("run: %v", err)
	}

	data, err := os.ReadFile(cfg.Output)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	want := "public static enum Glyphs {\n" +
		"\tCLOSE('\\uf00d'),\n" +
		"\tGLASS('\\uf000'),\n" +
		"\tMUSIC('\\uf001'),\n" +
		"\tREMOVE('\\uf00d'),\n" +
		"\tTIMES('\\uf00d'),\n" +
		"\t_500PX('\\uf26e');\n" +
		"}\n"
	if string(data) != want {
		t.Fatalf("output =\n%s\nwant\n%s", data, want)
	}

	console := out.String()
	for _, line := range []string{
		"Glyphs ok:    \t6 (unique: 4)",
		"Glyphs error: \t1",
		"Glyphs total: \t7",
		"WARNING: no content/unicode for [broken] at line 19:   color: red;",
		"wrote 6 glyph(s) to " + cfg.Output,
	} {
		if !strings.Contains(console, line) {
			t.Errorf("console missing %q:\n%s", line, console)
		}
	}
}

func TestRunIsDeterministic(t *testing.T) {
	dir := t.TempDir()
	reordered := strings.Replace(fontAwesomeCSS,
		".fa-glass:before {\n  content: \"\\f000\";\n}\n", "", 1) +
		".fa-glass:before {\n  content: \"\\f000\";\n}\n"
	if reordered == fontAwesomeCSS {
		t.Fatal("expected reordered fixture")
	}

	var outputs [][]byte
	for i, css := range []string{fontAwesomeCSS, fontAwesomeCSS, reordered} {
		sub := filepath.Join(dir, string(rune('a'+i)))
		if err := os.MkdirAll(sub, 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		cfg := Config{Input: writeInput(t, sub, css), Output: filepath.Join(sub, "Glyphs.java"), Preset: "fontawesome"}
		if err := Run(context.Background(), cfg, nil); err != nil {
			t.Fatalf("run %d: %v", i, err)
		}
		data, err := os.ReadFile(cfg.Output)
		if err != nil {
			t.Fatalf("read output: %v", err)
		}
		outputs = append(outputs, data)
	}
	for i := 1; i < len(outputs); i++ {
		if !bytes.Equal(outputs[0], outputs[i]) {
			t.Fatalf("output %d differs:\n%s\n---\n%s", i, outputs[0], outputs[i])
		}
	}
}

func TestRunEmptyInput(t *testing.T) {
	dir := t.TempDir()
	cfg := Config{Input: writeInput(t, dir, ""), Output: filepath.Join(dir, "Glyphs.java"), Preset: "fontawesome"}
	var out bytes.Buffer

	if err := Run(context.Background(), cfg, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	data, err := os.ReadFile(cfg.Output)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if string(data) != "public static enum Glyphs {\n}\n" {
		t.Fatalf("output = %q", data)
	}
	if !strings.Contains(out.String(), "Glyphs ok:    \t0 (unique: 0)") || !strings.Contains(out.String(), "Glyphs total: \t0") {
		t.Fatalf("console = %q", out.String())
	}
}

func TestRunMaterialDesignIconsGo(t *testing.T) {
	dir := t.TempDir()
	css := ".mdi-account:before {\n  content: \"\\F004\";\n}\n.mdi-alarm:before {\n  content: \"\\F020\";\n}\n"
	cfg := Config{
		Input:    writeInput(t, dir, css),
		Output:   filepath.Join(dir, "mdi.go"),
		Preset:   "materialdesignicons",
		Format:   "go",
		EnumName: "Icon",
		Package:  "mdi",
	}
	if err := Run(context.Background(), cfg, nil); err != nil {
		t.Fatalf("run: %v", err)
	}
	data, err := os.ReadFile(cfg.Output)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	src := string(data)
	for _, want := range []string{"package mdi", "type Icon rune", "ACCOUNT Icon = '\\uF004'", "ALARM   Icon = '\\uF020'"} {
		if !strings.Contains(src, want) {
			t.Errorf("output missing %q:\n%s", want, src)
		}
	}
}

func TestRunMissingInputLeavesNoOutput(t *testing.T) {
	dir := t.TempDir()
	cfg := Config{Input: filepath.Join(dir, "missing.css"), Output: filepath.Join(dir, "Glyphs.java"), Preset: "fontawesome"}

	err := Run(context.Background(), cfg, nil)
	if err == nil {
		t.Fatal("expected error for missing input")
	}
	if !strings.Contains(err.Error(), "open input") {
		t.Fatalf("error = %q, want open input", err.Error())
	}
	if _, statErr := os.Stat(cfg.Output); !os.IsNotExist(statErr) {
		t.Fatalf("expected no output file, stat err = %v", statErr)
	}
}

func TestRunUnwritableOutputLeavesNoPartialFile(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "Glyphs.java")
	if err := os.Mkdir(output, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	cfg := Config{Input: writeInput(t, dir, fontAwesomeCSS), Output: output, Preset: "fontawesome"}

	if err := Run(context.Background(), cfg, nil); err == nil {
		t.Fatal("expected error when output is a directory")
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".tmp") {
			t.Fatalf("temp file left behind: %s", entry.Name())
		}
	}
}

func TestRunRejectsInvalidConfig(t *testing.T) {
	if err := Run(context.Background(), Config{}, nil); err == nil {
		t.Fatal("expected error for empty config")
	}
}

func TestRunListPresets(t *testing.T) {
	var out bytes.Buffer
	if err := Run(nil, Config{ListPresets: true}, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.String(), "| fontawesome |") {
		t.Fatalf("preset listing = %q", out.String())
	}
}
