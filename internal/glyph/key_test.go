package glyph

import (
	"regexp"
	"testing"
)

func TestNormalizeKey(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain", in: "foo", want: "foo"},
		{name: "hyphens", in: "arrow-circle-o-down", want: "arrow_circle_o_down"},
		{name: "leading digit", in: "9lives", want: "_9lives"},
		{name: "leading digit with hyphen", in: "500px", want: "_500px"},
		{name: "case kept", in: "Foo-Bar", want: "Foo_Bar"},
		{name: "other punctuation", in: "a.b c", want: "a_b_c"},
		{name: "empty", in: "", want: "_"},
		{name: "multibyte", in: "café-crème", want: "caf__cr_me"},
		{name: "astral", in: "smile-😀", want: "smile__"},
		{name: "invalid utf8", in: "a\xffb", want: "a_b"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := NormalizeKey(tc.in); got != tc.want {
				t.Fatalf("NormalizeKey(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestIdentifierIsSafe(t *testing.T) {
	safe := regexp.MustCompile(`^[A-Z_][A-Z0-9_]*$`)
	for _, in := range []string{"foo", "9lives", "arrow-circle-o-down", "x-2", "", "--", "ä"} {
		id := Identifier(in)
		if !safe.MatchString(id) {
			t.Errorf("Identifier(%q) = %q is not a safe identifier", in, id)
		}
	}
}

func TestIdentifierUppercases(t *testing.T) {
	if got := Identifier("9lives"); got != "_9LIVES" {
		t.Fatalf("Identifier = %q, want %q", got, "_9LIVES")
	}
	if got := Identifier("foo-bar"); got != "FOO_BAR" {
		t.Fatalf("Identifier = %q, want %q", got, "FOO_BAR")
	}
}
