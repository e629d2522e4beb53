package glyph

import "testing"

func TestRegistryLastWriteWins(t *testing.T) {
	reg := NewRegistry()
	reg.Register("foo", "001")
	reg.Register("foo", "002")

	if reg.Len() != 1 {
		t.Fatalf("len = %d, want 1", reg.Len())
	}
	if got, _ := reg.Lookup("foo"); got != "002" {
		t.Fatalf("foo = %q, want %q", got, "002")
	}
	if reg.Overwrites() != 1 {
		t.Fatalf("overwrites = %d, want 1", reg.Overwrites())
	}
}

func TestRegistryNormalizesKeys(t *testing.T) {
	reg := NewRegistry()
	reg.Register("foo-bar", "001")
	reg.Register("foo_bar", "002")

	if reg.Len() != 1 {
		t.Fatalf("len = %d, want 1", reg.Len())
	}
	entries := reg.Entries()
	if entries["foo_bar"] != "002" {
		t.Fatalf("entries = %v", entries)
	}
	if _, ok := reg.Lookup("foo-bar"); !ok {
		t.Fatal("expected raw name lookup to resolve")
	}
}

func TestRegistryEntriesIsCopy(t *testing.T) {
	reg := NewRegistry()
	reg.Register("foo", "001")
	entries := reg.Entries()
	entries["bar"] = "002"
	delete(entries, "foo")

	if reg.Len() != 1 {
		t.Fatalf("len = %d, want 1", reg.Len())
	}
	if _, ok := reg.Lookup("foo"); !ok {
		t.Fatal("expected registry to be unaffected by entries mutation")
	}
}

func TestRegistryLookupMissing(t *testing.T) {
	if _, ok := NewRegistry().Lookup("nope"); ok {
		t.Fatal("expected lookup miss")
	}
}
