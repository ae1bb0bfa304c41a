package main

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFixture(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile(%s): %v", path, err)
	}
	return path
}

func TestCompileZygote(t *testing.T) {
	dir := t.TempDir()
	jsonPath := writeFixture(t, dir, "lexicon.json", `{"STKPWAOEU/TKPWOET": "zygote"}`)
	unilexPath := writeFixture(t, dir, "unilex.txt", "zygote:a:b:z * ae . g ou t:e:f\n")

	entries, err := compile(jsonPath, unilexPath, "utf-8")
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 compiled entry, got %d", len(entries))
	}

	translation := ""
	for _, d := range entries[0] {
		translation += d.Orthokeysymbols[0].Chars
	}
	if translation != "zygote" {
		t.Errorf("compiled translation = %q, want %q", translation, "zygote")
	}
}

func TestCompileSkipsTranslationsMissingFromLexicon(t *testing.T) {
	dir := t.TempDir()
	jsonPath := writeFixture(t, dir, "lexicon.json", `{"KAT": "cat"}`)
	unilexPath := writeFixture(t, dir, "unilex.txt", "dog:a:b:d oe g:e:f\n")

	entries, err := compile(jsonPath, unilexPath, "utf-8")
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected no compiled entries for a translation missing from the lexicon, got %d", len(entries))
	}
}

func TestCompileUnknownEncoding(t *testing.T) {
	dir := t.TempDir()
	jsonPath := writeFixture(t, dir, "lexicon.json", `{}`)
	unilexPath := writeFixture(t, dir, "unilex.txt", "")

	if _, err := compile(jsonPath, unilexPath, "not-a-real-encoding"); err == nil {
		t.Fatalf("expected an error for an unknown unilex encoding")
	}
}

func TestCompileMissingJSONFile(t *testing.T) {
	dir := t.TempDir()
	unilexPath := writeFixture(t, dir, "unilex.txt", "")

	if _, err := compile(filepath.Join(dir, "missing.json"), unilexPath, "utf-8"); err == nil {
		t.Fatalf("expected an error for a missing lexicon file")
	}
}
