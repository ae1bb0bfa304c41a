package lexicon

import (
	"bytes"
	"sort"
	"strings"
	"testing"
)

func TestLoadFlatJSON(t *testing.T) {
	r := strings.NewReader(`{"KAT": "cat", "SKWR/-G": "judge"}`)
	dict, err := LoadFlatJSON(r)
	if err != nil {
		t.Fatalf("LoadFlatJSON: %v", err)
	}
	if dict["KAT"] != "cat" || dict["SKWR/-G"] != "judge" {
		t.Errorf("LoadFlatJSON = %v, missing expected entries", dict)
	}
}

func TestLoadFlatJSONMalformed(t *testing.T) {
	if _, err := LoadFlatJSON(strings.NewReader("not json")); err == nil {
		t.Fatalf("expected an error for malformed JSON")
	}
}

func TestReadUnilex(t *testing.T) {
	src := "cat:a:b:k ae t:e:f\ndog:a:b:d oe g:e:f\n"
	entries, err := ReadUnilex(bytes.NewReader([]byte(src)))
	if err != nil {
		t.Fatalf("ReadUnilex: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Translation != "cat" || entries[0].Transcription != "k ae t" {
		t.Errorf("entries[0] = %+v, want Translation=cat Transcription=\"k ae t\"", entries[0])
	}
}

func TestReadUnilexSkipsBlankLines(t *testing.T) {
	src := "cat:a:b:k ae t:e:f\n\n   \ndog:a:b:d oe g:e:f\n"
	entries, err := ReadUnilex(bytes.NewReader([]byte(src)))
	if err != nil {
		t.Fatalf("ReadUnilex: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected blank lines to be skipped, got %d entries", len(entries))
	}
}

func TestReadUnilexMalformedLine(t *testing.T) {
	src := "cat:a:b:k ae t\n"
	if _, err := ReadUnilex(bytes.NewReader([]byte(src))); err == nil {
		t.Fatalf("expected an error for a line without 6 colon-delimited fields")
	}
}

func TestReverseIndexSkipsNonAlnumTranslations(t *testing.T) {
	flat := FlatDict{"TPH-G": "can't", "KAT": "cat"}
	out := ReverseIndex(flat)
	if _, ok := out["can't"]; ok {
		t.Errorf("expected non-alphanumeric translation to be skipped")
	}
	if out["cat"] == nil {
		t.Errorf("expected alphanumeric translation to be indexed")
	}
}

// TestReverseIndexKeepsOnlyLongestStrokeCountGroup exercises the
// documented quirk: regardless of source map iteration order, the
// final group for a translation always ends up holding exactly the
// outlines tied for the greatest stroke count seen for it, never a
// mix of shorter and longer outlines.
func TestReverseIndexKeepsOnlyLongestStrokeCountGroup(t *testing.T) {
	flat := FlatDict{
		"KAT":        "cat", // 1 stroke
		"KAT/-T":     "cat", // 2 strokes
		"KAT/-T/TOP": "cat", // 3 strokes
		"KA/AT":      "cat", // 2 strokes, tied with KAT/-T
	}
	out := ReverseIndex(flat)
	got := append([]string(nil), out["cat"]...)
	sort.Strings(got)

	want := []string{"KAT/-T/TOP"}
	if len(got) != len(want) {
		t.Fatalf("ReverseIndex[cat] = %v, want only the 3-stroke outline %v", got, want)
	}
	if got[0] != want[0] {
		t.Errorf("ReverseIndex[cat] = %v, want %v", got, want)
	}
}
