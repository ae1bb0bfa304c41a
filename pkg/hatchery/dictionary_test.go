package hatchery

import (
	"bytes"
	"encoding/gob"
	"encoding/json"
	"testing"

	"github.com/crestwick/amphitheory/pkg/match"
	"github.com/crestwick/amphitheory/pkg/sopheme"
	"github.com/crestwick/amphitheory/pkg/theory"
)

func zygoteEntryJSON(t *testing.T) []byte {
	t.Helper()
	sophemes, err := match.Sophemes("zygote", "z * ae . g ou t", "STKPWAOEU/TKPWOET")
	if err != nil {
		t.Fatalf("match.Sophemes: %v", err)
	}
	dicts := make([]sopheme.Dict, len(sophemes))
	for i, s := range sophemes {
		dicts[i] = s.ToDict()
	}
	entries := [][]sopheme.Dict{dicts}
	buf, err := json.Marshal(entries)
	if err != nil {
		t.Fatalf("json.Marshal: %v", err)
	}
	return buf
}

func TestDictionaryLoadReaderAndLookup(t *testing.T) {
	d := NewDictionary(theory.Default)
	if err := d.LoadReader(bytes.NewReader(zygoteEntryJSON(t))); err != nil {
		t.Fatalf("LoadReader: %v", err)
	}

	if got := d.LongestKey(); got != 12 {
		t.Errorf("LongestKey() = %d, want 12", got)
	}

	got, err := d.Lookup([]string{"STKPWAOEU", "TKPWOET"})
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if got != "zygote" {
		t.Errorf("Lookup = %q, want %q", got, "zygote")
	}
}

func TestDictionaryGetFallback(t *testing.T) {
	d := NewDictionary(theory.Default)
	if err := d.LoadReader(bytes.NewReader(zygoteEntryJSON(t))); err != nil {
		t.Fatalf("LoadReader: %v", err)
	}

	if got := d.Get([]string{"TPHO"}, "fallback"); got != "fallback" {
		t.Errorf("Get(unknown) = %q, want %q", got, "fallback")
	}
	if got := d.Get([]string{"STKPWAOEU", "TKPWOET"}, "fallback"); got != "zygote" {
		t.Errorf("Get(known) = %q, want %q", got, "zygote")
	}
}

func TestDictionaryBeforeLoadIsEmpty(t *testing.T) {
	d := NewDictionary(theory.Default)
	if _, err := d.Lookup([]string{"STKPWAOEU"}); err != ErrNotFound {
		t.Errorf("Lookup before Load = %v, want %v", err, ErrNotFound)
	}
	if got, err := d.ReverseLookup("zygote"); err != nil || got != nil {
		t.Errorf("ReverseLookup before Load = %v, %v; want nil, nil", got, err)
	}
}

func TestDictionaryLoadReaderMalformed(t *testing.T) {
	d := NewDictionary(theory.Default)
	if err := d.LoadReader(bytes.NewReader([]byte("not json"))); err != ErrMalformedLexicon {
		t.Errorf("LoadReader(malformed) = %v, want %v", err, ErrMalformedLexicon)
	}
}

func TestDictionaryGobCacheRoundTrip(t *testing.T) {
	sophemes, err := match.Sophemes("zygote", "z * ae . g ou t", "STKPWAOEU/TKPWOET")
	if err != nil {
		t.Fatalf("match.Sophemes: %v", err)
	}
	dicts := make([]sopheme.Dict, len(sophemes))
	for i, s := range sophemes {
		dicts[i] = s.ToDict()
	}
	entries := [][]sopheme.Dict{dicts}

	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(entries); err != nil {
		t.Fatalf("gob encode: %v", err)
	}

	d := NewDictionary(theory.Default)
	if err := d.LoadGobReader(&buf); err != nil {
		t.Fatalf("LoadGobReader: %v", err)
	}
	got, err := d.Lookup([]string{"STKPWAOEU", "TKPWOET"})
	if err != nil {
		t.Fatalf("Lookup after gob load: %v", err)
	}
	if got != "zygote" {
		t.Errorf("Lookup after gob load = %q, want %q", got, "zygote")
	}
}
