package sopheme

import (
	"testing"

	"github.com/crestwick/amphitheory/pkg/phoneme"
	"github.com/crestwick/amphitheory/pkg/steno"
)

func acquiesceSopheme(t *testing.T) Sopheme {
	t.Helper()
	st, err := steno.FromSteno("AEU")
	if err != nil {
		t.Fatalf("FromSteno: %v", err)
	}
	return Sopheme{
		Orthokeysymbols: []Orthokeysymbol{{
			Chars:      "a",
			Keysymbols: []Keysymbol{NewKeysymbol("ei", 1, false)},
		}},
		Steno:   []steno.Stroke{st},
		Phoneme: phoneme.AA,
	}
}

func TestMatchSymbolForStripsDecoration(t *testing.T) {
	if got := MatchSymbolFor("EI1"); got != "ei" {
		t.Errorf("MatchSymbolFor(%q) = %q, want %q", "EI1", got, "ei")
	}
	if got := MatchSymbolFor("[k]"); got != "k" {
		t.Errorf("MatchSymbolFor(%q) = %q, want %q", "[k]", got, "k")
	}
}

func TestTranslationConcatenatesOrthography(t *testing.T) {
	s1 := Sopheme{Orthokeysymbols: []Orthokeysymbol{{Chars: "a"}}}
	s2 := Sopheme{Orthokeysymbols: []Orthokeysymbol{{Chars: "cqui"}}, Phoneme: phoneme.K}
	s3 := Sopheme{Orthokeysymbols: []Orthokeysymbol{{Chars: "esce"}}}
	if got := Translation([]Sopheme{s1, s2, s3}); got != "acquiesce" {
		t.Errorf("Translation = %q, want %q", got, "acquiesce")
	}
}

func TestDictRoundTrip(t *testing.T) {
	s := acquiesceSopheme(t)
	d := s.ToDict()
	if d.Phono != "AA" {
		t.Errorf("ToDict().Phono = %q, want %q", d.Phono, "AA")
	}
	if d.Steno != "AEU" {
		t.Errorf("ToDict().Steno = %q, want %q", d.Steno, "AEU")
	}

	back, err := FromDict(d)
	if err != nil {
		t.Fatalf("FromDict: %v", err)
	}
	if back.Phoneme != phoneme.AA {
		t.Errorf("FromDict().Phoneme = %v, want %v", back.Phoneme, phoneme.AA)
	}
	if len(back.Steno) != 1 || back.Steno[0].RTFCRE() != "AEU" {
		t.Errorf("FromDict().Steno = %v, want [AEU]", back.Steno)
	}
	if back.Orthokeysymbols[0].Chars != "a" {
		t.Errorf("FromDict().Orthokeysymbols[0].Chars = %q, want %q", back.Orthokeysymbols[0].Chars, "a")
	}
}

func TestFromDictEmptySteno(t *testing.T) {
	d := Dict{Orthokeysymbols: []OrthokeysymbolDict{{Chars: "x"}}, Steno: "", Phono: ""}
	s, err := FromDict(d)
	if err != nil {
		t.Fatalf("FromDict: %v", err)
	}
	if len(s.Steno) != 0 {
		t.Errorf("expected no strokes for an empty steno field, got %v", s.Steno)
	}
	if s.Phoneme != phoneme.None {
		t.Errorf("expected phoneme.None for an empty phono field, got %v", s.Phoneme)
	}
}

func TestShortestFormUsesShorthand(t *testing.T) {
	s := Sopheme{
		Orthokeysymbols: []Orthokeysymbol{{Chars: "k", Keysymbols: []Keysymbol{NewKeysymbol("k", 0, false)}}},
		Phoneme:         phoneme.K,
	}
	if got := s.ShortestForm(); got != "k" {
		t.Errorf("ShortestForm = %q, want %q", got, "k")
	}
}

func TestShortestFormFallsBackToFullForm(t *testing.T) {
	s := Sopheme{
		Orthokeysymbols: []Orthokeysymbol{{Chars: "zz", Keysymbols: []Keysymbol{NewKeysymbol("zh", 0, false)}}},
		Phoneme:         phoneme.SH,
	}
	full := s.String()
	if got := s.ShortestForm(); got != full {
		t.Errorf("ShortestForm = %q, want fallback to String() %q", got, full)
	}
}
