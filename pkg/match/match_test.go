package match

import (
	"testing"

	"github.com/crestwick/amphitheory/pkg/phoneme"
	"github.com/crestwick/amphitheory/pkg/sopheme"
)

func TestParseTranscriptionStressAndMarkers(t *testing.T) {
	ks := parseTranscription("~ a . k w ii . * e s")
	if len(ks) == 0 {
		t.Fatalf("expected at least one keysymbol")
	}
	if ks[0].Symbol != "a" || ks[0].Stress != 2 {
		t.Errorf("first keysymbol = %+v, want Symbol=a Stress=2 (from preceding '~')", ks[0])
	}

	// the '*' before 'e' should mark 'e' stress 1, not the literal '*'
	// itself, which is a nonphonetic marker and must not appear as its
	// own keysymbol.
	for _, k := range ks {
		if k.Symbol == "*" {
			t.Fatalf("'*' marker leaked into keysymbols: %+v", ks)
		}
	}
}

func TestSophemesZygote(t *testing.T) {
	got, err := Sophemes("zygote", "z * ae . g ou t", "STKPWAOEU/TKPWOET")
	if err != nil {
		t.Fatalf("Sophemes: %v", err)
	}

	var phonemes []phoneme.Phoneme
	for _, s := range got {
		if s.Phoneme != phoneme.None {
			phonemes = append(phonemes, s.Phoneme)
		}
	}
	want := []phoneme.Phoneme{phoneme.Z, phoneme.II, phoneme.G, phoneme.OO, phoneme.T}
	if len(phonemes) != len(want) {
		t.Fatalf("phoneme sequence = %v, want %v", phonemes, want)
	}
	for i, p := range want {
		if phonemes[i] != p {
			t.Errorf("phoneme[%d] = %v, want %v (full: %v)", i, phonemes[i], p, phonemes)
		}
	}
}

func TestSophemesAcquiesce(t *testing.T) {
	got, err := Sophemes("acquiesce", "~ a . k w ii . * e s", "A/KWEU/KWRES")
	if err != nil {
		t.Fatalf("Sophemes: %v", err)
	}
	if len(got) == 0 {
		t.Fatalf("expected at least one sopheme")
	}

	translation := ""
	for _, s := range got {
		for _, o := range s.Orthokeysymbols {
			translation += o.Chars
		}
	}
	if translation != "acquiesce" {
		t.Errorf("reconstructed orthography = %q, want %q", translation, "acquiesce")
	}
}

// TestSophemesAtion exercises spec.md §8's third worked scenario: the
// merged-sopheme-over-multiple-orthokeysymbols path, where "sh" and
// "n" (with the silent "o" between them) realize as a single chord
// -GS rather than as separate sophemes.
func TestSophemesAtion(t *testing.T) {
	got, err := Sophemes("ation", "{ ee sh n }", "AEUGS")
	if err != nil {
		t.Fatalf("Sophemes: %v", err)
	}

	translation := ""
	for _, s := range got {
		for _, o := range s.Orthokeysymbols {
			translation += o.Chars
		}
	}
	if translation != "ation" {
		t.Fatalf("reconstructed orthography = %q, want %q", translation, "ation")
	}

	var merged *sopheme.Sopheme
	for i := range got {
		if len(got[i].Orthokeysymbols) > 1 {
			merged = &got[i]
			break
		}
	}
	if merged == nil {
		t.Fatalf("expected one sopheme to merge multiple orthokeysymbols, got %+v", got)
	}

	chars := ""
	for _, o := range merged.Orthokeysymbols {
		chars += o.Chars
	}
	if chars != "tion" {
		t.Errorf("merged sopheme orthography = %q, want %q", chars, "tion")
	}
	if merged.Phoneme != phoneme.None {
		t.Errorf("merged sopheme phoneme = %v, want %v (no single phoneme for a merged chord)", merged.Phoneme, phoneme.None)
	}
	if len(merged.Steno) != 1 || merged.Steno[0].RTFCRE() != "-GS" {
		t.Errorf("merged sopheme steno = %v, want a single -GS stroke", merged.Steno)
	}
}

func TestSophemesInvalidOutline(t *testing.T) {
	if _, err := Sophemes("x", "s", "QQQ"); err == nil {
		t.Fatalf("expected an error for an unparseable outline")
	}
}
