package hatchery

import (
	"testing"

	"github.com/crestwick/amphitheory/pkg/steno"
	"github.com/crestwick/amphitheory/pkg/theory"
	"github.com/crestwick/amphitheory/pkg/trie"
)

func parseOutline(t *testing.T, outline string) []steno.Stroke {
	t.Helper()
	strokes, err := steno.ParseOutline(outline)
	if err != nil {
		t.Fatalf("ParseOutline(%q): %v", outline, err)
	}
	return strokes
}

func buildZygoteNFA(t *testing.T) *trie.NondeterministicTrie[string] {
	t.Helper()
	compiled := theory.Default
	strokes := parseOutline(t, "STKPWAOEU/TKPWOET")
	phonemes, err := GetOutlinePhonemes(compiled, strokes)
	if err != nil {
		t.Fatalf("GetOutlinePhonemes: %v", err)
	}
	nfa := trie.NewNFA[string]()
	AddEntry(compiled, nfa, phonemes, "zygote")
	return nfa
}

// TestBuildAndLookupZygote exercises spec.md §8's "Build and lookup"
// scenario: inserting STKPWAOEU/TKPWOET -> "zygote" and querying the
// same outline returns "zygote".
func TestBuildAndLookupZygote(t *testing.T) {
	nfa := buildZygoteNFA(t)
	lookup := CreateLookup(theory.Default, nfa)

	got, err := lookup([]string{"STKPWAOEU", "TKPWOET"})
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if got != "zygote" {
		t.Errorf("lookup = %q, want %q", got, "zygote")
	}
}

// TestCyclerWithNoCompetingHomophone exercises spec.md §8's cycler
// scenario: appending the cycler stroke with no competing homophone
// still returns the same translation.
func TestCyclerWithNoCompetingHomophone(t *testing.T) {
	nfa := buildZygoteNFA(t)
	lookup := CreateLookup(theory.Default, nfa)

	got, err := lookup([]string{"STKPWAOEU", "TKPWOET", "@"})
	if err != nil {
		t.Fatalf("lookup with cycler: %v", err)
	}
	if got != "zygote" {
		t.Errorf("lookup with cycler = %q, want %q", got, "zygote")
	}
}

// TestProhibitedStrokeRejected exercises spec.md §8's "AEU-prohibited
// stroke" scenario: AEU is declared a prohibited stroke and must never
// resolve to a translation.
func TestProhibitedStrokeRejected(t *testing.T) {
	nfa := trie.NewNFA[string]()
	lookup := CreateLookup(theory.Default, nfa)

	_, err := lookup([]string{"AEU"})
	if err != ErrNotFound {
		t.Errorf("lookup(AEU) = %v, want %v", err, ErrNotFound)
	}
}

func TestLookupUnknownOutlineNotFound(t *testing.T) {
	nfa := buildZygoteNFA(t)
	lookup := CreateLookup(theory.Default, nfa)

	if _, err := lookup([]string{"TPHO"}); err != ErrNotFound {
		t.Errorf("lookup(unknown outline) = %v, want %v", err, ErrNotFound)
	}
}

func TestLookupInvalidSteno(t *testing.T) {
	nfa := trie.NewNFA[string]()
	lookup := CreateLookup(theory.Default, nfa)

	if _, err := lookup([]string{"SX"}); err != steno.ErrInvalidSteno {
		t.Errorf("lookup(invalid steno) = %v, want %v", err, steno.ErrInvalidSteno)
	}
}

func TestReverseLookupRoundTrip(t *testing.T) {
	nfa := buildZygoteNFA(t)
	reverse := CreateReverseLookup(theory.Default, nfa)

	outlines := reverse("zygote")
	if len(outlines) == 0 {
		t.Fatalf("expected at least one outline for %q", "zygote")
	}

	found := false
	for _, outline := range outlines {
		if len(outline) == 2 && outline[0] == "STKPWAOEU" && outline[1] == "TKPWOET" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected reverse lookup to include the canonical outline, got %v", outlines)
	}
}

func TestReverseLookupUnknownTranslation(t *testing.T) {
	nfa := buildZygoteNFA(t)
	reverse := CreateReverseLookup(theory.Default, nfa)

	if got := reverse("not-a-real-word"); len(got) != 0 {
		t.Errorf("expected no outlines for an unknown translation, got %v", got)
	}
}
