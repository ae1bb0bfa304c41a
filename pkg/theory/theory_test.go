package theory

import (
	"testing"

	"github.com/crestwick/amphitheory/pkg/phoneme"
	"github.com/crestwick/amphitheory/pkg/steno"
)

func TestDefaultSpecKeySets(t *testing.T) {
	s := DefaultSpec()
	if s.AllKeys&s.LeftBank != s.LeftBank {
		t.Errorf("AllKeys does not contain LeftBank")
	}
	if s.ProhibitedStrokes == nil {
		t.Fatalf("expected a non-nil prohibited strokes set")
	}
	aeu, err := steno.FromSteno("AEU")
	if err != nil {
		t.Fatalf("FromSteno: %v", err)
	}
	if _, ok := s.ProhibitedStrokes[aeu]; !ok {
		t.Errorf("expected AEU to be prohibited")
	}
}

func TestCompileBuildsClusterTries(t *testing.T) {
	c := Compile(DefaultSpec())
	node, ok := c.ClustersTrie.Chain(0, []ClusterKey{PK(phoneme.D), PK(phoneme.S)})
	if !ok {
		t.Fatalf("expected a cluster chain for D,S")
	}
	chord, ok := c.ClustersTrie.Value(node)
	if !ok {
		t.Fatalf("expected a terminal chord at the D,S cluster node")
	}
	want, _ := steno.FromSteno("STK")
	if chord != want {
		t.Errorf("D,S cluster chord = %v, want %v", chord.RTFCRE(), want.RTFCRE())
	}
}

func TestChordsToPhonemesVowelsIsInverse(t *testing.T) {
	c := Compile(DefaultSpec())
	for p, chord := range c.PhonemesToChordsVowels {
		got, ok := c.ChordsToPhonemesVowels[chord]
		if !ok {
			t.Fatalf("missing inverse entry for chord %v", chord.RTFCRE())
		}
		if got != p {
			t.Errorf("ChordsToPhonemesVowels[%v] = %v, want %v", chord.RTFCRE(), got, p)
		}
	}
}

func TestDefaultIsSharedSingleton(t *testing.T) {
	if Default == nil {
		t.Fatalf("expected a non-nil package-level Default")
	}
	if Default.ClustersTrie == nil {
		t.Fatalf("expected Default to carry a compiled clusters trie")
	}
}
