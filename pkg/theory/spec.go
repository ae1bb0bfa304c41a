// Package theory holds the declarative theory specification described
// in spec.md §3 ("Theory spec") and §4.5: the chord tables, alternate
// maps, clusters, linker/cycler/prohibited strokes, and the three
// transition costs. The default instance reproduces "amphitheory"
// exactly as declared in plover_writeouts/lib/theory/theory.py.
package theory

import (
	"fmt"

	"github.com/crestwick/amphitheory/pkg/phoneme"
	"github.com/crestwick/amphitheory/pkg/steno"
)

// ClusterEntry is one row of a CLUSTERS or VOWEL_CONSCIOUS_CLUSTERS
// table: a sequence of cluster keys mapping to a single compressed
// chord.
type ClusterEntry struct {
	Keys  []ClusterKey
	Chord steno.Stroke
}

// Costs bundles the three scalar transition costs from
// theory.py's TransitionCosts.
type Costs struct {
	VowelElision float64
	Cluster      float64
	AltConsonant float64
}

// Spec is an immutable theory bundle. Constructed once at process
// start and treated as read-only thereafter (spec.md §3 Lifecycle).
type Spec struct {
	AllKeys   steno.Stroke
	LeftBank  steno.Stroke
	Vowels    steno.Stroke
	RightBank steno.Stroke
	Asterisk  steno.Stroke

	PhonemesToChordsLeft     map[phoneme.Phoneme]steno.Stroke
	PhonemesToChordsVowels   map[phoneme.Phoneme]steno.Stroke
	PhonemesToChordsRight    map[phoneme.Phoneme]steno.Stroke
	PhonemesToChordsLeftAlt  map[phoneme.Phoneme]steno.Stroke
	PhonemesToChordsRightAlt map[phoneme.Phoneme]steno.Stroke

	LinkerChord       steno.Stroke
	InitialVowelChord *steno.Stroke
	CyclerStroke      steno.Stroke
	ProhibitedStrokes map[steno.Stroke]struct{}

	Clusters               []ClusterEntry
	VowelConsciousClusters []ClusterEntry

	DiphthongTransitionsByFirstVowel map[phoneme.Phoneme]phoneme.Phoneme

	Costs Costs
}

func mustStroke(s string) steno.Stroke {
	st, err := steno.FromSteno(s)
	if err != nil {
		panic(fmt.Sprintf("theory: invalid built-in steno %q: %v", s, err))
	}
	return st
}

// DefaultSpec returns "amphitheory", the default writeout theory,
// reproducing plover_writeouts/lib/theory/theory.py's class body.
func DefaultSpec() *Spec {
	s := &Spec{
		AllKeys:   mustStroke("@STKPWHRAO*EUFRPBLGTSDZ"),
		LeftBank:  mustStroke("@STKPWHR"),
		Vowels:    mustStroke("AOEU"),
		RightBank: mustStroke("-FRPBLGTSDZ"),
		Asterisk:  mustStroke("*"),

		PhonemesToChordsLeft: map[phoneme.Phoneme]steno.Stroke{
			phoneme.S: mustStroke("S"),
			phoneme.T: mustStroke("T"),
			phoneme.K: mustStroke("K"),
			phoneme.P: mustStroke("P"),
			phoneme.W: mustStroke("W"),
			phoneme.H: mustStroke("H"),
			phoneme.R: mustStroke("R"),

			phoneme.Z: mustStroke("STKPW"),
			phoneme.J: mustStroke("SKWR"),
			phoneme.V: mustStroke("SR"),
			phoneme.D: mustStroke("TK"),
			phoneme.G: mustStroke("TKPW"),
			phoneme.F: mustStroke("TP"),
			phoneme.N: mustStroke("TPH"),
			phoneme.Y: mustStroke("KWR"),
			phoneme.B: mustStroke("PW"),
			phoneme.M: mustStroke("PH"),
			phoneme.L: mustStroke("HR"),

			phoneme.SH: mustStroke("SH"),
			phoneme.TH: mustStroke("TH"),
			phoneme.CH: mustStroke("KH"),

			phoneme.NG: mustStroke("TPH"),
		},

		PhonemesToChordsVowels: map[phoneme.Phoneme]steno.Stroke{
			phoneme.AA: mustStroke("AEU"),
			phoneme.A:  mustStroke("A"),
			phoneme.EE: mustStroke("AOE"),
			phoneme.E:  mustStroke("E"),
			phoneme.II: mustStroke("AOEU"),
			phoneme.I:  mustStroke("EU"),
			phoneme.OO: mustStroke("OE"),
			phoneme.O:  mustStroke("O"),
			phoneme.UU: mustStroke("AOU"),
			phoneme.U:  mustStroke("U"),
			phoneme.AU: mustStroke("AU"),
			phoneme.OI: mustStroke("OEU"),
			phoneme.OU: mustStroke("OU"),
			phoneme.AE: mustStroke("AE"),
			phoneme.AO: mustStroke("AO"),
		},

		PhonemesToChordsRight: map[phoneme.Phoneme]steno.Stroke{
			phoneme.Dummy: 0,

			phoneme.F: mustStroke("-F"),
			phoneme.R: mustStroke("-R"),
			phoneme.P: mustStroke("-P"),
			phoneme.B: mustStroke("-B"),
			phoneme.L: mustStroke("-L"),
			phoneme.G: mustStroke("-G"),
			phoneme.T: mustStroke("-T"),
			phoneme.S: mustStroke("-S"),
			phoneme.D: mustStroke("-D"),
			phoneme.Z: mustStroke("-Z"),

			phoneme.V:  mustStroke("-FB"),
			phoneme.N:  mustStroke("-PB"),
			phoneme.M:  mustStroke("-PL"),
			phoneme.K:  mustStroke("-BG"),
			phoneme.J:  mustStroke("-PBLG"),
			phoneme.CH: mustStroke("-FP"),
			phoneme.SH: mustStroke("-RB"),
			phoneme.TH: mustStroke("*T"),
		},

		PhonemesToChordsLeftAlt: map[phoneme.Phoneme]steno.Stroke{
			phoneme.F: mustStroke("W"),
			phoneme.V: mustStroke("W"),
			phoneme.Z: mustStroke("S*"),
		},

		PhonemesToChordsRightAlt: map[phoneme.Phoneme]steno.Stroke{
			phoneme.S:  mustStroke("-F"),
			phoneme.Z:  mustStroke("-F"),
			phoneme.V:  mustStroke("-F"),
			phoneme.TH: mustStroke("-F"),
			phoneme.M:  mustStroke("-FR"),
			phoneme.J:  mustStroke("-FR"),
			phoneme.K:  mustStroke("*G"),
		},

		LinkerChord:       mustStroke("SWH"),
		InitialVowelChord: strokePtr(mustStroke("@")),
		CyclerStroke:      mustStroke("@"),

		ProhibitedStrokes: map[steno.Stroke]struct{}{
			mustStroke("AEU"): {},
		},

		DiphthongTransitionsByFirstVowel: map[phoneme.Phoneme]phoneme.Phoneme{
			phoneme.E:  phoneme.Y,
			phoneme.OO: phoneme.W,
			phoneme.OU: phoneme.W,
			phoneme.I:  phoneme.Y,
			phoneme.EE: phoneme.Y,
			phoneme.UU: phoneme.W,
			phoneme.AA: phoneme.Y,
			phoneme.OI: phoneme.Y,
			phoneme.II: phoneme.Y,
		},

		Costs: Costs{VowelElision: 5, Cluster: 2, AltConsonant: 3},
	}

	s.Clusters = []ClusterEntry{
		{[]ClusterKey{PK(phoneme.D), PK(phoneme.S)}, mustStroke("STK")},
		{[]ClusterKey{PK(phoneme.D), PK(phoneme.S), PK(phoneme.T)}, mustStroke("STK")},
		{[]ClusterKey{PK(phoneme.D), PK(phoneme.S), PK(phoneme.K)}, mustStroke("STK")},
		{[]ClusterKey{PK(phoneme.K), PK(phoneme.N)}, mustStroke("K")},
		{[]ClusterKey{PK(phoneme.K), PK(phoneme.M), PK(phoneme.P)}, mustStroke("KP")},
		{[]ClusterKey{PK(phoneme.K), PK(phoneme.M), PK(phoneme.B)}, mustStroke("KPW")},
		{[]ClusterKey{PK(phoneme.L), PK(phoneme.F)}, mustStroke("-FL")},
		{[]ClusterKey{PK(phoneme.L), PK(phoneme.V)}, mustStroke("-FL")},
		{[]ClusterKey{PK(phoneme.G), PK(phoneme.L)}, mustStroke("-LG")},
		{[]ClusterKey{PK(phoneme.L), PK(phoneme.J)}, mustStroke("-LG")},
		{[]ClusterKey{PK(phoneme.K), PK(phoneme.L)}, mustStroke("*LG")},
		{[]ClusterKey{PK(phoneme.N), PK(phoneme.J)}, mustStroke("-PBG")},
		{[]ClusterKey{PK(phoneme.M), PK(phoneme.J)}, mustStroke("-PLG")},
		{[]ClusterKey{PK(phoneme.R), PK(phoneme.F)}, mustStroke("*FR")},
		{[]ClusterKey{PK(phoneme.R), PK(phoneme.S)}, mustStroke("*FR")},
		{[]ClusterKey{PK(phoneme.R), PK(phoneme.M)}, mustStroke("*FR")},
		{[]ClusterKey{PK(phoneme.R), PK(phoneme.V)}, mustStroke("-FRB")},
		{[]ClusterKey{PK(phoneme.L), PK(phoneme.CH)}, mustStroke("-LG")},
		{[]ClusterKey{PK(phoneme.R), PK(phoneme.CH)}, mustStroke("-FRPB")},
		{[]ClusterKey{PK(phoneme.N), PK(phoneme.CH)}, mustStroke("-FRPBLG")},
		{[]ClusterKey{PK(phoneme.L), PK(phoneme.SH)}, mustStroke("*RB")},
		{[]ClusterKey{PK(phoneme.R), PK(phoneme.SH)}, mustStroke("*RB")},
		{[]ClusterKey{PK(phoneme.N), PK(phoneme.SH)}, mustStroke("*RB")},
		{[]ClusterKey{PK(phoneme.M), PK(phoneme.P)}, mustStroke("*PL")},
		{[]ClusterKey{PK(phoneme.T), PK(phoneme.L)}, mustStroke("-LT")},
	}

	s.VowelConsciousClusters = []ClusterEntry{
		{[]ClusterKey{PK(phoneme.AnyVowel), PK(phoneme.N), PK(phoneme.T)}, mustStroke("SPW")},
		{[]ClusterKey{PK(phoneme.AnyVowel), PK(phoneme.N), PK(phoneme.D)}, mustStroke("SPW")},
		{[]ClusterKey{PK(phoneme.AnyVowel), PK(phoneme.M), PK(phoneme.P)}, mustStroke("KPW")},
		{[]ClusterKey{PK(phoneme.AnyVowel), PK(phoneme.M), PK(phoneme.B)}, mustStroke("KPW")},
		{[]ClusterKey{PK(phoneme.AnyVowel), PK(phoneme.N), PK(phoneme.K)}, mustStroke("SKPW")},
		{[]ClusterKey{PK(phoneme.AnyVowel), PK(phoneme.N), PK(phoneme.G)}, mustStroke("SKPW")},
		{[]ClusterKey{PK(phoneme.AnyVowel), PK(phoneme.N), PK(phoneme.J)}, mustStroke("SKPW")},
		{[]ClusterKey{PK(phoneme.E), PK(phoneme.K), PK(phoneme.S)}, mustStroke("SKW")},
		{[]ClusterKey{PK(phoneme.E), PK(phoneme.K), PK(phoneme.S), PK(phoneme.T)}, mustStroke("STKW")},
		{[]ClusterKey{PK(phoneme.E), PK(phoneme.K), PK(phoneme.S), PK(phoneme.K)}, mustStroke("SKW")},
		{[]ClusterKey{PK(phoneme.E), PK(phoneme.K), PK(phoneme.S), PK(phoneme.P)}, mustStroke("SKPW")},
		{[]ClusterKey{PK(phoneme.AnyVowel), PK(phoneme.N)}, mustStroke("TPH")},
		{[]ClusterKey{PK(phoneme.AnyVowel), PK(phoneme.N), PK(phoneme.S)}, mustStroke("STPH")},
		{[]ClusterKey{PK(phoneme.AnyVowel), PK(phoneme.N), PK(phoneme.F)}, mustStroke("TPW")},
		{[]ClusterKey{PK(phoneme.AnyVowel), PK(phoneme.N), PK(phoneme.V)}, mustStroke("TPW")},
		{[]ClusterKey{PK(phoneme.AnyVowel), PK(phoneme.M)}, mustStroke("PH")},
	}

	return s
}

func strokePtr(s steno.Stroke) *steno.Stroke { return &s }
