package sopheme

import "github.com/crestwick/amphitheory/pkg/phoneme"

type shorthandKey struct {
	chars     string
	keysymbol string
	phoneme   phoneme.Phoneme
}

// shorthands mirrors _sopheme_shorthands in Sopheme.py: a sopheme
// whose single orthokeysymbol carries exactly one keysymbol, spelled
// one of a curated set of ways, renders as just its orthography
// instead of the full "chars.symbol[PHONEME]" form.
var shorthands = map[shorthandKey]struct{}{}

func addShorthand(ph phoneme.Phoneme, keysymbol string, spellings ...string) {
	for _, sp := range spellings {
		shorthands[shorthandKey{sp, keysymbol, ph}] = struct{}{}
	}
}

func init() {
	addShorthand(phoneme.P, "p", "p", "pp")
	addShorthand(phoneme.T, "t", "t", "tt")
	addShorthand(phoneme.K, "k", "k", "kk", "ck", "q")
	addShorthand(phoneme.B, "b", "b", "bb")
	addShorthand(phoneme.D, "d", "d", "dd")
	addShorthand(phoneme.G, "g", "g", "gg")
	addShorthand(phoneme.CH, "ch", "ch")
	addShorthand(phoneme.J, "jh", "j")
	addShorthand(phoneme.S, "s", "s", "ss")
	addShorthand(phoneme.Z, "z", "z", "zz")
	addShorthand(phoneme.SH, "sh", "sh", "ti", "ci", "si", "ssi")
	addShorthand(phoneme.F, "f", "f", "ff", "ph")
	addShorthand(phoneme.V, "v", "v", "vv")
	addShorthand(phoneme.H, "h", "h")
	addShorthand(phoneme.M, "m", "m", "mm")
	addShorthand(phoneme.N, "n", "n", "nn")
	addShorthand(phoneme.L, "l", "l", "ll")
	addShorthand(phoneme.R, "r", "r", "rr")
	addShorthand(phoneme.Y, "y", "y")
	addShorthand(phoneme.W, "w", "w")
}

// ShortestForm renders s using its curated shorthand spelling when it
// qualifies (a single orthokeysymbol with a single keysymbol, matching
// one of the table's (chars, keysymbol, phoneme) entries), else falls
// back to the full String() form.
func (s Sopheme) ShortestForm() string {
	if len(s.Orthokeysymbols) == 1 && len(s.Orthokeysymbols[0].Keysymbols) == 1 {
		o := s.Orthokeysymbols[0]
		key := shorthandKey{o.Chars, o.Keysymbols[0].Symbol, s.Phoneme}
		if _, ok := shorthands[key]; ok {
			return o.Chars
		}
	}
	return s.String()
}
