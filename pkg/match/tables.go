package match

import "github.com/crestwick/amphitheory/pkg/phoneme"

// keysymbolToGrapheme mirrors _KEYSYMBOL_TO_GRAPHEME_MAPPINGS: for a
// run of one or two consecutive keysymbol match-symbols (joined by a
// space), which spellings are plausible.
var keysymbolToGrapheme = map[string][]string{
	"p":  {"p", "pp"},
	"t":  {"t", "tt", "d", "dd"},
	"?":  {},
	"t^": {"r", "rr"},
	"k":  {"k", "kk", "c", "ck", "cc", "q", "cq"},
	"x":  {"k", "kk", "c", "ck", "cc", "q", "cq"},
	"b":  {"b", "bb"},
	"d":  {"d", "dd", "t", "tt"},
	"g":  {"g", "gg"},
	"ch": {"ch", "t", "tt"},
	"jh": {"j", "g"},
	"s":  {"s", "ss", "c", "sc", "z", "zz"},
	"z":  {"z", "zz", "s", "ss", "x"},
	"sh": {"sh", "ti", "ci", "si", "ssi"},
	"zh": {"sh", "zh", "j", "g", "si", "ssi", "ti", "ci"},
	"f":  {"f", "ph", "ff", "v", "vv"},
	"v":  {"v", "vv", "f", "ff", "ph"},
	"th": {"th"},
	"dh": {"th"},
	"h":  {"h"},
	"m":  {"m", "mm"},
	"m!": {"m", "mm"},
	"n":  {"n", "nn"},
	"n!": {"n", "nn"},
	"ng": {"n", "ng"},
	"l":  {"l", "ll"},
	"ll": {"l", "ll"},
	"lw": {"l", "ll"},
	"l!": {"l", "ll"},
	"r":  {"r", "rr"},
	"y":  {"y"},
	"w":  {"w"},
	"hw": {"w"},

	"e":   {"e", "ea"},
	"ao":  {"a"},
	"a":   {"a", "aa"},
	"ah":  {"a"},
	"oa":  {"a"},
	"aa":  {"a", "au", "aw"},
	"ar":  {"a", "aa"},
	"eh":  {"a"},
	"ou":  {"o", "oe", "oa", "ou", "ow"},
	"ouw": {"o", "oe", "oa", "ou", "ow"},
	"oou": {"o", "oe", "oa", "ou", "ow"},
	"o":   {"o", "a", "ou", "au", "ow", "aw"},
	"au":  {"o", "a", "ou", "au", "ow", "aw"},
	"oo":  {"o", "a", "ou", "au", "ow", "aw"},
	"or":  {"o", "a", "ou", "au", "ow", "aw"},
	"our": {"o", "a", "ou", "au", "ow", "aw"},
	"ii":  {"e", "i", "ee", "ea", "ie", "ei"},
	"iy":  {"i", "y", "ey", "ei", "ie"},
	"i":   {"i", "y"},
	"@r":  {"a", "o", "e", "u", "i", "y", "au", "ou"},
	"@":   {"a", "o", "e", "u", "i", "y", "au", "ou"},
	"uh":  {"u"},
	"u":   {"u", "o", "oo"},
	"uu":  {"u", "uu", "oo", "ew", "eu"},
	"iu":  {"u", "uu", "oo", "ew", "eu"},
	"ei":  {"ai", "ei", "a", "e"},
	"ee":  {"ai", "ei", "a", "e"},
	"ai":  {"i", "ie", "y", "ye"},
	"ae":  {"i", "ie", "y", "ye"},
	"aer": {"i", "ie", "y", "ye"},
	"aai": {"i", "ie", "y", "ye"},
	"oi":  {"oi", "oy"},
	"oir": {"oi", "oy"},
	"ow":  {"ou", "ow", "ao"},
	"owr": {"ou", "ow", "ao"},
	"oow": {"ou", "ow", "ao"},
	"ir":  {"e", "ee", "ea", "ie", "ei", "i", "y", "ey"},
	"@@r": {"a", "e", "i", "o", "u", "y", "au", "ou"},
	"er":  {"e"},
	"eir": {"ai", "ei", "a", "e"},
	"ur":  {"u", "o", "oo"},
	"i@":  {"ia", "ie", "io", "iu"},

	"t s": {"z"},
	"d z": {"z"},
	"k s": {"x"},
	"g z": {"x"},
}

// stenoMapping is one candidate realization of a keysymbol run: the
// phoneme it carries (phoneme.None for a literal/no-phoneme entry)
// and the chord, as a literal stroke string (strokes of a multi-stroke
// outline are separated by spaces, which are replaced with "/" before
// parsing).
type stenoMapping struct {
	Phoneme phoneme.Phoneme
	Outline string
}

// keysymbolToSteno mirrors _KEYSYMBOL_TO_STENO_MAPPINGS.
var keysymbolToSteno = map[string][]stenoMapping{
	"": {{phoneme.None, "KWR"}, {phoneme.None, "W"}},

	"p":  mappings(phoneme.P),
	"t":  concat(mappings(phoneme.T), mappings(phoneme.D)),
	"?":  {},
	"t^": concat(mappings(phoneme.T), mappings(phoneme.R)),
	"k":  mappings(phoneme.K),
	"x":  mappings(phoneme.K),
	"b":  mappings(phoneme.B),
	"d":  concat(mappings(phoneme.D), mappings(phoneme.T)),
	"g":  mappings(phoneme.G),
	"ch": mappings(phoneme.CH),
	"jh": mappings(phoneme.J),
	"s":  mappings(phoneme.S),
	"z":  mappings(phoneme.Z),
	"sh": mappings(phoneme.SH),
	"zh": concat(mappings(phoneme.SH), mappings(phoneme.J)),
	"f":  mappings(phoneme.F),
	"v":  mappings(phoneme.V),
	"th": mappings(phoneme.TH),
	"dh": mappings(phoneme.TH),
	"h":  mappings(phoneme.H),
	"m":  mappings(phoneme.M),
	"m!": mappings(phoneme.M),
	"n":  mappings(phoneme.N),
	"n!": mappings(phoneme.N),
	"ng": mappings(phoneme.NG),
	"l":  mappings(phoneme.L),
	"ll": mappings(phoneme.L),
	"lw": mappings(phoneme.L),
	"l!": mappings(phoneme.L),
	"r":  mappings(phoneme.R),
	"y":  mappings(phoneme.Y),
	"w":  mappings(phoneme.W),
	"hw": mappings(phoneme.W),

	"e":   concat(mappings(phoneme.E), mappings(phoneme.EE), mappings(phoneme.AA)),
	"E5":  concat(mappings(phoneme.E), mappings(phoneme.EE), mappings(phoneme.AA)),
	"ao":  concat(mappings(phoneme.A), mappings(phoneme.AA), mappings(phoneme.O), mappings(phoneme.U)),
	"a":   concat(mappings(phoneme.A), mappings(phoneme.AA)),
	"ah":  concat(mappings(phoneme.A), mappings(phoneme.O)),
	"oa":  concat(mappings(phoneme.A), mappings(phoneme.O), mappings(phoneme.U)),
	"aa":  concat(mappings(phoneme.O), mappings(phoneme.A)),
	"ar":  mappings(phoneme.A),
	"eh":  mappings(phoneme.A),
	"ou":  mappings(phoneme.OO),
	"ouw": mappings(phoneme.OO),
	"oou": mappings(phoneme.OO),
	"o":   mappings(phoneme.O),
	"au":  concat(mappings(phoneme.O), mappings(phoneme.A)),
	"oo":  mappings(phoneme.O),
	"or":  mappings(phoneme.O),
	"our": mappings(phoneme.O),
	"ii":  mappings(phoneme.EE),
	"iy":  mappings(phoneme.EE),
	"i":   concat(mappings(phoneme.I), mappings(phoneme.EE)),
	"@r":  anyVowelMapping,
	"@":   anyVowelMapping,
	"uh":  mappings(phoneme.U),
	"u":   concat(mappings(phoneme.U), mappings(phoneme.O), mappings(phoneme.OO)),
	"uu":  mappings(phoneme.UU),
	"iu":  mappings(phoneme.UU),
	"ei":  concat(mappings(phoneme.AA), mappings(phoneme.E)),
	"ee":  concat(mappings(phoneme.AA), mappings(phoneme.E), mappings(phoneme.A)),
	"ai":  mappings(phoneme.II),
	"ae":  mappings(phoneme.II),
	"aer": mappings(phoneme.II),
	"aai": mappings(phoneme.II),
	"oi":  mappings(phoneme.OI),
	"oir": mappings(phoneme.OI),
	"ow":  mappings(phoneme.OU),
	"owr": mappings(phoneme.OU),
	"oow": mappings(phoneme.OU),
	"ir":  mappings(phoneme.EE),
	"@@r": anyVowelMapping,
	"er":  concat(mappings(phoneme.E), mappings(phoneme.U)),
	"eir": mappings(phoneme.E),
	"ur":  concat(mappings(phoneme.U), mappings(phoneme.UU)),
	"i@":  anyVowelMapping,

	"k s":    noPhoneme("KP"),
	"g z":    noPhoneme("KP"),
	"sh n":   noPhoneme("-GS"),
	"zh n":   noPhoneme("-GS"),
	"k sh n": noPhoneme("-BGS"),
	"k zh n": noPhoneme("-BGS"),
	"m p":    noPhoneme("*PL"),
	"y uu":   mappings(phoneme.UU),
}

func mappings(p phoneme.Phoneme) []stenoMapping {
	outlines, ok := phonemeToSteno[p]
	if !ok {
		return nil
	}
	out := make([]stenoMapping, len(outlines))
	for i, o := range outlines {
		out[i] = stenoMapping{Phoneme: p, Outline: o}
	}
	return out
}

func noPhoneme(outlines ...string) []stenoMapping {
	out := make([]stenoMapping, len(outlines))
	for i, o := range outlines {
		out[i] = stenoMapping{Phoneme: phoneme.None, Outline: o}
	}
	return out
}

func concat(lists ...[]stenoMapping) []stenoMapping {
	var out []stenoMapping
	for _, l := range lists {
		out = append(out, l...)
	}
	return out
}

// phonemeToSteno mirrors _PHONEME_TO_STENO_MAPPINGS.
var phonemeToSteno = map[phoneme.Phoneme][]string{
	phoneme.B: {"PW", "-B"},
	phoneme.D: {"TK", "-D"},
	phoneme.F: {"TP", "-F"},
	phoneme.G: {"SKWR", "TKPW", "-PBLG", "-G"},
	phoneme.H: {"H"},
	phoneme.J: {"SKWR", "-PBLG", "-G"},
	phoneme.K: {"K", "-BG", "*G"},
	phoneme.L: {"HR", "-L"},
	phoneme.M: {"PH", "-PL"},
	phoneme.N: {"TPH", "-PB"},
	phoneme.P: {"P", "-P"},
	phoneme.R: {"R", "-R"},
	phoneme.S: {"S", "-S", "-F", "-Z", "KR"},
	phoneme.T: {"T", "-T", "SH", "-RB", "KH", "-FP"},
	phoneme.V: {"SR", "-F"},
	phoneme.W: {"W", "U"},
	phoneme.Y: {"KWH", "KWR"},
	phoneme.Z: {"STKPW", "-Z", "-F", "S", "-S", "KP"},

	phoneme.TH: {"TH", "*T"},
	phoneme.SH: {"SH", "-RB"},
	phoneme.CH: {"KH", "-FP"},

	phoneme.NG: {"-PB", "-PBG"},

	phoneme.AA: {"A", "AEU", "AE"},
	phoneme.A:  {"A", "AE"},
	phoneme.EE: {"AOE", "EU", "E"},
	phoneme.E:  {"E", "AEU"},
	phoneme.II: {"AOEU"},
	phoneme.I:  {"EU"},
	phoneme.OO: {"OE", "AU", "O"},
	phoneme.O:  {"AU", "O"},
	phoneme.UU: {"AOU", "U", "AO"},
	phoneme.U:  {"U", "AO"},
	phoneme.OI: {"OEU"},
	phoneme.OU: {"OU", "AO"},
}

var anyVowelMapping = []stenoMapping{
	{phoneme.A, "A"},
	{phoneme.O, "O"},
	{phoneme.E, "E"},
	{phoneme.U, "U"},
	{phoneme.U, "AO"},
	{phoneme.AA, "AE"},
	{phoneme.AU, "AU"},
	{phoneme.OO, "OE"},
	{phoneme.OU, "OU"},
	{phoneme.I, "EU"},
	{phoneme.EE, "AOE"},
	{phoneme.UU, "AOU"},
	{phoneme.AA, "AEU"},
	{phoneme.OI, "OEU"},
	{phoneme.II, "AOEU"},
}
