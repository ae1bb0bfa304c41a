package match

import (
	"strings"

	"github.com/crestwick/amphitheory/pkg/align"
	"github.com/crestwick/amphitheory/pkg/phoneme"
	"github.com/crestwick/amphitheory/pkg/sopheme"
)

// cost is the triple both alignment stages minimize: fewest unmatched
// elements on the y side, then the x side, then fewest chunks (a
// prolific matching is preferred over one that closes few matches
// with large unmatched gaps). Grounded on the _Cost NamedTuple in
// match_stenophonemes.py.
type cost struct {
	unmatchedX int
	unmatchedY int
	chunks     int
}

func lessCost(a, b cost) bool {
	if a.unmatchedY != b.unmatchedY {
		return a.unmatchedY < b.unmatchedY
	}
	if a.unmatchedX != b.unmatchedX {
		return a.unmatchedX < b.unmatchedX
	}
	return a.chunks < b.chunks
}

func mismatchCost(parent *align.Cell[cost, any], incX, incY bool) cost {
	c := parent.Cost
	if incX {
		c.unmatchedX++
	}
	if incY {
		c.unmatchedY++
	}
	if parent.HasMatch {
		c.chunks++
	}
	return c
}

func matchCost(parent *align.Cell[cost, any]) cost {
	c := parent.Cost
	c.chunks++
	return c
}

var nonphoneticMarkers = []rune("*~-.<>{}#=$")
var stressMarkers = map[string]int{"*": 1, "~": 2, "-": 3}

func isNonphonetic(keysymbol string) bool {
	for _, ch := range nonphoneticMarkers {
		if strings.ContainsRune(keysymbol, ch) {
			return true
		}
	}
	return false
}

// parseTranscription splits a unilex transcription into its phonetic
// keysymbols, tracking stress markers and bracket-delimited optional
// keysymbols. Grounded on match_keysymbols_to_chars.process_input.
func parseTranscription(transcription string) []sopheme.Keysymbol {
	var out []sopheme.Keysymbol
	nextStress := 0
	for _, raw := range strings.Fields(transcription) {
		if stress, ok := stressMarkers[raw]; ok {
			nextStress = stress
		}
		if isNonphonetic(raw) {
			continue
		}
		optional := strings.HasPrefix(raw, "[") && strings.HasSuffix(raw, "]")
		symbol := strings.NewReplacer("[", "", "]", "").Replace(raw)
		out = append(out, sopheme.NewKeysymbol(symbol, nextStress, optional))
		nextStress = 0
	}
	return out
}

func joinMatchSymbols(ks []sopheme.Keysymbol) string {
	parts := make([]string, len(ks))
	for i, k := range ks {
		parts[i] = k.MatchSymbol
	}
	return strings.Join(parts, " ")
}

// keysymbolsToCharsMappings adapts keysymbolToGrapheme into the
// []rune-keyed form align.Service.Mappings requires.
var keysymbolsToCharsMappings = buildKeysymbolsToCharsMappings()

func buildKeysymbolsToCharsMappings() map[string][][]rune {
	out := make(map[string][][]rune, len(keysymbolToGrapheme))
	for key, graphemes := range keysymbolToGrapheme {
		candidates := make([][]rune, len(graphemes))
		for i, g := range graphemes {
			candidates[i] = []rune(g)
		}
		out[key] = candidates
	}
	return out
}

// keysymbolsToCharsService aligns a run of phonetic keysymbols
// against the literal characters of a translation, producing one
// Orthokeysymbol per matched (or singleton unmatched) span. Grounded
// on match_keysymbols_to_chars.
var keysymbolsToCharsService = &align.Service[sopheme.Keysymbol, rune, string, cost, any, sopheme.Orthokeysymbol]{
	Mappings:    keysymbolsToCharsMappings,
	InitialCost: cost{},
	Less:        lessCost,
	MismatchCost: func(parent *align.Cell[cost, any], incX, incY bool) cost {
		return mismatchCost(parent, incX, incY)
	},
	MatchCost: matchCost,
	KeyForX: func(xs []sopheme.Keysymbol) string {
		return joinMatchSymbols(xs)
	},
	IsMatch: func(actualY, candidateY []rune) bool {
		return string(actualY) == string(candidateY)
	},
	MatchPayload: func(xSlice []sopheme.Keysymbol, ySlice []rune, rawX []sopheme.Keysymbol, rawY []rune) any {
		return nil
	},
	BuildMatch: func(seqX []sopheme.Keysymbol, seqY []rune, start, end align.Cell[cost, any], _ *any) sopheme.Orthokeysymbol {
		return sopheme.Orthokeysymbol{
			Keysymbols: append([]sopheme.Keysymbol(nil), seqX[start.X:end.X]...),
			Chars:      string(seqY[start.Y:end.Y]),
		}
	},
}

// orthoMatchData is the payload a closed orthokeysymbol-to-chord
// match carries forward: which of the matched keys carried an
// asterisk, and which phoneme (if any) the mapping stands for.
type orthoMatchData struct {
	asteriskMatches []bool
	phoneme         phoneme.Phoneme
}

// keysymbolKeyForOrthos builds the Mappings key for a run of
// orthokeysymbols: the match-symbols of every keysymbol they carry,
// with an empty-string sentinel at either edge when the boundary
// orthokeysymbol is itself silent (zero keysymbols) — so a silent
// letter can still anchor a multi-orthokeysymbol span. Grounded on
// match_orthokeysymbols_to_chords.generate_candidate_x_key.
func keysymbolKeyForOrthos(oks []sopheme.Orthokeysymbol) string {
	var parts []string
	if len(oks) > 0 && len(oks[0].Keysymbols) == 0 {
		parts = append(parts, "")
	}
	for _, ok := range oks {
		for _, k := range ok.Keysymbols {
			parts = append(parts, k.MatchSymbol)
		}
	}
	if len(oks) > 0 && len(oks[len(oks)-1].Keysymbols) == 0 {
		parts = append(parts, "")
	}
	return strings.Join(parts, " ")
}

func buildOrthoToChordMappings() map[string][][]AsteriskableKey {
	out := make(map[string][][]AsteriskableKey, len(keysymbolToSteno))
	for key, candidates := range keysymbolToSteno {
		lists := make([][]AsteriskableKey, len(candidates))
		for i, c := range candidates {
			keys, err := AnnotationsFromOutline(strings.ReplaceAll(c.Outline, " ", "/"))
			if err != nil {
				continue
			}
			lists[i] = keys
		}
		out[key] = lists
	}
	return out
}

var orthoToChordMappings = buildOrthoToChordMappings()

// stenoMappingsFor returns the candidate (phoneme, chord) mappings for
// a keysymbol key; align.Service's Mappings only carries the chord
// half, so MatchPayload re-derives this list to recover which
// phoneme the chosen chord stands for.
func stenoMappingsFor(key string) []stenoMapping { return keysymbolToSteno[key] }

// orthoToChordsService aligns orthokeysymbols against the asterisk-
// annotated keys of an outline, closing each match into a Sopheme.
// Grounded on match_orthokeysymbols_to_chords.
var orthoToChordsService = &align.Service[sopheme.Orthokeysymbol, AsteriskableKey, string, cost, orthoMatchData, sopheme.Sopheme]{
	Mappings:    orthoToChordMappings,
	InitialCost: cost{},
	Less:        lessCost,
	MismatchCost: func(parent *align.Cell[cost, orthoMatchData], incX, incY bool) cost {
		c := parent.Cost
		if incX {
			c.unmatchedX++
		}
		if incY {
			c.unmatchedY++
		}
		if parent.HasMatch {
			c.chunks++
		}
		return c
	},
	MatchCost: func(parent *align.Cell[cost, orthoMatchData]) cost {
		c := parent.Cost
		c.chunks++
		return c
	},
	KeyForX: keysymbolKeyForOrthos,
	IsMatch: func(actualY, candidateY []AsteriskableKey) bool {
		if len(actualY) != len(candidateY) {
			return false
		}
		for i := range actualY {
			if actualY[i].Key != candidateY[i].Key {
				return false
			}
			if candidateY[i].Asterisk && !actualY[i].Asterisk {
				return false
			}
		}
		return true
	},
	MatchPayload: func(xSlice []sopheme.Orthokeysymbol, ySlice []AsteriskableKey, rawX []sopheme.Orthokeysymbol, rawY []AsteriskableKey) orthoMatchData {
		key := keysymbolKeyForOrthos(xSlice)
		ph := phoneme.None
		for _, candidate := range stenoMappingsFor(key) {
			candidateKeys, err := AnnotationsFromOutline(strings.ReplaceAll(candidate.Outline, " ", "/"))
			if err != nil || len(candidateKeys) != len(ySlice) {
				continue
			}
			match := true
			for i := range candidateKeys {
				if candidateKeys[i].Key != ySlice[i].Key {
					match = false
					break
				}
			}
			if match {
				ph = candidate.Phoneme
				break
			}
		}
		asterisks := make([]bool, len(ySlice))
		for i, k := range ySlice {
			asterisks[i] = k.Asterisk
		}
		return orthoMatchData{asteriskMatches: asterisks, phoneme: ph}
	},
	BuildMatch: func(seqX []sopheme.Orthokeysymbol, seqY []AsteriskableKey, start, end align.Cell[cost, orthoMatchData], matchData *orthoMatchData) sopheme.Sopheme {
		keys := make([]string, end.Y-start.Y)
		for i := range keys {
			keys[i] = seqY[start.Y+i].Key
		}
		var asterisks []bool
		ph := phoneme.None
		if matchData != nil {
			asterisks = matchData.asteriskMatches
			ph = matchData.phoneme
		} else {
			asterisks = make([]bool, len(keys))
		}
		strokes, err := KeysToStrokes(keys, asterisks)
		if err != nil {
			strokes = nil
		}
		return sopheme.Sopheme{
			Orthokeysymbols: append([]sopheme.Orthokeysymbol(nil), seqX[start.X:end.X]...),
			Steno:           strokes,
			Phoneme:         ph,
		}
	},
}

// Sophemes aligns a lexicon entry's translation, phonetic
// transcription and steno outline into its constituent sophemes.
// Grounded on match_sophemes (the module-level function tying both
// alignment stages together).
func Sophemes(translation, transcription, outlineSteno string) ([]sopheme.Sopheme, error) {
	keysymbols := parseTranscription(transcription)
	chars := []rune(translation)
	orthokeysymbols := align.Align(keysymbols, chars, keysymbolsToCharsService)

	keys, err := AnnotationsFromOutline(outlineSteno)
	if err != nil {
		return nil, err
	}
	return align.Align(orthokeysymbols, keys, orthoToChordsService), nil
}
