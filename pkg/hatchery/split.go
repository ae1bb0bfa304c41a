package hatchery

import (
	"github.com/crestwick/amphitheory/pkg/phoneme"
	"github.com/crestwick/amphitheory/pkg/steno"
	"github.com/crestwick/amphitheory/pkg/theory"
	"github.com/crestwick/amphitheory/pkg/trie"
)

// consonantChords maps a consonant chord (left- or right-bank, plus
// the two two-phoneme skeletal chords "PHR" and "TPHR") back to the
// phoneme sequence it spells. Grounded on
// stenophoneme_util._CONSONANT_CHORDS.
func consonantChords(spec *theory.Spec) map[steno.Stroke][]phoneme.Phoneme {
	out := make(map[steno.Stroke][]phoneme.Phoneme)
	for p, chord := range spec.PhonemesToChordsLeft {
		out[chord] = []phoneme.Phoneme{p}
	}
	for p, chord := range spec.PhonemesToChordsRight {
		out[chord] = []phoneme.Phoneme{p}
	}
	out[mustStroke("PHR")] = []phoneme.Phoneme{phoneme.P, phoneme.L}
	out[mustStroke("TPHR")] = []phoneme.Phoneme{phoneme.F, phoneme.L}
	return out
}

func mustStroke(s string) steno.Stroke {
	st, err := steno.FromSteno(s)
	if err != nil {
		panic(err)
	}
	return st
}

var consonantsTrie = buildConsonantsTrie()

func buildConsonantsTrie() *trie.Trie[string, []phoneme.Phoneme] {
	t := trie.New[string, []phoneme.Phoneme]()
	for chord, phonemes := range consonantChords(theory.Default.Spec) {
		node := t.GetOrCreateChain(trie.ROOT, chord.Keys())
		t.SetValue(node, phonemes)
	}
	return t.Freeze()
}

// SplitConsonantPhonemes decomposes a same-bank consonant substroke
// into its constituent phonemes, greedily preferring the longest
// chord recognized at each position. Grounded on
// stenophoneme_util.split_consonant_phonemes.
func SplitConsonantPhonemes(consonants steno.Stroke) []phoneme.Phoneme {
	keys := consonants.Keys()

	var out []phoneme.Phoneme
	start := 0
	for start < len(keys) {
		node := trie.ROOT
		longestEnd := start
		var entry []phoneme.Phoneme

		for seek := start; seek < len(keys); seek++ {
			dst, ok := consonantsTrie.Child(node, keys[seek])
			if !ok {
				break
			}
			node = dst

			if value, ok := consonantsTrie.Value(node); ok {
				entry = value
				longestEnd = seek
			}
		}

		out = append(out, entry...)
		start = longestEnd + 1
	}
	return out
}
