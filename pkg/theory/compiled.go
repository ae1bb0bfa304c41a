package theory

import (
	"github.com/crestwick/amphitheory/pkg/phoneme"
	"github.com/crestwick/amphitheory/pkg/steno"
	"github.com/crestwick/amphitheory/pkg/trie"
)

// Compiled bundles a Spec with its two cluster tries, derived once at
// construction and frozen (spec.md §3 Lifecycle, §9 "Cluster
// discovery"). Grounded on _build_clusters_trie/_build_vowel_clusters_trie
// in lookup/build_trie.py.
type Compiled struct {
	*Spec
	ClustersTrie      *trie.Trie[ClusterKey, steno.Stroke]
	VowelClustersTrie *trie.Trie[ClusterKey, steno.Stroke]

	// ChordsToPhonemesVowels is the inverse of PhonemesToChordsVowels,
	// used by the outline-to-sounds grouping step (get_outline_phonemes)
	// to recover which vowel phoneme a vowel chord stands for.
	ChordsToPhonemesVowels map[steno.Stroke]phoneme.Phoneme
}

// Compile derives the frozen cluster tries from spec.
func Compile(spec *Spec) *Compiled {
	chordsToPhonemes := make(map[steno.Stroke]phoneme.Phoneme, len(spec.PhonemesToChordsVowels))
	for p, chord := range spec.PhonemesToChordsVowels {
		chordsToPhonemes[chord] = p
	}

	return &Compiled{
		Spec:                   spec,
		ClustersTrie:           buildClusterTrie(spec.Clusters),
		VowelClustersTrie:      buildClusterTrie(spec.VowelConsciousClusters),
		ChordsToPhonemesVowels: chordsToPhonemes,
	}
}

func buildClusterTrie(entries []ClusterEntry) *trie.Trie[ClusterKey, steno.Stroke] {
	t := trie.New[ClusterKey, steno.Stroke]()
	for _, e := range entries {
		node := t.GetOrCreateChain(trie.ROOT, e.Keys)
		t.SetValue(node, e.Chord)
	}
	return t.Freeze()
}

// Default is the compiled "amphitheory" default theory, built once at
// package init so every caller shares the same frozen cluster tries.
var Default = Compile(DefaultSpec())
