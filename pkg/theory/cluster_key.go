package theory

import (
	"github.com/crestwick/amphitheory/pkg/phoneme"
	"github.com/crestwick/amphitheory/pkg/steno"
)

// ClusterKey is one element of a cluster's lookup key: either a
// stenophoneme, or (for VOWEL_CONSCIOUS_CLUSTERS) a literal stroke.
// spec.md §3: "a VOWEL_CONSCIOUS_CLUSTERS map whose keys may interleave
// phoneme and stroke literals, and ANY_VOWEL."
type ClusterKey struct {
	isStroke bool
	phoneme  phoneme.Phoneme
	stroke   steno.Stroke
}

// PK wraps a phoneme as a cluster key element.
func PK(p phoneme.Phoneme) ClusterKey { return ClusterKey{phoneme: p} }

// SK wraps a literal stroke as a cluster key element.
func SK(s steno.Stroke) ClusterKey { return ClusterKey{isStroke: true, stroke: s} }

// Matches reports whether this key element (as stored in a cluster
// trie) matches an actual phoneme encountered while walking an
// outline. ANY_VOWEL matches only vowel phonemes (spec.md §9: "Whether
// ANY_VOWEL should match stroke-literal keys is resolved negatively");
// a stroke-literal key element never matches a phoneme walk step, it
// only participates in trie construction as itself.
func (k ClusterKey) Matches(p phoneme.Phoneme) bool {
	if k.isStroke {
		return false
	}
	if k.phoneme == phoneme.AnyVowel {
		return phoneme.IsVowel(p)
	}
	return k.phoneme == p
}
