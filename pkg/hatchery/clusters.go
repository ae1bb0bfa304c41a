package hatchery

import (
	"github.com/crestwick/amphitheory/pkg/steno"
	"github.com/crestwick/amphitheory/pkg/trie"
)

// cluster is a compressed-chord opportunity discovered while walking a
// sopheme sequence, to be applied once the index it spans has been
// reached by the main builder walk. Grounded on build_trie.Cluster /
// ClusterLeft / ClusterRight.
type cluster interface {
	apply(nfa *trie.NondeterministicTrie[string], translation string, currentLeft, currentRight *int)
}

type clusterLeft struct {
	stroke  steno.Stroke
	initial entryBuilderState
}

func (c clusterLeft) apply(nfa *trie.NondeterministicTrie[string], translation string, currentLeft, currentRight *int) {
	if currentLeft == nil {
		return
	}
	if c.initial.leftConsonantSrcNode != nil {
		nfa.LinkChain(*c.initial.leftConsonantSrcNode, *currentLeft, c.stroke.Keys(), &trie.TransitionCostInfo[string]{Cost: c.initial.compiled.Costs.Cluster, Value: translation})
	}
	if c.initial.canElidePrevVowelLeft() {
		allowElidePreviousVowelUsingFirstLeftConsonant(&c.initial, c.stroke, *currentLeft, c.initial.compiled.Costs.Cluster, true)
	}
}

type clusterRight struct {
	stroke  steno.Stroke
	initial entryBuilderState
}

func (c clusterRight) apply(nfa *trie.NondeterministicTrie[string], translation string, currentLeft, currentRight *int) {
	if currentRight == nil {
		return
	}
	if c.initial.rightConsonantSrcNode != nil {
		nfa.LinkChain(*c.initial.rightConsonantSrcNode, *currentRight, c.stroke.Keys(), &trie.TransitionCostInfo[string]{Cost: c.initial.compiled.Costs.Cluster, Value: translation})
	}
	if c.initial.isFirstConsonant() {
		allowElidePreviousVowelUsingFirstRightConsonant(&c.initial, c.stroke, *currentRight, c.initial.compiled.Costs.Cluster)
	}
}
