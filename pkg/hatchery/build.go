package hatchery

import (
	"github.com/crestwick/amphitheory/pkg/phoneme"
	"github.com/crestwick/amphitheory/pkg/steno"
	"github.com/crestwick/amphitheory/pkg/theory"
	"github.com/crestwick/amphitheory/pkg/trie"
)

// clusterSite is the (group, position) a deferred cluster application
// is keyed by.
type clusterSite = Index

// AddEntry walks phonemes and adds every admissible outline-variant
// path to nfa, terminating in translation. Grounded on
// build_trie.add_entry.
func AddEntry(compiled *theory.Compiled, nfa *trie.NondeterministicTrie[string], phonemes OutlineSounds, translation string) {
	state := &entryBuilderState{
		nfa:                  nfa,
		compiled:             compiled,
		phonemes:             phonemes,
		translation:          translation,
		leftConsonantSrcNode: intPtr(trie.ROOT),
		groupIndex:           -1,
		phonemeIndex:         -1,
	}

	upcomingClusters := make(map[clusterSite][]cluster)

	for groupIndex, group := range phonemes.Nonfinals {
		state.groupIndex = groupIndex

		var vowelsSrcNode *int
		if len(group.Consonants) == 0 && !state.isFirstConsonantSet() {
			vowelsSrcNode = intPtr(nfa.FirstOrCreateChild(*state.leftConsonantSrcNode, theory.LinkerKey, &trie.TransitionCostInfo[string]{Cost: 0, Value: translation}))
		}

		for phonemeIndex := range group.Consonants {
			state.phonemeIndex = phonemeIndex

			leftConsonantNode, leftAltConsonantNode := addLeftConsonant(state)

			rightConsonantNode := state.rightConsonantSrcNode
			rightAltConsonantNode := state.lastRightAltConsonantNode
			var rtlAdjacent *[2]*int
			if !state.isFirstConsonantSet() {
				rightConsonantNode, rightAltConsonantNode, rtlAdjacent = addRightConsonant(state, leftConsonantNode)
				if rtlAdjacent != nil {
					state.rightElisionSquishSrcNode = rtlAdjacent[0]
					state.leftElisionBoundarySrcNode = rtlAdjacent[1]
				}
			}

			handleClusters(compiled, upcomingClusters, leftConsonantNode, rightConsonantNode, state, false)

			state.leftConsonantSrcNode = leftConsonantNode
			state.prevLeftConsonantNode = leftConsonantNode
			state.lastLeftAltConsonantNode = leftAltConsonantNode
			state.rightConsonantSrcNode = rightConsonantNode
			state.lastRightAltConsonantNode = rightAltConsonantNode
		}

		state.phonemeIndex = len(group.Consonants)

		state.leftElisionSquishSrcNode = state.leftConsonantSrcNode
		if vowelsSrcNode == nil {
			vowelsSrcNode = state.leftConsonantSrcNode
		}
		vowelChord := compiled.PhonemesToChordsVowels[group.Vowel.Phoneme]
		postvowelsNode := nfa.FirstOrCreateChild(*vowelsSrcNode, vowelChord.RTFCRE(), &trie.TransitionCostInfo[string]{Cost: 0, Value: translation})

		handleClusters(compiled, upcomingClusters, state.leftConsonantSrcNode, state.rightConsonantSrcNode, state, true)

		state.rightConsonantSrcNode = intPtr(postvowelsNode)
		state.leftConsonantSrcNode = intPtr(nfa.FirstOrCreateChild(postvowelsNode, theory.StrokeBoundaryKey, &trie.TransitionCostInfo[string]{Cost: 0, Value: translation}))

		if compiled.InitialVowelChord != nil && state.isFirstConsonantSet() && len(group.Consonants) == 0 {
			nfa.LinkChain(trie.ROOT, *state.leftConsonantSrcNode, compiled.InitialVowelChord.Keys(), &trie.TransitionCostInfo[string]{Cost: 0, Value: translation})
		}

		state.prevLeftConsonantNode = nil
	}

	state.groupIndex = len(phonemes.Nonfinals)
	for phonemeIndex := range phonemes.FinalConsonants {
		state.phonemeIndex = phonemeIndex

		rightConsonantNode, rightAltConsonantNode, _ := addRightConsonant(state, nil)

		handleClusters(compiled, upcomingClusters, nil, rightConsonantNode, state, false)

		state.rightConsonantSrcNode = rightConsonantNode
		state.lastRightAltConsonantNode = rightAltConsonantNode
		state.leftConsonantSrcNode = nil
	}

	if state.rightConsonantSrcNode == nil {
		// Vowel-less brief: nothing to terminate.
		return
	}
	nfa.SetTranslation(*state.rightConsonantSrcNode, translation)
}

func handleClusters(compiled *theory.Compiled, upcoming map[clusterSite][]cluster, leftConsonantNode, rightConsonantNode *int, state *entryBuilderState, considerVowels bool) {
	var found map[clusterSite]cluster
	if considerVowels {
		found = findVowelClusters(compiled, state)
	} else {
		found = findClusters(compiled, state)
	}
	for site, c := range found {
		upcoming[site] = append(upcoming[site], c)
	}

	site := clusterSite{state.groupIndex, state.phonemeIndex}
	for _, c := range upcoming[site] {
		c.apply(state.nfa, state.translation, leftConsonantNode, rightConsonantNode)
	}
}

func findClusters(compiled *theory.Compiled, state *entryBuilderState) map[clusterSite]cluster {
	out := make(map[clusterSite]cluster)
	head := trie.ROOT
	idx := clusterSite{state.groupIndex, state.phonemeIndex}
	for {
		dst, ok := compiled.ClustersTrie.Child(head, theory.PK(state.phonemes.GetConsonant(idx.Group, idx.Phoneme).Phoneme))
		if !ok {
			return out
		}
		head = dst

		if c, ok := clusterFromNode(compiled.ClustersTrie, head, state); ok {
			out[idx] = c
		}

		next, ok := state.phonemes.IncrementConsonantIndex(idx)
		if !ok {
			return out
		}
		idx = next
	}
}

func findVowelClusters(compiled *theory.Compiled, state *entryBuilderState) map[clusterSite]cluster {
	out := make(map[clusterSite]cluster)
	current := map[int]bool{trie.ROOT: true}
	idx := clusterSite{state.groupIndex, state.phonemeIndex}
	for {
		p := state.phonemes.At(idx.Group, idx.Phoneme).Phoneme
		next := make(map[int]bool)
		for node := range current {
			if dst, ok := compiled.VowelClustersTrie.Child(node, theory.PK(p)); ok {
				next[dst] = true
			}
			if phoneme.IsVowel(p) {
				if dst, ok := compiled.VowelClustersTrie.Child(node, theory.PK(phoneme.AnyVowel)); ok {
					next[dst] = true
				}
			}
		}
		if len(next) == 0 {
			return out
		}
		current = next

		for node := range current {
			if c, ok := clusterFromNode(compiled.VowelClustersTrie, node, state); ok {
				out[idx] = c
			}
		}

		nextIdx, ok := state.phonemes.IncrementIndex(idx)
		if !ok {
			return out
		}
		idx = nextIdx
	}
}

func clusterFromNode(clustersTrie *trie.Trie[theory.ClusterKey, steno.Stroke], node int, state *entryBuilderState) (cluster, bool) {
	stroke, ok := clustersTrie.Value(node)
	if !ok {
		return nil, false
	}
	snapshot := state.snapshot()
	if stroke&state.compiled.LeftBank != 0 {
		return clusterLeft{stroke: stroke, initial: snapshot}, true
	}
	return clusterRight{stroke: stroke, initial: snapshot}, true
}
