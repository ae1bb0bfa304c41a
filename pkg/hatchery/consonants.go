package hatchery

import (
	"github.com/crestwick/amphitheory/pkg/phoneme"
	"github.com/crestwick/amphitheory/pkg/steno"
	"github.com/crestwick/amphitheory/pkg/theory"
	"github.com/crestwick/amphitheory/pkg/trie"
)

// addLeftConsonant attaches the left-bank chord for state.consonant(),
// wiring elision and alt-consonant continuations, and returns the new
// left-consonant node together with its alt-consonant node (if any).
// Grounded on build_trie._add_left_consonant.
func addLeftConsonant(state *entryBuilderState) (*int, *int) {
	if state.leftConsonantSrcNode == nil {
		panic("hatchery: addLeftConsonant with no left consonant source")
	}

	leftStroke := state.compiled.PhonemesToChordsLeft[state.consonant().Phoneme]
	leftKeys := leftStroke.Keys()

	leftNode := intPtr(state.nfa.FirstOrCreateChain(*state.leftConsonantSrcNode, leftKeys, costInfo(0, state.translation)))
	if state.leftElisionBoundarySrcNode != nil {
		state.nfa.LinkChain(*state.leftElisionBoundarySrcNode, *leftNode, leftKeys, costInfo(0, state.translation))
	}
	if state.lastLeftAltConsonantNode != nil {
		extra := 0.0
		if state.isFirstConsonant() {
			extra = state.compiled.Costs.VowelElision
		}
		state.nfa.LinkChain(*state.lastLeftAltConsonantNode, *leftNode, leftKeys, costInfo(state.compiled.Costs.AltConsonant+extra, state.translation))
	}

	if state.canElidePrevVowelLeft() {
		allowElidePreviousVowelUsingFirstLeftConsonant(state, leftStroke, *leftNode, 0, true)
	}

	leftAltNode := addLeftAltConsonant(state, *leftNode)

	return leftNode, leftAltNode
}

func addLeftAltConsonant(state *entryBuilderState, leftConsonantNode int) *int {
	altStroke, hasAlt := state.compiled.PhonemesToChordsLeftAlt[state.consonant().Phoneme]
	if state.leftConsonantSrcNode == nil || !hasAlt {
		return nil
	}
	leftStroke := state.compiled.PhonemesToChordsLeft[state.consonant().Phoneme]

	shouldUseAltFromPrev := true
	if last, ok := state.lastConsonant(); ok {
		if rightChord, inRight := state.compiled.PhonemesToChordsRight[last.Phoneme]; inRight {
			shouldUseAltFromPrev = steno.CanAppend(rightChord, leftStroke) || !steno.CanAppend(rightChord, altStroke)
		} else {
			shouldUseAltFromPrev = false
		}
	}
	shouldUseAltFromNext := true
	if next, ok := state.nextConsonant(); ok {
		if rightChord, inRight := state.compiled.PhonemesToChordsRight[next.Phoneme]; inRight {
			shouldUseAltFromNext = steno.CanAppend(leftStroke, rightChord) || !steno.CanAppend(altStroke, rightChord)
		} else {
			shouldUseAltFromNext = false
		}
	}
	if shouldUseAltFromPrev && shouldUseAltFromNext {
		return nil
	}

	altKeys := altStroke.Keys()

	altNode := intPtr(state.nfa.FirstOrCreateChain(*state.leftConsonantSrcNode, altKeys, costInfo(state.compiled.Costs.AltConsonant, state.translation)))
	if state.leftElisionBoundarySrcNode != nil {
		state.nfa.LinkChain(*state.leftElisionBoundarySrcNode, *altNode, altKeys, costInfo(0, state.translation))
	}
	if state.lastLeftAltConsonantNode != nil {
		extra := 0.0
		if state.isFirstConsonant() {
			extra = state.compiled.Costs.VowelElision
		}
		state.nfa.LinkChain(*state.lastLeftAltConsonantNode, *altNode, altKeys, costInfo(state.compiled.Costs.AltConsonant+extra, state.translation))
	}

	if state.canElidePrevVowelLeft() {
		// The main left-consonant node still accepts the elision
		// (skipping the stroke boundary is fine with the main
		// consonant present); the alt node accepts it too.
		allowElidePreviousVowelUsingFirstLeftConsonant(state, altStroke, leftConsonantNode, state.compiled.Costs.AltConsonant, false)
		allowElidePreviousVowelUsingFirstLeftConsonant(state, altStroke, *altNode, state.compiled.Costs.AltConsonant, true)
	}

	return altNode
}

// addRightConsonant attaches the right-bank chord for state.consonant(),
// returning the new right-consonant node, its alt-consonant node (if
// any), and the (pre, post) stroke-boundary adjacent node pair when a
// cross-stroke linker edge was opened. Grounded on
// build_trie._add_right_consonant.
func addRightConsonant(state *entryBuilderState, leftConsonantNode *int) (*int, *int, *[2]*int) {
	rightStroke, hasRight := state.compiled.PhonemesToChordsRight[state.consonant().Phoneme]
	if state.rightConsonantSrcNode == nil || !hasRight {
		return nil, nil, nil
	}
	rightKeys := rightStroke.Keys()

	rightNode := intPtr(state.nfa.FirstOrCreateChain(*state.rightConsonantSrcNode, rightKeys, costInfo(0, state.translation)))

	if state.lastRightAltConsonantNode != nil {
		extra := 0.0
		if state.isFirstConsonant() {
			extra = state.compiled.Costs.VowelElision
		}
		state.nfa.LinkChain(*state.lastRightAltConsonantNode, *rightNode, rightKeys, costInfo(extra, state.translation))
	}

	canUseMainPrev := true
	if last, ok := state.lastConsonant(); ok {
		if lastRight, inRight := state.compiled.PhonemesToChordsRight[last.Phoneme]; inRight {
			canUseMainPrev = steno.CanAppend(lastRight, rightStroke)
		} else {
			canUseMainPrev = false
		}
	}
	if state.prevLeftConsonantNode != nil && !canUseMainPrev {
		state.nfa.LinkChain(*state.prevLeftConsonantNode, *rightNode, rightKeys, costInfo(0, state.translation))
	}

	var preBoundary, rtlBoundary *int
	if state.rightElisionSquishSrcNode != nil {
		preBoundary = state.rightElisionSquishSrcNode
	}
	if leftConsonantNode != nil && state.consonant().Phoneme != phoneme.Dummy {
		preBoundary = rightNode
		rtlBoundary = intPtr(state.nfa.FirstOrCreateChild(*rightNode, theory.StrokeBoundaryKey, costInfo(0, state.translation)))
		state.nfa.Link(*rtlBoundary, *leftConsonantNode, theory.LinkerKey, costInfo(0, state.translation))
	}

	if state.isFirstConsonant() {
		allowElidePreviousVowelUsingFirstRightConsonant(state, rightStroke, *rightNode, 0)
	}

	rightAltNode := addRightAltConsonant(state, *rightNode)

	var adjacent *[2]*int
	if rtlBoundary != nil {
		adjacent = &[2]*int{preBoundary, rtlBoundary}
	}
	return rightNode, rightAltNode, adjacent
}

func addRightAltConsonant(state *entryBuilderState, rightConsonantNode int) *int {
	altStroke, hasAlt := state.compiled.PhonemesToChordsRightAlt[state.consonant().Phoneme]
	if state.rightConsonantSrcNode == nil || !hasAlt {
		return nil
	}
	rightStroke := state.compiled.PhonemesToChordsRight[state.consonant().Phoneme]

	shouldUseAltFromPrev := true
	if last, ok := state.lastConsonant(); ok {
		if lastRight, inRight := state.compiled.PhonemesToChordsRight[last.Phoneme]; inRight {
			shouldUseAltFromPrev = steno.CanAppend(lastRight, rightStroke) || !steno.CanAppend(lastRight, altStroke)
		} else {
			shouldUseAltFromPrev = false
		}
	}
	shouldUseAltFromNext := true
	if next, ok := state.nextConsonant(); ok {
		if nextRight, inRight := state.compiled.PhonemesToChordsRight[next.Phoneme]; inRight {
			shouldUseAltFromNext = steno.CanAppend(rightStroke, nextRight) || !steno.CanAppend(altStroke, nextRight)
		} else {
			shouldUseAltFromNext = false
		}
	}
	if shouldUseAltFromPrev && shouldUseAltFromNext {
		return nil
	}

	altKeys := altStroke.Keys()

	altNode := intPtr(state.nfa.FirstOrCreateChain(*state.rightConsonantSrcNode, altKeys, costInfo(state.compiled.Costs.AltConsonant, state.translation)))
	if state.lastRightAltConsonantNode != nil {
		extra := 0.0
		if state.isFirstConsonant() {
			extra = state.compiled.Costs.VowelElision
		}
		state.nfa.LinkChain(*state.lastRightAltConsonantNode, *altNode, altKeys, costInfo(state.compiled.Costs.AltConsonant+extra, state.translation))
	}

	if state.prevLeftConsonantNode != nil && !shouldUseAltFromPrev {
		state.nfa.LinkChain(*state.prevLeftConsonantNode, *altNode, altKeys, costInfo(0, state.translation))
	}

	if state.isFirstConsonant() {
		allowElidePreviousVowelUsingFirstRightConsonant(state, altStroke, rightConsonantNode, state.compiled.Costs.AltConsonant)
	}

	return altNode
}

func allowElidePreviousVowelUsingFirstLeftConsonant(state *entryBuilderState, phonemeSubstroke steno.Stroke, leftConsonantNode int, additionalCost float64, allowBoundaryElision bool) {
	if state.leftElisionSquishSrcNode != nil {
		state.nfa.LinkChain(*state.leftElisionSquishSrcNode, leftConsonantNode, phonemeSubstroke.Keys(), costInfo(state.compiled.Costs.VowelElision+additionalCost, state.translation))
	}
	if state.leftElisionBoundarySrcNode != nil && allowBoundaryElision {
		state.nfa.LinkChain(*state.leftElisionBoundarySrcNode, leftConsonantNode, phonemeSubstroke.Keys(), costInfo(state.compiled.Costs.VowelElision+additionalCost, state.translation))
	}
}

func allowElidePreviousVowelUsingFirstRightConsonant(state *entryBuilderState, phonemeSubstroke steno.Stroke, rightConsonantNode int, additionalCost float64) {
	if state.rightElisionSquishSrcNode != nil {
		state.nfa.LinkChain(*state.rightElisionSquishSrcNode, rightConsonantNode, phonemeSubstroke.Keys(), costInfo(state.compiled.Costs.VowelElision+additionalCost, state.translation))
	}
}

func costInfo(cost float64, translation string) *trie.TransitionCostInfo[string] {
	return &trie.TransitionCostInfo[string]{Cost: cost, Value: translation}
}
