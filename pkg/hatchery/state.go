package hatchery

import (
	"github.com/crestwick/amphitheory/pkg/theory"
	"github.com/crestwick/amphitheory/pkg/trie"
)

// entryBuilderState carries the cursors the entry builder threads
// through a sopheme/outline walk (spec.md §4.5 "State carried across
// iterations"). Node references use *int the way the original uses
// Optional[int]; nil means "no such node yet". Grounded on
// build_trie.EntryBuilderState.
type entryBuilderState struct {
	nfa         *trie.NondeterministicTrie[string]
	compiled    *theory.Compiled
	phonemes    OutlineSounds
	translation string

	// The node from which the next left consonant chord will be attached.
	leftConsonantSrcNode *int
	// The node from which the next right consonant chord will be attached.
	rightConsonantSrcNode *int
	// The latest node constructed by adding the alternate chord for a
	// left/right consonant.
	lastLeftAltConsonantNode  *int
	lastRightAltConsonantNode *int

	// The node constructed by adding the previous left consonant; nil
	// if the previous phoneme was a vowel.
	prevLeftConsonantNode *int

	// Elision sources: squish (same-bank back-to-back consonants) and
	// boundary (across the stroke break).
	leftElisionSquishSrcNode   *int
	rightElisionSquishSrcNode  *int
	leftElisionBoundarySrcNode *int

	groupIndex   int
	phonemeIndex int
}

func intPtr(n int) *int { return &n }

func (s *entryBuilderState) isFirstConsonantSet() bool { return s.groupIndex == 0 }
func (s *entryBuilderState) isFirstConsonant() bool    { return s.phonemeIndex == 0 }

func (s *entryBuilderState) consonant() Sound {
	return s.phonemes.GetConsonant(s.groupIndex, s.phonemeIndex)
}

func (s *entryBuilderState) nextConsonant() (Sound, bool) {
	return s.phonemes.GetConsonantAfter(Index{s.groupIndex, s.phonemeIndex})
}

func (s *entryBuilderState) lastConsonant() (Sound, bool) {
	return s.phonemes.GetConsonantBefore(Index{s.groupIndex, s.phonemeIndex})
}

func (s *entryBuilderState) nPreviousSyllableConsonants() int {
	if s.groupIndex > 0 {
		return len(s.phonemes.GetConsonants(s.groupIndex - 1))
	}
	return 0
}

func (s *entryBuilderState) canElidePrevVowelLeft() bool {
	return !s.isFirstConsonantSet() && s.isFirstConsonant() && s.nPreviousSyllableConsonants() > 0
}

// snapshot copies the state by value, for capture inside a deferred
// cluster application (dataclasses.replace(state) in the original).
func (s *entryBuilderState) snapshot() entryBuilderState { return *s }
