package hatchery

// ConsonantVowelGroup is a run of consonant Sounds followed by the
// vowel Sound that closes the syllable. Grounded on
// build_trie.ConsonantVowelGroup.
type ConsonantVowelGroup struct {
	Consonants []Sound
	Vowel      Sound
}

// OutlineSounds is a word decomposed as an ordered list of
// consonant/vowel groups followed by a trailing consonant run,
// indexed by (group, position) (spec.md §3 "OutlineSounds"). Grounded
// on build_trie.OutlinePhonemes, generalized from bare phonemes to
// Sound the way get_sophemes.py's get_sopheme_phonemes actually
// builds it.
type OutlineSounds struct {
	Nonfinals       []ConsonantVowelGroup
	FinalConsonants []Sound
}

// GetConsonants returns the consonant run at groupIndex, where
// groupIndex == len(Nonfinals) selects the trailing final-consonant run.
func (o OutlineSounds) GetConsonants(groupIndex int) []Sound {
	if groupIndex == len(o.Nonfinals) {
		return o.FinalConsonants
	}
	return o.Nonfinals[groupIndex].Consonants
}

// GetConsonant returns the phonemeIndex-th consonant of groupIndex's run.
func (o OutlineSounds) GetConsonant(groupIndex, phonemeIndex int) Sound {
	return o.GetConsonants(groupIndex)[phonemeIndex]
}

// At indexes the outline structurally: phonemeIndex == len(consonants)
// selects the group's vowel.
func (o OutlineSounds) At(groupIndex, phonemeIndex int) Sound {
	if groupIndex == len(o.Nonfinals) {
		return o.FinalConsonants[phonemeIndex]
	}
	group := o.Nonfinals[groupIndex]
	if phonemeIndex == len(group.Consonants) {
		return group.Vowel
	}
	return group.Consonants[phonemeIndex]
}

// Index is a (group, position) coordinate into an OutlineSounds.
type Index struct {
	Group   int
	Phoneme int
}

// DecrementConsonantIndex steps to the previous consonant position,
// skipping over vowels and empty groups, returning ok=false if there
// is no previous consonant.
func (o OutlineSounds) DecrementConsonantIndex(idx Index) (Index, bool) {
	current := o.GetConsonants(idx.Group)
	idx.Phoneme--
	for idx.Phoneme == -1 {
		if idx.Group == 0 {
			return Index{}, false
		}
		idx.Group--
		current = o.GetConsonants(idx.Group)
		idx.Phoneme = len(current) - 1
	}
	return idx, true
}

// IncrementConsonantIndex steps to the next consonant position,
// skipping over vowels and empty groups, returning ok=false if there
// is no next consonant.
func (o OutlineSounds) IncrementConsonantIndex(idx Index) (Index, bool) {
	current := o.GetConsonants(idx.Group)
	idx.Phoneme++
	for idx.Phoneme == len(current) {
		if idx.Group == len(o.Nonfinals) {
			return Index{}, false
		}
		idx.Group++
		idx.Phoneme = 0
		current = o.GetConsonants(idx.Group)
	}
	return idx, true
}

// IncrementIndex steps to the next position, consonant or vowel,
// returning ok=false past the end of the outline. Grounded on
// OutlinePhonemes.increment_index, used by the vowel-conscious cluster
// search which must also step onto vowel positions.
func (o OutlineSounds) IncrementIndex(idx Index) (Index, bool) {
	current := o.GetConsonants(idx.Group)
	idx.Phoneme++

	if idx.Group == len(o.Nonfinals) && idx.Phoneme >= len(current) {
		return Index{}, false
	}
	if idx.Group < len(o.Nonfinals) && idx.Phoneme > len(current) {
		idx.Group++
		idx.Phoneme = 0
		current = o.GetConsonants(idx.Group)
	}
	if idx.Group == len(o.Nonfinals) && idx.Phoneme >= len(current) {
		return Index{}, false
	}
	return idx, true
}

// GetConsonantAfter returns the consonant following idx, if any.
func (o OutlineSounds) GetConsonantAfter(idx Index) (Sound, bool) {
	next, ok := o.IncrementConsonantIndex(idx)
	if !ok {
		return Sound{}, false
	}
	return o.GetConsonant(next.Group, next.Phoneme), true
}

// GetConsonantBefore returns the consonant preceding idx, if any.
func (o OutlineSounds) GetConsonantBefore(idx Index) (Sound, bool) {
	last, ok := o.DecrementConsonantIndex(idx)
	if !ok {
		return Sound{}, false
	}
	return o.GetConsonant(last.Group, last.Phoneme), true
}
