package hatchery

import (
	"errors"
	"strings"

	"github.com/crestwick/amphitheory/pkg/phoneme"
	"github.com/crestwick/amphitheory/pkg/sopheme"
	"github.com/crestwick/amphitheory/pkg/steno"
	"github.com/crestwick/amphitheory/pkg/theory"
)

// ErrUnbuildable is returned when an entry cannot be compiled, e.g. an
// outline carries an asterisk the builder has no model for (spec.md §7).
var ErrUnbuildable = errors.New("hatchery: entry unbuildable")

// diphthongGlide returns the glide consonant Sound to insert when two
// vowels occur back to back with no intervening consonant, per
// DIPHTHONG_TRANSITIONS_BY_FIRST_VOWEL, or ok=false if none applies.
func diphthongGlide(compiled *theory.Compiled, groups []ConsonantVowelGroup, consonantsSoFar int) (Sound, bool) {
	if len(groups) == 0 || consonantsSoFar != 0 {
		return Sound{}, false
	}
	prevVowel := groups[len(groups)-1].Vowel.Phoneme
	glide, ok := compiled.DiphthongTransitionsByFirstVowel[prevVowel]
	if !ok {
		return Sound{}, false
	}
	return Sound{Phoneme: glide}, true
}

// GetOutlinePhonemes groups a raw outline into OutlineSounds directly
// from its chords, with no sopheme-level sound attached. Returns
// ErrUnbuildable if any stroke carries an asterisk (spec.md §4.4).
// Grounded on get_sophemes.get_outline_phonemes.
func GetOutlinePhonemes(compiled *theory.Compiled, outline []steno.Stroke) (OutlineSounds, error) {
	var groups []ConsonantVowelGroup
	var current []Sound

	for _, stroke := range outline {
		left, vowels, right, asterisk := steno.Split(stroke)
		if asterisk != 0 {
			return OutlineSounds{}, ErrUnbuildable
		}

		for _, p := range SplitConsonantPhonemes(left) {
			current = append(current, Sound{Phoneme: p})
		}

		if vowels != 0 {
			if glide, ok := diphthongGlide(compiled, groups, len(current)); ok {
				current = append(current, glide)
			}
			vowelPhoneme := compiled.ChordsToPhonemesVowels[vowels]
			groups = append(groups, ConsonantVowelGroup{Consonants: current, Vowel: Sound{Phoneme: vowelPhoneme}})
			current = nil
		}

		for _, p := range SplitConsonantPhonemes(right) {
			current = append(current, Sound{Phoneme: p})
		}
	}

	return OutlineSounds{Nonfinals: groups, FinalConsonants: current}, nil
}

// hasVowelStroke reports whether any stroke in steno carries a vowel
// key in its textual form, mirroring the substring scan in
// get_sopheme_phonemes (`any(key in stroke.rtfcre for key in "AOEU")`).
func hasVowelStroke(strokes []steno.Stroke) bool {
	for _, s := range strokes {
		rtfcre := s.RTFCRE()
		if strings.ContainsAny(rtfcre, "AOEU") {
			return true
		}
	}
	return false
}

// GetSophemePhonemes groups an already-aligned sopheme sequence into
// OutlineSounds, attaching each Sound back to the sopheme it came
// from. Grounded on get_sophemes.get_sopheme_phonemes.
func GetSophemePhonemes(compiled *theory.Compiled, sophemes []sopheme.Sopheme) OutlineSounds {
	var groups []ConsonantVowelGroup
	var current []Sound

	for _, s := range sophemes {
		switch {
		case s.Phoneme == phoneme.None && len(s.Steno) == 0:
			continue

		case phoneme.IsVowel(s.Phoneme):
			if glide, ok := diphthongGlide(compiled, groups, len(current)); ok {
				current = append(current, glide)
			}
			groups = append(groups, ConsonantVowelGroup{Consonants: current, Vowel: FromSopheme(s)})
			current = nil

		case hasVowelStroke(s.Steno):
			if glide, ok := diphthongGlide(compiled, groups, len(current)); ok {
				current = append(current, glide)
			}
			var vowelChord steno.Stroke
			for _, stroke := range s.Steno {
				_, vowels, _, _ := steno.Split(stroke)
				if vowels != 0 {
					vowelChord = vowels
					break
				}
			}
			vowelPhoneme := compiled.ChordsToPhonemesVowels[vowelChord]
			groups = append(groups, ConsonantVowelGroup{Consonants: current, Vowel: Sound{Phoneme: vowelPhoneme, Sopheme: &s}})
			current = nil

		case s.Phoneme != phoneme.None:
			current = append(current, FromSopheme(s))

		default:
			for _, stroke := range s.Steno {
				for _, p := range SplitConsonantPhonemes(stroke) {
					current = append(current, Sound{Phoneme: p, Sopheme: &s})
				}
			}
		}
	}

	return OutlineSounds{Nonfinals: groups, FinalConsonants: current}
}
