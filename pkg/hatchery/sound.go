// Package hatchery implements the entry builder, lookup driver, reverse
// lookup, and host dictionary wrapper from spec.md §4.5-§4.7 and §6 — the
// top layer of the engine, consuming the trie substrate (pkg/trie), the
// theory spec (pkg/theory), and sophemes (pkg/sopheme, pkg/match).
//
// Grounded on plover_writeouts/lib/lookup/build_trie.py,
// lookup/build_lookup.py, lookup/build_reverse_lookup.py,
// lookup/get_sophemes.py and HatcheryDictionary.py.
package hatchery

import (
	"github.com/crestwick/amphitheory/pkg/sopheme"
)

// Sound is the common currency the builder consumes after alignment
// (spec.md §3 "Sound"); it's the same (phoneme, originating sopheme)
// pair pkg/sopheme already defines for the alignment stage.
type Sound = sopheme.Sound

// FromSopheme builds a Sound carrying s's phoneme and a pointer back to
// s itself. Grounded on Sound.from_sopheme.
func FromSopheme(s sopheme.Sopheme) Sound {
	return Sound{Phoneme: s.Phoneme, Sopheme: &s}
}
