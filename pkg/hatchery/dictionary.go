package hatchery

import (
	"encoding/json"
	"errors"
	"io"
	"os"

	"github.com/crestwick/amphitheory/pkg/sopheme"
	"github.com/crestwick/amphitheory/pkg/theory"
	"github.com/crestwick/amphitheory/pkg/trie"
)

// dictionaryLongestKey is the outline length cap the host contract
// advertises (spec.md §6 "longest_key = 12").
const dictionaryLongestKey = 12

// ErrMalformedLexicon is returned when a hatchery file entry is
// structurally invalid; the compiler/loader aborts on it rather than
// skipping (spec.md §7 "MalformedLexicon").
var ErrMalformedLexicon = errors.New("hatchery: malformed lexicon entry")

// Dictionary is the host-facing query surface over a compiled NFA:
// longest key, lookup, get-with-fallback and reverse lookup. Grounded
// on HatcheryDictionary.py.
type Dictionary struct {
	compiled *theory.Compiled
	nfa      *trie.NondeterministicTrie[string]
	lookup   lookupFunc
	reverse  reverseLookupFunc
}

// NewDictionary builds an empty Dictionary over compiled; call Load or
// LoadReader to populate it before querying.
func NewDictionary(compiled *theory.Compiled) *Dictionary {
	return &Dictionary{compiled: compiled, nfa: trie.NewNFA[string]()}
}

// LongestKey is the host contract's outline length cap.
func (d *Dictionary) LongestKey() int { return dictionaryLongestKey }

// Lookup resolves outline (stroke stenos) to its translation, or
// ErrNotFound / steno.ErrInvalidSteno.
func (d *Dictionary) Lookup(outline []string) (string, error) {
	if d.lookup == nil {
		return "", ErrNotFound
	}
	return d.lookup(outline)
}

// Get resolves outline, returning fallback instead of an error.
func (d *Dictionary) Get(outline []string, fallback string) string {
	v, err := d.Lookup(outline)
	if err != nil {
		return fallback
	}
	return v
}

// ReverseLookup returns every outline the compiled NFA admits for
// translation.
func (d *Dictionary) ReverseLookup(translation string) ([][]string, error) {
	if d.reverse == nil {
		return nil, nil
	}
	return d.reverse(translation), nil
}

// Load reads a hatchery JSON file from path and rebuilds the NFA.
func (d *Dictionary) Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return d.LoadReader(f)
}

// LoadReader parses the hatchery JSON format (an array of entries,
// each an array of sopheme dicts) from r, adding every entry to the
// NFA and rebuilding the lookup/reverse-lookup closures. Grounded on
// HatcheryDictionary._load.
func (d *Dictionary) LoadReader(r io.Reader) error {
	var entries [][]sopheme.Dict
	if err := json.NewDecoder(r).Decode(&entries); err != nil {
		return ErrMalformedLexicon
	}
	return d.loadEntries(entries)
}

// loadEntries adds every entry to the NFA and rebuilds the
// lookup/reverse-lookup closures. Shared by LoadReader (JSON source)
// and LoadGobReader (binary cache source).
func (d *Dictionary) loadEntries(entries [][]sopheme.Dict) error {
	for _, entryDicts := range entries {
		sophemes := make([]sopheme.Sopheme, len(entryDicts))
		for i, sd := range entryDicts {
			s, err := sopheme.FromDict(sd)
			if err != nil {
				return ErrMalformedLexicon
			}
			sophemes[i] = s
		}

		translation := sopheme.Translation(sophemes)
		phonemes := GetSophemePhonemes(d.compiled, sophemes)
		AddEntry(d.compiled, d.nfa, phonemes, translation)
	}

	d.lookup = CreateLookup(d.compiled, d.nfa)
	d.reverse = CreateReverseLookup(d.compiled, d.nfa)
	return nil
}
