package hatchery

import (
	"errors"

	"github.com/crestwick/amphitheory/pkg/steno"
	"github.com/crestwick/amphitheory/pkg/theory"
	"github.com/crestwick/amphitheory/pkg/trie"
)

// ErrNotFound is returned when an outline has no admitted translation
// (spec.md §7).
var ErrNotFound = errors.New("hatchery: outline not found")

// lookupFunc is the closure create_lookup_for returns in the original:
// given an outline's stroke stenos, the translation chosen by cycler
// and asterisk policy.
type lookupFunc func(strokeStenos []string) (string, error)

// CreateLookup builds the lookup closure over nfa. Grounded on
// build_lookup.create_lookup_for.
func CreateLookup(compiled *theory.Compiled, nfa *trie.NondeterministicTrie[string]) lookupFunc {
	return func(strokeStenos []string) (string, error) {
		current := trie.NewFrontier()
		nVariation := 0
		var asterisk steno.Stroke

		for i, strokeSteno := range strokeStenos {
			stroke, err := steno.FromSteno(strokeSteno)
			if err != nil {
				return "", steno.ErrInvalidSteno
			}
			if stroke.Len() == 0 {
				return "", steno.ErrEmptyOutline
			}

			if stroke == compiled.CyclerStroke {
				nVariation++
				continue
			}
			if stroke&^compiled.AllKeys != 0 {
				return "", ErrNotFound
			}
			if _, prohibited := compiled.ProhibitedStrokes[stroke]; prohibited {
				return "", ErrNotFound
			}
			if nVariation > 0 {
				return "", ErrNotFound
			}

			if i > 0 {
				current = nfa.Advance(current, theory.StrokeBoundaryKey)
				if len(current) == 0 {
					return "", ErrNotFound
				}
			}

			left, vowels, right, asteriskBits := steno.Split(stroke)
			asterisk = asteriskBits

			if left != 0 {
				if asteriskBits != 0 {
					for _, key := range left.Keys() {
						current = nfa.Advance(current, key)
						current = trie.UnionFrontier(current, nfa.AdvanceChain(current, asteriskBits.Keys()))
						if len(current) == 0 {
							return "", ErrNotFound
						}
					}
				} else if left == compiled.LinkerChord {
					viaChord := nfa.AdvanceChain(current, left.Keys())
					viaLinker := nfa.Advance(current, theory.LinkerKey)
					current = trie.UnionFrontier(viaChord, viaLinker)
				} else {
					current = nfa.AdvanceChain(current, left.Keys())
				}
				if len(current) == 0 {
					return "", ErrNotFound
				}
			}

			if vowels != 0 {
				current = nfa.Advance(current, vowels.RTFCRE())
				if len(current) == 0 {
					return "", ErrNotFound
				}
			}

			if right != 0 {
				if asteriskBits != 0 {
					for _, key := range right.Keys() {
						current = trie.UnionFrontier(current, nfa.AdvanceChain(current, asteriskBits.Keys()))
						current = nfa.Advance(current, key)
						if len(current) == 0 {
							return "", ErrNotFound
						}
					}
				} else {
					current = nfa.AdvanceChain(current, right.Keys())
				}
				if len(current) == 0 {
					return "", ErrNotFound
				}
			}
		}

		choices := sortedChoices(nfa.TranslationsWithCosts(current))
		if len(choices) == 0 {
			return "", ErrNotFound
		}

		if asterisk == 0 {
			return nthVariation(choices, nVariation)
		}

		first := choices[0]
		for i := len(first.path) - 1; i >= 0; i-- {
			tr := first.path[i]
			if tr.HasKey(theory.StrokeBoundaryKey) {
				break
			}
			if !tr.HasKey(asterisk.RTFCRE()) {
				continue
			}
			return nthVariation(choices, nVariation)
		}

		if len(choices) > 1 {
			return nthVariation(choices, nVariation+1)
		}
		return "", ErrNotFound
	}
}

type translationChoice struct {
	value string
	cost  float64
	path  trie.Path
}

// sortedChoices orders translations ascending by cost, breaking ties
// lexicographically by the translation value itself. The source
// resolves this tie by Python dict/sort stability (insertion order);
// Go's map iteration over TranslationsWithCosts's result has no such
// order, so ties are broken on the value instead. See DESIGN.md.
func sortedChoices(byValue map[string]trie.CostPath) []translationChoice {
	out := make([]translationChoice, 0, len(byValue))
	for v, cp := range byValue {
		out = append(out, translationChoice{value: v, cost: cp.Cost, path: cp.Path})
	}
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && less(out[j], out[j-1]); j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

func less(a, b translationChoice) bool {
	if a.cost != b.cost {
		return a.cost < b.cost
	}
	return a.value < b.value
}

func nthVariation(choices []translationChoice, n int) (string, error) {
	if len(choices) == 0 {
		return "", ErrNotFound
	}
	return choices[n%len(choices)].value, nil
}
