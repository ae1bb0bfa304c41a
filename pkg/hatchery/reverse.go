package hatchery

import (
	"github.com/crestwick/amphitheory/pkg/steno"
	"github.com/crestwick/amphitheory/pkg/theory"
	"github.com/crestwick/amphitheory/pkg/trie"
)

// reverseMaxDepth bounds reverse-lookup path enumeration; 12 strokes
// times a handful of keys per stroke comfortably covers any admitted
// outline (spec.md §6 "longest_key = 12").
const reverseMaxDepth = 64

// reverseLookupFunc is the closure create_reverse_lookup_for returns:
// every outline (as RTF/CRE strokes) the NFA admits for a translation.
type reverseLookupFunc func(translation string) [][]string

// CreateReverseLookup builds the reverse-lookup closure over nfa,
// reassembling each emitted key sequence into strokes via repeated
// can_append checks at stroke-boundary markers, discarding sequences
// that fail to reassemble. Grounded on build_reverse_lookup.create_reverse_lookup_for.
func CreateReverseLookup(compiled *theory.Compiled, nfa *trie.NondeterministicTrie[string]) reverseLookupFunc {
	search := nfa.BuildReverseLookup(reverseMaxDepth)

	return func(translation string) [][]string {
		var valid [][]string

		for _, seq := range search(translation) {
			var outline []string
			var latest steno.Stroke
			invalid := false

			for _, key := range seq {
				if key == theory.StrokeBoundaryKey {
					outline = append(outline, latest.RTFCRE())
					latest = 0
					continue
				}

				var keyStroke steno.Stroke
				if key == theory.LinkerKey {
					keyStroke = compiled.LinkerChord
				} else {
					// Edge labels are single key names ("S-", "-F", "*")
					// or a whole vowel chord ("AOEU"); both parse as
					// RTF/CRE.
					var err error
					keyStroke, err = steno.FromSteno(key)
					if err != nil {
						invalid = true
						break
					}
				}

				if steno.CanAppend(latest, keyStroke) {
					latest |= keyStroke
				} else {
					invalid = true
					break
				}
			}

			if !invalid {
				outline = append(outline, latest.RTFCRE())
				valid = append(valid, outline)
			}
		}

		return valid
	}
}
