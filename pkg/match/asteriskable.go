// Package match implements the two-stage alignment that turns a raw
// lexicon entry (translation, phonetic transcription, steno outline)
// into a sequence of sophemes (spec.md §4.4).
//
// Grounded on plover_writeouts/lib/match_stenophonemes.py, the most
// complete of the pack's match_* variants (stress/optional-keysymbol
// aware), and steno_annotations.py for the asterisk-carrying key
// representation the second alignment stage operates on.
package match

import (
	"strings"

	"github.com/crestwick/amphitheory/pkg/steno"
)

// AsteriskableKey is one steno key together with whether the stroke it
// came from carried the asterisk modifier.
type AsteriskableKey struct {
	Key      string
	Asterisk bool
}

func (k AsteriskableKey) String() string {
	if k.Asterisk {
		return k.Key + "(*)"
	}
	return k.Key
}

// AnnotationsFromOutline splits a "/"-separated outline into its
// individual keys, each annotated with whether its stroke carried an
// asterisk. Grounded on AsteriskableKey.annotations_from_outline.
func AnnotationsFromOutline(outlineSteno string) ([]AsteriskableKey, error) {
	if outlineSteno == "" {
		return nil, nil
	}
	var out []AsteriskableKey
	for _, part := range strings.Split(outlineSteno, "/") {
		stroke, err := steno.FromSteno(part)
		if err != nil {
			return nil, err
		}
		asterisk := stroke.Contains(steno.Asterisk)
		stroke = stroke &^ steno.Asterisk
		for _, key := range stroke.Keys() {
			out = append(out, AsteriskableKey{Key: key, Asterisk: asterisk})
		}
	}
	return out, nil
}

// KeysToStrokes regroups a flat sequence of keys (each possibly
// carrying a matched asterisk) back into strokes, starting a new
// stroke whenever the next key cannot be appended to the current one.
// Grounded on AnnotatedChord.keys_to_strokes.
func KeysToStrokes(keys []string, asteriskMatches []bool) ([]steno.Stroke, error) {
	var strokes []steno.Stroke
	current := steno.Stroke(0)
	for i, key := range keys {
		keyStroke, err := steno.FromKeys([]string{key})
		if err != nil {
			return nil, err
		}
		if i < len(asteriskMatches) && asteriskMatches[i] {
			keyStroke |= steno.Asterisk
		}
		if steno.CanAppend(current, keyStroke) {
			current |= keyStroke
		} else {
			if current.Len() > 0 {
				strokes = append(strokes, current)
			}
			current = keyStroke
		}
	}
	if current.Len() > 0 {
		strokes = append(strokes, current)
	}
	return strokes, nil
}
