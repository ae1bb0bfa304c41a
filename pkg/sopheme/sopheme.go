// Package sopheme implements the Keysymbol / Orthokeysymbol / Sopheme
// / Sound data model from spec.md §3, plus the hatchery JSON encoding
// of a Sopheme sequence (spec.md §6.2).
//
// Grounded on plover_writeouts/lib/sopheme/Sopheme.py.
package sopheme

import (
	"regexp"
	"strings"

	"github.com/crestwick/amphitheory/pkg/phoneme"
	"github.com/crestwick/amphitheory/pkg/steno"
)

// Keysymbol is a single phonetic atom from the lexicon's
// transcription (e.g. "p", "ii", "@r"), with a stress level (0-3) and
// an optional flag for keysymbols in square brackets.
type Keysymbol struct {
	Symbol      string
	MatchSymbol string
	Stress      int
	Optional    bool
}

var matchSymbolStrip = regexp.MustCompile(`[\[\]0-9]`)

// MatchSymbolFor strips bracket and digit decoration from a raw
// keysymbol, yielding the form used for theory-table lookups.
func MatchSymbolFor(symbol string) string {
	return matchSymbolStrip.ReplaceAllString(strings.ToLower(symbol), "")
}

// NewKeysymbol fills MatchSymbol from Symbol.
func NewKeysymbol(symbol string, stress int, optional bool) Keysymbol {
	return Keysymbol{Symbol: symbol, MatchSymbol: MatchSymbolFor(symbol), Stress: stress, Optional: optional}
}

func (k Keysymbol) String() string {
	out := k.Symbol
	if k.Stress > 0 {
		out += "!" + itoa(k.Stress)
	}
	if k.Optional {
		out += "?"
	}
	return out
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	digits := []byte{}
	for n > 0 {
		digits = append([]byte{byte('0' + n%10)}, digits...)
		n /= 10
	}
	return string(digits)
}

// Orthokeysymbol pairs a sequence of keysymbols with the orthographic
// characters that produce them.
type Orthokeysymbol struct {
	Keysymbols []Keysymbol
	Chars      string
}

func (o Orthokeysymbol) String() string {
	parts := make([]string, len(o.Keysymbols))
	for i, k := range o.Keysymbols {
		parts[i] = k.String()
	}
	ks := strings.Join(parts, " ")
	if len(o.Keysymbols) > 1 {
		ks = "(" + ks + ")"
	}
	return o.Chars + "." + ks
}

// Sopheme pairs a sequence of orthokeysymbols with the chord sequence
// realizing the sound and an optional phoneme label.
type Sopheme struct {
	Orthokeysymbols []Orthokeysymbol
	Steno           []steno.Stroke
	Phoneme         phoneme.Phoneme // phoneme.None when absent
}

func (s Sopheme) String() string {
	parts := make([]string, len(s.Orthokeysymbols))
	for i, o := range s.Orthokeysymbols {
		parts[i] = o.String()
	}
	out := strings.Join(parts, " ")
	if len(s.Orthokeysymbols) > 1 && (s.Phoneme != phoneme.None || len(s.Steno) > 0) {
		out = "(" + out + ")"
	}
	switch {
	case s.Phoneme != phoneme.None:
		out += "[" + s.Phoneme.String() + "]"
	case len(s.Steno) > 0:
		out += "[[" + steno.JoinOutline(s.Steno) + "]]"
	}
	return out
}

// Translation concatenates the orthography of a sopheme sequence,
// yielding the source word. Grounded on Sopheme.get_translation.
func Translation(sophemes []Sopheme) string {
	var b strings.Builder
	for _, s := range sophemes {
		for _, o := range s.Orthokeysymbols {
			b.WriteString(o.Chars)
		}
	}
	return b.String()
}

// Sound is a (phoneme, originating sopheme) pair, the common currency
// the builder consumes after alignment (spec.md §3).
type Sound struct {
	Phoneme phoneme.Phoneme
	Sopheme *Sopheme
}
