package sopheme

import (
	"fmt"
	"strings"

	"github.com/crestwick/amphitheory/pkg/phoneme"
	"github.com/crestwick/amphitheory/pkg/steno"
)

// KeysymbolDict, OrthokeysymbolDict and Dict mirror the JSON shape
// produced by Sopheme.to_dict() / consumed by
// Sopheme.parse_sopheme_dict(), which is exactly the hatchery entry
// format from spec.md §6.2.
type KeysymbolDict struct {
	Symbol   string `json:"symbol"`
	Stress   int    `json:"stress"`
	Optional bool   `json:"optional"`
}

type OrthokeysymbolDict struct {
	Chars      string          `json:"chars"`
	Keysymbols []KeysymbolDict `json:"keysymbols"`
}

type Dict struct {
	Orthokeysymbols []OrthokeysymbolDict `json:"orthokeysymbols"`
	Steno           string                `json:"steno"`
	Phono           string                `json:"phono"` // phoneme name, or "" when absent
}

// ToDict renders s in the hatchery wire format.
func (s Sopheme) ToDict() Dict {
	oks := make([]OrthokeysymbolDict, len(s.Orthokeysymbols))
	for i, o := range s.Orthokeysymbols {
		kss := make([]KeysymbolDict, len(o.Keysymbols))
		for j, k := range o.Keysymbols {
			kss[j] = KeysymbolDict{Symbol: k.Symbol, Stress: k.Stress, Optional: k.Optional}
		}
		oks[i] = OrthokeysymbolDict{Chars: o.Chars, Keysymbols: kss}
	}

	phono := ""
	if s.Phoneme != phoneme.None {
		phono = s.Phoneme.String()
	}

	return Dict{
		Orthokeysymbols: oks,
		Steno:           steno.JoinOutline(s.Steno),
		Phono:           phono,
	}
}

// FromDict parses the hatchery wire format back into a Sopheme.
// Grounded on Sopheme.parse_sopheme_dict.
func FromDict(d Dict) (Sopheme, error) {
	oks := make([]Orthokeysymbol, len(d.Orthokeysymbols))
	for i, od := range d.Orthokeysymbols {
		kss := make([]Keysymbol, len(od.Keysymbols))
		for j, kd := range od.Keysymbols {
			kss[j] = NewKeysymbol(kd.Symbol, kd.Stress, kd.Optional)
		}
		oks[i] = Orthokeysymbol{Keysymbols: kss, Chars: od.Chars}
	}

	var strokes []steno.Stroke
	if strings.TrimSpace(d.Steno) != "" {
		parsed, err := steno.ParseOutline(d.Steno)
		if err != nil {
			return Sopheme{}, fmt.Errorf("sopheme steno %q: %w", d.Steno, err)
		}
		strokes = parsed
	}

	ph := phoneme.None
	if d.Phono != "" {
		if p, ok := phoneme.ByName(d.Phono); ok {
			ph = p
		}
	}

	return Sopheme{Orthokeysymbols: oks, Steno: strokes, Phoneme: ph}, nil
}
