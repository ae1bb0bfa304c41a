// Package steno implements the stenotype stroke algebra: a fixed-width
// bitset over the steno key alphabet, bank splitting, and the
// can-append ordering predicate used throughout the builder and lookup
// driver.
//
// Grounded on plover_writeouts/lib/util/util.py (can_add_stroke_on,
// split_stroke_parts) and the bank masks declared in
// plover_writeouts/lib/theory/theory.py.
package steno

import (
	"errors"
	"fmt"
	"math/bits"
	"strings"
)

// Stroke is an ordered bitset over the steno key alphabet
// "@STKPWHRAO*EUFRPBLGTSDZ". Bit 0 is the virtual cycler/numeral key
// '@'; the remaining 22 bits are the physical stenotype keys, in
// steno order.
type Stroke uint32

// keyLetters is the steno-order alphabet used for RTF/CRE parsing.
// Letters repeat across banks (R, P, T, S each appear once on the
// left and once on the right); position, not rune, disambiguates.
var keyLetters = [...]rune{'@', 'S', 'T', 'K', 'P', 'W', 'H', 'R', 'A', 'O', '*', 'E', 'U', 'F', 'R', 'P', 'B', 'L', 'G', 'T', 'S', 'D', 'Z'}

// keyNames are the canonical, bank-disambiguated key names used as
// trie edge labels and returned by Keys(). Left-bank consonants carry
// a trailing '-', right-bank consonants a leading '-', matching
// Plover's internal key representation.
var keyNames = [...]string{"@", "S-", "T-", "K-", "P-", "W-", "H-", "R-", "A", "O", "*", "E", "U", "-F", "-R", "-P", "-B", "-L", "-G", "-T", "-S", "-D", "-Z"}

const numKeys = len(keyLetters)

var nameToBit map[string]int

func init() {
	nameToBit = make(map[string]int, numKeys)
	for i, n := range keyNames {
		nameToBit[n] = i
	}
}

// Bank masks, named as in theory.py. LeftBank includes the virtual
// '@' key, matching the upstream Stroke layout. Computed from bit
// indices 0-22 rather than hand-written literals to avoid drift from
// keyLetters/keyNames.
var (
	LeftBank  Stroke // @ S T K P W H R   (bits 0-7)
	Vowels    Stroke // A O E U           (bits 8,9,11,12)
	RightBank Stroke // F R P B L G T S D Z (bits 13-22)
	Asterisk  Stroke // *                 (bit 10)
)

func init() {
	for i := 0; i <= 7; i++ {
		LeftBank |= 1 << i
	}
	Vowels = 1<<8 | 1<<9 | 1<<11 | 1<<12
	Asterisk = 1 << 10
	for i := 13; i <= 22; i++ {
		RightBank |= 1 << i
	}
}

var (
	// ErrInvalidSteno is returned when a stroke or outline cannot be
	// parsed: an unknown key letter, or a right-bank letter in a
	// position that can't be disambiguated.
	ErrInvalidSteno = errors.New("invalid steno")
	// ErrEmptyOutline is the special case of ErrInvalidSteno raised
	// at query time for a zero-length outline or stroke.
	ErrEmptyOutline = fmt.Errorf("empty outline: %w", ErrInvalidSteno)
)

// FromSteno parses an RTF/CRE chord such as "SKWR", "TPH", "-F",
// "STKPWAOEU", "KWRAOEU", or "*T". Left-bank letters are assumed
// until a vowel, asterisk, or explicit '-' is seen; afterwards,
// remaining letters are resolved against the right bank.
func FromSteno(s string) (Stroke, error) {
	var out Stroke
	phase := phaseLeft

	for _, r := range s {
		if r == '-' {
			phase = phaseRight
			continue
		}
		if r == '#' {
			continue
		}

		bit, ok := bitForRune(r, phase)
		if !ok {
			return 0, fmt.Errorf("unknown steno key %q in %q: %w", r, s, ErrInvalidSteno)
		}
		out |= 1 << bit

		switch {
		case r == '@':
			// The virtual '@' key sits at the start of the left bank
			// and leaves the parse phase unchanged.
		case r == '*':
			phase = phaseVowel
		case phase == phaseLeft && isVowelRune(r):
			phase = phaseVowel
		case phase != phaseRight && !isLeftRune(r) && r != '*' && !isVowelRune(r):
			phase = phaseRight
		}
	}

	return out, nil
}

type parsePhase int

const (
	phaseLeft parsePhase = iota
	phaseVowel
	phaseRight
)

func isLeftRune(r rune) bool {
	switch r {
	case 'S', 'T', 'K', 'P', 'W', 'H', 'R':
		return true
	}
	return false
}

func isVowelRune(r rune) bool {
	switch r {
	case 'A', 'O', 'E', 'U':
		return true
	}
	return false
}

func isRightRune(r rune) bool {
	switch r {
	case 'F', 'R', 'P', 'B', 'L', 'G', 'T', 'S', 'D', 'Z':
		return true
	}
	return false
}

// bitForRune resolves a parsed rune to its bit index given the
// current parse phase, choosing the left or right occurrence of
// ambiguous letters (R, P, T, S).
func bitForRune(r rune, phase parsePhase) (int, bool) {
	if r == '@' {
		return 0, true
	}
	if r == '*' {
		return 10, true
	}
	if phase == phaseLeft && isLeftRune(r) {
		return indexOfLeft(r), true
	}
	if isVowelRune(r) {
		return indexOfVowel(r), true
	}
	if isRightRune(r) {
		return indexOfRight(r), true
	}
	if phase != phaseLeft && isLeftRune(r) {
		// Letter only exists on the left bank but phase has already
		// moved past it (e.g. stray 'H' after a vowel): invalid.
		return 0, false
	}
	return 0, false
}

func indexOfLeft(r rune) int {
	for i := 1; i <= 7; i++ {
		if keyLetters[i] == r {
			return i
		}
	}
	return -1
}

func indexOfVowel(r rune) int {
	for i := 8; i <= 12; i++ {
		if keyLetters[i] == r {
			return i
		}
	}
	return -1
}

func indexOfRight(r rune) int {
	for i := 13; i <= 22; i++ {
		if keyLetters[i] == r {
			return i
		}
	}
	return -1
}

// FromKeys builds a Stroke from canonical key names as returned by
// Keys() (e.g. "S-", "-F", "*", "@").
func FromKeys(keys []string) (Stroke, error) {
	var out Stroke
	for _, k := range keys {
		bit, ok := nameToBit[k]
		if !ok {
			return 0, fmt.Errorf("unknown key %q: %w", k, ErrInvalidSteno)
		}
		out |= 1 << bit
	}
	return out, nil
}

// Len reports how many keys are set (popcount).
func (s Stroke) Len() int {
	return bits.OnesCount32(uint32(s))
}

// Keys enumerates the set bits in steno order as canonical,
// bank-disambiguated names.
func (s Stroke) Keys() []string {
	out := make([]string, 0, s.Len())
	for i := 0; i < numKeys; i++ {
		if s&(1<<i) != 0 {
			out = append(out, keyNames[i])
		}
	}
	return out
}

// Contains reports whether s contains every key in other.
func (s Stroke) Contains(other Stroke) bool {
	return s&other == other
}

// RTFCRE renders the stroke in compact RTF/CRE form, inserting a '-'
// before the first right-bank key when the stroke has neither a vowel
// nor the asterisk (the only other separator) preceding it.
func (s Stroke) RTFCRE() string {
	var b strings.Builder
	emittedSeparator := s&(Vowels|Asterisk) != 0
	for i := 0; i < numKeys; i++ {
		if s&(1<<i) == 0 {
			continue
		}
		isRight := Stroke(1<<i)&RightBank != 0 && i >= 13
		if isRight && !emittedSeparator {
			b.WriteByte('-')
			emittedSeparator = true
		}
		b.WriteRune(keyLetters[i])
	}
	return b.String()
}

func (s Stroke) String() string { return s.RTFCRE() }

// Split partitions a stroke into its four bank sub-chords.
// Grounded on split_stroke_parts in util/util.py.
func Split(s Stroke) (left, vowels, right, asterisk Stroke) {
	return s & LeftBank, s & Vowels, s & RightBank, s & Asterisk
}

// CanAppend holds iff a is empty, b is empty, or the last
// non-asterisk key of a precedes the first non-asterisk key of b in
// steno order. Grounded on can_add_stroke_on in util/util.py.
func CanAppend(a, b Stroke) bool {
	a2 := a &^ Asterisk
	b2 := b &^ Asterisk
	if a2 == 0 || b2 == 0 {
		return true
	}
	lastA := bits.Len32(uint32(a2)) - 1   // highest set bit = last key
	firstB := bits.TrailingZeros32(uint32(b2)) // lowest set bit = first key
	return lastA < firstB
}

// ParseOutline splits a '/'-joined outline into its component
// strokes, failing with ErrInvalidSteno on any unparseable stroke and
// ErrEmptyOutline if the outline is empty.
func ParseOutline(outline string) ([]Stroke, error) {
	if strings.TrimSpace(outline) == "" {
		return nil, ErrEmptyOutline
	}
	parts := strings.Split(outline, "/")
	out := make([]Stroke, 0, len(parts))
	for _, p := range parts {
		st, err := FromSteno(p)
		if err != nil {
			return nil, err
		}
		out = append(out, st)
	}
	return out, nil
}

// JoinOutline renders a stroke sequence back into '/'-joined RTF/CRE.
func JoinOutline(strokes []Stroke) string {
	parts := make([]string, len(strokes))
	for i, s := range strokes {
		parts[i] = s.RTFCRE()
	}
	return strings.Join(parts, "/")
}
