// Package phoneme defines the Stenophoneme enumeration: the engine's
// internal phonemic alphabet, distinct from both IPA and steno keys.
//
// Grounded on plover_writeouts/lib/stenophoneme/Stenophoneme.py.
package phoneme

// Phoneme is a closed enumeration of stenophonemic tokens.
type Phoneme int

const (
	None Phoneme = iota

	S
	T
	K
	P
	W
	H
	R

	Z
	J
	V
	D
	G
	F
	N
	Y
	B
	M
	L

	CH
	SH
	TH

	NG

	AnyVowel

	AA
	A
	EE
	E
	II
	I
	OO
	O
	UU
	U
	AU
	OI
	OU

	AO
	AE

	Dummy
)

var names = map[Phoneme]string{
	None: "", S: "S", T: "T", K: "K", P: "P", W: "W", H: "H", R: "R",
	Z: "Z", J: "J", V: "V", D: "D", G: "G", F: "F", N: "N", Y: "Y", B: "B", M: "M", L: "L",
	CH: "CH", SH: "SH", TH: "TH", NG: "NG",
	AnyVowel: "ANY_VOWEL",
	AA:       "AA", A: "A", EE: "EE", E: "E", II: "II", I: "I", OO: "OO", O: "O", UU: "UU", U: "U", AU: "AU", OI: "OI", OU: "OU",
	AO: "AO", AE: "AE",
	Dummy: "DUMMY",
}

var byName map[string]Phoneme

func init() {
	byName = make(map[string]Phoneme, len(names))
	for p, n := range names {
		if n != "" {
			byName[n] = p
		}
	}
}

func (p Phoneme) String() string { return names[p] }

// ByName resolves the enum token from its upstream name (e.g. as
// stored in the "phono" field of a hatchery sopheme dict). Returns
// (None, false) for an empty or unrecognized name.
func ByName(name string) (Phoneme, bool) {
	p, ok := byName[name]
	return p, ok
}

// vowelSet distinguishes vowels from consonants by membership, as in
// spec.md §3: "Vowels and consonants are distinguished by membership
// in a fixed vowel set."
var vowelSet = map[Phoneme]bool{
	AnyVowel: true,
	AA: true, A: true, EE: true, E: true, II: true, I: true,
	OO: true, O: true, UU: true, U: true, AU: true, OI: true, OU: true,
	AO: true, AE: true,
}

// IsVowel reports whether p is a vowel phoneme (or the ANY_VOWEL
// wildcard).
func IsVowel(p Phoneme) bool { return vowelSet[p] }

// IsConsonant reports whether p is a consonant phoneme (excludes
// DUMMY and the empty phoneme).
func IsConsonant(p Phoneme) bool {
	return p != None && p != Dummy && !vowelSet[p]
}
