package phoneme

import "testing"

func TestByNameRoundTrip(t *testing.T) {
	cases := []Phoneme{S, T, AA, AnyVowel, Dummy, CH, AO}
	for _, p := range cases {
		name := p.String()
		got, ok := ByName(name)
		if !ok {
			t.Fatalf("ByName(%q): not found", name)
		}
		if got != p {
			t.Errorf("ByName(%q) = %v, want %v", name, got, p)
		}
	}
}

func TestByNameUnknown(t *testing.T) {
	if _, ok := ByName("NOT_A_PHONEME"); ok {
		t.Errorf("expected ByName to fail for unknown name")
	}
	if _, ok := ByName(""); ok {
		t.Errorf("expected ByName to fail for empty name")
	}
}

func TestIsVowel(t *testing.T) {
	for _, p := range []Phoneme{AA, A, EE, AO, AE, AnyVowel} {
		if !IsVowel(p) {
			t.Errorf("IsVowel(%v) = false, want true", p)
		}
	}
	for _, p := range []Phoneme{S, T, K, CH, NG, Dummy, None} {
		if IsVowel(p) {
			t.Errorf("IsVowel(%v) = true, want false", p)
		}
	}
}

func TestIsConsonant(t *testing.T) {
	for _, p := range []Phoneme{S, T, CH, NG} {
		if !IsConsonant(p) {
			t.Errorf("IsConsonant(%v) = false, want true", p)
		}
	}
	for _, p := range []Phoneme{AA, Dummy, None, AnyVowel} {
		if IsConsonant(p) {
			t.Errorf("IsConsonant(%v) = true, want false", p)
		}
	}
}
