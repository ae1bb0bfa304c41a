package match

import "testing"

func TestAnnotationsFromOutlineMarksAsterisk(t *testing.T) {
	keys, err := AnnotationsFromOutline("S*T/-F")
	if err != nil {
		t.Fatalf("AnnotationsFromOutline: %v", err)
	}
	var sawAsterisk, sawPlain bool
	for _, k := range keys {
		if k.Key == "-F" {
			if k.Asterisk {
				t.Errorf("expected -F (second, non-asterisk stroke) to not carry the asterisk")
			}
			sawPlain = true
		}
		if (k.Key == "S-" || k.Key == "T-") && k.Asterisk {
			sawAsterisk = true
		}
	}
	if !sawAsterisk || !sawPlain {
		t.Fatalf("expected both an asterisked and a plain key, got %+v", keys)
	}
}

func TestKeysToStrokesSplitsOnCanAppendFailure(t *testing.T) {
	strokes, err := KeysToStrokes([]string{"S-", "T-", "-F"}, []bool{false, false, false})
	if err != nil {
		t.Fatalf("KeysToStrokes: %v", err)
	}
	if len(strokes) != 1 {
		t.Fatalf("expected S-/T-/-F to combine into a single stroke, got %d: %v", len(strokes), strokes)
	}

	strokes, err = KeysToStrokes([]string{"S-", "S-"}, []bool{false, false})
	if err != nil {
		t.Fatalf("KeysToStrokes: %v", err)
	}
	if len(strokes) != 2 {
		t.Fatalf("expected a repeated left-bank key to force a new stroke, got %d: %v", len(strokes), strokes)
	}
}
