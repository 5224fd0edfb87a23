package dispatch

import "testing"

func TestEncryptDecryptRoundTripEachMethod(t *testing.T) {
	cases := []struct {
		method string
		key    string
	}{
		{"shift", "5"},
		{"caesar", ""},
		{"substitution", "QWERTYUIOPASDFGHJKLZXCVBNM"},
		{"vigenere", "LEMON"},
		{"playfair", "PLAYFAIREXAMPLE"},
		{"rail_fence", "3"},
		{"route", "3,5,spiral_cw"},
		{"columnar_transposition", "ZEBRA"},
		{"polybius", ""},
		{"pigpen", ""},
		{"hill", "[[3,3],[2,5]]"},
	}
	for _, tc := range cases {
		ct, err := Encrypt(tc.method, "ATTACKATDAWN", tc.key)
		if err != nil {
			t.Fatalf("%s: encrypt error: %v", tc.method, err)
		}
		pt, err := Decrypt(tc.method, ct, tc.key)
		if err != nil {
			t.Fatalf("%s: decrypt error: %v", tc.method, err)
		}
		if pt == "" {
			t.Errorf("%s: expected non-empty round-tripped plaintext", tc.method)
		}
	}
}

func TestEncryptUnknownMethod(t *testing.T) {
	if _, err := Encrypt("rot13", "HELLO", ""); err == nil {
		t.Error("expected error for unknown method")
	}
}

func TestEncryptWrapsKeyParseError(t *testing.T) {
	_, err := Encrypt("shift", "HELLO", "notanumber")
	if err == nil {
		t.Fatal("expected error for non-integer shift key")
	}
	want := "encrypt failed with shift: key must be an integer, got \"notanumber\""
	if err.Error() != want {
		t.Errorf("got %q, want %q", err.Error(), want)
	}
}

func TestMethodsReturnsFixedCatalog(t *testing.T) {
	methods := Methods()
	if len(methods) != 11 {
		t.Fatalf("got %d methods, want 11", len(methods))
	}

	wantHints := map[string]struct {
		requiresKey bool
		hint        string
	}{
		"vigenere":               {true, "alphabetic key"},
		"caesar":                 {false, "integer shift, default 3"},
		"shift":                  {true, "integer shift 0–25"},
		"playfair":               {true, "alphabetic key"},
		"hill":                   {true, "JSON matrix"},
		"rail_fence":             {true, "integer ≥ 2"},
		"columnar_transposition": {true, "alphabetic key"},
		"substitution":           {true, "26-letter permutation"},
		"polybius":               {false, "alphabetic key (optional)"},
		"route":                  {true, "\"rows,cols,route\""},
		"pigpen":                 {false, "not used"},
	}
	if len(wantHints) != 11 {
		t.Fatalf("test table has %d entries, want 11", len(wantHints))
	}
	for _, m := range methods {
		want, ok := wantHints[m.ID]
		if !ok {
			t.Errorf("unexpected method id %q in catalog", m.ID)
			continue
		}
		if m.RequiresKey != want.requiresKey {
			t.Errorf("%s: RequiresKey = %v, want %v", m.ID, m.RequiresKey, want.requiresKey)
		}
		if m.Hint != want.hint {
			t.Errorf("%s: Hint = %q, want %q", m.ID, m.Hint, want.hint)
		}
		if m.DisplayName == "" {
			t.Errorf("%s: DisplayName must not be empty", m.ID)
		}
	}
}

func TestCaesarDefaultsKeyWhenAbsent(t *testing.T) {
	ct, err := Encrypt("caesar", "HELLO", "")
	if err != nil {
		t.Fatal(err)
	}
	if ct != "KHOOR" {
		t.Errorf("got %q, want KHOOR (default shift 3)", ct)
	}
}

func TestHillRejectsMalformedMatrixJSON(t *testing.T) {
	if _, err := Encrypt("hill", "HELP", "not json"); err == nil {
		t.Error("expected error for malformed matrix JSON")
	}
}

func TestHillRejectsMatrixOrderOutsideTwoOrThree(t *testing.T) {
	cases := []string{
		"[[5]]",
		"[[1,2,3,4],[5,6,7,8],[9,10,11,12],[13,14,15,16]]",
	}
	for _, key := range cases {
		if _, err := Encrypt("hill", "HELP", key); err == nil {
			t.Errorf("key %s: expected error for matrix order outside {2,3}", key)
		}
	}
}
