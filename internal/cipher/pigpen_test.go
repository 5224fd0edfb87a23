package cipher

import "testing"

func TestPigpenRoundTrip(t *testing.T) {
	e := Pigpen{}
	ct, err := e.Encrypt("HELLO WORLD", AbsentKey())
	if err != nil {
		t.Fatal(err)
	}
	pt, err := e.Decrypt(ct, AbsentKey())
	if err != nil {
		t.Fatal(err)
	}
	if pt != "HELLOWORLD" {
		t.Errorf("got %q", pt)
	}
}

func TestPigpenKnownTokens(t *testing.T) {
	e := Pigpen{}
	ct, err := e.Encrypt("A", AbsentKey())
	if err != nil {
		t.Fatal(err)
	}
	if ct != "G1-TL" {
		t.Errorf("got %q, want G1-TL", ct)
	}
	ct, err = e.Encrypt("Z", AbsentKey())
	if err != nil {
		t.Fatal(err)
	}
	if ct != "GX-W-D" {
		t.Errorf("got %q, want GX-W-D", ct)
	}
}

func TestPigpenTokensDelimitedByPipe(t *testing.T) {
	e := Pigpen{}
	ct, err := e.Encrypt("AB", AbsentKey())
	if err != nil {
		t.Fatal(err)
	}
	if ct != "G1-TL|G1-TM" {
		t.Errorf("got %q, want G1-TL|G1-TM", ct)
	}
}

func TestPigpenDecryptMapsUnknownTokenToQuestionMark(t *testing.T) {
	e := Pigpen{}
	pt, err := e.Decrypt("G1-TL|NOT-A-TOKEN", AbsentKey())
	if err != nil {
		t.Fatal(err)
	}
	if pt != "A?" {
		t.Errorf("got %q, want A?", pt)
	}
}

func TestPigpenAllLettersBijective(t *testing.T) {
	e := Pigpen{}
	ct, err := e.Encrypt("ABCDEFGHIJKLMNOPQRSTUVWXYZ", AbsentKey())
	if err != nil {
		t.Fatal(err)
	}
	pt, err := e.Decrypt(ct, AbsentKey())
	if err != nil {
		t.Fatal(err)
	}
	if pt != "ABCDEFGHIJKLMNOPQRSTUVWXYZ" {
		t.Errorf("got %q", pt)
	}
}
