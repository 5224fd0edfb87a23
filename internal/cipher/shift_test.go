package cipher

import "testing"

func TestShiftRoundTrip(t *testing.T) {
	e := Shift{}
	ct, err := e.Encrypt("Hello, World!", IntegerKey(7))
	if err != nil {
		t.Fatal(err)
	}
	pt, err := e.Decrypt(ct, IntegerKey(7))
	if err != nil {
		t.Fatal(err)
	}
	if pt != "HELLOWORLD" {
		t.Errorf("got %q", pt)
	}
}

func TestShiftMod26Law(t *testing.T) {
	e := Shift{}
	a, err := e.Encrypt("ATTACKATDAWN", IntegerKey(5))
	if err != nil {
		t.Fatal(err)
	}
	b, err := e.Encrypt("ATTACKATDAWN", IntegerKey(31))
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Errorf("shift by k and k+26 should match: %q vs %q", a, b)
	}
}

func TestShiftEmpty(t *testing.T) {
	e := Shift{}
	ct, err := e.Encrypt("", IntegerKey(3))
	if err != nil {
		t.Fatal(err)
	}
	if ct != "" {
		t.Errorf("got %q, want empty", ct)
	}
}

func TestShiftNegativeKey(t *testing.T) {
	e := Shift{}
	ct, err := e.Encrypt("ABC", IntegerKey(-1))
	if err != nil {
		t.Fatal(err)
	}
	if ct != "ZAB" {
		t.Errorf("got %q, want ZAB", ct)
	}
}
