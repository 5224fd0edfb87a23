package cipher

import "testing"

func TestCaesarDefaultShiftScenario(t *testing.T) {
	e := Caesar{}
	ct, err := e.Encrypt("HELLO", IntegerKey(DefaultCaesarShift))
	if err != nil {
		t.Fatal(err)
	}
	if ct != "KHOOR" {
		t.Errorf("got %q, want KHOOR", ct)
	}
	pt, err := e.Decrypt(ct, IntegerKey(DefaultCaesarShift))
	if err != nil {
		t.Fatal(err)
	}
	if pt != "HELLO" {
		t.Errorf("got %q, want HELLO", pt)
	}
}
