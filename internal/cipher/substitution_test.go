package cipher

import "testing"

func TestSubstitutionIdentity(t *testing.T) {
	e := Substitution{}
	key := StringKey("ABCDEFGHIJKLMNOPQRSTUVWXYZ")
	ct, err := e.Encrypt("Hello World", key)
	if err != nil {
		t.Fatal(err)
	}
	if ct != "HELLOWORLD" {
		t.Errorf("got %q", ct)
	}
}

func TestSubstitutionRoundTrip(t *testing.T) {
	e := Substitution{}
	key := StringKey("QWERTYUIOPASDFGHJKLZXCVBNM")
	ct, err := e.Encrypt("ATTACK AT DAWN", key)
	if err != nil {
		t.Fatal(err)
	}
	pt, err := e.Decrypt(ct, key)
	if err != nil {
		t.Fatal(err)
	}
	if pt != "ATTACKATDAWN" {
		t.Errorf("got %q", pt)
	}
}

func TestSubstitutionRejectsShortKey(t *testing.T) {
	e := Substitution{}
	if _, err := e.Encrypt("HELLO", StringKey("ABCDEF")); err == nil {
		t.Error("expected error for short key")
	}
}

func TestSubstitutionRejectsDuplicateLetters(t *testing.T) {
	e := Substitution{}
	key := "AABCDEFGHIJKLMNOPQRSTUVWXY" // A repeated, Z missing
	if _, err := e.Encrypt("HELLO", StringKey(key)); err == nil {
		t.Error("expected error for non-permutation key")
	}
}
