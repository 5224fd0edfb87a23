package cipher

import "testing"

func TestRailFenceScenario(t *testing.T) {
	e := RailFence{}
	ct, err := e.Encrypt("WEAREDISCOVEREDFLEEATONCE", IntegerKey(3))
	if err != nil {
		t.Fatal(err)
	}
	if ct != "WECRLTEERDSOEEFEAOCAIVDEN" {
		t.Errorf("got %q, want WECRLTEERDSOEEFEAOCAIVDEN", ct)
	}
	pt, err := e.Decrypt(ct, IntegerKey(3))
	if err != nil {
		t.Fatal(err)
	}
	if pt != "WEAREDISCOVEREDFLEEATONCE" {
		t.Errorf("got %q", pt)
	}
}

func TestRailFenceRejectsTooFewRails(t *testing.T) {
	e := RailFence{}
	if _, err := e.Encrypt("HELLO", IntegerKey(1)); err == nil {
		t.Error("expected error for rails < 2")
	}
}

func TestRailFenceEmpty(t *testing.T) {
	e := RailFence{}
	ct, err := e.Encrypt("", IntegerKey(3))
	if err != nil {
		t.Fatal(err)
	}
	if ct != "" {
		t.Errorf("got %q, want empty", ct)
	}
}

func TestRailFenceTwoRailsRoundTrip(t *testing.T) {
	e := RailFence{}
	ct, err := e.Encrypt("ATTACKATDAWN", IntegerKey(2))
	if err != nil {
		t.Fatal(err)
	}
	pt, err := e.Decrypt(ct, IntegerKey(2))
	if err != nil {
		t.Fatal(err)
	}
	if pt != "ATTACKATDAWN" {
		t.Errorf("got %q", pt)
	}
}
