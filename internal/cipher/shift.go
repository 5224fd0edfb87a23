package cipher

import "github.com/kriptolens/classiclens/internal/textutil"

// Shift implements the Shift cipher: every letter is moved key
// positions forward through the alphabet, mod 26.
type Shift struct{}

// Encrypt shifts every letter of the prepared (space-stripped) text
// forward by key.Integer positions, mod 26.
func (Shift) Encrypt(text string, key Key) (string, error) {
	if key.Kind != KindInteger {
		return "", errWrongKeyKind("shift", KindInteger, key)
	}
	return shiftBy(text, key.Integer)
}

// Decrypt reverses Encrypt by shifting backward the same amount.
func (Shift) Decrypt(text string, key Key) (string, error) {
	if key.Kind != KindInteger {
		return "", errWrongKeyKind("shift", KindInteger, key)
	}
	return shiftBy(text, -key.Integer)
}

func shiftBy(text string, amount int) (string, error) {
	prepared := textutil.Prepare(text, true)
	k := ((amount % 26) + 26) % 26

	out := make([]byte, len(prepared))
	for i := 0; i < len(prepared); i++ {
		idx, err := textutil.CharToIndex(prepared[i])
		if err != nil {
			return "", err
		}
		c, err := textutil.IndexToChar((idx + k) % 26)
		if err != nil {
			return "", err
		}
		out[i] = c
	}
	return string(out), nil
}
