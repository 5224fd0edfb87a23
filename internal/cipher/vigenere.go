package cipher

import (
	"fmt"

	"github.com/kriptolens/classiclens/internal/textutil"
)

// Vigenere implements the Vigenère cipher: the key is tiled over the
// prepared plaintext and added (or subtracted) letter by letter, mod 26.
type Vigenere struct{}

// Encrypt tiles key.String over the prepared text and adds each key
// letter's index to the corresponding plaintext letter's index, mod 26.
func (Vigenere) Encrypt(text string, key Key) (string, error) {
	prepared, tiledKey, err := prepareVigenere(text, key)
	if err != nil {
		return "", err
	}
	out := make([]byte, len(prepared))
	for i := 0; i < len(prepared); i++ {
		p, err := textutil.CharToIndex(prepared[i])
		if err != nil {
			return "", err
		}
		k, err := textutil.CharToIndex(tiledKey[i])
		if err != nil {
			return "", err
		}
		c, err := textutil.IndexToChar((p + k) % 26)
		if err != nil {
			return "", err
		}
		out[i] = c
	}
	return string(out), nil
}

// Decrypt reverses Encrypt by subtracting each tiled key letter.
func (Vigenere) Decrypt(text string, key Key) (string, error) {
	prepared, tiledKey, err := prepareVigenere(text, key)
	if err != nil {
		return "", err
	}
	out := make([]byte, len(prepared))
	for i := 0; i < len(prepared); i++ {
		c, err := textutil.CharToIndex(prepared[i])
		if err != nil {
			return "", err
		}
		k, err := textutil.CharToIndex(tiledKey[i])
		if err != nil {
			return "", err
		}
		p, err := textutil.IndexToChar(((c-k)%26 + 26) % 26)
		if err != nil {
			return "", err
		}
		out[i] = p
	}
	return string(out), nil
}

func prepareVigenere(text string, key Key) (prepared string, tiledKey string, err error) {
	if key.Kind != KindString {
		return "", "", errWrongKeyKind("vigenere", KindString, key)
	}
	keyLetters := textutil.Prepare(key.String, true)
	if len(keyLetters) == 0 {
		return "", "", fmt.Errorf("vigenere key must not be empty")
	}

	prepared = textutil.Prepare(text, true)
	tiled := make([]byte, len(prepared))
	for i := range tiled {
		tiled[i] = keyLetters[i%len(keyLetters)]
	}
	return prepared, string(tiled), nil
}
