package cipher

import (
	"fmt"

	"github.com/kriptolens/classiclens/internal/textutil"
)

// Polybius implements the Polybius square cipher: each letter of the
// 25-letter alphabet (J folded into I) maps to a 1-indexed (row,col)
// coordinate pair, encoded as two decimal digits.
//
// The key is optional: an absent key uses the alphabet in its natural
// order; a string key primes the grid exactly as Playfair does.
type Polybius struct{}

// Encrypt maps each prepared letter to its "RC" coordinate digits and
// concatenates them with no separator.
func (Polybius) Encrypt(text string, key Key) (string, error) {
	grid, err := polybiusGrid(key)
	if err != nil {
		return "", err
	}
	prepared := foldJ(textutil.Prepare(text, true))

	out := make([]byte, 0, len(prepared)*2)
	for i := 0; i < len(prepared); i++ {
		r, c := grid.find(prepared[i])
		out = append(out, byte('1'+r), byte('1'+c))
	}
	return string(out), nil
}

// Decrypt consumes the ciphertext two digits at a time and maps each
// coordinate back to its grid letter.
func (Polybius) Decrypt(text string, key Key) (string, error) {
	grid, err := polybiusGrid(key)
	if err != nil {
		return "", err
	}
	digits := digitsOnly(text)
	if len(digits)%2 != 0 {
		return "", fmt.Errorf("polybius ciphertext must contain an even number of digits, got %d", len(digits))
	}

	out := make([]byte, 0, len(digits)/2)
	for i := 0; i < len(digits); i += 2 {
		r := int(digits[i] - '1')
		c := int(digits[i+1] - '1')
		if r < 0 || r > 4 || c < 0 || c > 4 {
			return "", fmt.Errorf("polybius coordinate (%d,%d) out of range", r+1, c+1)
		}
		out = append(out, grid.at(r, c))
	}
	return string(out), nil
}

// polybiusGrid reuses the Playfair 5x5 construction: an absent key
// primes with nothing (natural alphabet order), a string key primes
// the grid with its deduplicated, J-folded letters first.
func polybiusGrid(key Key) (*playfairMatrix, error) {
	switch key.Kind {
	case KindAbsent:
		return playfairGrid(StringKey(""))
	case KindString:
		return playfairGrid(key)
	default:
		return nil, errWrongKeyKind("polybius", KindString, key)
	}
}

func digitsOnly(text string) string {
	b := make([]byte, 0, len(text))
	for i := 0; i < len(text); i++ {
		if text[i] >= '0' && text[i] <= '9' {
			b = append(b, text[i])
		}
	}
	return string(b)
}
