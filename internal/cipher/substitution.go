package cipher

import (
	"fmt"

	"github.com/kriptolens/classiclens/internal/textutil"
)

// Substitution implements the Substitution cipher: every letter maps
// to the corresponding letter of a caller-supplied 26-letter
// permutation of the alphabet.
type Substitution struct{}

// Encrypt maps each prepared plaintext letter to key[index(letter)].
func (Substitution) Encrypt(text string, key Key) (string, error) {
	if key.Kind != KindString {
		return "", errWrongKeyKind("substitution", KindString, key)
	}
	perm, err := validatePermutation(key.String)
	if err != nil {
		return "", err
	}

	prepared := textutil.Prepare(text, true)
	out := make([]byte, len(prepared))
	for i := 0; i < len(prepared); i++ {
		idx, err := textutil.CharToIndex(prepared[i])
		if err != nil {
			return "", err
		}
		out[i] = perm[idx]
	}
	return string(out), nil
}

// Decrypt inverts the permutation and maps each ciphertext letter back.
func (Substitution) Decrypt(text string, key Key) (string, error) {
	if key.Kind != KindString {
		return "", errWrongKeyKind("substitution", KindString, key)
	}
	perm, err := validatePermutation(key.String)
	if err != nil {
		return "", err
	}

	inv := make([]byte, 26)
	for i := 0; i < 26; i++ {
		origIdx, err := textutil.CharToIndex(perm[i])
		if err != nil {
			return "", err
		}
		letter, err := textutil.IndexToChar(i)
		if err != nil {
			return "", err
		}
		inv[origIdx] = letter
	}

	prepared := textutil.Prepare(text, true)
	out := make([]byte, len(prepared))
	for i := 0; i < len(prepared); i++ {
		idx, err := textutil.CharToIndex(prepared[i])
		if err != nil {
			return "", err
		}
		out[i] = inv[idx]
	}
	return string(out), nil
}

// validatePermutation extracts letters from key (upper-casing first),
// takes the first 26, and fails unless they form a permutation of the
// alphabet (spec.md §3 invariant).
func validatePermutation(key string) ([]byte, error) {
	letters := textutil.Prepare(key, true)
	if len(letters) < 26 {
		return nil, fmt.Errorf("substitution key must contain at least 26 distinct letters, got %d", len(letters))
	}
	perm := []byte(letters[:26])

	seen := make(map[byte]bool, 26)
	for _, c := range perm {
		if seen[c] {
			return nil, fmt.Errorf("substitution key has repeated letter %q: must be a permutation of A-Z", c)
		}
		seen[c] = true
	}
	return perm, nil
}
