package cipher

import (
	"fmt"

	"github.com/kriptolens/classiclens/internal/matrixutil"
	"github.com/kriptolens/classiclens/internal/textutil"
)

// Hill implements the Hill cipher: plaintext is split into n-letter
// blocks (n = key matrix order), each treated as a column vector of
// alphabet indices and multiplied by the key matrix mod 26.
type Hill struct{}

// Encrypt pads the prepared text to a multiple of the matrix order,
// and transforms each block by key*vector mod 26.
func (Hill) Encrypt(text string, key Key) (string, error) {
	matrix, err := hillMatrix(key)
	if err != nil {
		return "", err
	}
	n := len(matrix)
	prepared := textutil.Prepare(text, true)
	blocks := textutil.SplitIntoBlocks(prepared, n)

	var out []byte
	for _, block := range blocks {
		vec, err := lettersToVector(block)
		if err != nil {
			return "", err
		}
		result := matrixutil.MultiplyVector(matrix, vec)
		for _, v := range result {
			c, err := textutil.IndexToChar(v)
			if err != nil {
				return "", err
			}
			out = append(out, c)
		}
	}
	return string(out), nil
}

// Decrypt inverts the key matrix mod 26 and applies the same
// block-by-block transform, then strips trailing pad letters.
func (Hill) Decrypt(text string, key Key) (string, error) {
	matrix, err := hillMatrix(key)
	if err != nil {
		return "", err
	}
	inverse, err := matrixutil.InverseMod26(matrix)
	if err != nil {
		return "", fmt.Errorf("hill: key matrix is not invertible mod 26: %w", err)
	}
	n := len(matrix)
	prepared := textutil.Prepare(text, true)
	if len(prepared)%n != 0 {
		return "", fmt.Errorf("hill: ciphertext length %d is not a multiple of key order %d", len(prepared), n)
	}
	blocks := textutil.SplitIntoBlocks(prepared, n)

	var out []byte
	for _, block := range blocks {
		vec, err := lettersToVector(block)
		if err != nil {
			return "", err
		}
		result := matrixutil.MultiplyVector(inverse, vec)
		for _, v := range result {
			c, err := textutil.IndexToChar(v)
			if err != nil {
				return "", err
			}
			out = append(out, c)
		}
	}
	return textutil.RStripPad(string(out)), nil
}

// hillMatrix validates the key is a non-empty square matrix.
func hillMatrix(key Key) ([][]int, error) {
	if key.Kind != KindMatrix {
		return nil, errWrongKeyKind("hill", KindMatrix, key)
	}
	m := key.Matrix
	n := len(m)
	if n == 0 {
		return nil, fmt.Errorf("hill: key matrix must not be empty")
	}
	for _, row := range m {
		if len(row) != n {
			return nil, fmt.Errorf("hill: key matrix must be square, got %d rows and a row of length %d", n, len(row))
		}
	}
	return m, nil
}

func lettersToVector(block string) ([]int, error) {
	vec := make([]int, len(block))
	for i := 0; i < len(block); i++ {
		idx, err := textutil.CharToIndex(block[i])
		if err != nil {
			return nil, fmt.Errorf("hill: %w", err)
		}
		vec[i] = idx
	}
	return vec, nil
}
