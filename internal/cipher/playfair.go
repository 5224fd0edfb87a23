package cipher

import (
	"fmt"

	"github.com/kriptolens/classiclens/internal/textutil"
)

// playfairAlphabet is the 25-letter alphabet Playfair operates over;
// J is folded into I (spec.md §3).
const playfairAlphabet = "ABCDEFGHIKLMNOPQRSTUVWXYZ"

// Playfair implements the Playfair cipher: a 5x5 key-primed grid
// encrypts plaintext two letters (a "bigram") at a time.
type Playfair struct{}

// Encrypt builds the key grid, splits the text into bigrams, and
// shifts each pair according to the row/column/rectangle rule.
func (Playfair) Encrypt(text string, key Key) (string, error) {
	grid, err := playfairGrid(key)
	if err != nil {
		return "", err
	}
	bigrams := playfairBigrams(text)

	var out []byte
	for _, bg := range bigrams {
		r1, c1 := grid.find(bg[0])
		r2, c2 := grid.find(bg[1])
		switch {
		case r1 == r2:
			out = append(out, grid.at(r1, (c1+1)%5), grid.at(r2, (c2+1)%5))
		case c1 == c2:
			out = append(out, grid.at((r1+1)%5, c1), grid.at((r2+1)%5, c2))
		default:
			out = append(out, grid.at(r1, c2), grid.at(r2, c1))
		}
	}
	return string(out), nil
}

// Decrypt mirrors Encrypt using -1 mod 5 shifts, then strips at most
// one trailing 'X' (spec.md §4.7, §9: this is unconditional and can
// corrupt a plaintext that legitimately ends in X). Filler X letters
// that Encrypt inserted between doubled letters are not removed.
func (Playfair) Decrypt(text string, key Key) (string, error) {
	grid, err := playfairGrid(key)
	if err != nil {
		return "", err
	}
	bigrams := playfairBigrams(text)

	var out []byte
	for _, bg := range bigrams {
		r1, c1 := grid.find(bg[0])
		r2, c2 := grid.find(bg[1])
		switch {
		case r1 == r2:
			out = append(out, grid.at(r1, (c1+4)%5), grid.at(r2, (c2+4)%5))
		case c1 == c2:
			out = append(out, grid.at((r1+4)%5, c1), grid.at((r2+4)%5, c2))
		default:
			out = append(out, grid.at(r1, c2), grid.at(r2, c1))
		}
	}

	result := string(out)
	if len(result) > 1 && result[len(result)-1] == 'X' {
		result = result[:len(result)-1]
	}
	return result, nil
}

// playfairMatrix is a flattened 5x5 grid plus a position index.
type playfairMatrix struct {
	cells [25]byte
	pos   map[byte][2]int
}

func (m *playfairMatrix) at(r, c int) byte { return m.cells[r*5+c] }

func (m *playfairMatrix) find(c byte) (int, int) {
	p := m.pos[c]
	return p[0], p[1]
}

// playfairGrid builds the key-primed 5x5 Playfair matrix: dedupe the
// J-folded key, then append the remaining letters of the 25-letter
// alphabet in order.
func playfairGrid(key Key) (*playfairMatrix, error) {
	if key.Kind != KindString {
		return nil, errWrongKeyKind("playfair", KindString, key)
	}
	keyLetters := textutil.Prepare(key.String, true)
	keyLetters = foldJ(keyLetters)
	keyLetters = textutil.RemoveDuplicates(keyLetters)

	used := make(map[byte]bool, 25)
	m := &playfairMatrix{pos: make(map[byte][2]int, 25)}
	idx := 0
	place := func(c byte) {
		if used[c] {
			return
		}
		used[c] = true
		m.cells[idx] = c
		m.pos[c] = [2]int{idx / 5, idx % 5}
		idx++
	}
	for i := 0; i < len(keyLetters); i++ {
		place(keyLetters[i])
	}
	for i := 0; i < len(playfairAlphabet); i++ {
		place(playfairAlphabet[i])
	}
	if idx != 25 {
		return nil, fmt.Errorf("playfair: failed to build a complete 5x5 grid")
	}
	return m, nil
}

// playfairBigrams prepares text (J-folded), then sweeps it into pairs:
// a doubled letter inserts an 'X' and advances by one; a lone trailing
// letter is padded with 'X'.
func playfairBigrams(text string) [][2]byte {
	prepared := foldJ(textutil.Prepare(text, true))

	var bigrams [][2]byte
	i := 0
	for i < len(prepared) {
		if i+1 < len(prepared) {
			a, b := prepared[i], prepared[i+1]
			if a == b {
				bigrams = append(bigrams, [2]byte{a, 'X'})
				i++
			} else {
				bigrams = append(bigrams, [2]byte{a, b})
				i += 2
			}
		} else {
			bigrams = append(bigrams, [2]byte{prepared[i], 'X'})
			i++
		}
	}
	return bigrams
}

func foldJ(s string) string {
	b := []byte(s)
	for i := range b {
		if b[i] == 'J' {
			b[i] = 'I'
		}
	}
	return string(b)
}
