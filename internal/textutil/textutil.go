// Package textutil provides the text-preparation primitives shared by
// every cipher engine: case normalization, alphabet-index conversion,
// padding, block splitting, and duplicate removal.
package textutil

import (
	"fmt"
	"strings"
)

// PadChar is the character used to pad text to a block-size multiple.
const PadChar = 'X'

// Prepare upper-cases text, keeps letters, keeps spaces unless
// removeSpaces is true, and drops everything else (punctuation,
// digits, symbols). Prepare is idempotent: Prepare(Prepare(x)) == Prepare(x).
func Prepare(text string, removeSpaces bool) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range strings.ToUpper(text) {
		switch {
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r)
		case r == ' ' && !removeSpaces:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// CharToIndex converts an uppercase Latin letter to its 0-25 alphabet
// index (A=0, ..., Z=25). It fails on any non-alphabetic rune.
func CharToIndex(c byte) (int, error) {
	if c < 'A' || c > 'Z' {
		return 0, fmt.Errorf("invalid character: %q", c)
	}
	return int(c - 'A'), nil
}

// IndexToChar converts a 0-25 alphabet index back to its uppercase
// Latin letter. It fails when i is outside [0,25].
func IndexToChar(i int) (byte, error) {
	if i < 0 || i > 25 {
		return 0, fmt.Errorf("invalid index: %d", i)
	}
	return byte('A' + i), nil
}

// Pad truncates text to length if it is already at least that long,
// otherwise right-pads it with pad until it reaches length.
func Pad(text string, length int, pad byte) string {
	if len(text) >= length {
		return text[:length]
	}
	var b strings.Builder
	b.Grow(length)
	b.WriteString(text)
	for b.Len() < length {
		b.WriteByte(pad)
	}
	return b.String()
}

// SplitIntoBlocks splits text into fixed-size blocks of n characters,
// right-padding the final block with PadChar if needed.
func SplitIntoBlocks(text string, n int) []string {
	blocks := make([]string, 0, (len(text)+n-1)/n)
	for i := 0; i < len(text); i += n {
		end := i + n
		if end > len(text) {
			end = len(text)
		}
		block := text[i:end]
		if len(block) < n {
			block = Pad(block, n, PadChar)
		}
		blocks = append(blocks, block)
	}
	return blocks
}

// RemoveDuplicates keeps the first occurrence of each byte in text,
// preserving order.
func RemoveDuplicates(text string) string {
	seen := make(map[byte]bool, len(text))
	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(text); i++ {
		c := text[i]
		if !seen[c] {
			seen[c] = true
			b.WriteByte(c)
		}
	}
	return b.String()
}

// RStripPad strips every trailing PadChar from text. Used by the
// block ciphers whose decrypt path reverses a right-pad; it is lossy
// for plaintexts that legitimately end in PadChar.
func RStripPad(text string) string {
	return strings.TrimRight(text, string(PadChar))
}
