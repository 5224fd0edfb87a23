package cipher

import (
	"sort"

	"github.com/kriptolens/classiclens/internal/textutil"
)

// ColumnarTransposition implements the columnar transposition cipher:
// plaintext fills a grid row-major under a keyword, and columns are
// read out in the keyword's alphabetical order.
type ColumnarTransposition struct{}

// Encrypt pads prepared text to a multiple of the key length, fills a
// rows x len(key) grid row-major, and concatenates columns in the
// order their key letters sort alphabetically (ties broken by the
// original column position).
func (ColumnarTransposition) Encrypt(text string, key Key) (string, error) {
	order, err := columnOrder(key)
	if err != nil {
		return "", err
	}
	cols := len(order)
	prepared := textutil.Prepare(text, true)
	rows := (len(prepared) + cols - 1) / cols
	if rows == 0 {
		rows = 1
	}
	padded := textutil.Pad(prepared, rows*cols, textutil.PadChar)

	out := make([]byte, 0, len(padded))
	for _, c := range order {
		for r := 0; r < rows; r++ {
			out = append(out, padded[r*cols+c])
		}
	}
	return string(out), nil
}

// Decrypt rebuilds the grid column-by-column in keyword order, reads
// it back row-major, and strips ALL trailing pad characters.
//
// This final strip is unconditional, matching the behavior of the
// source this module is grounded on (spec.md §9 asks to preserve this
// quirk rather than silently fix it): a plaintext that legitimately
// ends in the pad character loses those trailing letters on decrypt.
func (ColumnarTransposition) Decrypt(text string, key Key) (string, error) {
	order, err := columnOrder(key)
	if err != nil {
		return "", err
	}
	cols := len(order)
	prepared := textutil.Prepare(text, true)
	if len(prepared) == 0 {
		return "", nil
	}
	rows := len(prepared) / cols

	grid := make([][]byte, rows)
	for i := range grid {
		grid[i] = make([]byte, cols)
	}

	pos := 0
	for _, c := range order {
		for r := 0; r < rows; r++ {
			grid[r][c] = prepared[pos]
			pos++
		}
	}

	out := make([]byte, 0, len(prepared))
	for r := 0; r < rows; r++ {
		out = append(out, grid[r]...)
	}
	return textutil.RStripPad(string(out)), nil
}

// columnOrder derives the column read-order from the key string: the
// permutation of column indices that sorts the key's letters
// alphabetically, ties broken by original position (a stable sort).
func columnOrder(key Key) ([]int, error) {
	if key.Kind != KindString {
		return nil, errWrongKeyKind("columnar_transposition", KindString, key)
	}
	letters := textutil.Prepare(key.String, true)
	if len(letters) == 0 {
		return nil, errEmptyKey("columnar_transposition")
	}

	order := make([]int, len(letters))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return letters[order[i]] < letters[order[j]]
	})
	return order, nil
}
