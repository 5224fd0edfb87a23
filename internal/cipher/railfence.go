package cipher

import (
	"fmt"

	"github.com/kriptolens/classiclens/internal/textutil"
)

// RailFence implements the Rail Fence (zigzag) cipher.
type RailFence struct{}

// Encrypt distributes the prepared text into rails bands following a
// zigzag (0 -> rails-1 -> 0) and concatenates the bands top-down.
func (RailFence) Encrypt(text string, key Key) (string, error) {
	rails, err := railCount(key)
	if err != nil {
		return "", err
	}
	prepared := textutil.Prepare(text, true)
	if len(prepared) == 0 {
		return "", nil
	}

	bands := make([][]byte, rails)
	row, dir := 0, 1
	for i := 0; i < len(prepared); i++ {
		bands[row] = append(bands[row], prepared[i])
		row += dir
		if row == 0 {
			dir = 1
		} else if row == rails-1 {
			dir = -1
		}
	}

	out := make([]byte, 0, len(prepared))
	for _, b := range bands {
		out = append(out, b...)
	}
	return string(out), nil
}

// Decrypt recomputes the zigzag row assignment per position, splits
// the ciphertext into band segments by row population, then replays
// the zigzag consuming one letter per band as it goes.
func (RailFence) Decrypt(text string, key Key) (string, error) {
	rails, err := railCount(key)
	if err != nil {
		return "", err
	}
	prepared := textutil.Prepare(text, true)
	if len(prepared) == 0 {
		return "", nil
	}

	pattern := make([]int, len(prepared))
	row, dir := 0, 1
	for i := range pattern {
		pattern[i] = row
		row += dir
		if row == 0 {
			dir = 1
		} else if row == rails-1 {
			dir = -1
		}
	}

	rowCounts := make([]int, rails)
	for _, r := range pattern {
		rowCounts[r]++
	}

	bands := make([][]byte, rails)
	pos := 0
	for r := 0; r < rails; r++ {
		bands[r] = []byte(prepared[pos : pos+rowCounts[r]])
		pos += rowCounts[r]
	}

	out := make([]byte, len(prepared))
	cursor := make([]int, rails)
	for i, r := range pattern {
		out[i] = bands[r][cursor[r]]
		cursor[r]++
	}
	return string(out), nil
}

func railCount(key Key) (int, error) {
	if key.Kind != KindInteger {
		return 0, errWrongKeyKind("rail_fence", KindInteger, key)
	}
	if key.Integer < 2 {
		return 0, fmt.Errorf("rail_fence requires rails >= 2, got %d", key.Integer)
	}
	return key.Integer, nil
}
