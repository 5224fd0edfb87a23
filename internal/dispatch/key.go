package dispatch

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/kriptolens/classiclens/internal/cipher"
)

// parseKey widens the caller's untyped string|absent key into the
// cipher.Key tagged union the method's Engine expects, per the
// method's KeyCategory. rawKey == "" is treated as "no key supplied".
func parseKey(op string, m Method, rawKey string) (cipher.Key, error) {
	trimmed := strings.TrimSpace(rawKey)

	switch m.KeyCategory {
	case CategoryAbsent:
		return cipher.AbsentKey(), nil

	case CategoryStringOptional:
		if trimmed == "" {
			return cipher.AbsentKey(), nil
		}
		return cipher.StringKey(trimmed), nil

	case CategoryString:
		if trimmed == "" {
			return cipher.Key{}, newInvalidInput(op, m.ID, "key must not be empty")
		}
		return cipher.StringKey(trimmed), nil

	case CategoryIntegerRequired:
		if trimmed == "" {
			return cipher.Key{}, newInvalidInput(op, m.ID, "key must be an integer")
		}
		n, err := strconv.Atoi(trimmed)
		if err != nil {
			return cipher.Key{}, newInvalidInput(op, m.ID, "key must be an integer, got \""+rawKey+"\"")
		}
		return cipher.IntegerKey(n), nil

	case CategoryIntegerOptional:
		if trimmed == "" {
			return cipher.IntegerKey(cipher.DefaultCaesarShift), nil
		}
		n, err := strconv.Atoi(trimmed)
		if err != nil {
			return cipher.Key{}, newInvalidInput(op, m.ID, "key must be an integer, got \""+rawKey+"\"")
		}
		return cipher.IntegerKey(n), nil

	case CategoryMatrix:
		if trimmed == "" {
			return cipher.Key{}, newInvalidInput(op, m.ID, "key must be a JSON square integer matrix, e.g. [[3,3],[2,5]]")
		}
		var matrix [][]int
		if err := json.Unmarshal([]byte(trimmed), &matrix); err != nil {
			return cipher.Key{}, newInvalidInput(op, m.ID, "key must be a JSON square integer matrix: "+err.Error())
		}
		n := len(matrix)
		if n != 2 && n != 3 {
			return cipher.Key{}, newInvalidInput(op, m.ID, "key matrix must be 2x2 or 3x3")
		}
		for _, row := range matrix {
			if len(row) != n {
				return cipher.Key{}, newInvalidInput(op, m.ID, "key matrix must be square")
			}
		}
		return cipher.MatrixKey(matrix), nil

	default:
		return cipher.Key{}, newInternal(op, m.ID, nil)
	}
}
