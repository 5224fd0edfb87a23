package cipher

import (
	"fmt"
	"strings"

	"github.com/kriptolens/classiclens/internal/textutil"
)

// pigpenTokens is the fixed 26-letter to token bijection backing the
// Pigpen cipher. Position names follow the traditional four-grid
// construction: two 3x3 tic-tac-toe grids (one plain, one dotted)
// cover A-I and J-R; two 4-point X grids (plain, dotted) cover S-V
// and W-Z. Each token names its grid and cell so the mapping reads
// the same way the paper cipher is taught.
var pigpenTokens = [26]string{
	// Grid 1 (tic-tac-toe, no dot): A-I
	"G1-TL", "G1-TM", "G1-TR",
	"G1-ML", "G1-MM", "G1-MR",
	"G1-BL", "G1-BM", "G1-BR",
	// Grid 2 (tic-tac-toe, dotted): J-R
	"G2-TL-D", "G2-TM-D", "G2-TR-D",
	"G2-ML-D", "G2-MM-D", "G2-MR-D",
	"G2-BL-D", "G2-BM-D", "G2-BR-D",
	// X grid, no dot: S-V
	"GX-N", "GX-E", "GX-S", "GX-W",
	// X grid, dotted: W-Z
	"GX-N-D", "GX-E-D", "GX-S-D", "GX-W-D",
}

var pigpenReverse = func() map[string]byte {
	m := make(map[string]byte, 26)
	for i, tok := range pigpenTokens {
		m[tok] = byte('A' + i)
	}
	return m
}()

// Pigpen implements the Pigpen cipher as a fixed, keyless 26-letter
// to token bijection. Tokens are joined with '|' in the ciphertext
// since Pigpen has no concept of a "key" beyond the table.
type Pigpen struct{}

// Encrypt maps each prepared letter to its token and joins with '|'.
// The key is unused; any Key is accepted.
func (Pigpen) Encrypt(text string, _ Key) (string, error) {
	prepared := textutil.Prepare(text, true)
	tokens := make([]string, len(prepared))
	for i := 0; i < len(prepared); i++ {
		idx, err := textutil.CharToIndex(prepared[i])
		if err != nil {
			return "", fmt.Errorf("pigpen: %w", err)
		}
		tokens[i] = pigpenTokens[idx]
	}
	return strings.Join(tokens, "|"), nil
}

// Decrypt splits the ciphertext on '|' and maps each token back to
// its letter. An unrecognized token decodes to '?' rather than
// failing the whole operation.
func (Pigpen) Decrypt(text string, _ Key) (string, error) {
	if text == "" {
		return "", nil
	}
	fields := strings.Split(text, "|")
	out := make([]byte, 0, len(fields))
	for _, tok := range fields {
		c, ok := pigpenReverse[tok]
		if !ok {
			out = append(out, '?')
			continue
		}
		out = append(out, c)
	}
	return string(out), nil
}
