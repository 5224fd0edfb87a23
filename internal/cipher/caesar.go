package cipher

// DefaultCaesarShift is the classic Caesar shift used when no key is
// supplied (spec.md §4.4).
const DefaultCaesarShift = 3

// Caesar implements the Caesar cipher: a Shift cipher whose key
// defaults to 3 when absent. The dispatch façade is responsible for
// substituting the default before invoking this engine; Caesar itself
// simply delegates to Shift.
type Caesar struct{}

// Encrypt delegates to Shift with the caller-provided key.
func (Caesar) Encrypt(text string, key Key) (string, error) {
	return Shift{}.Encrypt(text, key)
}

// Decrypt delegates to Shift with the caller-provided key.
func (Caesar) Decrypt(text string, key Key) (string, error) {
	return Shift{}.Decrypt(text, key)
}
