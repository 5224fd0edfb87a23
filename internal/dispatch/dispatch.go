package dispatch

// Encrypt looks up the method by id, classifies and parses rawKey
// into the Engine's expected cipher.Key, and runs Encrypt. An unknown
// method comes back as an *InvalidInputError reading "unknown method:
// <id>"; a malformed key or an engine rejection comes back as an
// *InvalidInputError formatted "encrypt failed with <method>: <detail>"
// (spec.md §7).
func Encrypt(methodID, text, rawKey string) (string, error) {
	return run("encrypt", methodID, text, rawKey)
}

// Decrypt mirrors Encrypt for the reverse direction.
func Decrypt(methodID, text, rawKey string) (string, error) {
	return run("decrypt", methodID, text, rawKey)
}

func run(op, methodID, text, rawKey string) (string, error) {
	m, err := lookup(methodID)
	if err != nil {
		return "", err
	}
	key, err := parseKey(op, m, rawKey)
	if err != nil {
		return "", err
	}

	var result string
	switch op {
	case "encrypt":
		result, err = m.Engine.Encrypt(text, key)
	case "decrypt":
		result, err = m.Engine.Decrypt(text, key)
	}
	if err != nil {
		return "", wrapOperationError(op, m.ID, err)
	}
	return result, nil
}
