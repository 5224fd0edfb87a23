package dispatch

import "fmt"

// InvalidInputError marks a user-facing, 400-equivalent failure: a
// malformed key, an unknown method id, or a key shape the method
// cannot use. Its Error() text is safe to show to a caller verbatim.
type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string { return e.Message }

// InternalError marks a generic, non-user-facing failure. Its public
// Error() text never leaks the wrapped cause; the cause is retained
// for errors.Unwrap-based inspection (logging, tests) only.
type InternalError struct {
	message string
	cause   error
}

func (e *InternalError) Error() string { return e.message }

func (e *InternalError) Unwrap() error { return e.cause }

// wrapOperationError classifies an Engine failure into the two kinds
// dispatch ever returns (spec.md §7): an engine-reported failure is
// treated as invalid input (the engine only ever rejects malformed
// keys or malformed text, never fails for internal reasons), formatted
// as "<op> failed with <method>: <detail>".
func wrapOperationError(op, method string, err error) error {
	return &InvalidInputError{Message: fmt.Sprintf("%s failed with %s: %s", op, method, err.Error())}
}

// newInvalidInput builds an InvalidInputError for a dispatch-level
// (pre-engine) validation failure, formatted the same way.
func newInvalidInput(op, method, detail string) error {
	return &InvalidInputError{Message: fmt.Sprintf("%s failed with %s: %s", op, method, detail)}
}

// newInternal builds an InternalError wrapping an unexpected,
// non-user-facing cause (e.g. a catalog inconsistency) without
// leaking cause details into its Error() text.
func newInternal(op, method string, cause error) error {
	return &InternalError{message: fmt.Sprintf("%s failed with %s: internal error", op, method), cause: cause}
}
