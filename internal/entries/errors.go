package entries

import (
	"errors"
	"fmt"
)

// ErrNotAnObject is returned when an entries document is not a JSON object.
var ErrNotAnObject = errors.New("entries document must be a JSON object")

// UnsupportedPatternShapeError is returned by the encoder when a message value
// is not a single text run.
type UnsupportedPatternShapeError struct {
	MessageID string
	Reason    string
}

// Error implements the error interface for UnsupportedPatternShapeError.
func (e *UnsupportedPatternShapeError) Error() string {
	return fmt.Sprintf("message '%s' cannot be represented in the entries format: %s", e.MessageID, e.Reason)
}

// UnexpectedValueTypeError is returned by the decoder when a value of the
// entries object is not a JSON string. Type is a human readable name of the
// JSON type found, such as "number" or "object".
type UnexpectedValueTypeError struct {
	MessageID string
	Type      string
}

// Error implements the error interface for UnexpectedValueTypeError.
func (e *UnexpectedValueTypeError) Error() string {
	return fmt.Sprintf("message '%s': expected a JSON string value, got %s", e.MessageID, e.Type)
}

// DuplicateMessageIDError is returned when a message id occurs more than once,
// either among the messages of a resource being encoded or among the keys of
// an entries document being read. A JSON object cannot carry both values.
type DuplicateMessageIDError struct {
	MessageID string
}

// Error implements the error interface for DuplicateMessageIDError.
func (e *DuplicateMessageIDError) Error() string {
	return fmt.Sprintf("message '%s' is defined more than once", e.MessageID)
}
