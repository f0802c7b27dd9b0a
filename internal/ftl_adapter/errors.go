package ftl_adapter

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
)

// MissingValueError is returned when a message declares no value pattern.
type MissingValueError struct {
	MessageID string
	Range     hcl.Range
}

// Error implements the error interface for MissingValueError.
func (e *MissingValueError) Error() string {
	if e.Range.Filename != "" {
		return fmt.Sprintf("%s: message '%s' has no value", e.Range.String(), e.MessageID)
	}
	return fmt.Sprintf("message '%s' has no value", e.MessageID)
}
