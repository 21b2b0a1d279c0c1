package booking

import (
	"errors"
	"fmt"
)

var ErrForbidden = errors.New("forbidden access")

// ValidationError reports a booking request missing a required field.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("booking %s is required", e.Field)
}
