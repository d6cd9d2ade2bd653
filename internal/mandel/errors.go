package mandel

import (
	"errors"
	"fmt"
)

// ErrInvalidViewParameters indicates a view that cannot be rendered.
var ErrInvalidViewParameters = errors.New("mandel: invalid view parameters")

// ViewError names the offending field of an invalid view.
type ViewError struct {
	Field string
	Value int
}

func (e *ViewError) Error() string {
	return fmt.Sprintf("%s: %s must be positive, got %d", ErrInvalidViewParameters, e.Field, e.Value)
}

func (e *ViewError) Unwrap() error {
	return ErrInvalidViewParameters
}
