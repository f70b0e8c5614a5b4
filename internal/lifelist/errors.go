package lifelist

import (
	"errors"
	"fmt"
)

// ErrMissingRequiredColumn indicates the export header lacks a column the
// import cannot do without.
var ErrMissingRequiredColumn = errors.New("missing required column")

// MissingColumnError names the required column that could not be located.
// It unwraps to ErrMissingRequiredColumn.
type MissingColumnError struct {
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("file missing required column %q", e.Column)
}

func (e *MissingColumnError) Unwrap() error {
	return ErrMissingRequiredColumn
}
