package platform

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyPath     = errors.New("path is empty")
	ErrInvalidDate   = errors.New("invalid date, want YYYY-MM-DD")
	ErrInvalidRange  = errors.New("end date is before start date")
	ErrMissingField  = errors.New("required field is missing")
	ErrDuplicateID   = errors.New("duplicate task id")
	ErrUnknownParent = errors.New("parent task does not exist")
)

// FieldError reports a problem with one field of a project file
type FieldError struct {
	File  string
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	if e.File == "" {
		return fmt.Sprintf("%s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", e.File, e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
