package mcp

import (
	"fmt"
)

////////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	ErrSuccess Err = iota
	ErrNotFound
	ErrBadParameter
	ErrInternalServerError
	ErrNoTool
	ErrMissingArgument
	ErrDispatch
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Errors
type Err int

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (e Err) Error() string {
	switch e {
	case ErrSuccess:
		return "success"
	case ErrNotFound:
		return "not found"
	case ErrBadParameter:
		return "bad parameter"
	case ErrInternalServerError:
		return "internal server error"
	case ErrNoTool:
		return "no tool identified"
	case ErrMissingArgument:
		return "missing required argument"
	case ErrDispatch:
		return "tool dispatch failed"
	}
	return fmt.Sprintf("error code %d", int(e))
}

func (e Err) With(args ...interface{}) error {
	return fmt.Errorf("%w: %s", e, fmt.Sprint(args...))
}

func (e Err) Withf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", e, fmt.Sprintf(format, args...))
}

// Wrap returns an error which matches both e and err, so the
// underlying cause remains visible to errors.As
func (e Err) Wrap(err error) error {
	return fmt.Errorf("%w: %w", e, err)
}
