package minid

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidEncoding is returned when text is not base64url without padding.
	ErrInvalidEncoding = errors.New("invalid base64url encoding")
	// ErrWrongLength is returned when the decoded value is not Size bytes long.
	ErrWrongLength = errors.New("wrong length")
)

// ParseError records the input that failed to parse.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("minid: parse %q: %v", e.Input, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
