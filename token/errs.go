package token

import (
	"errors"
	"fmt"
)

var (
	ErrUnterminated      = errors.New("unterminated string")
	ErrBadEscape         = errors.New("invalid escape")
	ErrBadUnicode        = errors.New("invalid unicode escape")
	ErrSurrogate         = errors.New("surrogate escape unsupported")
	ErrNumber            = errors.New("invalid number")
	ErrNumberLeadingZero = errors.New("leading zero")
	ErrLiteral           = errors.New("bad literal")
	ErrUnexpected        = errors.New("unexpected character")
)

// Error is a tokenization failure located at a byte offset.
type Error struct {
	Err error
	Pos *Pos
}

func NewError(err error, pos *Pos) *Error {
	return &Error{Err: err, Pos: pos}
}

func (e *Error) Error() string {
	return fmt.Sprintf("%v %s", e.Err, e.Pos)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Offset returns the byte offset at which the failure was detected.
func (e *Error) Offset() int {
	return e.Pos.I
}
