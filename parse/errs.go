package parse

import (
	"errors"
	"fmt"

	"github.com/signadot/jsontree/token"
)

var (
	// ErrParse matches every parse failure via errors.Is.
	ErrParse = errors.New("parse error")

	ErrTrailingContent = errors.New("unexpected characters after value")
	ErrUnexpectedEnd   = errors.New("unexpected end of input")
)

// Error is a parse failure. It carries a cause, one of the sentinels of
// this package or of package token, and the byte offset at which the
// failure was detected.
type Error struct {
	Pos *token.Pos
	err error
}

func newError(err error, pos *token.Pos) *Error {
	return &Error{Pos: pos, err: err}
}

// asError funnels tokenizer errors into the parse error family, keeping
// their position and cause.
func asError(err error) error {
	var te *token.Error
	if errors.As(err, &te) {
		return newError(te.Err, te.Pos)
	}
	return err
}

func (e *Error) Error() string {
	return fmt.Sprintf("%v %s", e.err, e.Pos)
}

func (e *Error) Unwrap() error {
	return e.err
}

func (e *Error) Is(target error) bool {
	return target == ErrParse
}

// Offset returns the byte offset at which the failure was detected.
func (e *Error) Offset() int {
	return e.Pos.I
}
