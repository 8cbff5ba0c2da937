package ir

import "errors"

var (
	// ErrTypeMismatch is returned by typed accessors invoked against a
	// node whose active kind differs from the requested one.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrIndexOutOfRange is returned by array access with an index at or
	// beyond the array length.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrKeyNotFound is returned by Get for an absent object key.
	ErrKeyNotFound = errors.New("key not found")

	// ErrInvalidOperation is returned by container operations, such as
	// Len, invoked on a scalar node.
	ErrInvalidOperation = errors.New("invalid operation")
)
