package dlist

import "errors"

var (
	ErrEmptyCollection = errors.New("dlist: list is empty")
	ErrCursorUnset     = errors.New("dlist: cursor is unset")
)
