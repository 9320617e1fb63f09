package dlist

import (
	"github.com/smartwalle/dlist/internal"
)

// MoveForward advances the cursor to its successor. At the tail it stays put.
// An unset cursor on a non-empty list snaps to the tail.
func (l *List[T]) MoveForward() {
	if l.cursor.IsNil() {
		l.cursor = l.tail
		return
	}
	if next := l.slot(l.cursor).Next; !next.IsNil() {
		l.cursor = next
	}
}

// MoveBackward moves the cursor to its predecessor. At the head it stays put.
// An unset cursor on a non-empty list snaps to the head.
func (l *List[T]) MoveBackward() {
	if l.cursor.IsNil() {
		l.cursor = l.head
		return
	}
	if prev := l.slot(l.cursor).Prev; !prev.IsNil() {
		l.cursor = prev
	}
}

// Current returns the value under the cursor.
func (l *List[T]) Current() (value T, err error) {
	if l.cursor.IsNil() {
		return value, ErrCursorUnset
	}
	return l.slot(l.cursor).Value, nil
}

func (l *List[T]) SetCursorToHead() {
	l.cursor = l.head
}

func (l *List[T]) SetCursorToTail() {
	l.cursor = l.tail
}

func (l *List[T]) IsCursorSet() bool {
	return l.cursor != internal.Nil
}
