// Package dlist implements a doubly linked list with a cursor.
//
// Besides adding and removing values at both ends, a List keeps a cursor
// pointing at a "current" element. The cursor is set by the first insertion
// into an empty list, moves only when asked to, and is reattached to the
// adjacent survivor when the element it points to is removed. It becomes
// unset only when the list runs empty.
//
// A List is not safe for concurrent use.
package dlist

import (
	"github.com/smartwalle/dlist/internal"
)

// List is a doubly linked list of values of type T. The zero value is an
// empty list ready to use.
type List[T any] struct {
	arena  *internal.Arena[T]
	head   internal.Handle
	tail   internal.Handle
	cursor internal.Handle
}

func New[T any](opts ...Option) *List[T] {
	var o = &options{}
	for _, opt := range opts {
		opt(o)
	}

	var l = &List[T]{}
	l.arena = internal.NewArena[T](o.capacity)
	return l
}

func (l *List[T]) lazyInit() {
	if l.arena == nil {
		l.arena = internal.NewArena[T](0)
	}
}

func (l *List[T]) slot(h internal.Handle) *internal.Slot[T] {
	return l.arena.Get(h)
}

func (l *List[T]) Len() int {
	if l.arena == nil {
		return 0
	}
	return l.arena.Len()
}

func (l *List[T]) IsEmpty() bool {
	return l.head.IsNil()
}

// AddFront inserts value before the current head. If the cursor is unset, it
// is set to the new element.
func (l *List[T]) AddFront(value T) {
	l.lazyInit()
	var h = l.arena.Alloc(value)

	if l.head.IsNil() {
		l.tail = h
	} else {
		l.slot(h).Next = l.head
		l.slot(l.head).Prev = h
	}
	l.head = h

	if l.cursor.IsNil() {
		l.cursor = h
	}
}

// AddBack inserts value after the current tail. If the cursor is unset, it
// is set to the new element.
func (l *List[T]) AddBack(value T) {
	l.lazyInit()
	var h = l.arena.Alloc(value)

	if l.tail.IsNil() {
		l.head = h
	} else {
		l.slot(h).Prev = l.tail
		l.slot(l.tail).Next = h
	}
	l.tail = h

	if l.cursor.IsNil() {
		l.cursor = h
	}
}

// RemoveFront removes the head and returns its value. A cursor pointing at
// the head moves to the new head.
func (l *List[T]) RemoveFront() (value T, err error) {
	if l.head.IsNil() {
		return value, ErrEmptyCollection
	}

	var h = l.head
	l.head = l.slot(h).Next
	if l.head.IsNil() {
		l.tail = internal.Nil
	} else {
		l.slot(l.head).Prev = internal.Nil
	}

	if l.cursor == h {
		l.cursor = l.head
	}
	return l.arena.Free(h), nil
}

// RemoveBack removes the tail and returns its value. A cursor pointing at the
// tail moves to the new tail.
func (l *List[T]) RemoveBack() (value T, err error) {
	if l.tail.IsNil() {
		return value, ErrEmptyCollection
	}

	var h = l.tail
	l.tail = l.slot(h).Prev
	if l.tail.IsNil() {
		l.head = internal.Nil
	} else {
		l.slot(l.tail).Next = internal.Nil
	}

	if l.cursor == h {
		l.cursor = l.tail
	}
	return l.arena.Free(h), nil
}

func (l *List[T]) Front() (value T, err error) {
	if l.head.IsNil() {
		return value, ErrEmptyCollection
	}
	return l.slot(l.head).Value, nil
}

func (l *List[T]) Back() (value T, err error) {
	if l.tail.IsNil() {
		return value, ErrEmptyCollection
	}
	return l.slot(l.tail).Value, nil
}

// Clear removes all elements and unsets the cursor.
func (l *List[T]) Clear() {
	if l.arena != nil {
		l.arena.Reset()
	}
	l.head = internal.Nil
	l.tail = internal.Nil
	l.cursor = internal.Nil
}
