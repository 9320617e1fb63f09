package dlist

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/smartwalle/dlist/internal"
)

func (l *List[T]) walk(from internal.Handle, forward bool, fn func(value T) bool) {
	for h := from; !h.IsNil(); {
		var s = l.slot(h)
		if fn(s.Value) == false {
			return
		}
		if forward {
			h = s.Next
		} else {
			h = s.Prev
		}
	}
}

// Range calls fn for each value from head to tail until fn returns false.
func (l *List[T]) Range(fn func(value T) bool) {
	if fn == nil {
		return
	}
	l.walk(l.head, true, fn)
}

// RangeBackward calls fn for each value from tail to head until fn returns
// false.
func (l *List[T]) RangeBackward(fn func(value T) bool) {
	if fn == nil {
		return
	}
	l.walk(l.tail, false, fn)
}

func (l *List[T]) collect(from internal.Handle, forward bool) []T {
	var values = make([]T, 0, l.Len())
	l.walk(from, forward, func(value T) bool {
		values = append(values, value)
		return true
	})
	return values
}

// DisplayForward returns the values from head to tail.
func (l *List[T]) DisplayForward() []T {
	return l.collect(l.head, true)
}

// DisplayBackward returns the values from tail to head.
func (l *List[T]) DisplayBackward() []T {
	return l.collect(l.tail, false)
}

func (l *List[T]) write(w io.Writer, from internal.Handle, forward bool) error {
	var bw = bufio.NewWriter(w)
	var err error
	l.walk(from, forward, func(value T) bool {
		_, err = fmt.Fprintf(bw, "%v ", value)
		return err == nil
	})
	if err != nil {
		return err
	}
	if err = bw.WriteByte('\n'); err != nil {
		return err
	}
	return bw.Flush()
}

// WriteForward writes the values from head to tail to w, each followed by a
// space, and terminates the line.
func (l *List[T]) WriteForward(w io.Writer) error {
	return l.write(w, l.head, true)
}

// WriteBackward is WriteForward from tail to head.
func (l *List[T]) WriteBackward(w io.Writer) error {
	return l.write(w, l.tail, false)
}

func (l *List[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	var first = true
	l.Range(func(value T) bool {
		if !first {
			sb.WriteByte(' ')
		}
		first = false
		fmt.Fprintf(&sb, "%v", value)
		return true
	})
	sb.WriteByte(']')
	return sb.String()
}
