package dlist

import (
	"bytes"
	"errors"
	"reflect"
	"testing"
)

func TestDisplay(t *testing.T) {
	for _, test := range []struct {
		title    string
		values   []int
		forward  []int
		backward []int
	}{{
		title:    "empty",
		forward:  []int{},
		backward: []int{},
	}, {
		title:    "single",
		values:   []int{1},
		forward:  []int{1},
		backward: []int{1},
	}, {
		title:    "multiple",
		values:   []int{1, 2, 3, 4},
		forward:  []int{1, 2, 3, 4},
		backward: []int{4, 3, 2, 1},
	}} {
		t.Run(test.title, func(t *testing.T) {
			var l = initList(test.values...)
			if got := l.DisplayForward(); !reflect.DeepEqual(got, test.forward) {
				t.Error("invalid forward traversal", got, test.forward)
			}

			if got := l.DisplayBackward(); !reflect.DeepEqual(got, test.backward) {
				t.Error("invalid backward traversal", got, test.backward)
			}

			checkList(t, l, test.values...)
		})
	}
}

func TestRange(t *testing.T) {
	var l = initList(1, 2, 3, 4)

	var forward []int
	l.Range(func(v int) bool {
		forward = append(forward, v)
		return v < 2
	})

	if !reflect.DeepEqual(forward, []int{1, 2}) {
		t.Error("invalid forward range", forward)
	}

	var backward []int
	l.RangeBackward(func(v int) bool {
		backward = append(backward, v)
		return true
	})

	if !reflect.DeepEqual(backward, []int{4, 3, 2, 1}) {
		t.Error("invalid backward range", backward)
	}

	l.Range(nil)
	l.RangeBackward(nil)
}

type failingWriter struct{}

var errWrite = errors.New("write failed")

func (failingWriter) Write([]byte) (int, error) { return 0, errWrite }

func TestWrite(t *testing.T) {
	var l = New[string]()
	for _, v := range []string{"a", "b", "c", "d"} {
		l.AddBack(v)
	}

	var buf bytes.Buffer
	if err := l.WriteForward(&buf); err != nil {
		t.Fatal(err)
	}

	if err := l.WriteBackward(&buf); err != nil {
		t.Fatal(err)
	}

	if buf.String() != "a b c d \nd c b a \n" {
		t.Errorf("invalid output: %q", buf.String())
	}

	buf.Reset()
	if err := New[int]().WriteForward(&buf); err != nil || buf.String() != "\n" {
		t.Errorf("invalid output for empty list: %q %v", buf.String(), err)
	}

	if err := l.WriteForward(failingWriter{}); !errors.Is(err, errWrite) {
		t.Error("write error not returned", err)
	}
}

func TestString(t *testing.T) {
	if s := initList().String(); s != "[]" {
		t.Error("invalid string", s)
	}

	if s := initList(1, 2, 3).String(); s != "[1 2 3]" {
		t.Error("invalid string", s)
	}
}
