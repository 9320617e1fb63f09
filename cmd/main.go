package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/smartwalle/dlist"
)

func fill() *dlist.List[string] {
	var l = dlist.New[string]()
	l.AddFront("b")
	l.AddBack("c")
	l.AddFront("a")
	l.AddBack("d")
	return l
}

func expect(label string, l *dlist.List[string], want string) {
	var got, err = l.Current()
	if err != nil || got != want {
		fmt.Printf("%s: current=%q err=%v, want %q\n", label, got, err, want)
		os.Exit(1)
	}
	fmt.Printf("%s: current=%s\n", label, got)
}

func traversal() {
	var l = fill()
	l.WriteForward(os.Stdout)
	l.WriteBackward(os.Stdout)
}

func navigation() {
	var l = fill()
	l.SetCursorToHead()
	l.MoveForward()
	l.MoveForward()
	expect("head+2", l, "c")
	l.MoveBackward()
	l.MoveBackward()
	expect("back to head", l, "a")

	l.SetCursorToTail()
	expect("tail", l, "d")
	l.MoveForward()
	expect("forward at tail", l, "d")
	l.MoveBackward()
	expect("backward", l, "c")
	l.MoveForward()
	expect("forward", l, "d")
}

func removal() {
	var l = fill()
	l.SetCursorToTail()
	var v, _ = l.RemoveFront()
	fmt.Println("removed", v)
	expect("after remove front", l, "d")
	v, _ = l.RemoveBack()
	fmt.Println("removed", v)
	expect("after remove back", l, "c")

	for !l.IsEmpty() {
		l.RemoveFront()
	}
	if _, err := l.Current(); !errors.Is(err, dlist.ErrCursorUnset) {
		fmt.Println("current on empty list:", err)
		os.Exit(1)
	}
	if _, err := l.RemoveFront(); !errors.Is(err, dlist.ErrEmptyCollection) {
		fmt.Println("remove front on empty list:", err)
		os.Exit(1)
	}
	if _, err := l.RemoveBack(); !errors.Is(err, dlist.ErrEmptyCollection) {
		fmt.Println("remove back on empty list:", err)
		os.Exit(1)
	}
	fmt.Println("empty list errors ok")
}

func main() {
	var which = ""
	if len(os.Args) >= 2 {
		which = os.Args[1]
	}

	switch which {
	case "traversal":
		traversal()
	case "navigation":
		navigation()
	case "removal":
		removal()
	default:
		traversal()
		navigation()
		removal()
	}
	fmt.Println("All tests passed.")
}
