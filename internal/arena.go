package internal

// Arena owns the storage of every Slot of a list. Slots refer to each other
// by Handle only, the arena is the single owner.
type Arena[T any] struct {
	slots []Slot[T]
	free  []Handle
	len   int
}

func NewArena[T any](capacity int) *Arena[T] {
	if capacity < 0 {
		capacity = 0
	}
	var a = &Arena[T]{}
	a.slots = make([]Slot[T], 0, capacity)
	return a
}

func (a *Arena[T]) Len() int {
	return a.len
}

// Cap returns the number of slots backed by storage, live or free.
func (a *Arena[T]) Cap() int {
	return len(a.slots)
}

func (a *Arena[T]) Alloc(value T) Handle {
	var h Handle
	if n := len(a.free); n > 0 {
		h = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		a.slots = append(a.slots, Slot[T]{})
		h = handleOf(len(a.slots) - 1)
	}

	var s = &a.slots[h.index()]
	s.Value = value
	s.live = true
	a.len++
	return h
}

// Free releases the slot addressed by h and returns the value it held.
func (a *Arena[T]) Free(h Handle) T {
	var s = a.Get(h)
	var value = s.Value
	s.reset()
	a.free = append(a.free, h)
	a.len--
	return value
}

// Get returns the slot addressed by h. It panics when h is nil or has been
// freed, both mean the caller's links are broken.
func (a *Arena[T]) Get(h Handle) *Slot[T] {
	var i = h.index()
	if i < 0 || i >= len(a.slots) {
		panic("dlist: invalid handle")
	}
	var s = &a.slots[i]
	if s.live == false {
		panic("dlist: handle is not in use")
	}
	return s
}

func (a *Arena[T]) Reset() {
	for i := range a.slots {
		a.slots[i].reset()
	}
	a.slots = a.slots[:0]
	a.free = a.free[:0]
	a.len = 0
}
