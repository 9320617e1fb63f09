package internal

// Handle addresses a Slot inside an Arena. The zero Handle refers to nothing,
// so unset links need no extra flag.
type Handle uint32

const Nil Handle = 0

func (h Handle) IsNil() bool {
	return h == Nil
}

func (h Handle) index() int {
	return int(h) - 1
}

func handleOf(index int) Handle {
	return Handle(index + 1)
}

// Slot is a single stored value plus its two neighbor relations.
type Slot[T any] struct {
	Value      T
	Prev, Next Handle
	live       bool
}

func (s *Slot[T]) reset() {
	var empty T
	s.Value = empty
	s.Prev = Nil
	s.Next = Nil
	s.live = false
}
