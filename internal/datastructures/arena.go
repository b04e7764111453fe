package datastructures

// handle addresses a node slot in an arena. The zero handle means "no node",
// so a zero-value list is a valid empty list.
type handle int

const none handle = 0

type slot[T any] struct {
	value    T
	next     handle
	prev     handle
	gen      uint64
	live     bool
	borrowed bool
}

// arena owns every node of one list. Links between nodes are handles into
// slots; a released slot is recycled through the free queue. Every
// allocation gets a fresh generation, also across reset, so a handle plus
// its generation names one node for the lifetime of the arena.
type arena[T any] struct {
	slots []slot[T]
	free  *Deque[handle]
	gen   uint64
}

func (a *arena[T]) alloc(value T) handle {
	a.gen++
	s := slot[T]{value: value, gen: a.gen, live: true}
	if a.free != nil && !a.free.Empty() {
		h, _ := a.free.PopFront()
		a.slots[h-1] = s
		return h
	}
	a.slots = append(a.slots, s)
	return handle(len(a.slots))
}

func (a *arena[T]) at(h handle) *slot[T] {
	return &a.slots[h-1]
}

// valid reports whether h refers to a node that has not been released.
func (a *arena[T]) valid(h handle) bool {
	return h > none && int(h) <= len(a.slots) && a.slots[h-1].live
}

// current reports whether h still refers to the node allocated as gen.
func (a *arena[T]) current(h handle, gen uint64) bool {
	return a.valid(h) && a.slots[h-1].gen == gen
}

// release frees the slot and hands back its value.
func (a *arena[T]) release(h handle) T {
	value := a.slots[h-1].value
	a.slots[h-1] = slot[T]{}
	if a.free == nil {
		a.free = NewDeque[handle](8)
	}
	a.free.PushBack(h)
	return value
}

// read returns a copy of the node's value unless it is mutably borrowed.
func (a *arena[T]) read(h handle) (T, error) {
	s := a.at(h)
	if s.borrowed {
		var zero T
		return zero, ErrBorrowConflict
	}
	return s.value, nil
}

// borrowMut lends a copy of the node's value to fn. While fn runs the node is
// marked borrowed; the copy is written back only if fn succeeds and the node
// still exists.
func (a *arena[T]) borrowMut(h handle, fn func(*T) error) error {
	s := a.at(h)
	if s.borrowed {
		return ErrBorrowConflict
	}
	s.borrowed = true
	gen := s.gen
	value := s.value

	err := fn(&value)

	// fn may have grown or reset the arena, so look the slot up again.
	if !a.current(h, gen) {
		return err
	}
	s = a.at(h)
	s.borrowed = false
	if err == nil {
		s.value = value
	}
	return err
}

// checkFree fails if the node is borrowed and therefore cannot be unlinked.
func (a *arena[T]) checkFree(h handle) error {
	if a.at(h).borrowed {
		return ErrBorrowConflict
	}
	return nil
}

func (a *arena[T]) reset() {
	a.slots = nil
	a.free = nil
}
