package datastructures

// Cursor is a position in a DoublyLinkedList that moves along next and prev
// links. A cursor is invalidated by removing the node it points at or by
// clearing the list; it stays valid across other insertions and removals.
type Cursor[T any] struct {
	list *DoublyLinkedList[T]
	at   handle
	gen  uint64
}

// Cursor returns a cursor positioned at the head of the list. On an empty
// list the cursor is not valid.
func (l *DoublyLinkedList[T]) Cursor() *Cursor[T] {
	c := &Cursor[T]{list: l}
	if l.head != none {
		c.moveTo(l.head)
	}
	return c
}

func (c *Cursor[T]) moveTo(n handle) {
	c.at = n
	c.gen = c.list.nodes.at(n).gen
}

// Valid reports whether the cursor points at a node of the list.
func (c *Cursor[T]) Valid() bool {
	return c.list.nodes.current(c.at, c.gen)
}

// Index returns the number of steps from the head to the cursor, or -1 when
// the cursor is not valid. O(n).
func (c *Cursor[T]) Index() int {
	if !c.Valid() {
		return -1
	}
	index := 0
	for n := c.list.nodes.at(c.at).prev; n != none; n = c.list.nodes.at(n).prev {
		index++
	}
	return index
}

// Value returns the value under the cursor.
func (c *Cursor[T]) Value() (T, error) {
	if !c.Valid() {
		var zero T
		return zero, ErrEmptyList
	}
	return c.list.nodes.read(c.at)
}

// Next moves to the following node. It returns false, leaving the cursor
// where it is, when there is no next node.
func (c *Cursor[T]) Next() bool {
	if !c.Valid() {
		return false
	}
	next := c.list.nodes.at(c.at).next
	if next == none {
		return false
	}
	c.moveTo(next)
	return true
}

// Prev moves to the previous node. It returns false, leaving the cursor
// where it is, when there is no previous node.
func (c *Cursor[T]) Prev() bool {
	if !c.Valid() {
		return false
	}
	prev := c.list.nodes.at(c.at).prev
	if prev == none {
		return false
	}
	c.moveTo(prev)
	return true
}
