package datastructures

import "iter"

// DoublyLinkedList is a list whose nodes link both ways. Each node owns its
// next node; prev is a plain back-reference and never keeps a node alive.
// The zero value is an empty list.
//
// A DoublyLinkedList is not safe for concurrent use.
type DoublyLinkedList[T any] struct {
	head   handle
	tail   handle
	length int
	nodes  arena[T]
}

// NewDoublyLinkedList creates a new empty list.
func NewDoublyLinkedList[T any]() *DoublyLinkedList[T] {
	return &DoublyLinkedList[T]{}
}

// PushFront adds a value to the head of the list.
func (l *DoublyLinkedList[T]) PushFront(value T) {
	l.attachFront(l.nodes.alloc(value))
}

// PushBack adds a value to the tail of the list. O(1).
func (l *DoublyLinkedList[T]) PushBack(value T) {
	n := l.nodes.alloc(value)
	if l.length == 0 {
		l.head = n
		l.tail = n
	} else {
		l.nodes.at(n).prev = l.tail
		l.nodes.at(l.tail).next = n
		l.tail = n
	}
	l.length++
}

// PopFront removes and returns the value at the head of the list.
func (l *DoublyLinkedList[T]) PopFront() (T, error) {
	if l.length == 0 {
		var zero T
		return zero, ErrEmptyList
	}
	return l.remove(l.head)
}

// PopBack removes and returns the value at the tail of the list. O(1).
func (l *DoublyLinkedList[T]) PopBack() (T, error) {
	if l.length == 0 {
		var zero T
		return zero, ErrEmptyList
	}
	return l.remove(l.tail)
}

// Front returns the value at the head of the list.
func (l *DoublyLinkedList[T]) Front() (T, error) {
	if l.length == 0 {
		var zero T
		return zero, ErrEmptyList
	}
	return l.nodes.read(l.head)
}

// Back returns the value at the tail of the list.
func (l *DoublyLinkedList[T]) Back() (T, error) {
	if l.length == 0 {
		var zero T
		return zero, ErrEmptyList
	}
	return l.nodes.read(l.tail)
}

// nodeAt walks from whichever end is closer. The index must be in range.
func (l *DoublyLinkedList[T]) nodeAt(index int) handle {
	if index < l.length/2 {
		n := l.head
		for i := 0; i < index; i++ {
			n = l.nodes.at(n).next
		}
		return n
	}
	n := l.tail
	for i := l.length - 1; i > index; i-- {
		n = l.nodes.at(n).prev
	}
	return n
}

// Get returns the value at index. O(n).
func (l *DoublyLinkedList[T]) Get(index int) (T, error) {
	if index < 0 || index >= l.length {
		var zero T
		return zero, indexError(index, l.length)
	}
	return l.nodes.read(l.nodeAt(index))
}

// InsertAt inserts a value so that it ends up at index. Index may equal Len.
func (l *DoublyLinkedList[T]) InsertAt(index int, value T) error {
	switch {
	case index < 0 || index > l.length:
		return indexError(index, l.length)
	case index == 0:
		l.PushFront(value)
	case index == l.length:
		l.PushBack(value)
	default:
		next := l.nodeAt(index)
		prev := l.nodes.at(next).prev
		n := l.nodes.alloc(value)
		node := l.nodes.at(n)
		node.prev = prev
		node.next = next
		l.nodes.at(prev).next = n
		l.nodes.at(next).prev = n
		l.length++
	}
	return nil
}

// Delete removes and returns the value at index.
func (l *DoublyLinkedList[T]) Delete(index int) (T, error) {
	if index < 0 || index >= l.length {
		var zero T
		return zero, indexError(index, l.length)
	}
	return l.remove(l.nodeAt(index))
}

// Update mutably borrows the value at index for the duration of fn. The
// change is kept only when fn returns nil.
func (l *DoublyLinkedList[T]) Update(index int, fn func(*T) error) error {
	if index < 0 || index >= l.length {
		return indexError(index, l.length)
	}
	return l.nodes.borrowMut(l.nodeAt(index), fn)
}

// Len returns the number of elements in the list.
func (l *DoublyLinkedList[T]) Len() int {
	return l.length
}

// IsEmpty reports whether the list has no elements.
func (l *DoublyLinkedList[T]) IsEmpty() bool {
	return l.length == 0
}

// Clear removes all elements from the list.
func (l *DoublyLinkedList[T]) Clear() {
	l.head = none
	l.tail = none
	l.length = 0
	l.nodes.reset()
}

// Values iterates from head to tail, skipping nodes that are mutably borrowed.
func (l *DoublyLinkedList[T]) Values() iter.Seq[T] {
	return l.walk(l.head, func(s *slot[T]) handle { return s.next })
}

// Backward iterates from tail to head following prev links.
func (l *DoublyLinkedList[T]) Backward() iter.Seq[T] {
	return l.walk(l.tail, func(s *slot[T]) handle { return s.prev })
}

func (l *DoublyLinkedList[T]) walk(start handle, step func(*slot[T]) handle) iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := start; l.nodes.valid(n); n = step(l.nodes.at(n)) {
			value, err := l.nodes.read(n)
			if err != nil {
				continue
			}
			if !yield(value) || !l.nodes.valid(n) {
				return
			}
		}
	}
}

// Slice copies the values from head to tail.
func (l *DoublyLinkedList[T]) Slice() []T {
	values := make([]T, 0, l.length)
	for v := range l.Values() {
		values = append(values, v)
	}
	return values
}

// attachFront links an allocated, unlinked node in as the new head.
func (l *DoublyLinkedList[T]) attachFront(n handle) {
	node := l.nodes.at(n)
	node.prev = none
	node.next = l.head
	if l.length == 0 {
		l.tail = n
	} else {
		l.nodes.at(l.head).prev = n
	}
	l.head = n
	l.length++
}

// detach unlinks n from its neighbours without releasing it.
func (l *DoublyLinkedList[T]) detach(n handle) {
	node := l.nodes.at(n)
	if node.prev == none {
		l.head = node.next
	} else {
		l.nodes.at(node.prev).next = node.next
	}
	if node.next == none {
		l.tail = node.prev
	} else {
		l.nodes.at(node.next).prev = node.prev
	}
	node.prev = none
	node.next = none
	l.length--
}

// remove unlinks and releases n, returning its value.
func (l *DoublyLinkedList[T]) remove(n handle) (T, error) {
	if err := l.nodes.checkFree(n); err != nil {
		var zero T
		return zero, err
	}
	l.detach(n)
	return l.nodes.release(n), nil
}

// moveToFront makes n the head of the list.
func (l *DoublyLinkedList[T]) moveToFront(n handle) {
	if n == l.head {
		return
	}
	l.detach(n)
	l.attachFront(n)
}
