package datastructures

import "iter"

// SinglyLinkedList is a list whose nodes only link forward. Each node owns the
// next one; the list owns the head. The zero value is an empty list.
//
// A SinglyLinkedList is not safe for concurrent use.
type SinglyLinkedList[T any] struct {
	head   handle
	tail   handle
	length int
	nodes  arena[T]
}

// NewSinglyLinkedList creates a new empty list.
func NewSinglyLinkedList[T any]() *SinglyLinkedList[T] {
	return &SinglyLinkedList[T]{}
}

// PushFront adds a value at the head of the list.
func (l *SinglyLinkedList[T]) PushFront(value T) {
	n := l.nodes.alloc(value)
	l.nodes.at(n).next = l.head
	l.head = n
	if l.tail == none {
		l.tail = n
	}
	l.length++
}

// PushBack adds a value at the tail of the list.
func (l *SinglyLinkedList[T]) PushBack(value T) {
	n := l.nodes.alloc(value)
	if l.tail == none {
		l.head = n
	} else {
		l.nodes.at(l.tail).next = n
	}
	l.tail = n
	l.length++
}

// PopFront removes and returns the value at the head of the list.
func (l *SinglyLinkedList[T]) PopFront() (T, error) {
	var zero T
	if l.head == none {
		return zero, ErrEmptyList
	}
	if err := l.nodes.checkFree(l.head); err != nil {
		return zero, err
	}
	n := l.head
	l.head = l.nodes.at(n).next
	if l.head == none {
		l.tail = none
	}
	l.length--
	return l.nodes.release(n), nil
}

// Front returns the value at the head of the list.
func (l *SinglyLinkedList[T]) Front() (T, error) {
	if l.head == none {
		var zero T
		return zero, ErrEmptyList
	}
	return l.nodes.read(l.head)
}

// Back returns the value at the tail of the list.
func (l *SinglyLinkedList[T]) Back() (T, error) {
	if l.tail == none {
		var zero T
		return zero, ErrEmptyList
	}
	return l.nodes.read(l.tail)
}

// nodeAt walks index links from the head. The index must be in range.
func (l *SinglyLinkedList[T]) nodeAt(index int) handle {
	n := l.head
	for i := 0; i < index; i++ {
		n = l.nodes.at(n).next
	}
	return n
}

// Get returns the value at index. O(n).
func (l *SinglyLinkedList[T]) Get(index int) (T, error) {
	if index < 0 || index >= l.length {
		var zero T
		return zero, indexError(index, l.length)
	}
	return l.nodes.read(l.nodeAt(index))
}

// InsertAt inserts a value so that it ends up at index. Index may equal Len.
func (l *SinglyLinkedList[T]) InsertAt(index int, value T) error {
	switch {
	case index < 0 || index > l.length:
		return indexError(index, l.length)
	case index == 0:
		l.PushFront(value)
	case index == l.length:
		l.PushBack(value)
	default:
		prev := l.nodeAt(index - 1)
		n := l.nodes.alloc(value)
		p := l.nodes.at(prev)
		l.nodes.at(n).next = p.next
		p.next = n
		l.length++
	}
	return nil
}

// Delete removes and returns the value at index.
func (l *SinglyLinkedList[T]) Delete(index int) (T, error) {
	var zero T
	if index < 0 || index >= l.length {
		return zero, indexError(index, l.length)
	}
	if index == 0 {
		return l.PopFront()
	}
	prev := l.nodeAt(index - 1)
	n := l.nodes.at(prev).next
	if err := l.nodes.checkFree(n); err != nil {
		return zero, err
	}
	l.nodes.at(prev).next = l.nodes.at(n).next
	if n == l.tail {
		l.tail = prev
	}
	l.length--
	return l.nodes.release(n), nil
}

// Update mutably borrows the value at index for the duration of fn. The
// change is kept only when fn returns nil.
func (l *SinglyLinkedList[T]) Update(index int, fn func(*T) error) error {
	if index < 0 || index >= l.length {
		return indexError(index, l.length)
	}
	return l.nodes.borrowMut(l.nodeAt(index), fn)
}

// Len returns the number of elements in the list.
func (l *SinglyLinkedList[T]) Len() int {
	return l.length
}

// IsEmpty reports whether the list has no elements.
func (l *SinglyLinkedList[T]) IsEmpty() bool {
	return l.length == 0
}

// Clear removes all elements from the list.
func (l *SinglyLinkedList[T]) Clear() {
	l.head = none
	l.tail = none
	l.length = 0
	l.nodes.reset()
}

// Values iterates from head to tail, skipping nodes that are mutably borrowed.
func (l *SinglyLinkedList[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head; l.nodes.valid(n); n = l.nodes.at(n).next {
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
func (l *SinglyLinkedList[T]) Slice() []T {
	values := make([]T, 0, l.length)
	for v := range l.Values() {
		values = append(values, v)
	}
	return values
}
