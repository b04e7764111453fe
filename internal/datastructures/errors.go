package datastructures

import "github.com/pkg/errors"

var (
	// ErrEmptyList is returned when an operation needs a head or tail node and there is none.
	ErrEmptyList = errors.New("list is empty")
	// ErrIndexOutOfRange is returned for an index outside the list.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrBorrowConflict is returned when a node is accessed while it is mutably borrowed.
	ErrBorrowConflict = errors.New("node is already mutably borrowed")
)

func indexError(index, length int) error {
	return errors.Wrapf(ErrIndexOutOfRange, "index %d, length %d", index, length)
}
