package core

import (
	"sync"

	"github.com/pkg/errors"
	"github.com/vskvj3/linkedlists/internal/datastructures"
	"github.com/vskvj3/linkedlists/internal/utils"
)

var (
	// ErrEmptyKey is returned for commands without a key name.
	ErrEmptyKey = errors.New("key cannot be empty")
	// ErrWrongType is returned when a deque command targets a stack key or the other way round.
	ErrWrongType = errors.New("operation against a key holding the wrong kind of list")
)

// Database holds named lists: doubly linked lists for the deque commands and
// singly linked lists for the stack commands. A missing key behaves like an
// empty list. When more than maxLists keys exist the least recently written
// one is dropped.
type Database struct {
	mu      sync.Mutex
	lists   map[string]*datastructures.DoublyLinkedList[string]
	stacks  map[string]*datastructures.SinglyLinkedList[string]
	written *datastructures.LRU[string, struct{}]
}

// Create a new database instance
func NewDatabase(maxLists int) *Database {
	return &Database{
		lists:   make(map[string]*datastructures.DoublyLinkedList[string]),
		stacks:  make(map[string]*datastructures.SinglyLinkedList[string]),
		written: datastructures.NewLRU[string, struct{}](maxLists),
	}
}

// touch records a write to key and drops the key it displaces, if any.
func (db *Database) touch(key string) {
	evicted, ok := db.written.Add(key, struct{}{})
	if !ok {
		return
	}
	delete(db.lists, evicted)
	delete(db.stacks, evicted)
	utils.GetLogger().Info("Dropped least recently written list: " + evicted)
}

// forget removes an emptied key.
func (db *Database) forget(key string) {
	delete(db.lists, key)
	delete(db.stacks, key)
	db.written.Remove(key)
}

func (db *Database) list(key string, create bool) (*datastructures.DoublyLinkedList[string], error) {
	if key == "" {
		return nil, ErrEmptyKey
	}
	if _, ok := db.stacks[key]; ok {
		return nil, ErrWrongType
	}
	l, ok := db.lists[key]
	if !ok {
		l = datastructures.NewDoublyLinkedList[string]()
		if create {
			db.lists[key] = l
		}
	}
	return l, nil
}

func (db *Database) stack(key string, create bool) (*datastructures.SinglyLinkedList[string], error) {
	if key == "" {
		return nil, ErrEmptyKey
	}
	if _, ok := db.lists[key]; ok {
		return nil, ErrWrongType
	}
	s, ok := db.stacks[key]
	if !ok {
		s = datastructures.NewSinglyLinkedList[string]()
		if create {
			db.stacks[key] = s
		}
	}
	return s, nil
}

// LPush adds a value to the head of the list at key and returns its length.
func (db *Database) LPush(key, value string) (int, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	l, err := db.list(key, true)
	if err != nil {
		return 0, err
	}
	l.PushFront(value)
	db.touch(key)
	return l.Len(), nil
}

// RPush adds a value to the tail of the list at key and returns its length.
func (db *Database) RPush(key, value string) (int, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	l, err := db.list(key, true)
	if err != nil {
		return 0, err
	}
	l.PushBack(value)
	db.touch(key)
	return l.Len(), nil
}

// LPop removes and returns the head of the list at key.
func (db *Database) LPop(key string) (string, error) {
	return db.pop(key, (*datastructures.DoublyLinkedList[string]).PopFront)
}

// RPop removes and returns the tail of the list at key.
func (db *Database) RPop(key string) (string, error) {
	return db.pop(key, (*datastructures.DoublyLinkedList[string]).PopBack)
}

func (db *Database) pop(key string, pop func(*datastructures.DoublyLinkedList[string]) (string, error)) (string, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	l, err := db.list(key, false)
	if err != nil {
		return "", err
	}
	value, err := pop(l)
	if err != nil {
		return "", err
	}
	if l.IsEmpty() {
		db.forget(key)
	} else {
		db.touch(key)
	}
	return value, nil
}

// Index returns the element at index of the list at key.
func (db *Database) Index(key string, index int) (string, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	l, err := db.list(key, false)
	if err != nil {
		return "", err
	}
	return l.Get(index)
}

// Len returns the length of the list at key.
func (db *Database) Len(key string) (int, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	l, err := db.list(key, false)
	if err != nil {
		return 0, err
	}
	return l.Len(), nil
}

// Insert places value at index of the list at key.
func (db *Database) Insert(key string, index int, value string) (int, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	l, err := db.list(key, false)
	if err != nil {
		return 0, err
	}
	if err := l.InsertAt(index, value); err != nil {
		return 0, err
	}
	db.lists[key] = l
	db.touch(key)
	return l.Len(), nil
}

// DeleteAt removes and returns the element at index of the list at key.
func (db *Database) DeleteAt(key string, index int) (string, error) {
	return db.pop(key, func(l *datastructures.DoublyLinkedList[string]) (string, error) {
		return l.Delete(index)
	})
}

// Range returns the whole list at key, head first.
func (db *Database) Range(key string) ([]string, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	l, err := db.list(key, false)
	if err != nil {
		return nil, err
	}
	return l.Slice(), nil
}

// SPush pushes a value on the stack at key and returns its depth.
func (db *Database) SPush(key, value string) (int, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	s, err := db.stack(key, true)
	if err != nil {
		return 0, err
	}
	s.PushFront(value)
	db.touch(key)
	return s.Len(), nil
}

// SPop pops the top of the stack at key.
func (db *Database) SPop(key string) (string, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	s, err := db.stack(key, false)
	if err != nil {
		return "", err
	}
	value, err := s.PopFront()
	if err != nil {
		return "", err
	}
	if s.IsEmpty() {
		db.forget(key)
	} else {
		db.touch(key)
	}
	return value, nil
}

// SPeek returns the top of the stack at key without removing it.
func (db *Database) SPeek(key string) (string, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	s, err := db.stack(key, false)
	if err != nil {
		return "", err
	}
	return s.Front()
}

// SGet returns the element depth entries below the top of the stack at key.
func (db *Database) SGet(key string, depth int) (string, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	s, err := db.stack(key, false)
	if err != nil {
		return "", err
	}
	return s.Get(depth)
}

// SLen returns the depth of the stack at key.
func (db *Database) SLen(key string) (int, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	s, err := db.stack(key, false)
	if err != nil {
		return 0, err
	}
	return s.Len(), nil
}

// Del removes key of either kind. It reports whether the key existed.
func (db *Database) Del(key string) bool {
	db.mu.Lock()
	defer db.mu.Unlock()
	_, isList := db.lists[key]
	_, isStack := db.stacks[key]
	if !isList && !isStack {
		return false
	}
	db.forget(key)
	return true
}

// Keys returns the number of stored lists of both kinds.
func (db *Database) Keys() int {
	db.mu.Lock()
	defer db.mu.Unlock()
	return len(db.lists) + len(db.stacks)
}
