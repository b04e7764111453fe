package datastructures

type lruEntry[K comparable, V any] struct {
	key   K
	value V
}

// LRU is a fixed-capacity cache that evicts the least recently used key.
// Recency order is kept in a DoublyLinkedList, most recent at the head, and
// the index maps each key to its node so every operation is O(1).
type LRU[K comparable, V any] struct {
	capacity int
	order    DoublyLinkedList[lruEntry[K, V]]
	index    map[K]handle
}

// NewLRU creates a cache holding at most capacity keys.
func NewLRU[K comparable, V any](capacity int) *LRU[K, V] {
	if capacity <= 0 {
		panic("capacity must be greater than 0")
	}
	return &LRU[K, V]{
		capacity: capacity,
		index:    make(map[K]handle, capacity),
	}
}

// Add stores value under key and marks it most recently used. When this
// pushes the cache over capacity the least recently used key is evicted and
// returned with evicted set to true.
func (c *LRU[K, V]) Add(key K, value V) (evictedKey K, evicted bool) {
	if n, ok := c.index[key]; ok {
		c.order.nodes.at(n).value.value = value
		c.order.moveToFront(n)
		return evictedKey, false
	}

	c.order.PushFront(lruEntry[K, V]{key: key, value: value})
	c.index[key] = c.order.head

	if c.order.Len() > c.capacity {
		oldest, err := c.order.PopBack()
		if err == nil {
			delete(c.index, oldest.key)
			return oldest.key, true
		}
	}
	return evictedKey, false
}

// Get returns the value for key and marks it most recently used.
func (c *LRU[K, V]) Get(key K) (V, bool) {
	n, ok := c.index[key]
	if !ok {
		var zero V
		return zero, false
	}
	c.order.moveToFront(n)
	return c.order.nodes.at(n).value.value, true
}

// Peek returns the value for key without changing its recency.
func (c *LRU[K, V]) Peek(key K) (V, bool) {
	n, ok := c.index[key]
	if !ok {
		var zero V
		return zero, false
	}
	return c.order.nodes.at(n).value.value, true
}

// Remove drops key from the cache. It reports whether the key was present.
func (c *LRU[K, V]) Remove(key K) bool {
	n, ok := c.index[key]
	if !ok {
		return false
	}
	delete(c.index, key)
	_, err := c.order.remove(n)
	return err == nil
}

// Len returns the number of cached keys.
func (c *LRU[K, V]) Len() int {
	return c.order.Len()
}

// Keys returns the cached keys from most to least recently used.
func (c *LRU[K, V]) Keys() []K {
	keys := make([]K, 0, c.order.Len())
	for e := range c.order.Values() {
		keys = append(keys, e.key)
	}
	return keys
}
