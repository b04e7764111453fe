package datastructures

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLRUEvictsLeastRecentlyUsed(t *testing.T) {
	c := NewLRU[string, int](2)
	_, evicted := c.Add("google", 1)
	assert.False(t, evicted)
	_, evicted = c.Add("yahoo", 2)
	assert.False(t, evicted)

	// Reading google makes yahoo the oldest.
	v, ok := c.Get("google")
	require.True(t, ok)
	assert.Equal(t, 1, v)

	key, evicted := c.Add("bing", 3)
	require.True(t, evicted)
	assert.Equal(t, "yahoo", key)

	_, ok = c.Get("yahoo")
	assert.False(t, ok)
	assert.Equal(t, []string{"bing", "google"}, c.Keys())
	checkLinks(t, &c.order)
}

func TestLRUUpdateExisting(t *testing.T) {
	c := NewLRU[string, int](2)
	c.Add("a", 1)
	c.Add("b", 2)
	_, evicted := c.Add("a", 10)
	assert.False(t, evicted)
	assert.Equal(t, 2, c.Len())
	assert.Equal(t, []string{"a", "b"}, c.Keys())

	v, ok := c.Peek("a")
	require.True(t, ok)
	assert.Equal(t, 10, v)
}

func TestLRUPeekDoesNotTouch(t *testing.T) {
	c := NewLRU[int, string](2)
	c.Add(1, "one")
	c.Add(2, "two")
	_, ok := c.Peek(1)
	require.True(t, ok)

	key, evicted := c.Add(3, "three")
	require.True(t, evicted)
	assert.Equal(t, 1, key)
}

func TestLRURemove(t *testing.T) {
	c := NewLRU[string, int](3)
	c.Add("a", 1)
	c.Add("b", 2)
	assert.True(t, c.Remove("a"))
	assert.False(t, c.Remove("a"))
	assert.Equal(t, []string{"b"}, c.Keys())
	checkLinks(t, &c.order)
}

func TestNewLRUPanicsOnZeroCapacity(t *testing.T) {
	assert.Panics(t, func() { NewLRU[string, int](0) })
}
