package datastructures

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDequeGrows(t *testing.T) {
	d := NewDeque[int](2)
	d.PushBack(2)
	d.PushFront(1)
	d.PushBack(3)
	d.PushFront(0)
	require.Equal(t, 4, d.Size())

	for want := 0; want < 4; want++ {
		got, err := d.PopFront()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	assert.True(t, d.Empty())
}

func TestDequeEmpty(t *testing.T) {
	var d Deque[string]
	_, err := d.PopFront()
	assert.ErrorIs(t, err, ErrEmptyList)
	_, err = d.PopBack()
	assert.ErrorIs(t, err, ErrEmptyList)
	_, err = d.Front()
	assert.ErrorIs(t, err, ErrEmptyList)
	_, err = d.Back()
	assert.ErrorIs(t, err, ErrEmptyList)

	d.PushBack("x")
	front, err := d.Front()
	require.NoError(t, err)
	back, err := d.Back()
	require.NoError(t, err)
	assert.Equal(t, "x", front)
	assert.Equal(t, "x", back)
}

func TestDequeWrapAround(t *testing.T) {
	d := NewDeque[int](3)
	for i := 0; i < 10; i++ {
		d.PushBack(i)
		if i%2 == 1 {
			_, err := d.PopFront()
			require.NoError(t, err)
		}
	}
	back, err := d.PopBack()
	require.NoError(t, err)
	assert.Equal(t, 9, back)
	front, err := d.Front()
	require.NoError(t, err)
	assert.Equal(t, 5, front)
	assert.Equal(t, 4, d.Size())
}
