package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vskvj3/linkedlists/internal/datastructures"
)

func TestDatabaseDequeCommands(t *testing.T) {
	db := NewDatabase(10)

	_, err := db.RPush("l", "b")
	require.NoError(t, err)
	_, err = db.RPush("l", "c")
	require.NoError(t, err)
	n, err := db.LPush("l", "a")
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	values, err := db.Range("l")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, values)

	v, err := db.Index("l", 1)
	require.NoError(t, err)
	assert.Equal(t, "b", v)

	_, err = db.Index("l", 3)
	assert.ErrorIs(t, err, datastructures.ErrIndexOutOfRange)

	v, err = db.RPop("l")
	require.NoError(t, err)
	assert.Equal(t, "c", v)
	v, err = db.LPop("l")
	require.NoError(t, err)
	assert.Equal(t, "a", v)

	n, err = db.Insert("l", 0, "z")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	v, err = db.DeleteAt("l", 1)
	require.NoError(t, err)
	assert.Equal(t, "b", v)
	v, err = db.LPop("l")
	require.NoError(t, err)
	assert.Equal(t, "z", v)

	// Emptied lists disappear.
	assert.Equal(t, 0, db.Keys())
	_, err = db.LPop("l")
	assert.ErrorIs(t, err, datastructures.ErrEmptyList)
}

func TestDatabaseStackCommands(t *testing.T) {
	db := NewDatabase(10)
	for _, v := range []string{"1", "2", "3"} {
		_, err := db.SPush("s", v)
		require.NoError(t, err)
	}

	top, err := db.SPeek("s")
	require.NoError(t, err)
	assert.Equal(t, "3", top)

	v, err := db.SGet("s", 2)
	require.NoError(t, err)
	assert.Equal(t, "1", v)

	n, err := db.SLen("s")
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	v, err = db.SPop("s")
	require.NoError(t, err)
	assert.Equal(t, "3", v)

	_, err = db.SPeek("missing")
	assert.ErrorIs(t, err, datastructures.ErrEmptyList)
}

func TestDatabaseWrongType(t *testing.T) {
	db := NewDatabase(10)
	_, err := db.SPush("k", "v")
	require.NoError(t, err)

	_, err = db.RPush("k", "v")
	assert.ErrorIs(t, err, ErrWrongType)
	_, err = db.Len("k")
	assert.ErrorIs(t, err, ErrWrongType)

	_, err = db.LPush("", "v")
	assert.ErrorIs(t, err, ErrEmptyKey)

	assert.True(t, db.Del("k"))
	assert.False(t, db.Del("k"))
	_, err = db.RPush("k", "v")
	assert.NoError(t, err)
}

func TestDatabaseDropsLeastRecentlyWritten(t *testing.T) {
	db := NewDatabase(2)
	_, _ = db.RPush("a", "1")
	_, _ = db.SPush("b", "1")
	_, _ = db.RPush("a", "2")
	_, _ = db.RPush("c", "1")

	assert.Equal(t, 2, db.Keys())
	n, err := db.SLen("b")
	require.NoError(t, err)
	assert.Equal(t, 0, n, "b was the least recently written")

	n, err = db.Len("a")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}
