package persistence

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogAndLoadRequests(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "commands.log")
	p, err := NewPersistence(path)
	require.NoError(t, err)
	defer p.Close()

	require.NoError(t, p.LogRequest(map[string]interface{}{"command": "RPUSH", "key": "l", "value": "a"}))
	require.NoError(t, p.LogRequest(map[string]interface{}{"command": "LINSERT", "key": "l", "index": 0, "value": "b"}))

	requests, err := p.LoadRequests()
	require.NoError(t, err)
	require.Len(t, requests, 2)
	assert.Equal(t, "RPUSH", requests[0]["command"])
	assert.Equal(t, "a", requests[0]["value"])
	assert.Equal(t, "LINSERT", requests[1]["command"])
	assert.EqualValues(t, 0, requests[1]["index"])

	// Appending after a load still goes to the end.
	require.NoError(t, p.LogRequest(map[string]interface{}{"command": "LPOP", "key": "l"}))
	requests, err = p.LoadRequests()
	require.NoError(t, err)
	require.Len(t, requests, 3)
	assert.Equal(t, "LPOP", requests[2]["command"])
}

func TestLoadRequestsEmptyLog(t *testing.T) {
	p, err := NewPersistence(filepath.Join(t.TempDir(), "commands.log"))
	require.NoError(t, err)
	defer p.Close()

	requests, err := p.LoadRequests()
	require.NoError(t, err)
	assert.Empty(t, requests)
}

func TestLoadRequestsIgnoresTornTail(t *testing.T) {
	path := filepath.Join(t.TempDir(), "commands.log")
	p, err := NewPersistence(path)
	require.NoError(t, err)
	require.NoError(t, p.LogRequest(map[string]interface{}{"command": "SPUSH", "key": "s", "value": "x"}))
	require.NoError(t, p.Close())

	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0644)
	require.NoError(t, err)
	_, err = f.Write([]byte{0x10, 0x00, 0x00, 0x00, 0x81})
	require.NoError(t, err)
	require.NoError(t, f.Close())

	p, err = NewPersistence(path)
	require.NoError(t, err)
	defer p.Close()
	requests, err := p.LoadRequests()
	require.NoError(t, err)
	require.Len(t, requests, 1)
	assert.Equal(t, "SPUSH", requests[0]["command"])
}

func TestLoadRequestsDetectsBadMarker(t *testing.T) {
	path := filepath.Join(t.TempDir(), "commands.log")
	require.NoError(t, os.WriteFile(path, []byte{0x01, 0x00, 0x00, 0x00, 0x80, 'B', 'A', 'D', '!'}, 0644))

	p, err := NewPersistence(path)
	require.NoError(t, err)
	defer p.Close()
	_, err = p.LoadRequests()
	assert.ErrorIs(t, err, ErrCorruptRecord)
}

func TestLoadRequestsRejectsOversizedLength(t *testing.T) {
	path := filepath.Join(t.TempDir(), "commands.log")
	require.NoError(t, os.WriteFile(path, []byte{0xff, 0xff, 0xff, 0x7f, 0x80, 'E', 'O', 'F', 0x00}, 0644))

	p, err := NewPersistence(path)
	require.NoError(t, err)
	defer p.Close()
	_, err = p.LoadRequests()
	assert.ErrorIs(t, err, ErrCorruptRecord)
}

func TestLogRequestRejectsOversizedRequest(t *testing.T) {
	p, err := NewPersistence(filepath.Join(t.TempDir(), "commands.log"))
	require.NoError(t, err)
	defer p.Close()

	big := strings.Repeat("x", maxRecordSize+1)
	err = p.LogRequest(map[string]interface{}{"command": "RPUSH", "key": "l", "value": big})
	assert.ErrorIs(t, err, ErrRecordTooLarge)

	requests, err := p.LoadRequests()
	require.NoError(t, err)
	assert.Empty(t, requests)
}
