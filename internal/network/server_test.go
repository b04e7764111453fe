package network

import (
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
	"github.com/vskvj3/linkedlists/internal/core"
)

type client struct {
	conn    net.Conn
	encoder *msgpack.Encoder
	decoder *msgpack.Decoder
}

func (c *client) send(t *testing.T, command map[string]interface{}) map[string]interface{} {
	t.Helper()
	require.NoError(t, c.conn.SetDeadline(time.Now().Add(5*time.Second)))
	require.NoError(t, c.encoder.Encode(command), "failed to send command")

	var response map[string]interface{}
	require.NoError(t, c.decoder.Decode(&response), "failed to read response")
	return response
}

func startServer(t *testing.T) *client {
	t.Helper()
	handler := core.NewCommandHandler(core.NewDatabase(16), nil)
	server, err := NewServer("0", handler)
	require.NoError(t, err)

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go server.Serve(listener)
	t.Cleanup(func() {
		server.Close()
		listener.Close()
	})

	conn, err := net.Dial("tcp", listener.Addr().String())
	require.NoError(t, err, "failed to connect to server")
	t.Cleanup(func() { conn.Close() })

	return &client{conn: conn, encoder: msgpack.NewEncoder(conn), decoder: msgpack.NewDecoder(conn)}
}

func TestServer(t *testing.T) {
	c := startServer(t)

	t.Run("PING", func(t *testing.T) {
		response := c.send(t, map[string]interface{}{"command": "PING"})
		assert.Equal(t, "OK", response["status"])
		assert.Equal(t, "PONG", response["message"])
	})

	t.Run("push back then index", func(t *testing.T) {
		for _, v := range []string{"1", "2", "3"} {
			response := c.send(t, map[string]interface{}{"command": "RPUSH", "key": "nums", "value": v})
			require.Equal(t, "OK", response["status"], "%v", response)
		}
		for i, want := range []string{"1", "2", "3"} {
			response := c.send(t, map[string]interface{}{"command": "LINDEX", "key": "nums", "index": i})
			assert.Equal(t, want, response["value"])
		}
		response := c.send(t, map[string]interface{}{"command": "LLEN", "key": "nums"})
		assert.EqualValues(t, 3, response["value"])

		response = c.send(t, map[string]interface{}{"command": "RPOP", "key": "nums"})
		assert.Equal(t, "3", response["value"])
		response = c.send(t, map[string]interface{}{"command": "LLEN", "key": "nums"})
		assert.EqualValues(t, 2, response["value"])
	})

	t.Run("LRANGE", func(t *testing.T) {
		response := c.send(t, map[string]interface{}{"command": "LRANGE", "key": "nums"})
		assert.Equal(t, []interface{}{"1", "2"}, response["value"])
	})

	t.Run("LPOP command with empty list should return ERROR", func(t *testing.T) {
		response := c.send(t, map[string]interface{}{"command": "LPOP", "key": "emptyList"})
		assert.Equal(t, "ERROR", response["status"])
		assert.Contains(t, response["message"], "list is empty")
	})

	t.Run("LINDEX out of range should return ERROR", func(t *testing.T) {
		response := c.send(t, map[string]interface{}{"command": "LINDEX", "key": "nums", "index": 5})
		assert.Equal(t, "ERROR", response["status"])
		assert.Contains(t, response["message"], "index out of range")
	})

	t.Run("connection survives errors", func(t *testing.T) {
		response := c.send(t, map[string]interface{}{"command": "ECHO", "message": "still here"})
		assert.Equal(t, "still here", response["message"])
	})
}

func TestNewServerRequiresDatabase(t *testing.T) {
	_, err := NewServer("0", &core.CommandHandler{})
	assert.Error(t, err)
}
