package core

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/vskvj3/linkedlists/internal/persistence"
	"github.com/vskvj3/linkedlists/internal/utils"
)

// CommandHandler turns decoded requests into database calls.
type CommandHandler struct {
	Database    *Database
	Persistence *persistence.Persistence
}

// Create a new CommandHandler instance. disk may be nil to run without
// persistence.
func NewCommandHandler(db *Database, disk *persistence.Persistence) *CommandHandler {
	return &CommandHandler{Database: db, Persistence: disk}
}

var writeCommands = map[string]bool{
	"LPUSH":   true,
	"RPUSH":   true,
	"PUSH":    true,
	"LPOP":    true,
	"RPOP":    true,
	"LINSERT": true,
	"LDEL":    true,
	"SPUSH":   true,
	"SPOP":    true,
	"DEL":     true,
}

// IsWriteCommand reports whether command changes the database.
func IsWriteCommand(command string) bool {
	return writeCommands[strings.ToUpper(command)]
}

// HandleCommand processes a client request and returns the response to send.
// Write commands are logged to disk before they are applied.
func (h *CommandHandler) HandleCommand(request map[string]interface{}) (map[string]interface{}, error) {
	command, ok := request["command"].(string)
	if !ok {
		return nil, errors.New("Invalid or missing 'command' field")
	}

	if h.Persistence != nil && IsWriteCommand(command) {
		if err := h.Persistence.LogRequest(request); err != nil {
			utils.GetLogger().Error("Request logging to disk failed: " + err.Error())
			return nil, errors.New("Request logging to disk failed")
		}
	}
	return h.apply(strings.ToUpper(command), request)
}

// Rebuild replays the persisted write commands into the database.
func (h *CommandHandler) Rebuild() error {
	if h.Persistence == nil {
		return nil
	}
	logger := utils.GetLogger()

	requests, err := h.Persistence.LoadRequests()
	if err != nil {
		return err
	}
	for _, request := range requests {
		command, _ := request["command"].(string)
		if !IsWriteCommand(command) {
			continue
		}
		// Commands that failed when first run fail again; that is expected.
		if _, err := h.apply(strings.ToUpper(command), request); err != nil {
			logger.Debug(fmt.Sprintf("Replayed %s failed: %v", command, err))
		}
	}
	logger.Info(fmt.Sprintf("Replayed %d commands from persistence", len(requests)))
	return nil
}

func (h *CommandHandler) apply(command string, request map[string]interface{}) (map[string]interface{}, error) {
	db := h.Database

	switch command {
	case "PING":
		return map[string]interface{}{"status": "OK", "message": "PONG"}, nil

	case "ECHO":
		message, ok := request["message"].(string)
		if !ok {
			return nil, errors.New("ECHO requires a 'message' field")
		}
		return map[string]interface{}{"status": "OK", "message": message}, nil

	case "LPUSH", "RPUSH", "PUSH", "SPUSH":
		key, value, err := keyValue(command, request)
		if err != nil {
			return nil, err
		}
		var length int
		switch command {
		case "LPUSH":
			length, err = db.LPush(key, value)
		case "SPUSH":
			length, err = db.SPush(key, value)
		default:
			length, err = db.RPush(key, value)
		}
		if err != nil {
			return nil, err
		}
		return map[string]interface{}{"status": "OK", "value": length}, nil

	case "LPOP", "RPOP", "SPOP", "SPEEK":
		key, err := requireKey(command, request)
		if err != nil {
			return nil, err
		}
		var value string
		switch command {
		case "LPOP":
			value, err = db.LPop(key)
		case "RPOP":
			value, err = db.RPop(key)
		case "SPOP":
			value, err = db.SPop(key)
		default:
			value, err = db.SPeek(key)
		}
		if err != nil {
			return nil, err
		}
		return map[string]interface{}{"status": "OK", "value": value}, nil

	case "LINDEX", "SGET", "LDEL":
		key, err := requireKey(command, request)
		if err != nil {
			return nil, err
		}
		index, err := requireIndex(command, request)
		if err != nil {
			return nil, err
		}
		var value string
		switch command {
		case "LINDEX":
			value, err = db.Index(key, index)
		case "SGET":
			value, err = db.SGet(key, index)
		default:
			value, err = db.DeleteAt(key, index)
		}
		if err != nil {
			return nil, err
		}
		return map[string]interface{}{"status": "OK", "value": value}, nil

	case "LINSERT":
		key, value, err := keyValue(command, request)
		if err != nil {
			return nil, err
		}
		index, err := requireIndex(command, request)
		if err != nil {
			return nil, err
		}
		length, err := db.Insert(key, index, value)
		if err != nil {
			return nil, err
		}
		return map[string]interface{}{"status": "OK", "value": length}, nil

	case "LLEN", "SLEN":
		key, err := requireKey(command, request)
		if err != nil {
			return nil, err
		}
		var length int
		if command == "LLEN" {
			length, err = db.Len(key)
		} else {
			length, err = db.SLen(key)
		}
		if err != nil {
			return nil, err
		}
		return map[string]interface{}{"status": "OK", "value": length}, nil

	case "LRANGE":
		key, err := requireKey(command, request)
		if err != nil {
			return nil, err
		}
		values, err := db.Range(key)
		if err != nil {
			return nil, err
		}
		return map[string]interface{}{"status": "OK", "value": values}, nil

	case "DEL":
		key, err := requireKey(command, request)
		if err != nil {
			return nil, err
		}
		if !db.Del(key) {
			return map[string]interface{}{"status": "NOT_FOUND"}, nil
		}
		return map[string]interface{}{"status": "OK"}, nil

	default:
		return nil, errors.New("Unknown command")
	}
}

func requireKey(command string, request map[string]interface{}) (string, error) {
	key, ok := request["key"].(string)
	if !ok {
		return "", errors.Errorf("%s requires a 'key' field", command)
	}
	return key, nil
}

func keyValue(command string, request map[string]interface{}) (string, string, error) {
	key, keyOk := request["key"].(string)
	value, valueOk := request["value"].(string)
	if !keyOk || !valueOk {
		return "", "", errors.Errorf("%s requires 'key', 'value' fields", command)
	}
	return key, value, nil
}

func requireIndex(command string, request map[string]interface{}) (int, error) {
	raw, ok := request["index"]
	if !ok {
		return 0, errors.Errorf("%s requires an 'index' field (integer)", command)
	}
	index, err := utils.ToInt(raw)
	if err != nil {
		return 0, errors.Wrapf(err, "%s 'index'", command)
	}
	return index, nil
}
