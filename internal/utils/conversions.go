package utils

import (
	"bytes"
	"math"
	"strconv"

	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack/v5"
)

// EncodeResponse serializes a response map into a byte slice
func EncodeResponse(response map[string]interface{}) ([]byte, error) {
	return msgpack.Marshal(response)
}

// DecodeRequest deserializes a byte slice into a request map
func DecodeRequest(data []byte) (map[string]interface{}, error) {
	var request map[string]interface{}
	err := msgpack.Unmarshal(data, &request)
	return request, err
}

// EncodeRequest serializes a request map into a byte slice
func EncodeRequest(request map[string]interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetSortMapKeys(true)
	if err := enc.Encode(request); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ToInt converts a msgpack-decoded number, or a numeric string, to an int.
// msgpack picks the smallest integer type that fits, so every width has to
// be accepted.
func ToInt(value interface{}) (int, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case int8:
		return int(v), nil
	case int16:
		return int(v), nil
	case int32:
		return int(v), nil
	case int64:
		if v < math.MinInt || v > math.MaxInt {
			return 0, errors.Errorf("not an integer: %d overflows int", v)
		}
		return int(v), nil
	case uint8:
		return int(v), nil
	case uint16:
		return int(v), nil
	case uint32:
		if uint64(v) > math.MaxInt {
			return 0, errors.Errorf("not an integer: %d overflows int", v)
		}
		return int(v), nil
	case uint64:
		if v > math.MaxInt {
			return 0, errors.Errorf("not an integer: %d overflows int", v)
		}
		return int(v), nil
	case string:
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0, errors.Wrapf(err, "not an integer: %q", v)
		}
		return n, nil
	default:
		return 0, errors.Errorf("not an integer: %v (%T)", value, value)
	}
}
