package persistence

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
	"github.com/vskvj3/linkedlists/internal/utils"
)

// endMarker closes every record ("EOF\0").
var endMarker = []byte{0x45, 0x4F, 0x46, 0x00}

// maxRecordSize bounds one encoded request, so a damaged length prefix
// cannot make replay allocate gigabytes.
const maxRecordSize = 16 << 20

var (
	// ErrCorruptRecord is returned when a record in the log cannot be read back.
	ErrCorruptRecord = errors.New("corrupt record in command log")
	// ErrRecordTooLarge is returned when a request encodes to more than maxRecordSize bytes.
	ErrRecordTooLarge = errors.New("request too large for command log")
)

// Persistence is an append-only log of write commands. Each record is a
// little-endian int32 length, the msgpack-encoded request and an end marker.
type Persistence struct {
	mu   sync.Mutex
	file *os.File
}

// NewPersistence opens (creating if needed) the log at path.
func NewPersistence(path string) (*Persistence, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, errors.Wrap(err, "create persistence directory")
	}

	// Open the file in append mode, create if needed
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return nil, errors.Wrap(err, "open persistence log")
	}

	return &Persistence{file: file}, nil
}

// LogRequest writes a request to disk before it is applied.
func (p *Persistence) LogRequest(req map[string]interface{}) error {
	body, err := utils.EncodeRequest(req)
	if err != nil {
		return errors.Wrap(err, "encode request")
	}
	if len(body) > maxRecordSize {
		return ErrRecordTooLarge
	}

	buf := new(bytes.Buffer)
	if err := binary.Write(buf, binary.LittleEndian, int32(len(body))); err != nil {
		return err
	}
	buf.Write(body)
	buf.Write(endMarker)

	p.mu.Lock()
	defer p.mu.Unlock()
	if _, err := p.file.Write(buf.Bytes()); err != nil {
		return errors.Wrap(err, "append request")
	}
	return p.file.Sync()
}

// LoadRequests reads every complete record from the log in write order. A
// torn record at the end of the file (a crash mid-write) is ignored.
func (p *Persistence) LoadRequests() ([]map[string]interface{}, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	// Move file pointer to start; appends still go to the end
	if _, err := p.file.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}
	info, err := p.file.Stat()
	if err != nil {
		return nil, err
	}
	remaining := info.Size()
	reader := bufio.NewReader(p.file)

	var requests []map[string]interface{}
	for {
		var length int32
		if err := binary.Read(reader, binary.LittleEndian, &length); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				break
			}
			return nil, err
		}
		if length < 0 || length > maxRecordSize {
			return nil, ErrCorruptRecord
		}
		remaining -= 4
		size := int64(length) + int64(len(endMarker))
		if size > remaining {
			// Torn tail.
			break
		}
		remaining -= size

		record := make([]byte, size)
		if _, err := io.ReadFull(reader, record); err != nil {
			if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		if !bytes.Equal(record[length:], endMarker) {
			return nil, ErrCorruptRecord
		}

		req, err := utils.DecodeRequest(record[:length])
		if err != nil {
			return nil, errors.Wrap(ErrCorruptRecord, err.Error())
		}
		requests = append(requests, req)
	}

	return requests, nil
}

// Close closes the persistence file.
func (p *Persistence) Close() error {
	return p.file.Close()
}
