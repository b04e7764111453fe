package network

import (
	"errors"
	"fmt"
	"io"
	"net"
	"sync"

	"github.com/vmihailenco/msgpack/v5"
	"github.com/vskvj3/linkedlists/internal/core"
	"github.com/vskvj3/linkedlists/internal/utils"
)

type Server struct {
	CommandHandler *core.CommandHandler
	Port           string

	mu       sync.Mutex
	listener net.Listener
}

// NewServer prepares a server for handler, replaying persisted commands first.
func NewServer(port string, handler *core.CommandHandler) (*Server, error) {
	logger := utils.GetLogger()

	if handler == nil || handler.Database == nil {
		return nil, fmt.Errorf("database is not initialized")
	}

	if err := handler.Rebuild(); err != nil {
		logger.Warn("Could not read from persistence: " + err.Error())
	} else if handler.Persistence != nil {
		logger.Info("Loaded data from persistence")
	}

	logger.Info("TCP server initialized on port " + port)
	return &Server{CommandHandler: handler, Port: port}, nil
}

// Start binds the configured port and serves clients until Close is called.
func (s *Server) Start() error {
	logger := utils.GetLogger()

	// Attempt to bind to the configured port
	listener, err := net.Listen("tcp", ":"+s.Port)
	if err != nil {
		logger.Warn("Port " + s.Port + " unavailable. Selecting a random port...")
		listener, err = net.Listen("tcp", ":0")
		if err != nil {
			logger.Error("Error starting server: " + err.Error())
			return err
		}
	}
	return s.Serve(listener)
}

// Serve accepts connections on listener, one goroutine per client.
func (s *Server) Serve(listener net.Listener) error {
	logger := utils.GetLogger()

	s.mu.Lock()
	s.listener = listener
	s.mu.Unlock()
	defer listener.Close()
	logger.Info("Server is listening on " + listener.Addr().String())

	// Accept incoming connections
	for {
		conn, err := listener.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return nil
			}
			logger.Error("Error accepting connection: " + err.Error())
			continue
		}
		logger.Info("Accepted client: " + conn.RemoteAddr().String())
		go s.HandleConnection(conn)
	}
}

// Close stops accepting connections.
func (s *Server) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return nil
	}
	return s.listener.Close()
}

// Handle an incoming client connection
func (s *Server) HandleConnection(conn net.Conn) {
	logger := utils.GetLogger()
	defer func() {
		logger.Info("Client disconnected: " + conn.RemoteAddr().String())
		conn.Close()
	}()

	decoder := msgpack.NewDecoder(conn)
	for {
		var request map[string]interface{}
		if err := decoder.Decode(&request); err != nil {
			if errors.Is(err, io.EOF) {
				logger.Info("Client closed the connection: " + conn.RemoteAddr().String())
				return
			}
			// The stream cannot be resynchronised after a bad frame.
			logger.Error("Failed to decode request: " + err.Error())
			s.sendError(conn, "Malformed request")
			return
		}

		logger.Debug("Received request from client: " + conn.RemoteAddr().String())

		response, err := s.CommandHandler.HandleCommand(request)
		if err != nil {
			s.sendError(conn, err.Error())
			continue
		}
		s.sendResponse(conn, response)
	}
}

// sendResponse serializes the response and sends it to the client
func (s *Server) sendResponse(conn net.Conn, response map[string]interface{}) {
	logger := utils.GetLogger()
	data, err := utils.EncodeResponse(response)
	if err != nil {
		logger.Error("Failed to encode response: " + err.Error())
		return
	}
	_, err = conn.Write(data)
	if err != nil {
		logger.Error("Failed to send response: " + err.Error())
	}
}

// sendError sends an error message to the client
func (s *Server) sendError(conn net.Conn, errorMessage string) {
	response := map[string]interface{}{"status": "ERROR", "message": errorMessage}
	s.sendResponse(conn, response)
}
