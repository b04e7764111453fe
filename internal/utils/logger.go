package utils

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
)

// Log levels
const (
	INFO  = "INFO"
	WARN  = "WARN"
	ERROR = "ERROR"
	DEBUG = "DEBUG"
)

var (
	instance *Logger
	once     sync.Once
	mutex    sync.Mutex
)

// Logger struct
type Logger struct {
	infoLogger  *log.Logger
	warnLogger  *log.Logger
	errorLogger *log.Logger
	debugLogger *log.Logger
}

// getDefaultLogFilePath returns the default log file path inside the data directory
func getDefaultLogFilePath() string {
	logDir := DefaultDataDir()
	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.Fatalf("Failed to create log directory: %v", err)
	}
	return filepath.Join(logDir, "linkedlists.log")
}

func levelLogger(w io.Writer, level string) *log.Logger {
	return log.New(w, "["+level+"] ", log.Ldate|log.Ltime)
}

func newLogger(out io.Writer, debugOut io.Writer) *Logger {
	return &Logger{
		infoLogger:  levelLogger(out, INFO),
		warnLogger:  levelLogger(out, WARN),
		errorLogger: levelLogger(out, ERROR),
		debugLogger: levelLogger(debugOut, DEBUG),
	}
}

// NewLogger creates a new logger instance (singleton)
func NewLogger(logFilePath string, debugMode bool) *Logger {
	once.Do(func() {
		if logFilePath == "" {
			logFilePath = getDefaultLogFilePath()
		}

		// Open the log file
		file, err := os.OpenFile(logFilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Fatalf("Failed to open log file: %v", err)
		}

		// Create a multi-writer to log to both the file and console
		multiWriter := io.MultiWriter(file, os.Stdout)

		var debugWriter io.Writer
		if debugMode {
			debugWriter = multiWriter
		} else {
			debugWriter = file
		}

		mutex.Lock()
		instance = newLogger(multiWriter, debugWriter)
		mutex.Unlock()
	})
	return GetLogger()
}

// GetLogger retrieves the singleton logger instance. Without a prior call to
// NewLogger it falls back to a console logger that drops debug output.
func GetLogger() *Logger {
	mutex.Lock()
	defer mutex.Unlock()
	if instance == nil {
		instance = newLogger(os.Stdout, io.Discard)
	}
	return instance
}

// Logging methods
func (l *Logger) Info(message string) {
	l.infoLogger.Println(message)
}

func (l *Logger) Warn(message string) {
	l.warnLogger.Println(message)
}

func (l *Logger) Error(message string) {
	l.errorLogger.Println(message)
}

func (l *Logger) Debug(message string) {
	l.debugLogger.Println(message)
}
