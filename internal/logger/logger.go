package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"
)

// LogLevel represents the severity level of a log message
type LogLevel int

// Log levels
const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
)

// Logger handles logging functionalities
type Logger struct {
	level     LogLevel
	logger    *log.Logger
	errLogger *log.Logger // ERROR messages are mirrored here
	file      *os.File
	useColors bool
	now       func() time.Time
}

// levelColors maps log levels to ANSI color codes
var levelColors = map[LogLevel]string{
	DEBUG: "\033[36m", // Cyan
	INFO:  "\033[32m", // Green
	WARN:  "\033[33m", // Yellow
	ERROR: "\033[31m", // Red
}

// levelPrefixes maps log levels to text prefixes
var levelPrefixes = map[LogLevel]string{
	DEBUG: "DEBUG",
	INFO:  "INFO ",
	WARN:  "WARN ",
	ERROR: "ERROR",
}

// ParseLevel maps a level name to a LogLevel, defaulting to INFO
func ParseLevel(levelStr string) LogLevel {
	switch strings.ToLower(strings.TrimSpace(levelStr)) {
	case "debug":
		return DEBUG
	case "warn", "warning":
		return WARN
	case "error":
		return ERROR
	default:
		return INFO
	}
}

// NewLogger creates a console logger. Messages go to stdout and errors are
// mirrored to stderr.
func NewLogger(levelStr string) *Logger {
	logger := New(levelStr, os.Stdout, os.Stderr)

	// Disable colors if not in a terminal
	if fileInfo, err := os.Stdout.Stat(); err == nil && (fileInfo.Mode()&os.ModeCharDevice) != 0 {
		logger.useColors = true
	}

	return logger
}

// New creates a logger writing to out, with ERROR mirrored to errOut.
// errOut may be nil.
func New(levelStr string, out, errOut io.Writer) *Logger {
	l := &Logger{
		level:  ParseLevel(levelStr),
		logger: log.New(out, "", 0), // We'll format the prefix manually
		now:    time.Now,
	}
	if errOut != nil {
		l.errLogger = log.New(errOut, "", 0)
	}
	return l
}

// NewMultiLogger creates a logger that writes to both console and file
func NewMultiLogger(levelStr, filePath string) (*Logger, error) {
	// Create directory if it doesn't exist
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %v", err)
	}

	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %v", err)
	}

	logger := NewLogger(levelStr)
	logger.logger.SetOutput(io.MultiWriter(os.Stdout, file))
	logger.file = file
	// escape codes would end up in the file
	logger.useColors = false

	return logger, nil
}

// emit formats one line with time, level and caller
func (l *Logger) emit(level LogLevel, msg string) {
	if level < l.level {
		return
	}

	// Get caller info; 3 skips emit, the exported wrapper and its helper
	_, file, line, ok := runtime.Caller(3)
	if !ok {
		file = "unknown"
		line = 0
	}
	file = filepath.Base(file)

	now := l.now().Format("2006/01/02 15:04:05")
	prefix := fmt.Sprintf("%s [%s] %s:%d:", now, levelPrefixes[level], file, line)

	if l.useColors {
		prefix = fmt.Sprintf("%s%s%s", levelColors[level], prefix, "\033[0m")
	}

	l.logger.Println(prefix, msg)

	if level == ERROR && l.errLogger != nil {
		l.errLogger.Println(prefix, msg)
	}
}

func (l *Logger) log(level LogLevel, v ...interface{}) {
	l.emit(level, fmt.Sprint(v...))
}

func (l *Logger) logf(level LogLevel, format string, v ...interface{}) {
	l.emit(level, fmt.Sprintf(format, v...))
}

// Debug logs a debug message
func (l *Logger) Debug(v ...interface{}) {
	l.log(DEBUG, v...)
}

// Debugf logs a formatted debug message
func (l *Logger) Debugf(format string, v ...interface{}) {
	l.logf(DEBUG, format, v...)
}

// Info logs an info message
func (l *Logger) Info(v ...interface{}) {
	l.log(INFO, v...)
}

// Infof logs a formatted info message
func (l *Logger) Infof(format string, v ...interface{}) {
	l.logf(INFO, format, v...)
}

// Warn logs a warning message
func (l *Logger) Warn(v ...interface{}) {
	l.log(WARN, v...)
}

// Warnf logs a formatted warning message
func (l *Logger) Warnf(format string, v ...interface{}) {
	l.logf(WARN, format, v...)
}

// Error logs an error message
func (l *Logger) Error(v ...interface{}) {
	l.log(ERROR, v...)
}

// Errorf logs a formatted error message
func (l *Logger) Errorf(format string, v ...interface{}) {
	l.logf(ERROR, format, v...)
}

// SetLevel sets the log level
func (l *Logger) SetLevel(levelStr string) {
	l.level = ParseLevel(levelStr)
}

// Close closes the logger's file if it exists
func (l *Logger) Close() {
	if l.file != nil {
		l.file.Close()
		l.file = nil
	}
}
