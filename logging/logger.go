package logging

import (
	"fmt"
	"os"
	"runtime"
	"time"
)

// LogLevel represents the severity level of a log entry
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarning
	LevelError
	LevelFatal
)

// String returns the string representation of a log level
func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarning:
		return "WARNING"
	case LevelError:
		return "ERROR"
	case LevelFatal:
		return "FATAL"
	default:
		return "UNKNOWN"
	}
}

// LogField represents a key-value pair for structured logging
type LogField struct {
	Key   string      `json:"key"`
	Value interface{} `json:"value"`
}

// LogEntry represents a single log entry
type LogEntry struct {
	Timestamp time.Time              `json:"timestamp"`
	Level     LogLevel               `json:"level"`
	Message   string                 `json:"message"`
	Fields    map[string]interface{} `json:"fields,omitempty"`
	Caller    string                 `json:"caller,omitempty"`
	Stack     string                 `json:"stack,omitempty"`
	Error     error                  `json:"error,omitempty"`
	Component string                 `json:"component,omitempty"`
}

// Logger defines the interface for structured logging
type Logger interface {
	// Debug logs a debug message
	Debug(msg string, fields ...LogField)

	// Info logs an info message
	Info(msg string, fields ...LogField)

	// Warn logs a warning message
	Warn(msg string, fields ...LogField)

	// Error logs an error message
	Error(msg string, fields ...LogField)

	// Fatal logs a fatal message and exits the program
	Fatal(msg string, fields ...LogField)

	// WithFields returns a new logger with the specified fields
	WithFields(fields ...LogField) Logger

	// WithError returns a new logger with the specified error
	WithError(err error) Logger

	// WithComponent returns a new logger with the specified component
	WithComponent(component string) Logger

	// SetLevel sets the minimum log level
	SetLevel(level LogLevel)

	// GetLevel returns the current minimum log level
	GetLevel() LogLevel
}

// Formatter defines the interface for log formatting
type Formatter interface {
	// Format formats a log entry into a byte slice
	Format(entry *LogEntry) ([]byte, error)

	// GetName returns the name of the formatter
	GetName() string
}

// Writer defines the interface for log output
type Writer interface {
	// Write writes the formatted log entry
	Write(data []byte) error

	// Flush flushes any buffered data
	Flush() error

	// Close closes the writer
	Close() error

	// GetName returns the name of the writer
	GetName() string
}

// DefaultLogger is the default implementation of Logger
type DefaultLogger struct {
	level      LogLevel
	fields     map[string]interface{}
	error      error
	component  string
	formatters []Formatter
	writers    []Writer
	callerSkip int
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() *DefaultLogger {
	return &DefaultLogger{
		level:      LevelInfo,
		fields:     make(map[string]interface{}),
		formatters: []Formatter{NewTextFormatter()},
		writers:    []Writer{NewConsoleWriter()},
		callerSkip: 2,
	}
}

// LoggerConfig contains configuration for the logger
type LoggerConfig struct {
	Level      LogLevel
	Formatters []Formatter
	Writers    []Writer
	CallerSkip int
}

// ApplyLogLevel applies log level from string configuration
func (lc *LoggerConfig) ApplyLogLevel(levelStr string) {
	switch levelStr {
	case "debug":
		lc.Level = LevelDebug
	case "info":
		lc.Level = LevelInfo
	case "warning", "warn":
		lc.Level = LevelWarning
	case "error":
		lc.Level = LevelError
	case "fatal":
		lc.Level = LevelFatal
	default:
		lc.Level = LevelInfo
	}
}

// NewDefaultLoggerWithConfig creates a new default logger with configuration
func NewDefaultLoggerWithConfig(config LoggerConfig) *DefaultLogger {
	logger := &DefaultLogger{
		level:      config.Level,
		fields:     make(map[string]interface{}),
		formatters: config.Formatters,
		writers:    config.Writers,
		callerSkip: config.CallerSkip,
	}

	if logger.formatters == nil {
		logger.formatters = []Formatter{NewTextFormatter()}
	}

	if logger.writers == nil {
		logger.writers = []Writer{NewConsoleWriter()}
	}

	return logger
}

// Debug logs a debug message
func (l *DefaultLogger) Debug(msg string, fields ...LogField) {
	l.log(LevelDebug, msg, fields...)
}

// Info logs an info message
func (l *DefaultLogger) Info(msg string, fields ...LogField) {
	l.log(LevelInfo, msg, fields...)
}

// Warn logs a warning message
func (l *DefaultLogger) Warn(msg string, fields ...LogField) {
	l.log(LevelWarning, msg, fields...)
}

// Error logs an error message
func (l *DefaultLogger) Error(msg string, fields ...LogField) {
	l.log(LevelError, msg, fields...)
}

// Fatal logs a fatal message and exits the program
func (l *DefaultLogger) Fatal(msg string, fields ...LogField) {
	l.log(LevelFatal, msg, fields...)
	l.flush()
	os.Exit(1)
}

// WithFields returns a new logger with the specified fields
func (l *DefaultLogger) WithFields(fields ...LogField) Logger {
	newLogger := l.copy()
	for _, field := range fields {
		newLogger.fields[field.Key] = field.Value
	}
	return newLogger
}

// WithError returns a new logger with the specified error
func (l *DefaultLogger) WithError(err error) Logger {
	newLogger := l.copy()
	newLogger.error = err
	return newLogger
}

// WithComponent returns a new logger with the specified component
func (l *DefaultLogger) WithComponent(component string) Logger {
	newLogger := l.copy()
	newLogger.component = component
	return newLogger
}

// SetLevel sets the minimum log level
func (l *DefaultLogger) SetLevel(level LogLevel) {
	l.level = level
}

// GetLevel returns the current minimum log level
func (l *DefaultLogger) GetLevel() LogLevel {
	return l.level
}

// log creates an entry and hands it to the configured formatters and writers
func (l *DefaultLogger) log(level LogLevel, msg string, fields ...LogField) {
	if level < l.level {
		return
	}

	entry := &LogEntry{
		Timestamp: time.Now(),
		Level:     level,
		Message:   msg,
		Fields:    make(map[string]interface{}),
		Caller:    l.getCaller(),
		Component: l.component,
		Error:     l.error,
	}

	// Add default fields
	for k, v := range l.fields {
		entry.Fields[k] = v
	}

	// Add additional fields
	for _, field := range fields {
		entry.Fields[field.Key] = field.Value
	}

	// Format and write the log entry
	for _, formatter := range l.formatters {
		data, err := formatter.Format(entry)
		if err != nil {
			errorMsg := fmt.Sprintf("Failed to format log entry: %v - Original message: %s\n", err, msg)
			l.writeToAllWriters([]byte(errorMsg))
			continue
		}

		l.writeToAllWriters(data)
	}
}

// writeToAllWriters writes data to all writers
func (l *DefaultLogger) writeToAllWriters(data []byte) {
	for _, writer := range l.writers {
		if err := writer.Write(data); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to write log: %v\n", err)
		}
	}
}

// flush flushes all writers
func (l *DefaultLogger) flush() {
	for _, writer := range l.writers {
		if err := writer.Flush(); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to flush log writer: %v\n", err)
		}
	}
}

// copy creates a copy of the logger
func (l *DefaultLogger) copy() *DefaultLogger {
	newLogger := &DefaultLogger{
		level:      l.level,
		fields:     make(map[string]interface{}),
		error:      l.error,
		component:  l.component,
		formatters: l.formatters,
		writers:    l.writers,
		callerSkip: l.callerSkip,
	}
	for k, v := range l.fields {
		newLogger.fields[k] = v
	}
	return newLogger
}

// getCaller returns the file and line of the logging call site
func (l *DefaultLogger) getCaller() string {
	_, file, line, ok := runtime.Caller(l.callerSkip + 1)
	if !ok {
		return ""
	}
	return fmt.Sprintf("%s:%d", file, line)
}

// Field creates a new log field
func Field(key string, value interface{}) LogField {
	return LogField{Key: key, Value: value}
}

// StringField creates a new string log field
func StringField(key, value string) LogField {
	return LogField{Key: key, Value: value}
}

// IntField creates a new int log field
func IntField(key string, value int) LogField {
	return LogField{Key: key, Value: value}
}

// Float64Field creates a new float64 log field
func Float64Field(key string, value float64) LogField {
	return LogField{Key: key, Value: value}
}

// BoolField creates a new bool log field
func BoolField(key string, value bool) LogField {
	return LogField{Key: key, Value: value}
}

// ErrorField creates a new error log field
func ErrorField(key string, value error) LogField {
	return LogField{Key: key, Value: value}
}

// DurationField creates a new duration log field
func DurationField(key string, value time.Duration) LogField {
	return LogField{Key: key, Value: value}
}
