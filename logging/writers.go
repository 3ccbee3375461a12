package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// ConsoleWriter writes log entries to the console
type ConsoleWriter struct {
	file *os.File
	mu   sync.Mutex
}

// NewConsoleWriter creates a new console writer that writes to stderr
func NewConsoleWriter() *ConsoleWriter {
	return &ConsoleWriter{file: os.Stderr}
}

// NewConsoleWriterWithFile creates a new console writer with a custom file
func NewConsoleWriterWithFile(file *os.File) *ConsoleWriter {
	return &ConsoleWriter{file: file}
}

// Write writes the formatted log entry to the console
func (w *ConsoleWriter) Write(data []byte) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	_, err := w.file.Write(data)
	return err
}

// Flush flushes any buffered data
func (w *ConsoleWriter) Flush() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.file.Sync()
}

// Close closes the writer
func (w *ConsoleWriter) Close() error {
	// Never close stdout or stderr
	if w.file == os.Stdout || w.file == os.Stderr {
		return nil
	}
	return w.file.Close()
}

// GetName returns the name of the writer
func (w *ConsoleWriter) GetName() string {
	return "console"
}

// FileWriter writes log entries to a file
type FileWriter struct {
	file *os.File
	path string
	mu   sync.Mutex
}

// NewFileWriter creates a new file writer
func NewFileWriter(filePath string) (*FileWriter, error) {
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return &FileWriter{file: file, path: filePath}, nil
}

// Write writes the formatted log entry to the file
func (w *FileWriter) Write(data []byte) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	_, err := w.file.Write(data)
	return err
}

// Flush flushes any buffered data
func (w *FileWriter) Flush() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.file.Sync()
}

// Close closes the writer
func (w *FileWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.file.Close()
}

// GetName returns the name of the writer
func (w *FileWriter) GetName() string {
	return "file"
}

// GetFilePath returns the path of the log file
func (w *FileWriter) GetFilePath() string {
	return w.path
}

// MultiWriter writes log entries to multiple writers
type MultiWriter struct {
	writers []Writer
}

// NewMultiWriter creates a new multi writer
func NewMultiWriter(writers ...Writer) *MultiWriter {
	return &MultiWriter{writers: writers}
}

// Write writes the formatted log entry to all writers
func (w *MultiWriter) Write(data []byte) error {
	var firstErr error
	for _, writer := range w.writers {
		if err := writer.Write(data); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// Flush flushes all writers
func (w *MultiWriter) Flush() error {
	var firstErr error
	for _, writer := range w.writers {
		if err := writer.Flush(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// Close closes all writers
func (w *MultiWriter) Close() error {
	var firstErr error
	for _, writer := range w.writers {
		if err := writer.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// GetName returns the name of the writer
func (w *MultiWriter) GetName() string {
	return "multi"
}

// AddWriter adds a writer to the multi writer
func (w *MultiWriter) AddWriter(writer Writer) {
	w.writers = append(w.writers, writer)
}

// NullWriter discards all log entries
type NullWriter struct{}

// NewNullWriter creates a new null writer
func NewNullWriter() *NullWriter {
	return &NullWriter{}
}

// Write discards the data
func (w *NullWriter) Write(data []byte) error {
	return nil
}

// Flush does nothing
func (w *NullWriter) Flush() error {
	return nil
}

// Close does nothing
func (w *NullWriter) Close() error {
	return nil
}

// GetName returns the name of the writer
func (w *NullWriter) GetName() string {
	return "null"
}
