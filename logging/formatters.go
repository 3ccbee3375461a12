package logging

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// JSONFormatter formats log entries as JSON
type JSONFormatter struct{}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// Format formats a log entry as JSON
func (f *JSONFormatter) Format(entry *LogEntry) ([]byte, error) {
	payload := map[string]interface{}{
		"timestamp": entry.Timestamp.Format("2006-01-02T15:04:05.000Z07:00"),
		"level":     entry.Level.String(),
		"message":   entry.Message,
	}

	if entry.Component != "" {
		payload["component"] = entry.Component
	}

	if entry.Caller != "" {
		payload["caller"] = entry.Caller
	}

	if entry.Error != nil {
		payload["error"] = entry.Error.Error()
	}

	if len(entry.Fields) > 0 {
		payload["fields"] = entry.Fields
	}

	if entry.Stack != "" {
		payload["stack"] = entry.Stack
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal log entry: %w", err)
	}

	return append(data, '\n'), nil
}

// GetName returns the name of the formatter
func (f *JSONFormatter) GetName() string {
	return "json"
}

// TextFormatter formats log entries as plain text
type TextFormatter struct {
	// IncludeTimestamp controls whether to include the timestamp
	IncludeTimestamp bool
	// IncludeCaller controls whether to include the caller information
	IncludeCaller bool
	// IncludeLevel controls whether to include the log level
	IncludeLevel bool
}

// NewTextFormatter creates a new text formatter with default settings
func NewTextFormatter() *TextFormatter {
	return &TextFormatter{
		IncludeTimestamp: true,
		IncludeCaller:    false,
		IncludeLevel:     true,
	}
}

// NewTextFormatterWithOptions creates a new text formatter with custom options
func NewTextFormatterWithOptions(includeTimestamp, includeCaller, includeLevel bool) *TextFormatter {
	return &TextFormatter{
		IncludeTimestamp: includeTimestamp,
		IncludeCaller:    includeCaller,
		IncludeLevel:     includeLevel,
	}
}

// Format formats a log entry as plain text
func (f *TextFormatter) Format(entry *LogEntry) ([]byte, error) {
	var output string

	if f.IncludeTimestamp {
		output += fmt.Sprintf("[%s] ", entry.Timestamp.Format("2006-01-02 15:04:05.000"))
	}

	if f.IncludeLevel {
		output += fmt.Sprintf("[%s] ", entry.Level.String())
	}

	if entry.Component != "" {
		output += fmt.Sprintf("[%s] ", entry.Component)
	}

	output += entry.Message

	// Add position information if available
	if line, ok := entry.Fields["line"].(int); ok {
		output += fmt.Sprintf(" (at line %d)", line)
	}

	if f.IncludeCaller && entry.Caller != "" {
		output += fmt.Sprintf(" (caller: %s)", entry.Caller)
	}

	if entry.Error != nil {
		output += fmt.Sprintf(" (error: %s)", entry.Error.Error())
	}

	if len(entry.Fields) > 0 {
		output += " " + f.formatFields(entry.Fields)
	}

	if entry.Stack != "" {
		output += "\n" + entry.Stack
	}

	output += "\n"

	return []byte(output), nil
}

// GetName returns the name of the formatter
func (f *TextFormatter) GetName() string {
	return "text"
}

// formatFields renders fields as key=value pairs with stable ordering
func (f *TextFormatter) formatFields(fields map[string]interface{}) string {
	keys := make([]string, 0, len(fields))
	for key := range fields {
		if key == "line" {
			continue // already rendered as position information
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var pairs []string
	for _, key := range keys {
		pairs = append(pairs, fmt.Sprintf("%s=%v", key, fields[key]))
	}

	if len(pairs) == 0 {
		return ""
	}
	return "{" + strings.Join(pairs, ", ") + "}"
}
