package errors

import (
	"fmt"
	"strings"
	"time"
)

// ErrorType represents the kind of error
type ErrorType string

const (
	ErrorTypeSyntax        ErrorType = "SYNTAX"
	ErrorTypeConfiguration ErrorType = "CONFIGURATION"
	ErrorTypeEvaluation    ErrorType = "EVALUATION"
	ErrorTypeSystem        ErrorType = "SYSTEM"
)

// ErrorSeverity represents the severity level of an error
type ErrorSeverity string

const (
	SeverityDebug   ErrorSeverity = "DEBUG"
	SeverityInfo    ErrorSeverity = "INFO"
	SeverityWarning ErrorSeverity = "WARNING"
	SeverityError   ErrorSeverity = "ERROR"
	SeverityFatal   ErrorSeverity = "FATAL"
)

// ExecutionError represents a structured error with detailed information.
// Syntax errors carry the offending 1-based line and its literal text;
// evaluation errors carry the originating expression.
type ExecutionError struct {
	Code      string                 `json:"code"`
	Message   string                 `json:"message"`
	Line      int                    `json:"line,omitempty"`
	LineText  string                 `json:"line_text,omitempty"`
	Expr      string                 `json:"expr,omitempty"`
	Context   map[string]interface{} `json:"context,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
	Severity  ErrorSeverity          `json:"severity"`
	Type      ErrorType              `json:"type"`
	Cause     error                  `json:"-"`
}

// Error implements the error interface
func (e *ExecutionError) Error() string {
	var builder strings.Builder

	// Format: [TYPE][CODE] message
	builder.WriteString(fmt.Sprintf("[%s][%s] %s", e.Type, e.Code, e.Message))

	if e.Line > 0 {
		builder.WriteString(fmt.Sprintf(" at line %d", e.Line))
		if e.LineText != "" {
			builder.WriteString(fmt.Sprintf(": %s", e.LineText))
		}
	}

	if e.Expr != "" {
		builder.WriteString(fmt.Sprintf(" in expression '%s'", e.Expr))
	}

	return builder.String()
}

// Unwrap returns the underlying error
func (e *ExecutionError) Unwrap() error {
	return e.Cause
}

// Is checks if the error matches the target
func (e *ExecutionError) Is(target error) bool {
	if other, ok := target.(*ExecutionError); ok {
		return e.Code == other.Code && e.Type == other.Type
	}
	return false
}

// WithContext adds context information to the error
func (e *ExecutionError) WithContext(key string, value interface{}) *ExecutionError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// WithLine sets the 1-based source line and its text for the error
func (e *ExecutionError) WithLine(line int, text string) *ExecutionError {
	e.Line = line
	e.LineText = text
	return e
}

// WithExpr sets the originating expression text for the error
func (e *ExecutionError) WithExpr(expr string) *ExecutionError {
	e.Expr = expr
	return e
}

// WithSeverity sets the severity level for the error
func (e *ExecutionError) WithSeverity(severity ErrorSeverity) *ExecutionError {
	e.Severity = severity
	return e
}

// Wrap wraps another error
func (e *ExecutionError) Wrap(err error) *ExecutionError {
	e.Cause = err
	return e
}

// NewSyntaxError creates a new syntax error citing the offending line
func NewSyntaxError(code, message string, line int, lineText string) *ExecutionError {
	return &ExecutionError{
		Code:      code,
		Message:   message,
		Line:      line,
		LineText:  lineText,
		Timestamp: time.Now(),
		Severity:  SeverityFatal,
		Type:      ErrorTypeSyntax,
		Context:   make(map[string]interface{}),
	}
}

// NewConfigurationError creates a new loop configuration error
func NewConfigurationError(code, message string) *ExecutionError {
	return &ExecutionError{
		Code:      code,
		Message:   message,
		Timestamp: time.Now(),
		Severity:  SeverityFatal,
		Type:      ErrorTypeConfiguration,
		Context:   make(map[string]interface{}),
	}
}

// NewEvaluationError creates a new expression evaluation error
func NewEvaluationError(code, message, expr string) *ExecutionError {
	return &ExecutionError{
		Code:      code,
		Message:   message,
		Expr:      expr,
		Timestamp: time.Now(),
		Severity:  SeverityFatal,
		Type:      ErrorTypeEvaluation,
		Context:   make(map[string]interface{}),
	}
}

// NewSystemError creates a new system error
func NewSystemError(code, message string) *ExecutionError {
	return &ExecutionError{
		Code:      code,
		Message:   message,
		Timestamp: time.Now(),
		Severity:  SeverityError,
		Type:      ErrorTypeSystem,
		Context:   make(map[string]interface{}),
	}
}

// IsType reports whether err is an ExecutionError of the given type
func IsType(err error, errorType ErrorType) bool {
	if execErr, ok := err.(*ExecutionError); ok {
		return execErr.Type == errorType
	}
	return false
}
