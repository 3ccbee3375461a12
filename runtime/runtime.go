package runtime

import (
	"fmt"

	"jfor/errors"
)

// ExpressionRuntime defines the interface for expression evaluators. The
// loop engine treats the evaluator as an external collaborator: it hands
// over the expression text plus a snapshot of the environment and receives
// a value or a failure. The expression grammar belongs to the evaluator.
type ExpressionRuntime interface {
	// Initialize sets up the evaluator runtime
	Initialize() error

	// Eval evaluates a single expression against the given variable bindings
	Eval(expr string, vars map[string]interface{}) (interface{}, error)

	// GetName returns the name of the evaluator runtime
	GetName() string

	// IsReady checks if the runtime is ready for evaluation
	IsReady() bool

	// Cleanup releases resources used by the runtime
	Cleanup() error
}

// RuntimeManager manages the lifecycle of expression runtimes
type RuntimeManager struct {
	runtimes map[string]ExpressionRuntime
}

// NewRuntimeManager creates a new runtime manager
func NewRuntimeManager() *RuntimeManager {
	return &RuntimeManager{
		runtimes: make(map[string]ExpressionRuntime),
	}
}

// RegisterRuntime registers an expression runtime
func (rm *RuntimeManager) RegisterRuntime(rt ExpressionRuntime) error {
	name := rt.GetName()
	if _, exists := rm.runtimes[name]; exists {
		return errors.NewSystemError("RUNTIME_ALREADY_REGISTERED", fmt.Sprintf("runtime '%s' is already registered", name))
	}
	rm.runtimes[name] = rt
	return nil
}

// GetRuntime retrieves a registered runtime by name
func (rm *RuntimeManager) GetRuntime(name string) (ExpressionRuntime, error) {
	rt, exists := rm.runtimes[name]
	if !exists {
		return nil, errors.NewSystemError("RUNTIME_NOT_FOUND", fmt.Sprintf("runtime '%s' is not registered", name))
	}
	return rt, nil
}

// ListRuntimes returns the names of all registered runtimes
func (rm *RuntimeManager) ListRuntimes() []string {
	names := make([]string, 0, len(rm.runtimes))
	for name := range rm.runtimes {
		names = append(names, name)
	}
	return names
}

// CleanupAll releases all registered runtimes
func (rm *RuntimeManager) CleanupAll() error {
	var firstErr error
	for _, rt := range rm.runtimes {
		if err := rt.Cleanup(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
