package engine

import "sort"

// Environment is the single mutable name-to-value mapping shared across a
// whole program run. Loop variables are ordinary entries: they are
// overwritten on every iteration and keep their last value after the loop
// exits. There is no lexical scoping and no automatic cleanup.
type Environment struct {
	vars map[string]interface{}
}

// NewEnvironment creates an empty environment
func NewEnvironment() *Environment {
	return &Environment{vars: make(map[string]interface{})}
}

// Set binds a name to a value, overwriting any previous binding
func (e *Environment) Set(name string, value interface{}) {
	e.vars[name] = value
}

// Get retrieves the value bound to a name
func (e *Environment) Get(name string) (interface{}, bool) {
	value, ok := e.vars[name]
	return value, ok
}

// Names returns all bound names in sorted order
func (e *Environment) Names() []string {
	names := make([]string, 0, len(e.vars))
	for name := range e.vars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Snapshot returns a shallow copy of the bindings, handed to the expression
// evaluator on every call
func (e *Environment) Snapshot() map[string]interface{} {
	snapshot := make(map[string]interface{}, len(e.vars))
	for name, value := range e.vars {
		snapshot[name] = value
	}
	return snapshot
}

// Len returns the number of bound names
func (e *Environment) Len() int {
	return len(e.vars)
}

// Clear removes all bindings
func (e *Environment) Clear() {
	e.vars = make(map[string]interface{})
}
