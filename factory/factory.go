package factory

import (
	"fmt"
	"time"

	"jfor/runtime"
	luaruntime "jfor/runtime/lua"
)

// RuntimeFactory creates expression runtimes for a specific evaluator
type RuntimeFactory interface {
	// CreateRuntime creates a new expression runtime instance
	CreateRuntime() (runtime.ExpressionRuntime, error)

	// GetLanguage returns the evaluator language this factory creates
	GetLanguage() string
}

// LuaRuntimeFactory creates gopher-lua-backed expression runtimes
type LuaRuntimeFactory struct {
	evalTimeout time.Duration
}

// NewLuaRuntimeFactory creates a new Lua runtime factory
func NewLuaRuntimeFactory() *LuaRuntimeFactory {
	return &LuaRuntimeFactory{}
}

// NewLuaRuntimeFactoryWithTimeout creates a new Lua runtime factory with a
// custom evaluation timeout
func NewLuaRuntimeFactoryWithTimeout(timeout time.Duration) *LuaRuntimeFactory {
	return &LuaRuntimeFactory{evalTimeout: timeout}
}

// CreateRuntime creates a new Lua expression runtime
func (f *LuaRuntimeFactory) CreateRuntime() (runtime.ExpressionRuntime, error) {
	if f.evalTimeout > 0 {
		return luaruntime.NewLuaRuntimeWithTimeout(f.evalTimeout), nil
	}
	return luaruntime.NewLuaRuntime(), nil
}

// GetLanguage returns the evaluator language this factory creates
func (f *LuaRuntimeFactory) GetLanguage() string {
	return "lua"
}

// RuntimeRegistry keeps the registered evaluator factories
type RuntimeRegistry struct {
	factories map[string]RuntimeFactory
}

// NewRuntimeRegistry creates an empty registry
func NewRuntimeRegistry() *RuntimeRegistry {
	return &RuntimeRegistry{
		factories: make(map[string]RuntimeFactory),
	}
}

// DefaultRuntimeRegistry creates a registry with all built-in factories
func DefaultRuntimeRegistry() *RuntimeRegistry {
	registry := NewRuntimeRegistry()
	_ = registry.RegisterFactory(NewLuaRuntimeFactory())
	return registry
}

// RegisterFactory registers a runtime factory
func (r *RuntimeRegistry) RegisterFactory(factory RuntimeFactory) error {
	language := factory.GetLanguage()
	if _, exists := r.factories[language]; exists {
		return fmt.Errorf("factory for language '%s' is already registered", language)
	}
	r.factories[language] = factory
	return nil
}

// CreateRuntimeForLanguage creates a runtime for the given evaluator language
func (r *RuntimeRegistry) CreateRuntimeForLanguage(language string) (runtime.ExpressionRuntime, error) {
	factory, exists := r.factories[language]
	if !exists {
		return nil, fmt.Errorf("no factory registered for language '%s'", language)
	}
	return factory.CreateRuntime()
}

// SupportedLanguages returns the registered evaluator languages
func (r *RuntimeRegistry) SupportedLanguages() []string {
	languages := make([]string, 0, len(r.factories))
	for language := range r.factories {
		languages = append(languages, language)
	}
	return languages
}
