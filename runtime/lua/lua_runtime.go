package lua

import (
	"fmt"
	"sync"
	"time"

	"jfor/errors"

	lua "github.com/yuin/gopher-lua"
)

// DefaultEvalTimeout bounds a single expression evaluation
const DefaultEvalTimeout = 10 * time.Second

// LuaRuntime implements the ExpressionRuntime interface on top of an
// embedded Lua state. Each evaluation receives the caller's variable
// snapshot as Lua globals and returns the converted result.
type LuaRuntime struct {
	state       *lua.LState
	ready       bool
	evalTimeout time.Duration
	mu          sync.Mutex
}

// NewLuaRuntime creates a new Lua runtime instance
func NewLuaRuntime() *LuaRuntime {
	return &LuaRuntime{
		state:       nil,
		ready:       false,
		evalTimeout: DefaultEvalTimeout,
	}
}

// NewLuaRuntimeWithTimeout creates a new Lua runtime with a custom evaluation timeout
func NewLuaRuntimeWithTimeout(timeout time.Duration) *LuaRuntime {
	rt := NewLuaRuntime()
	if timeout > 0 {
		rt.evalTimeout = timeout
	}
	return rt
}

// Initialize sets up the Lua runtime
func (lr *LuaRuntime) Initialize() error {
	lr.mu.Lock()
	defer lr.mu.Unlock()

	lr.state = lua.NewState()
	lr.state.OpenLibs()
	lr.ready = true
	return nil
}

// GetName returns the name of the evaluator runtime
func (lr *LuaRuntime) GetName() string {
	return "lua"
}

// IsReady checks if the runtime is ready for evaluation
func (lr *LuaRuntime) IsReady() bool {
	lr.mu.Lock()
	defer lr.mu.Unlock()
	return lr.ready
}

// Eval evaluates a single expression against the given variable bindings.
// The bindings are installed as Lua globals before the chunk runs, so the
// expression sees the engine's environment by name.
func (lr *LuaRuntime) Eval(expr string, vars map[string]interface{}) (interface{}, error) {
	lr.mu.Lock()
	defer lr.mu.Unlock()

	if !lr.ready {
		return nil, errors.NewSystemError("LUA_RUNTIME_NOT_INITIALIZED", "runtime is not initialized")
	}

	for name, value := range vars {
		luaValue, err := lr.goToLua(value)
		if err != nil {
			return nil, errors.NewEvaluationError("LUA_VALUE_CONVERSION_ERROR", fmt.Sprintf("value conversion error for '%s': %v", name, err), expr)
		}
		lr.state.SetGlobal(name, luaValue)
	}

	chunk := "return " + translateListLiterals(expr)

	resultChan := make(chan interface{})
	errorChan := make(chan error)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				errorChan <- errors.NewEvaluationError("LUA_EVAL_PANIC", fmt.Sprintf("panic during Lua evaluation: %v", r), expr)
			}
		}()

		if err := lr.state.DoString(chunk); err != nil {
			errorChan <- errors.NewEvaluationError("LUA_EVAL_ERROR", fmt.Sprintf("error evaluating expression: %v", err), expr).Wrap(err)
			return
		}

		var result interface{}
		if lr.state.GetTop() > 0 {
			result = lr.luaToGo(lr.state.Get(-1))
			lr.state.Pop(lr.state.GetTop())
		}

		resultChan <- result
	}()

	select {
	case result := <-resultChan:
		return result, nil
	case err := <-errorChan:
		return nil, err
	case <-time.After(lr.evalTimeout):
		return nil, errors.NewEvaluationError("LUA_EVAL_TIMEOUT", fmt.Sprintf("evaluation timed out after %v", lr.evalTimeout), expr)
	}
}

// Cleanup releases resources used by the runtime
func (lr *LuaRuntime) Cleanup() error {
	lr.mu.Lock()
	defer lr.mu.Unlock()

	if lr.state != nil {
		lr.state.Close()
		lr.state = nil
	}
	lr.ready = false
	return nil
}

// goToLua converts a Go value into its Lua representation
func (lr *LuaRuntime) goToLua(value interface{}) (lua.LValue, error) {
	switch v := value.(type) {
	case nil:
		return lua.LNil, nil
	case string:
		return lua.LString(v), nil
	case bool:
		return lua.LBool(v), nil
	case int:
		return lua.LNumber(v), nil
	case int32:
		return lua.LNumber(v), nil
	case int64:
		return lua.LNumber(v), nil
	case float32:
		return lua.LNumber(v), nil
	case float64:
		return lua.LNumber(v), nil
	case []interface{}:
		table := lr.state.NewTable()
		for i, item := range v {
			luaItem, err := lr.goToLua(item)
			if err != nil {
				return nil, err
			}
			table.RawSetInt(i+1, luaItem) // Lua arrays are 1-based
		}
		return table, nil
	case map[string]interface{}:
		table := lr.state.NewTable()
		for key, item := range v {
			luaItem, err := lr.goToLua(item)
			if err != nil {
				return nil, err
			}
			table.RawSetString(key, luaItem)
		}
		return table, nil
	default:
		return nil, fmt.Errorf("unsupported value type %T", value)
	}
}

// luaToGo converts a Lua value into its Go representation
func (lr *LuaRuntime) luaToGo(value lua.LValue) interface{} {
	switch v := value.(type) {
	case *lua.LNilType:
		return nil
	case lua.LBool:
		return bool(v)
	case lua.LNumber:
		return float64(v)
	case lua.LString:
		return string(v)
	case *lua.LTable:
		return lr.tableToGo(v)
	default:
		return v.String()
	}
}

// tableToGo converts a Lua table to a Go slice when it is a pure sequence
// (consecutive integer keys from 1) and to a string-keyed map otherwise.
// An empty table converts to an empty slice.
func (lr *LuaRuntime) tableToGo(table *lua.LTable) interface{} {
	seqLen := table.Len()
	entries := 0
	sequential := true

	table.ForEach(func(key, _ lua.LValue) {
		entries++
		if num, ok := key.(lua.LNumber); ok {
			idx := int(num)
			if float64(num) != float64(idx) || idx < 1 || idx > seqLen {
				sequential = false
			}
		} else {
			sequential = false
		}
	})

	if sequential && entries == seqLen {
		seq := make([]interface{}, 0, seqLen)
		for i := 1; i <= seqLen; i++ {
			seq = append(seq, lr.luaToGo(table.RawGetInt(i)))
		}
		return seq
	}

	result := make(map[string]interface{}, entries)
	table.ForEach(func(key, item lua.LValue) {
		result[key.String()] = lr.luaToGo(item)
	})
	return result
}
