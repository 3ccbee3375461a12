package lua

import (
	"testing"

	"jfor/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReadyRuntime(t *testing.T) *LuaRuntime {
	t.Helper()
	rt := NewLuaRuntime()
	require.NoError(t, rt.Initialize())
	t.Cleanup(func() { _ = rt.Cleanup() })
	return rt
}

func TestLuaRuntime_Lifecycle(t *testing.T) {
	t.Run("not ready before initialize", func(t *testing.T) {
		rt := NewLuaRuntime()
		assert.False(t, rt.IsReady())

		_, err := rt.Eval("1 + 1", nil)
		require.Error(t, err)
		assert.True(t, errors.IsType(err, errors.ErrorTypeSystem))
	})

	t.Run("ready after initialize, not after cleanup", func(t *testing.T) {
		rt := NewLuaRuntime()
		require.NoError(t, rt.Initialize())
		assert.True(t, rt.IsReady())
		assert.Equal(t, "lua", rt.GetName())

		require.NoError(t, rt.Cleanup())
		assert.False(t, rt.IsReady())
	})
}

func TestLuaRuntime_Eval(t *testing.T) {
	t.Run("arithmetic", func(t *testing.T) {
		rt := newReadyRuntime(t)

		result, err := rt.Eval("1 + 2 * 3", nil)
		require.NoError(t, err)
		assert.Equal(t, 7.0, result)
	})

	t.Run("variables become globals", func(t *testing.T) {
		rt := newReadyRuntime(t)

		result, err := rt.Eval("x * y", map[string]interface{}{"x": 6.0, "y": 7.0})
		require.NoError(t, err)
		assert.Equal(t, 42.0, result)
	})

	t.Run("string concatenation", func(t *testing.T) {
		rt := newReadyRuntime(t)

		result, err := rt.Eval(`greeting .. " World!"`, map[string]interface{}{"greeting": "Hello"})
		require.NoError(t, err)
		assert.Equal(t, "Hello World!", result)
	})

	t.Run("comparison returns a bool", func(t *testing.T) {
		rt := newReadyRuntime(t)

		result, err := rt.Eval("x < 5", map[string]interface{}{"x": 3.0})
		require.NoError(t, err)
		assert.Equal(t, true, result)
	})

	t.Run("bracket list literal converts to a slice", func(t *testing.T) {
		rt := newReadyRuntime(t)

		result, err := rt.Eval(`["Hello","Bonjour","Hola"]`, nil)
		require.NoError(t, err)
		assert.Equal(t, []interface{}{"Hello", "Bonjour", "Hola"}, result)
	})

	t.Run("empty list literal converts to an empty slice", func(t *testing.T) {
		rt := newReadyRuntime(t)

		result, err := rt.Eval("[]", nil)
		require.NoError(t, err)
		assert.Equal(t, []interface{}{}, result)
	})

	t.Run("indexing a bound list is untouched by translation", func(t *testing.T) {
		rt := newReadyRuntime(t)

		vars := map[string]interface{}{"items": []interface{}{"a", "b", "c"}}
		result, err := rt.Eval("items[2]", vars)
		require.NoError(t, err)
		assert.Equal(t, "b", result)
	})

	t.Run("keyed table converts to a map", func(t *testing.T) {
		rt := newReadyRuntime(t)

		result, err := rt.Eval(`{name = "ada", age = 36}`, nil)
		require.NoError(t, err)
		assert.Equal(t, map[string]interface{}{"name": "ada", "age": 36.0}, result)
	})

	t.Run("undefined names evaluate to nil", func(t *testing.T) {
		rt := newReadyRuntime(t)

		result, err := rt.Eval("no_such_variable", nil)
		require.NoError(t, err)
		assert.Nil(t, result)
	})

	t.Run("syntax error reports an evaluation failure with the expression", func(t *testing.T) {
		rt := newReadyRuntime(t)

		_, err := rt.Eval("1 +", nil)
		require.Error(t, err)
		assert.True(t, errors.IsType(err, errors.ErrorTypeEvaluation))
		assert.Contains(t, err.Error(), "1 +")
	})

	t.Run("runtime error reports an evaluation failure", func(t *testing.T) {
		rt := newReadyRuntime(t)

		_, err := rt.Eval(`1 + "not a number"`, nil)
		require.Error(t, err)
		assert.True(t, errors.IsType(err, errors.ErrorTypeEvaluation))
	})

	t.Run("rebinding between calls sees the latest value", func(t *testing.T) {
		rt := newReadyRuntime(t)

		result, err := rt.Eval("x + 1", map[string]interface{}{"x": 1.0})
		require.NoError(t, err)
		assert.Equal(t, 2.0, result)

		result, err = rt.Eval("x + 1", map[string]interface{}{"x": 10.0})
		require.NoError(t, err)
		assert.Equal(t, 11.0, result)
	})

	t.Run("nested collections round both ways", func(t *testing.T) {
		rt := newReadyRuntime(t)

		vars := map[string]interface{}{
			"grid": []interface{}{
				[]interface{}{1.0, 2.0},
				[]interface{}{3.0, 4.0},
			},
		}
		result, err := rt.Eval("grid[2][1]", vars)
		require.NoError(t, err)
		assert.Equal(t, 3.0, result)
	})
}

func TestTranslateListLiterals(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple list", `["a","b"]`, `{"a","b"}`},
		{"empty list", "[]", "{}"},
		{"numeric list", "[1, 2, 3]", "{1, 2, 3}"},
		{"nested lists", "[[1],[2]]", "{{1},{2}}"},
		{"indexing after identifier", "items[1]", "items[1]"},
		{"indexing after closing paren", "f()[1]", "f()[1]"},
		{"indexing after closing bracket", "m[1][2]", "m[1][2]"},
		{"list inside indexing untouched outer", `items[k] .. ["x"]`, `items[k] .. {"x"}`},
		{"brackets inside strings untouched", `"[not a list]"`, `"[not a list]"`},
		{"escaped quote inside string", `"say \"[hi]\"" .. [1]`, `"say \"[hi]\"" .. {1}`},
		{"list after operator", "x + [1]", "x + {1}"},
		{"plain expression unchanged", "a + b * 2", "a + b * 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, translateListLiterals(tt.input))
		})
	}
}
