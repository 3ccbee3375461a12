package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify_LineKinds(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected LineKind
	}{
		{"empty line", "", KindBlank},
		{"whitespace only", "   \t  ", KindBlank},
		{"comment", "# a comment", KindBlank},
		{"indented comment", "   # indented", KindBlank},
		{"counter header", "for i = 1 to 10 do", KindCounterHeader},
		{"counter header with step", "for i = 1 to 10 by 2 do", KindCounterHeader},
		{"iterator header", `for w in ["a","b"] do`, KindIteratorHeader},
		{"c-style header", "for (i = 0; i < 5; i = i + 1) do", KindCStyleHeader},
		{"c-style header empty clauses", "for (;;) do", KindCStyleHeader},
		{"terminator", "end", KindTerminator},
		{"indented terminator", "    end   ", KindTerminator},
		{"print statement", "print x + 1", KindPrint},
		{"assignment", "x = 1 + 2", KindAssignment},
		{"uppercase keywords", "FOR I = 1 TO 5 DO", KindCounterHeader},
		{"mixed case terminator", "End", KindTerminator},
		{"comparison is not an assignment", "x == 1", KindUnrecognized},
		{"header missing do", "for i = 1 to 5", KindUnrecognized},
		{"bare word", "garbage", KindUnrecognized},
		{"end with trailing token", "end loop", KindUnrecognized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cl := Classify(tt.line)
			assert.Equal(t, tt.expected, cl.Kind, "line %q", tt.line)
		})
	}
}

func TestClassify_CounterHeader(t *testing.T) {
	t.Run("captures variable and bound expressions", func(t *testing.T) {
		cl := Classify("for i = n to n * 2 by s + 1 do")
		require.Equal(t, KindCounterHeader, cl.Kind)
		require.NotNil(t, cl.Counter)
		assert.Equal(t, "i", cl.Counter.Var)
		assert.Equal(t, "n", cl.Counter.Start)
		assert.Equal(t, "n * 2", cl.Counter.End)
		assert.Equal(t, "s + 1", cl.Counter.Step)
	})

	t.Run("omitted step leaves Step empty", func(t *testing.T) {
		cl := Classify("for i = 1 to 5 do")
		require.Equal(t, KindCounterHeader, cl.Kind)
		assert.Equal(t, "", cl.Counter.Step)
	})

	t.Run("identifiers are case-sensitive", func(t *testing.T) {
		cl := Classify("for Count = 1 to 3 do")
		require.Equal(t, KindCounterHeader, cl.Kind)
		assert.Equal(t, "Count", cl.Counter.Var)
	})
}

func TestClassify_IteratorHeader(t *testing.T) {
	cl := Classify(`for word in greetings do`)
	require.Equal(t, KindIteratorHeader, cl.Kind)
	require.NotNil(t, cl.Iterator)
	assert.Equal(t, "word", cl.Iterator.Var)
	assert.Equal(t, "greetings", cl.Iterator.Source)
}

func TestClassify_CStyleHeader(t *testing.T) {
	t.Run("full header", func(t *testing.T) {
		cl := Classify("for (i = 0; i < 5; i = i + 1) do")
		require.Equal(t, KindCStyleHeader, cl.Kind)
		require.NotNil(t, cl.CStyle)
		assert.Equal(t, Clause{Name: "i", Expr: "0"}, cl.CStyle.Init)
		assert.Equal(t, "i < 5", cl.CStyle.Cond)
		assert.Equal(t, Clause{Name: "i", Expr: "i + 1"}, cl.CStyle.Step)
	})

	t.Run("omitted init and step", func(t *testing.T) {
		cl := Classify("for (; x > 0; ) do")
		require.Equal(t, KindCStyleHeader, cl.Kind)
		assert.True(t, cl.CStyle.Init.IsEmpty())
		assert.Equal(t, "x > 0", cl.CStyle.Cond)
		assert.True(t, cl.CStyle.Step.IsEmpty())
	})

	t.Run("omitted condition", func(t *testing.T) {
		cl := Classify("for (i = 0; ; i = i + 1) do")
		require.Equal(t, KindCStyleHeader, cl.Kind)
		assert.Equal(t, "", cl.CStyle.Cond)
	})

	t.Run("bare expression clause", func(t *testing.T) {
		cl := Classify("for (setup(); x < 3; tick()) do")
		require.Equal(t, KindCStyleHeader, cl.Kind)
		assert.False(t, cl.CStyle.Init.IsAssignment())
		assert.Equal(t, "setup()", cl.CStyle.Init.Expr)
		assert.Equal(t, "tick()", cl.CStyle.Step.Expr)
	})
}

func TestClassify_Statements(t *testing.T) {
	t.Run("print captures the expression text", func(t *testing.T) {
		cl := Classify(`print "x = " .. x`)
		require.Equal(t, KindPrint, cl.Kind)
		assert.Equal(t, `"x = " .. x`, cl.Expr)
	})

	t.Run("assignment captures target and expression", func(t *testing.T) {
		cl := Classify("  total = total + n  ")
		require.Equal(t, KindAssignment, cl.Kind)
		assert.Equal(t, "total", cl.Target)
		assert.Equal(t, "total + n", cl.Expr)
	})

	t.Run("assignment with a concatenation expression", func(t *testing.T) {
		cl := Classify("phrase = greeting .. name")
		require.Equal(t, KindAssignment, cl.Kind)
		assert.Equal(t, "phrase", cl.Target)
		assert.Equal(t, "greeting .. name", cl.Expr)
	})
}
