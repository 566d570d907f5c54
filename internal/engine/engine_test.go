package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngine_Analyze_C_SingleLineSignature(t *testing.T) {
	e := New()
	content := "int add(int a, int b) {\n    return a + b;\n}"

	functions, err := e.Analyze(context.Background(), "c", content)
	require.NoError(t, err)
	require.Len(t, functions, 1)

	fn := functions[0]
	assert.Equal(t, "add", fn.Name)
	assert.Equal(t, 0, fn.DeclarationLine)
	assert.Equal(t, 0, fn.StartLine)
	assert.Equal(t, 2, fn.EndLine)
	assert.Equal(t, 3, fn.LineCount)
	assert.Empty(t, fn.Scope)
}

func TestEngine_Analyze_C_MultiLineSignature(t *testing.T) {
	e := New()
	content := "int add(int a,\n    int b) {\n  return a+b;\n}"

	functions, err := e.Analyze(context.Background(), "c", content)
	require.NoError(t, err)
	require.Len(t, functions, 1)

	fn := functions[0]
	assert.Equal(t, "add", fn.Name)
	// The declaration starts before the body brace: declaration_line is the
	// matched node's row, start_line the body's.
	assert.Equal(t, 0, fn.DeclarationLine)
	assert.Equal(t, 1, fn.StartLine)
	assert.Equal(t, 3, fn.EndLine)
	assert.Equal(t, 3, fn.LineCount)
}

func TestEngine_Analyze_Cpp_MethodInClassInNamespace(t *testing.T) {
	e := New()
	content := `namespace app {
class Calculator {
 public:
  int add(int a, int b) {
    return a + b;
  }
};
}
`
	functions, err := e.Analyze(context.Background(), "cpp", content)
	require.NoError(t, err)

	// Exactly one record: class and namespace nodes are never candidates.
	require.Len(t, functions, 1)

	fn := functions[0]
	assert.Equal(t, "add", fn.Name)
	// Scope is the immediate class, not the outer namespace.
	assert.Equal(t, "Calculator", fn.Scope)
	assert.Equal(t, 3, fn.DeclarationLine)
	assert.Equal(t, 3, fn.StartLine)
	assert.Equal(t, 5, fn.EndLine)
}

func TestEngine_Analyze_JS_AnonymousFunctionsDropped(t *testing.T) {
	e := New()

	tests := []struct {
		name    string
		content string
	}{
		{"function expression", "const handler = function (req, res) {\n  res.end();\n};\n"},
		{"arrow function", "const add = (a, b) => a + b;\n"},
		{"destructured literal", "const [f] = [function () {}];\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			functions, err := e.Analyze(context.Background(), "javascript", tt.content)
			require.NoError(t, err)
			assert.Empty(t, functions, "anonymous candidates must yield no record, not a placeholder")
		})
	}
}

func TestEngine_Analyze_JS_NamedConstructs(t *testing.T) {
	e := New()
	content := `function top() {
  return 1;
}

class Widget {
  render() {
    return null;
  }
}

const named = function fallback() {
  return 2;
};
`
	functions, err := e.Analyze(context.Background(), "javascript", content)
	require.NoError(t, err)
	require.Len(t, functions, 3)

	// Traversal order is output order.
	assert.Equal(t, "top", functions[0].Name)
	assert.Empty(t, functions[0].Scope)

	assert.Equal(t, "render", functions[1].Name)
	assert.Equal(t, "Widget", functions[1].Scope)

	// A named function expression keeps its own name, not the binding's.
	assert.Equal(t, "fallback", functions[2].Name)
}

func TestEngine_Analyze_Go(t *testing.T) {
	e := New()
	content := `package main

func Add(a, b int) int {
	return a + b
}

func (c *Calc) Sub(a, b int) int {
	return a - b
}

var anon = func() {}
`
	functions, err := e.Analyze(context.Background(), "go", content)
	require.NoError(t, err)
	require.Len(t, functions, 2)

	assert.Equal(t, "Add", functions[0].Name)
	assert.Equal(t, 2, functions[0].DeclarationLine)
	assert.Equal(t, 2, functions[0].StartLine)
	assert.Equal(t, 4, functions[0].EndLine)

	assert.Equal(t, "Sub", functions[1].Name)
}

func TestEngine_Analyze_Python_NestedScope(t *testing.T) {
	e := New()
	content := `class Greeter:
    def greet(self):
        return "hi"

def free():
    pass
`
	functions, err := e.Analyze(context.Background(), "python", content)
	require.NoError(t, err)
	require.Len(t, functions, 2)

	assert.Equal(t, "greet", functions[0].Name)
	assert.Equal(t, "Greeter", functions[0].Scope)
	assert.Equal(t, 1, functions[0].DeclarationLine)
	assert.Equal(t, 2, functions[0].StartLine)
	assert.Equal(t, 2, functions[0].EndLine)
	assert.Equal(t, 1, functions[0].LineCount)

	assert.Equal(t, "free", functions[1].Name)
	assert.Empty(t, functions[1].Scope)
}

func TestEngine_Analyze_Java(t *testing.T) {
	e := New()
	content := `class Service {
    int add(int a, int b) {
        return a + b;
    }
}
`
	functions, err := e.Analyze(context.Background(), "java", content)
	require.NoError(t, err)
	require.Len(t, functions, 1)
	assert.Equal(t, "add", functions[0].Name)
	assert.Equal(t, "Service", functions[0].Scope)
}

func TestEngine_Analyze_CSharp_ExpressionBodied(t *testing.T) {
	e := New()
	content := `class MathOps {
    int Add(int a, int b) => a + b;
}
`
	functions, err := e.Analyze(context.Background(), "csharp", content)
	require.NoError(t, err)
	require.Len(t, functions, 1)

	fn := functions[0]
	assert.Equal(t, "Add", fn.Name)
	assert.Equal(t, "MathOps", fn.Scope)
	// No body field exists; the arrow clause child is the body span.
	assert.Equal(t, 1, fn.StartLine)
	assert.Equal(t, 1, fn.EndLine)
	assert.Equal(t, 1, fn.LineCount)
}

func TestEngine_Analyze_Ruby(t *testing.T) {
	e := New()
	content := `class Greeter
  def greet
    "hi"
  end
end
`
	functions, err := e.Analyze(context.Background(), "ruby", content)
	require.NoError(t, err)
	require.Len(t, functions, 1)
	assert.Equal(t, "greet", functions[0].Name)
	assert.Equal(t, "Greeter", functions[0].Scope)
}

func TestEngine_Analyze_Rust_ModScope(t *testing.T) {
	e := New()
	content := `mod util {
    fn helper() -> i32 {
        1
    }
}
`
	functions, err := e.Analyze(context.Background(), "rust", content)
	require.NoError(t, err)
	require.Len(t, functions, 1)
	assert.Equal(t, "helper", functions[0].Name)
	assert.Equal(t, "util", functions[0].Scope)
	assert.Equal(t, 1, functions[0].DeclarationLine)
	assert.Equal(t, 1, functions[0].StartLine)
	assert.Equal(t, 3, functions[0].EndLine)
}

func TestEngine_Analyze_Deterministic(t *testing.T) {
	e := New()
	content := `package main

func A() {}

func B() {
	x := func() {}
	_ = x
}
`
	first, err := e.Analyze(context.Background(), "go", content)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		again, err := e.Analyze(context.Background(), "go", content)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestEngine_Analyze_Invariants(t *testing.T) {
	e := New()

	sources := map[string]string{
		"c":      "void f(void)\n{\n}\n",
		"go":     "package p\n\nfunc f() {\n}\n",
		"python": "def f():\n    pass\n",
		"rust":   "fn f() {\n}\n",
	}

	for langID, content := range sources {
		t.Run(langID, func(t *testing.T) {
			functions, err := e.Analyze(context.Background(), langID, content)
			require.NoError(t, err)
			require.NotEmpty(t, functions)

			for _, fn := range functions {
				assert.LessOrEqual(t, fn.DeclarationLine, fn.StartLine)
				assert.LessOrEqual(t, fn.StartLine, fn.EndLine)
				assert.GreaterOrEqual(t, fn.LineCount, 1)
				assert.Equal(t, fn.EndLine-fn.StartLine+1, fn.LineCount)
				assert.NotEmpty(t, fn.Name)
			}
		})
	}
}

func TestEngine_Analyze_UnsupportedLanguage(t *testing.T) {
	e := New()

	_, err := e.Analyze(context.Background(), "cobol", "IDENTIFICATION DIVISION.")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedLanguage)
}

func TestEngine_Analyze_EmptySource(t *testing.T) {
	e := New()

	functions, err := e.Analyze(context.Background(), "go", "")
	require.NoError(t, err)
	assert.Empty(t, functions)
}

func TestEngine_Analyze_SharedGrammar_JSX(t *testing.T) {
	e := New()
	content := `function App() {
  return null;
}
`
	// javascriptreact parses with the javascript grammar.
	functions, err := e.Analyze(context.Background(), "javascriptreact", content)
	require.NoError(t, err)
	require.Len(t, functions, 1)
	assert.Equal(t, "App", functions[0].Name)
}

func TestSupported(t *testing.T) {
	assert.True(t, Supported("typescriptreact"))
	assert.False(t, Supported("brainfuck"))
}
