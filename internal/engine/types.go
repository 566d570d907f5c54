package engine

// FunctionInfo is the engine's sole output unit: a line-accurate description
// of one function-like construct. It is a pure value snapshot and retains no
// reference to the syntax tree it was resolved from.
type FunctionInfo struct {
	// Name is the resolved identifier text. A candidate whose name cannot
	// be resolved is dropped, never emitted with a placeholder.
	Name string `json:"name"`

	// DeclarationLine is the zero-based row where the matched function node
	// begins. It may precede StartLine for multi-line signatures.
	DeclarationLine int `json:"declaration_line"`

	// StartLine and EndLine bound the resolved body node, inclusive,
	// zero-based.
	StartLine int `json:"start_line"`
	EndLine   int `json:"end_line"`

	// LineCount is EndLine - StartLine + 1, always >= 1.
	LineCount int `json:"line_count"`

	// Scope is the name of the nearest enclosing class/struct/namespace-like
	// ancestor; empty for free functions.
	Scope string `json:"enclosing_scope_name,omitempty"`
}
