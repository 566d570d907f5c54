package engine

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/kgerlich/Function-Highlighter/internal/language"
)

// findFunctions performs a pre-order depth-first traversal of the tree and
// assembles a record for every function-like node whose name and body
// resolve. Traversal order is output order: downstream consumers assign a
// rotating visual identity by index, so the ordering is part of the contract.
func findFunctions(root *sitter.Node, source []byte, profile *language.Profile) []FunctionInfo {
	functions := make([]FunctionInfo, 0)

	walk(root, func(node *sitter.Node) {
		if !profile.IsFunctionType(node.Type()) {
			return
		}
		if fn, ok := assemble(node, source, profile); ok {
			functions = append(functions, fn)
		}
	})

	return functions
}

// walk visits every node in pre-order. It always recurses into all children
// regardless of whether the parent matched: function constructs nest
// arbitrarily (a method in a class in a namespace, a closure in a function)
// and siblings after a match must still be discovered.
func walk(node *sitter.Node, visit func(*sitter.Node)) {
	visit(node)
	for i := 0; i < int(node.ChildCount()); i++ {
		walk(node.Child(i), visit)
	}
}

// assemble resolves name, body and enclosing scope for a matched node and
// computes the line-accurate record. A candidate that fails name resolution
// is dropped silently; there are no partial or placeholder records.
func assemble(node *sitter.Node, source []byte, profile *language.Profile) (FunctionInfo, bool) {
	nameNode := resolveName(node, profile)
	if nameNode == nil {
		return FunctionInfo{}, false
	}

	body := resolveBody(node, profile)
	if body == nil {
		// WholeNode is in every profile's rule list, so this only happens
		// with an empty rule list.
		return FunctionInfo{}, false
	}

	start := int(body.StartPoint().Row)
	end := int(body.EndPoint().Row)

	return FunctionInfo{
		Name:            nameNode.Content(source),
		DeclarationLine: int(node.StartPoint().Row),
		StartLine:       start,
		EndLine:         end,
		LineCount:       end - start + 1,
		Scope:           resolveScope(node, source, profile),
	}, true
}
