package engine

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/kgerlich/Function-Highlighter/internal/language"
)

// resolveName returns the identifier-bearing node for a matched function
// node, trying the profile's name rules in order. A nil result means the
// candidate is anonymous under every strategy and must be dropped. The engine
// deliberately does not inspect sibling or parent binding context for
// unnamed function literals.
func resolveName(node *sitter.Node, profile *language.Profile) *sitter.Node {
	for _, rule := range profile.NameRules {
		switch rule.Kind {
		case language.NameField:
			if n := node.ChildByFieldName(rule.Field); n != nil && profile.IsIdentifierType(n.Type()) {
				return n
			}
		case language.NameDeclaratorUnwind:
			if n := unwindDeclarator(node, profile); n != nil {
				return n
			}
		case language.NameFirstIdentifierChild:
			if n := firstIdentifierChild(node, profile); n != nil {
				return n
			}
		}
	}
	return nil
}

// unwindDeclarator digs the base identifier out of a C-family declarator
// chain. The name of `int *(*fp)(void)` or `char **argv_dup(int n)` is
// wrapped in pointer/reference/array declarators around a function
// declarator; each wrapper is peeled until an identifier-kind node remains.
func unwindDeclarator(node *sitter.Node, profile *language.Profile) *sitter.Node {
	current := node.ChildByFieldName("declarator")
	for current != nil {
		if profile.IsIdentifierType(current.Type()) {
			return current
		}
		if !strings.HasSuffix(current.Type(), "_declarator") {
			return nil
		}
		next := current.ChildByFieldName("declarator")
		if next == nil {
			// Some wrappers (reference_declarator) carry the inner
			// declarator as a plain child rather than a field.
			next = firstDeclaratorChild(current, profile)
		}
		current = next
	}
	return nil
}

func firstDeclaratorChild(node *sitter.Node, profile *language.Profile) *sitter.Node {
	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		if profile.IsIdentifierType(child.Type()) || strings.HasSuffix(child.Type(), "_declarator") {
			return child
		}
	}
	return nil
}

func firstIdentifierChild(node *sitter.Node, profile *language.Profile) *sitter.Node {
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		if profile.IsIdentifierType(child.Type()) {
			return child
		}
	}
	return nil
}

// resolveBody returns the node spanning the function's executable body,
// trying the profile's body rules in order. The WholeNode fallback keeps a
// function visible when no body can be isolated, trading span precision for
// coverage.
func resolveBody(node *sitter.Node, profile *language.Profile) *sitter.Node {
	for _, rule := range profile.BodyRules {
		switch rule.Kind {
		case language.BodyField:
			if n := node.ChildByFieldName(rule.Field); n != nil {
				return n
			}
		case language.BodyChildType:
			for i := 0; i < int(node.ChildCount()); i++ {
				child := node.Child(i)
				for _, t := range rule.Types {
					if child.Type() == t {
						return child
					}
				}
			}
		case language.BodyWholeNode:
			return node
		}
	}
	return nil
}

// resolveScope walks the ancestor chain outward from a matched node and
// returns the name of the nearest class/struct/namespace-like ancestor. The
// nearest scope-type ancestor decides: if it carries no resolvable name the
// function is reported without a scope rather than attributed to an outer
// one.
func resolveScope(node *sitter.Node, source []byte, profile *language.Profile) string {
	for parent := node.Parent(); parent != nil; parent = parent.Parent() {
		if !profile.IsScopeType(parent.Type()) {
			continue
		}
		if n := parent.ChildByFieldName("name"); n != nil && profile.IsIdentifierType(n.Type()) {
			return n.Content(source)
		}
		return ""
	}
	return ""
}
