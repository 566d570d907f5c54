// Package language holds the static per-language profile table that drives
// the function-finding engine. Adding a language is a data addition here, not
// a code change in the walker or resolvers.
package language

// NameRuleKind selects a name resolution strategy.
type NameRuleKind int

const (
	// NameField reads a named field off the matched node (commonly "name")
	// and accepts it only when it is an identifier-kind node.
	NameField NameRuleKind = iota

	// NameDeclaratorUnwind descends through nested declarator wrappers
	// (function/pointer/reference/array) until it reaches the base
	// identifier. Used by the C-family grammars.
	NameDeclaratorUnwind

	// NameFirstIdentifierChild scans immediate children in order and takes
	// the first identifier-kind node.
	NameFirstIdentifierChild
)

// NameRule is one entry of an ordered name resolution strategy list.
type NameRule struct {
	Kind  NameRuleKind
	Field string // field name for NameField
}

// BodyRuleKind selects a body resolution strategy.
type BodyRuleKind int

const (
	// BodyField reads a named field off the matched node (commonly "body").
	BodyField BodyRuleKind = iota

	// BodyChildType scans immediate children for the first node whose type
	// is in the rule's type list. Handles grammars without a body field.
	BodyChildType

	// BodyWholeNode treats the entire matched node as its own body. Keeps a
	// function visible when no body can be isolated, at the cost of span
	// precision.
	BodyWholeNode
)

// BodyRule is one entry of an ordered body resolution strategy list.
type BodyRule struct {
	Kind  BodyRuleKind
	Field string   // field name for BodyField
	Types []string // candidate child types for BodyChildType
}

// Profile describes how to locate function-like constructs in one language.
// Profiles are immutable package-level data; the engine is generic over them.
type Profile struct {
	// LanguageID is the identifier the host environment uses ("c",
	// "typescriptreact", ...).
	LanguageID string

	// GrammarID names the grammar to load. Distinct from LanguageID:
	// several language ids may share one grammar (javascriptreact parses
	// with the javascript grammar).
	GrammarID string

	// FunctionTypes are the node types that denote a function-like
	// construct in this grammar.
	FunctionTypes map[string]bool

	// IdentifierTypes are the node types accepted as identifier-kind when
	// resolving names, for both functions and enclosing scopes.
	IdentifierTypes map[string]bool

	// NameRules are tried in order; first success wins.
	NameRules []NameRule

	// BodyRules are tried in order; first success wins.
	BodyRules []BodyRule

	// ScopeTypes are the class/struct/namespace-like node types considered
	// when resolving the nearest enclosing scope.
	ScopeTypes map[string]bool
}

// IsFunctionType reports whether t denotes a function-like construct.
func (p *Profile) IsFunctionType(t string) bool { return p.FunctionTypes[t] }

// IsIdentifierType reports whether t is accepted as an identifier.
func (p *Profile) IsIdentifierType(t string) bool { return p.IdentifierTypes[t] }

// IsScopeType reports whether t denotes an enclosing-scope construct.
func (p *Profile) IsScopeType(t string) bool { return p.ScopeTypes[t] }

// Lookup returns the profile for a language id.
func Lookup(languageID string) (*Profile, bool) {
	p, ok := profiles[languageID]
	return p, ok
}

// IDs returns all supported language ids in stable order.
func IDs() []string {
	return []string{
		"c", "cpp", "csharp", "go", "java",
		"javascript", "javascriptreact", "python", "ruby", "rust",
		"typescript", "typescriptreact",
	}
}

func set(items ...string) map[string]bool {
	m := make(map[string]bool, len(items))
	for _, it := range items {
		m[it] = true
	}
	return m
}
