package language

// profiles is the static language profile table. Node type and field names
// follow the tree-sitter grammars shipped with smacker/go-tree-sitter.
var profiles = map[string]*Profile{
	"c": {
		LanguageID:      "c",
		GrammarID:       "c",
		FunctionTypes:   set("function_definition"),
		IdentifierTypes: set("identifier"),
		NameRules: []NameRule{
			{Kind: NameDeclaratorUnwind},
			{Kind: NameFirstIdentifierChild},
		},
		BodyRules: []BodyRule{
			{Kind: BodyField, Field: "body"},
			{Kind: BodyChildType, Types: []string{"compound_statement"}},
			{Kind: BodyWholeNode},
		},
		ScopeTypes: set(),
	},
	"cpp": {
		LanguageID: "cpp",
		GrammarID:  "cpp",
		FunctionTypes: set(
			"function_definition",
		),
		IdentifierTypes: set(
			"identifier", "field_identifier", "qualified_identifier",
			"destructor_name", "operator_name", "type_identifier",
		),
		NameRules: []NameRule{
			{Kind: NameDeclaratorUnwind},
			{Kind: NameFirstIdentifierChild},
		},
		BodyRules: []BodyRule{
			{Kind: BodyField, Field: "body"},
			{Kind: BodyChildType, Types: []string{"compound_statement"}},
			{Kind: BodyWholeNode},
		},
		ScopeTypes: set("class_specifier", "struct_specifier", "namespace_definition"),
	},
	"csharp": {
		LanguageID: "csharp",
		GrammarID:  "c_sharp",
		FunctionTypes: set(
			"method_declaration", "constructor_declaration",
			"local_function_statement",
		),
		IdentifierTypes: set("identifier"),
		NameRules: []NameRule{
			{Kind: NameField, Field: "name"},
			{Kind: NameFirstIdentifierChild},
		},
		BodyRules: []BodyRule{
			{Kind: BodyField, Field: "body"},
			{Kind: BodyChildType, Types: []string{"block", "arrow_expression_clause"}},
			{Kind: BodyWholeNode},
		},
		ScopeTypes: set(
			"class_declaration", "struct_declaration", "interface_declaration",
			"record_declaration", "namespace_declaration",
		),
	},
	"go": {
		LanguageID: "go",
		GrammarID:  "go",
		FunctionTypes: set(
			"function_declaration", "method_declaration", "func_literal",
		),
		IdentifierTypes: set("identifier", "field_identifier"),
		NameRules: []NameRule{
			{Kind: NameField, Field: "name"},
		},
		BodyRules: []BodyRule{
			{Kind: BodyField, Field: "body"},
			{Kind: BodyChildType, Types: []string{"block"}},
			{Kind: BodyWholeNode},
		},
		ScopeTypes: set(),
	},
	"java": {
		LanguageID: "java",
		GrammarID:  "java",
		FunctionTypes: set(
			"method_declaration", "constructor_declaration", "lambda_expression",
		),
		IdentifierTypes: set("identifier"),
		NameRules: []NameRule{
			{Kind: NameField, Field: "name"},
		},
		BodyRules: []BodyRule{
			{Kind: BodyField, Field: "body"},
			{Kind: BodyChildType, Types: []string{"block", "constructor_body"}},
			{Kind: BodyWholeNode},
		},
		ScopeTypes: set(
			"class_declaration", "interface_declaration", "enum_declaration",
		),
	},
	"javascript": {
		LanguageID:      "javascript",
		GrammarID:       "javascript",
		FunctionTypes:   jsFunctionTypes(),
		IdentifierTypes: set("identifier", "property_identifier"),
		NameRules: []NameRule{
			// Field only: a positional identifier scan would mistake an
			// arrow function's first parameter for its name.
			{Kind: NameField, Field: "name"},
		},
		BodyRules: []BodyRule{
			{Kind: BodyField, Field: "body"},
			{Kind: BodyChildType, Types: []string{"statement_block"}},
			{Kind: BodyWholeNode},
		},
		ScopeTypes: set("class_declaration", "class"),
	},
	"javascriptreact": {
		LanguageID:      "javascriptreact",
		GrammarID:       "javascript", // JSX parses with the javascript grammar
		FunctionTypes:   jsFunctionTypes(),
		IdentifierTypes: set("identifier", "property_identifier"),
		NameRules: []NameRule{
			{Kind: NameField, Field: "name"},
		},
		BodyRules: []BodyRule{
			{Kind: BodyField, Field: "body"},
			{Kind: BodyChildType, Types: []string{"statement_block"}},
			{Kind: BodyWholeNode},
		},
		ScopeTypes: set("class_declaration", "class"),
	},
	"python": {
		LanguageID:      "python",
		GrammarID:       "python",
		FunctionTypes:   set("function_definition"),
		IdentifierTypes: set("identifier"),
		NameRules: []NameRule{
			{Kind: NameField, Field: "name"},
			{Kind: NameFirstIdentifierChild},
		},
		BodyRules: []BodyRule{
			{Kind: BodyField, Field: "body"},
			{Kind: BodyChildType, Types: []string{"block"}},
			{Kind: BodyWholeNode},
		},
		ScopeTypes: set("class_definition"),
	},
	"ruby": {
		LanguageID:      "ruby",
		GrammarID:       "ruby",
		FunctionTypes:   set("method", "singleton_method"),
		IdentifierTypes: set("identifier", "constant", "operator"),
		NameRules: []NameRule{
			{Kind: NameField, Field: "name"},
			{Kind: NameFirstIdentifierChild},
		},
		BodyRules: []BodyRule{
			{Kind: BodyField, Field: "body"},
			{Kind: BodyChildType, Types: []string{"body_statement"}},
			{Kind: BodyWholeNode},
		},
		ScopeTypes: set("class", "module"),
	},
	"rust": {
		LanguageID:      "rust",
		GrammarID:       "rust",
		FunctionTypes:   set("function_item", "closure_expression"),
		IdentifierTypes: set("identifier"),
		NameRules: []NameRule{
			{Kind: NameField, Field: "name"},
		},
		BodyRules: []BodyRule{
			{Kind: BodyField, Field: "body"},
			{Kind: BodyChildType, Types: []string{"block"}},
			{Kind: BodyWholeNode},
		},
		ScopeTypes: set("mod_item", "trait_item"),
	},
	"typescript": {
		LanguageID:      "typescript",
		GrammarID:       "typescript",
		FunctionTypes:   jsFunctionTypes(),
		IdentifierTypes: set("identifier", "property_identifier"),
		NameRules: []NameRule{
			{Kind: NameField, Field: "name"},
		},
		BodyRules: []BodyRule{
			{Kind: BodyField, Field: "body"},
			{Kind: BodyChildType, Types: []string{"statement_block"}},
			{Kind: BodyWholeNode},
		},
		ScopeTypes: set("class_declaration", "class"),
	},
	"typescriptreact": {
		LanguageID:      "typescriptreact",
		GrammarID:       "tsx",
		FunctionTypes:   jsFunctionTypes(),
		IdentifierTypes: set("identifier", "property_identifier"),
		NameRules: []NameRule{
			{Kind: NameField, Field: "name"},
		},
		BodyRules: []BodyRule{
			{Kind: BodyField, Field: "body"},
			{Kind: BodyChildType, Types: []string{"statement_block"}},
			{Kind: BodyWholeNode},
		},
		ScopeTypes: set("class_declaration", "class"),
	},
}

// jsFunctionTypes covers the JavaScript-family grammars. Both "function" and
// "function_expression" are listed because the grammar renamed the node type;
// an unused entry in the set is harmless.
func jsFunctionTypes() map[string]bool {
	return set(
		"function_declaration", "generator_function_declaration",
		"method_definition", "function", "function_expression",
		"generator_function", "arrow_function",
	)
}
