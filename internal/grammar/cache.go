// Package grammar loads and memoizes tree-sitter grammar handles. Grammars
// are process-wide, read-only state: once loaded an entry is never evicted,
// which is acceptable because the set of distinct grammars is small and fixed.
package grammar

import (
	"errors"
	"fmt"
	"sync"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/c"
	"github.com/smacker/go-tree-sitter/cpp"
	"github.com/smacker/go-tree-sitter/csharp"
	"github.com/smacker/go-tree-sitter/golang"
	"github.com/smacker/go-tree-sitter/java"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/python"
	"github.com/smacker/go-tree-sitter/ruby"
	"github.com/smacker/go-tree-sitter/rust"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"
)

// ErrUnknownGrammar is returned when no loader exists for a grammar id.
var ErrUnknownGrammar = errors.New("unknown grammar")

// loaders maps a grammar id to its tree-sitter language constructor. Several
// language ids share one entry (javascriptreact parses with "javascript").
var loaders = map[string]func() *sitter.Language{
	"c":          c.GetLanguage,
	"cpp":        cpp.GetLanguage,
	"c_sharp":    csharp.GetLanguage,
	"go":         golang.GetLanguage,
	"java":       java.GetLanguage,
	"javascript": javascript.GetLanguage,
	"python":     python.GetLanguage,
	"ruby":       ruby.GetLanguage,
	"rust":       rust.GetLanguage,
	"typescript": typescript.GetLanguage,
	"tsx":        tsx.GetLanguage,
}

// Cache memoizes grammar handles by grammar id. The zero value is not usable;
// use NewCache.
type Cache struct {
	mu       sync.Mutex
	grammars map[string]*sitter.Language
}

// NewCache creates an empty grammar cache.
func NewCache() *Cache {
	return &Cache{
		grammars: make(map[string]*sitter.Language),
	}
}

// Load returns the grammar handle for the given id, loading it on first use.
// Repeated calls for the same id return the same handle, so a grammar already
// loaded for one language id is reused by another sharing it.
func (c *Cache) Load(grammarID string) (*sitter.Language, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if lang, ok := c.grammars[grammarID]; ok {
		return lang, nil
	}

	loader, ok := loaders[grammarID]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownGrammar, grammarID)
	}

	lang := loader()
	if lang == nil {
		return nil, fmt.Errorf("grammar %q failed to load", grammarID)
	}
	c.grammars[grammarID] = lang

	return lang, nil
}

// Loaded reports whether a grammar is already in the cache.
func (c *Cache) Loaded(grammarID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.grammars[grammarID]
	return ok
}
