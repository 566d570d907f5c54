// Package engine locates function-like constructs in source files across the
// supported languages and reports them as ordered FunctionInfo records. The
// traversal and resolution logic is fully data-driven by language.Profile;
// nothing in here branches on a concrete language.
package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/kgerlich/Function-Highlighter/internal/grammar"
	"github.com/kgerlich/Function-Highlighter/internal/language"
)

// ErrUnsupportedLanguage is returned when no profile exists for a language
// id. Callers are expected to skip the document, not to fail.
var ErrUnsupportedLanguage = errors.New("unsupported language")

// Engine turns source text into FunctionInfo records. It is safe for
// sequential reuse across documents; the grammar cache it holds is the only
// state shared between invocations.
type Engine struct {
	grammars *grammar.Cache
}

// New creates an engine with an empty grammar cache.
func New() *Engine {
	return &Engine{grammars: grammar.NewCache()}
}

// Analyze parses source under the profile for languageID and returns the
// functions found, in traversal order. The returned slice is a fresh value
// owned by the caller; a previous result for the same document is simply
// discarded.
//
// An unknown language id yields ErrUnsupportedLanguage and a grammar load
// failure is wrapped and returned; both are non-fatal skip signals. A parse
// failure degrades to an empty result rather than an error so the host stays
// responsive.
func (e *Engine) Analyze(ctx context.Context, languageID, source string) ([]FunctionInfo, error) {
	profile, ok := language.Lookup(languageID)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, languageID)
	}

	lang, err := e.grammars.Load(profile.GrammarID)
	if err != nil {
		return nil, fmt.Errorf("load grammar for %q: %w", languageID, err)
	}

	// The parser and the profile are paired per invocation, so the node
	// type sets in the profile always match the grammar the tree was
	// parsed with.
	parser := sitter.NewParser()
	parser.SetLanguage(lang)

	src := []byte(source)
	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil || tree == nil {
		log.Debug().Err(err).Str("language", languageID).Msg("parse failed, returning no functions")
		return []FunctionInfo{}, nil
	}
	defer tree.Close()

	return findFunctions(tree.RootNode(), src, profile), nil
}

// Supported reports whether a language id has a profile.
func Supported(languageID string) bool {
	_, ok := language.Lookup(languageID)
	return ok
}
