package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/kgerlich/Function-Highlighter/internal/config"
	"github.com/kgerlich/Function-Highlighter/internal/engine"
	"github.com/kgerlich/Function-Highlighter/internal/language"
	"github.com/kgerlich/Function-Highlighter/internal/palette"
)

// FileResult holds the analysis output for one file
type FileResult struct {
	Path        string                `json:"path"`
	Language    string                `json:"language"`
	Functions   []engine.FunctionInfo `json:"functions"`
	Decorations []palette.Decoration  `json:"decorations"`
}

func analyzeCmd() *cobra.Command {
	var (
		langOverride string
		asJSON       bool
	)

	cmd := &cobra.Command{
		Use:   "analyze [files...]",
		Short: "Report the functions in one or more source files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadProjectConfig(".")
			if err != nil {
				return fmt.Errorf("failed to load project config: %w", err)
			}

			results, err := analyzeFiles(cmd.Context(), args, langOverride, cfg)
			if err != nil {
				return err
			}

			return printResults(results, asJSON)
		},
	}

	cmd.Flags().StringVarP(&langOverride, "lang", "l", "", "Language id override (default: detect from extension)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON instead of text")

	return cmd
}

// analyzeFiles analyzes files concurrently. Results keep the input order so
// repeated runs print identical output.
func analyzeFiles(ctx context.Context, paths []string, langOverride string, cfg *config.ProjectConfig) ([]FileResult, error) {
	results := make([]FileResult, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	eng := engine.New()

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			langID := langOverride
			if langID == "" {
				langID = language.Detect(path)
			}
			if langID == "" {
				log.Warn().Str("file", path).Msg("unknown language, skipping")
				return nil
			}
			if !cfg.LanguageEnabled(langID) {
				log.Debug().Str("file", path).Str("language", langID).Msg("language disabled, skipping")
				return nil
			}

			content, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", path, err)
			}

			functions, err := eng.Analyze(ctx, langID, string(content))
			if err != nil {
				if errors.Is(err, engine.ErrUnsupportedLanguage) {
					log.Warn().Str("file", path).Str("language", langID).Msg("unsupported language, skipping")
					return nil
				}
				return fmt.Errorf("failed to analyze %s: %w", path, err)
			}

			results[i] = FileResult{
				Path:        path,
				Language:    langID,
				Functions:   functions,
				Decorations: palette.Assign(functions, cfg.Highlight.Colors),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Drop skipped entries
	out := results[:0]
	for _, r := range results {
		if r.Path != "" {
			out = append(out, r)
		}
	}
	return out, nil
}

func printResults(results []FileResult, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	for _, r := range results {
		fmt.Printf("%s (%s): %d functions\n", r.Path, r.Language, len(r.Functions))
		for _, d := range r.Decorations {
			fn := d.Function
			name := fn.Name
			if fn.Scope != "" {
				name = fn.Scope + "." + name
			}
			fmt.Printf("  %-40s decl=%d body=%d-%d lines=%d color=%s\n",
				name, fn.DeclarationLine, fn.StartLine, fn.EndLine, fn.LineCount, d.Color)
		}
	}
	return nil
}
