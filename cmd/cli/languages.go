package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kgerlich/Function-Highlighter/internal/language"
)

func languagesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List supported language ids and their grammars",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, id := range language.IDs() {
				profile, ok := language.Lookup(id)
				if !ok {
					continue
				}
				fmt.Printf("%-18s grammar=%s\n", profile.LanguageID, profile.GrammarID)
			}
			return nil
		},
	}
}
