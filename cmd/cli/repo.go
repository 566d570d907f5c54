package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/kgerlich/Function-Highlighter/internal/config"
	"github.com/kgerlich/Function-Highlighter/internal/gitrepo"
)

func repoCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "repo <url>",
		Short: "Clone a repository and report the functions in every supported file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			info, err := gitrepo.ParseRepoURL(args[0])
			if err != nil {
				return err
			}

			svc := gitrepo.NewRepoService(cfg.WorkDir)
			clone, err := svc.Clone(ctx, info)
			if err != nil {
				return err
			}

			projectCfg, err := config.LoadProjectConfig(clone.Path)
			if err != nil {
				return fmt.Errorf("failed to load project config: %w", err)
			}

			files, err := gitrepo.SourceFiles(clone.Path, projectCfg)
			if err != nil {
				return err
			}

			log.Info().
				Str("repo", info.Owner+"/"+info.Name).
				Int("files", len(files)).
				Msg("analyzing repository")

			results, err := analyzeFiles(ctx, files, "", projectCfg)
			if err != nil {
				return err
			}

			return printResults(results, asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON instead of text")

	return cmd
}
