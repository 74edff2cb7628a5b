package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"photosift/internal/config"
	"photosift/internal/organizer"
)

func newRunCommand(ctx *commandContext) *cobra.Command {
	var granularityFlag string
	var removeDuplicates bool
	var execute bool
	var quiet bool

	cmd := &cobra.Command{
		Use:   "run [ROOT]",
		Short: "Deduplicate and organize the media tree at ROOT",
		Long: `Scan the tree at ROOT (default: current directory), remove exact content
duplicates keeping the first-discovered copy, move the remaining files into
date-derived folders, and prune the directories left empty.

Runs are previews by default; pass --execute to mutate the tree.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			root := "."
			if len(args) == 1 {
				root = args[0]
			}

			if cmd.Flags().Changed("granularity") {
				if _, err := config.ParseGranularity(granularityFlag); err != nil {
					return err
				}
				cfg.Organize.Granularity = granularityFlag
			}
			if cmd.Flags().Changed("remove-duplicates") {
				cfg.Organize.RemoveDuplicates = removeDuplicates
			}
			if execute {
				cfg.Organize.DryRun = false
			}

			logger, err := ctx.newLogger(quiet)
			if err != nil {
				return err
			}
			engine, err := organizer.New(cfg, logger)
			if err != nil {
				return err
			}

			runCtx, cancel := signalContext()
			defer cancel()

			stats, runErr := engine.Run(runCtx, root)
			if stats != nil {
				fmt.Fprintln(cmd.OutOrStdout(), renderRunSummary(stats, colorizeOutput(cmd)))
			}
			return runErr
		},
	}

	cmd.Flags().StringVarP(&granularityFlag, "granularity", "g", "", "Folder nesting depth: none, year, year_month, year_month_day")
	cmd.Flags().BoolVar(&removeDuplicates, "remove-duplicates", false, "Delete exact content duplicates, keeping the first-discovered copy")
	cmd.Flags().BoolVarP(&execute, "execute", "x", false, "Apply changes instead of previewing them")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Suppress per-phase log output")
	return cmd
}
