package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"photosift/internal/organizer"
)

func newConsolidateCommand(ctx *commandContext) *cobra.Command {
	var photosOnly bool
	var execute bool
	var quiet bool

	cmd := &cobra.Command{
		Use:   "consolidate SOURCE DEST",
		Short: "Flatten all media under SOURCE directly into DEST",
		Long: `Move every media file found anywhere under SOURCE into the single directory
DEST, skipping exact content duplicates so DEST receives one copy of each
distinct file. Name collisions get numeric suffixes.

Runs are previews by default; pass --execute to mutate the tree.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
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

			stats, runErr := engine.Consolidate(runCtx, args[0], args[1], organizer.ConsolidateOptions{
				PhotosOnly: photosOnly,
			})
			if stats != nil {
				fmt.Fprintln(cmd.OutOrStdout(), renderConsolidateSummary(stats, colorizeOutput(cmd)))
			}
			return runErr
		},
	}

	cmd.Flags().BoolVar(&photosOnly, "photos-only", false, "Consolidate photos and leave videos in place")
	cmd.Flags().BoolVarP(&execute, "execute", "x", false, "Apply changes instead of previewing them")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Suppress per-phase log output")
	return cmd
}
