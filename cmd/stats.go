package cmd

import (
	"fmt"

	terminalrender "github.com/bnema/layerstats/internal/adapters/render/terminal"
	"github.com/spf13/cobra"
)

func newStatsCmd(app *app) *cobra.Command {
	var barWidth int

	cmd := &cobra.Command{
		Use:   "stats [layers-file]",
		Short: "Show maximum, minimum and average areas of a layers file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := app.config.Files.Layers
			if len(args) == 1 {
				name = args[0]
			}

			stats, err := app.pipeline.LoadStats(cmd.Context(), name)
			if err != nil {
				return err
			}
			app.logger.Debug("loaded stats", "file", name, "layers", len(stats), "mode", app.config.MinMaxMode)

			rendered, err := app.statsRenderer(stats, terminalrender.RenderOptions{
				Source:   name,
				BarWidth: barWidth,
			})
			if err != nil {
				return fmt.Errorf("render stats: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().IntVar(&barWidth, "bar-width", 20, "Width of the average area bar (0 hides it)")

	return cmd
}
