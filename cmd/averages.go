package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newAveragesCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "averages [averages-file]",
		Short: "Print the per-layer average areas written by convert",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := app.config.Files.Averages
			if len(args) == 1 {
				name = args[0]
			}

			records, err := app.pipeline.LoadAverages(cmd.Context(), name)
			if err != nil {
				return err
			}
			app.logger.Debug("loaded averages", "file", name, "layers", len(records))

			for _, record := range records {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s\t%.2f\n", record.Name, record.AverageArea); err != nil {
					return err
				}
			}

			return nil
		},
	}
}
