package cmd

import (
	"fmt"

	"github.com/bnema/layerstats/internal/application"
	"github.com/bnema/layerstats/internal/logging"
	"github.com/spf13/cobra"
)

func newRunCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Generate data, convert averages and write both reports",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPipeline(cmd, app)
		},
	}
}

func runPipeline(cmd *cobra.Command, app *app) error {
	logger := logging.FromContext(cmd.Context())

	report, err := app.pipeline.Run(cmd.Context())
	if err != nil {
		return err
	}

	for _, step := range report.Steps {
		printStepResult(cmd, step)
	}
	logger.Info("run complete", "files", report.Paths())

	return nil
}

func printStepResult(cmd *cobra.Command, result application.StepResult) {
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s (%d layers)\n", result.Step, result.Path, result.Layers)
}
