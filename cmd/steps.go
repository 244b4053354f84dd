package cmd

import (
	"context"

	"github.com/bnema/layerstats/internal/application"
	"github.com/spf13/cobra"
)

func newGenerateCmd(app *app) *cobra.Command {
	return newStepCmd("generate", "Generate layers and write the layers file", func(ctx context.Context) (application.StepResult, error) {
		return app.pipeline.GenerateData(ctx)
	})
}

func newConvertCmd(app *app) *cobra.Command {
	return newStepCmd("convert", "Reload the layers file and write per-layer average areas", func(ctx context.Context) (application.StepResult, error) {
		return app.pipeline.ConvertAverages(ctx)
	})
}

func newReportCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Render HTML reports from freshly generated layers",
	}

	cmd.AddCommand(
		newStepCmd("summary", "Write the average area report", func(ctx context.Context) (application.StepResult, error) {
			return app.pipeline.WriteSummaryReport(ctx)
		}),
		newStepCmd("minmax", "Write the maximum, minimum and average area report", func(ctx context.Context) (application.StepResult, error) {
			return app.pipeline.WriteMinMaxReport(ctx)
		}),
	)

	return cmd
}

func newStepCmd(use, short string, step func(context.Context) (application.StepResult, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := step(cmd.Context())
			if err != nil {
				return err
			}

			printStepResult(cmd, result)
			return nil
		},
	}
}
