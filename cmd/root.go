package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	app := &app{}
	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:   "layerstats",
		Short: "Generate circle layers, persist them and report area statistics",
		Long: "layerstats generates random layers of circles, writes them to output.csv, " +
			"recomputes per-layer average areas into output_converted.csv and renders " +
			"output.html and output_min_max.html. Run without a subcommand to perform all four steps.",
		SilenceUsage:  true,
		SilenceErrors: false,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return app.wire(cmd, flags)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPipeline(cmd, app)
		},
	}

	flags.register(rootCmd)

	rootCmd.AddCommand(
		newVersionCmd(),
		newRunCmd(app),
		newGenerateCmd(app),
		newConvertCmd(app),
		newReportCmd(app),
		newStatsCmd(app),
		newAveragesCmd(app),
		newConfigCmd(app),
	)

	return rootCmd
}
