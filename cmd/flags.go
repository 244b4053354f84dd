package cmd

import (
	tomlconfig "github.com/bnema/layerstats/internal/adapters/config/toml"
	"github.com/spf13/cobra"
)

type globalFlags struct {
	logLevel  string
	verbose   bool
	outputDir string
	count     int
	seed      int64
}

func (f *globalFlags) register(cmd *cobra.Command) {
	pf := cmd.PersistentFlags()
	pf.StringVar(&f.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	pf.BoolVarP(&f.verbose, "verbose", "v", false, "Shorthand for --log-level debug")
	pf.StringVar(&f.outputDir, "output-dir", "", "Directory for generated files (default from config, else current directory)")
	pf.IntVar(&f.count, "count", 0, "Number of layers to generate per step")
	pf.Int64Var(&f.seed, "seed", 0, "Seed for the random source (random when unset)")
}

// apply copies explicitly set flags over the loaded configuration.
func (f *globalFlags) apply(cmd *cobra.Command, cfg *tomlconfig.Config) {
	changed := func(name string) bool {
		flag := cmd.Flags().Lookup(name)
		return flag != nil && flag.Changed
	}

	if changed("log-level") {
		cfg.LogLevel = f.logLevel
	}
	if f.verbose {
		cfg.LogLevel = "debug"
	}
	if changed("output-dir") {
		cfg.OutputDir = f.outputDir
	}
	if changed("count") {
		cfg.LayerCount = f.count
	}
	if changed("seed") {
		seed := f.seed
		cfg.Seed = &seed
	}
}
