package cmd

import (
	"fmt"
	"math/rand/v2"

	csvcodec "github.com/bnema/layerstats/internal/adapters/codec/csv"
	tomlconfig "github.com/bnema/layerstats/internal/adapters/config/toml"
	htmlrender "github.com/bnema/layerstats/internal/adapters/render/html"
	terminalrender "github.com/bnema/layerstats/internal/adapters/render/terminal"
	filestore "github.com/bnema/layerstats/internal/adapters/store/file"
	"github.com/bnema/layerstats/internal/application"
	"github.com/bnema/layerstats/internal/domain"
	"github.com/bnema/layerstats/internal/logging"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type app struct {
	config        tomlconfig.Config
	logger        *log.Logger
	pipeline      *application.Pipeline
	statsRenderer func([]domain.LayerStats, terminalrender.RenderOptions) (string, error)
}

func (a *app) wire(cmd *cobra.Command, flags *globalFlags) error {
	cfg, err := tomlconfig.Load(viper.New())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	flags.apply(cmd, &cfg)

	if cfg.LayerCount < 0 {
		return fmt.Errorf("--count must not be negative: %w", domain.ErrInvalidConfig)
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logger := logging.New(cmd.ErrOrStderr(), level)
	cmd.SetContext(logging.WithLogger(cmd.Context(), logger))

	store, err := filestore.NewStore(cfg.OutputDir)
	if err != nil {
		return fmt.Errorf("wire output store: %w", err)
	}

	codec := csvcodec.NewCodec(cfg.Decode, logger.WithPrefix("codec"))
	renderer := htmlrender.NewRenderer(htmlrender.RenderOptions{Sanitize: cfg.Sanitize})

	a.config = cfg
	a.logger = logger
	a.statsRenderer = terminalrender.Render
	a.pipeline = application.NewPipeline(
		newRandomSource(cfg.Seed),
		codec,
		store,
		renderer,
		logger,
		application.PipelineOptions{
			LayerCount: cfg.LayerCount,
			Generator:  cfg.Generator,
			Files:      cfg.Files,
			MinMaxMode: cfg.MinMaxMode,
		},
	)

	logger.Debug("configured", "config", cfg.Path, "output", store.Root(), "layers", cfg.LayerCount, "seeded", cfg.Seed != nil)

	return nil
}

func newRandomSource(seed *int64) *rand.Rand {
	if seed != nil {
		s := uint64(*seed)
		return rand.New(rand.NewPCG(s, s))
	}

	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}
