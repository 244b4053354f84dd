package application

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/bnema/layerstats/internal/domain"
	"github.com/bnema/layerstats/internal/ports"
	"github.com/charmbracelet/log"
)

type Step string

const (
	StepGenerate Step = "generate"
	StepConvert  Step = "convert"
	StepSummary  Step = "summary report"
	StepMinMax   Step = "min/max report"
)

type StepResult struct {
	Step     Step
	Path     string
	Layers   int
	Duration time.Duration
}

type RunReport struct {
	Steps []StepResult
}

func (r RunReport) Paths() []string {
	paths := make([]string, 0, len(r.Steps))
	for _, step := range r.Steps {
		paths = append(paths, step.Path)
	}

	return paths
}

// Pipeline runs the generate → convert → report steps. Steps share nothing
// but the files they write; the summary and min/max reports each draw a
// fresh set of layers.
type Pipeline struct {
	rng      ports.RandomSource
	codec    ports.RecordCodec
	store    ports.OutputStore
	renderer ports.ReportRenderer
	logger   *log.Logger
	opts     PipelineOptions
}

func NewPipeline(
	rng ports.RandomSource,
	codec ports.RecordCodec,
	store ports.OutputStore,
	renderer ports.ReportRenderer,
	logger *log.Logger,
	opts PipelineOptions,
) *Pipeline {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Pipeline{
		rng:      rng,
		codec:    codec,
		store:    store,
		renderer: renderer,
		logger:   logger,
		opts:     opts,
	}
}

func (p *Pipeline) Run(ctx context.Context) (RunReport, error) {
	report := RunReport{}

	steps := []func(context.Context) (StepResult, error){
		p.GenerateData,
		p.ConvertAverages,
		p.WriteSummaryReport,
		p.WriteMinMaxReport,
	}

	for _, step := range steps {
		result, err := step(ctx)
		if err != nil {
			return report, err
		}
		report.Steps = append(report.Steps, result)
	}

	return report, nil
}

// GenerateData writes a fresh set of layers to the layers file.
func (p *Pipeline) GenerateData(ctx context.Context) (StepResult, error) {
	start := time.Now()
	layers := GenerateLayers(p.rng, p.opts.LayerCount, p.opts.Generator)

	err := p.store.Write(ctx, p.opts.Files.Layers, func(w io.Writer) error {
		return p.codec.WriteLayers(w, layers)
	})
	if err != nil {
		return StepResult{}, fmt.Errorf("%s: %w", StepGenerate, err)
	}

	return p.done(StepGenerate, p.opts.Files.Layers, len(layers), start), nil
}

// ConvertAverages reloads the layers file and writes one average per layer.
func (p *Pipeline) ConvertAverages(ctx context.Context) (StepResult, error) {
	start := time.Now()

	var layers []domain.Layer
	err := p.store.Read(ctx, p.opts.Files.Layers, func(r io.Reader) error {
		var err error
		layers, err = p.codec.ReadLayers(r)
		return err
	})
	if err != nil {
		return StepResult{}, fmt.Errorf("%s: %w", StepConvert, err)
	}

	averages := domain.AverageAreas(layers)
	err = p.store.Write(ctx, p.opts.Files.Averages, func(w io.Writer) error {
		return p.codec.WriteAverages(w, averages)
	})
	if err != nil {
		return StepResult{}, fmt.Errorf("%s: %w", StepConvert, err)
	}

	return p.done(StepConvert, p.opts.Files.Averages, len(averages), start), nil
}

func (p *Pipeline) WriteSummaryReport(ctx context.Context) (StepResult, error) {
	start := time.Now()
	layers := GenerateLayers(p.rng, p.opts.LayerCount, p.opts.Generator)

	page, err := p.renderer.RenderSummary(layers, domain.AverageAreas(layers))
	if err != nil {
		return StepResult{}, fmt.Errorf("%s: %w", StepSummary, err)
	}

	if err := p.writePage(ctx, p.opts.Files.Summary, page); err != nil {
		return StepResult{}, fmt.Errorf("%s: %w", StepSummary, err)
	}

	return p.done(StepSummary, p.opts.Files.Summary, len(layers), start), nil
}

func (p *Pipeline) WriteMinMaxReport(ctx context.Context) (StepResult, error) {
	start := time.Now()
	layers := GenerateLayers(p.rng, p.opts.LayerCount, p.opts.Generator)

	page, err := p.renderer.RenderMinMax(domain.ComputeAllLayerStats(layers, p.opts.MinMaxMode))
	if err != nil {
		return StepResult{}, fmt.Errorf("%s: %w", StepMinMax, err)
	}

	if err := p.writePage(ctx, p.opts.Files.MinMax, page); err != nil {
		return StepResult{}, fmt.Errorf("%s: %w", StepMinMax, err)
	}

	return p.done(StepMinMax, p.opts.Files.MinMax, len(layers), start), nil
}

// LoadStats decodes a layers file and computes the extended statistics.
func (p *Pipeline) LoadStats(ctx context.Context, name string) ([]domain.LayerStats, error) {
	var layers []domain.Layer
	err := p.store.Read(ctx, name, func(r io.Reader) error {
		var err error
		layers, err = p.codec.ReadLayers(r)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("load layers: %w", err)
	}

	return domain.ComputeAllLayerStats(layers, p.opts.MinMaxMode), nil
}

// LoadAverages decodes an averages file written by ConvertAverages.
func (p *Pipeline) LoadAverages(ctx context.Context, name string) ([]domain.AverageRecord, error) {
	var records []domain.AverageRecord
	err := p.store.Read(ctx, name, func(r io.Reader) error {
		var err error
		records, err = p.codec.ReadAverages(r)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("load averages: %w", err)
	}

	return records, nil
}

func (p *Pipeline) writePage(ctx context.Context, name, page string) error {
	return p.store.Write(ctx, name, func(w io.Writer) error {
		_, err := io.WriteString(w, page)
		return err
	})
}

func (p *Pipeline) done(step Step, name string, layers int, start time.Time) StepResult {
	result := StepResult{
		Step:     step,
		Path:     p.store.Path(name),
		Layers:   layers,
		Duration: time.Since(start).Round(time.Millisecond),
	}

	p.logger.Info("step complete", "step", step, "layers", layers, "path", result.Path, "duration", result.Duration)

	return result
}
