package application

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bnema/layerstats/internal/domain"
)

const DefaultLayerCount = 5

type GeneratorOptions struct {
	MinCircles int
	MaxCircles int
	CoordMin   float64
	CoordMax   float64
	RadiusMin  float64
	RadiusMax  float64
}

// DefaultGeneratorOptions allows negative radii; area squares the radius so
// they contribute the same as their absolute value.
func DefaultGeneratorOptions() GeneratorOptions {
	return GeneratorOptions{
		MinCircles: 20,
		MaxCircles: 50,
		CoordMin:   -100,
		CoordMax:   100,
		RadiusMin:  -10,
		RadiusMax:  20,
	}
}

func (o GeneratorOptions) Validate() error {
	if o.MinCircles < 0 {
		return fmt.Errorf("generator.min_circles must not be negative: %w", domain.ErrInvalidConfig)
	}
	if o.MinCircles > o.MaxCircles {
		return fmt.Errorf("generator.min_circles (%d) exceeds max_circles (%d): %w", o.MinCircles, o.MaxCircles, domain.ErrInvalidConfig)
	}
	if o.CoordMin > o.CoordMax {
		return fmt.Errorf("generator.coord_min exceeds coord_max: %w", domain.ErrInvalidConfig)
	}
	if o.RadiusMin > o.RadiusMax {
		return fmt.Errorf("generator.radius_min exceeds radius_max: %w", domain.ErrInvalidConfig)
	}

	return nil
}

// OutputFiles names the four artifacts of a run, relative to the output store.
type OutputFiles struct {
	Layers   string
	Averages string
	Summary  string
	MinMax   string
}

func DefaultOutputFiles() OutputFiles {
	return OutputFiles{
		Layers:   "output.csv",
		Averages: "output_converted.csv",
		Summary:  "output.html",
		MinMax:   "output_min_max.html",
	}
}

func (f OutputFiles) Validate() error {
	required := [][2]string{
		{"output.layers", f.Layers},
		{"output.averages", f.Averages},
		{"output.summary", f.Summary},
		{"output.min_max", f.MinMax},
	}

	for _, entry := range required {
		name := strings.TrimSpace(entry[1])
		if name == "" {
			return fmt.Errorf("%s is required: %w", entry[0], domain.ErrInvalidConfig)
		}
		if !filepath.IsLocal(name) {
			return fmt.Errorf("%s %q must be relative to output.dir: %w", entry[0], name, domain.ErrInvalidConfig)
		}
	}

	return nil
}

type PipelineOptions struct {
	LayerCount int
	Generator  GeneratorOptions
	Files      OutputFiles
	MinMaxMode domain.MinMaxMode
}

func DefaultPipelineOptions() PipelineOptions {
	return PipelineOptions{
		LayerCount: DefaultLayerCount,
		Generator:  DefaultGeneratorOptions(),
		Files:      DefaultOutputFiles(),
		MinMaxMode: domain.MinMaxLegacy,
	}
}
