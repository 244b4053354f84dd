package application

import (
	"github.com/bnema/layerstats/internal/domain"
	"github.com/bnema/layerstats/internal/ports"
)

// GenerateLayers builds count layers named "Layer 1".."Layer count". For each
// layer it draws the color, then the circle count, then x, y and radius per
// circle, so a seeded source reproduces the same layers.
func GenerateLayers(rng ports.RandomSource, count int, opts GeneratorOptions) []domain.Layer {
	if count <= 0 {
		return []domain.Layer{}
	}

	layers := make([]domain.Layer, 0, count)
	for i := 0; i < count; i++ {
		color := domain.FormatColor(rng.Uint32())
		layers = append(layers, generateLayer(rng, domain.LayerName(i), color, opts))
	}

	return layers
}

func generateLayer(rng ports.RandomSource, name, color string, opts GeneratorOptions) domain.Layer {
	n := opts.MinCircles + rng.IntN(opts.MaxCircles-opts.MinCircles+1)

	circles := make([]domain.Circle, 0, n)
	for i := 0; i < n; i++ {
		circles = append(circles, domain.Circle{
			X:      uniform(rng, opts.CoordMin, opts.CoordMax),
			Y:      uniform(rng, opts.CoordMin, opts.CoordMax),
			Radius: uniform(rng, opts.RadiusMin, opts.RadiusMax),
		})
	}

	return domain.Layer{
		Name:    name,
		Color:   color,
		Circles: circles,
	}
}

func uniform(rng ports.RandomSource, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
