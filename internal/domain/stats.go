package domain

import (
	"fmt"
	"math"
	"strings"
)

type AverageRecord struct {
	Name        string
	AverageArea float64
}

type LayerStats struct {
	Name        string
	MaxArea     float64
	MinArea     float64
	AverageArea float64
}

type MinMaxMode string

const (
	// MinMaxLegacy only checks the minimum when an area did not raise the
	// maximum, so a single-circle layer (or a strictly increasing sequence)
	// leaves MinArea at +Inf. Kept as the default so reports match
	// previously generated output.
	MinMaxLegacy MinMaxMode = "legacy"
	// MinMaxIndependent compares every area against both bounds.
	MinMaxIndependent MinMaxMode = "independent"
)

func ParseMinMaxMode(raw string) (MinMaxMode, error) {
	switch MinMaxMode(strings.ToLower(strings.TrimSpace(raw))) {
	case "", MinMaxLegacy:
		return MinMaxLegacy, nil
	case MinMaxIndependent:
		return MinMaxIndependent, nil
	default:
		return "", fmt.Errorf("unsupported min/max mode %q: %w", raw, ErrInvalidConfig)
	}
}

// AverageArea is the mean circle area of the layer. A layer without circles
// yields NaN.
func AverageArea(layer Layer) float64 {
	sum := 0.0
	for _, circle := range layer.Circles {
		sum += circle.Area()
	}

	return sum / float64(len(layer.Circles))
}

func AverageAreas(layers []Layer) []AverageRecord {
	records := make([]AverageRecord, 0, len(layers))
	for _, layer := range layers {
		records = append(records, AverageRecord{
			Name:        layer.Name,
			AverageArea: AverageArea(layer),
		})
	}

	return records
}

func ComputeLayerStats(layer Layer, mode MinMaxMode) LayerStats {
	maxArea := math.Inf(-1)
	minArea := math.Inf(1)

	for _, circle := range layer.Circles {
		area := circle.Area()

		if mode == MinMaxIndependent {
			if area > maxArea {
				maxArea = area
			}
			if area < minArea {
				minArea = area
			}
			continue
		}

		if area > maxArea {
			maxArea = area
		} else if area < minArea {
			minArea = area
		}
	}

	return LayerStats{
		Name:        layer.Name,
		MaxArea:     maxArea,
		MinArea:     minArea,
		AverageArea: AverageArea(layer),
	}
}

func ComputeAllLayerStats(layers []Layer, mode MinMaxMode) []LayerStats {
	stats := make([]LayerStats, 0, len(layers))
	for _, layer := range layers {
		stats = append(stats, ComputeLayerStats(layer, mode))
	}

	return stats
}
