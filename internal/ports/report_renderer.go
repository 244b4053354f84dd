package ports

import "github.com/bnema/layerstats/internal/domain"

type ReportRenderer interface {
	RenderSummary(layers []domain.Layer, averages []domain.AverageRecord) (string, error)
	RenderMinMax(stats []domain.LayerStats) (string, error)
}
