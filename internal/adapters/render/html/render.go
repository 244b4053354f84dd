package html

import (
	"fmt"
	"math"
	"strings"
	"text/template"

	"github.com/bnema/layerstats/internal/domain"
	"github.com/bnema/layerstats/internal/ports"
	"github.com/microcosm-cc/bluemonday"
)

const (
	SummaryTitle = "Generate and Average"
	MinMaxTitle  = "Max, Min, Average"
)

var document = template.Must(template.New("report").Parse(documentTemplate))

type RenderOptions struct {
	// Sanitize strips markup from layer names. Names are interpolated
	// verbatim when false.
	Sanitize bool
}

type Renderer struct {
	opts   RenderOptions
	policy *bluemonday.Policy
}

var _ ports.ReportRenderer = (*Renderer)(nil)

func NewRenderer(opts RenderOptions) *Renderer {
	return &Renderer{
		opts:   opts,
		policy: bluemonday.StrictPolicy(),
	}
}

type page struct {
	Title      string
	CellWidth  string
	CellMargin string
	Headers    []string
	Rows       [][]string
}

// RenderSummary pairs layers with averages by position; the shorter of the
// two bounds the row count.
func (r *Renderer) RenderSummary(layers []domain.Layer, averages []domain.AverageRecord) (string, error) {
	rows := make([][]string, 0, len(layers))
	for i, layer := range layers {
		if i >= len(averages) {
			break
		}
		rows = append(rows, []string{r.name(layer.Name), formatArea(averages[i].AverageArea)})
	}

	return r.render(page{
		Title:     SummaryTitle,
		CellWidth: "50%",
		Headers:   []string{"Layer", "Average Area"},
		Rows:      rows,
	})
}

func (r *Renderer) RenderMinMax(stats []domain.LayerStats) (string, error) {
	rows := make([][]string, 0, len(stats))
	for _, s := range stats {
		rows = append(rows, []string{
			r.name(s.Name),
			formatArea(s.MaxArea),
			formatArea(s.MinArea),
			formatArea(s.AverageArea),
		})
	}

	return r.render(page{
		Title:      MinMaxTitle,
		CellWidth:  "25%",
		CellMargin: "20px",
		Headers:    []string{"Layer", "Maximum Area", "Minimum Area", "Average Area"},
		Rows:       rows,
	})
}

func (r *Renderer) render(p page) (string, error) {
	var b strings.Builder
	if err := document.Execute(&b, p); err != nil {
		return "", fmt.Errorf("render %q report: %w", p.Title, err)
	}

	return b.String(), nil
}

func (r *Renderer) name(raw string) string {
	if !r.opts.Sanitize {
		return raw
	}

	return r.policy.Sanitize(raw)
}

// formatArea prints infinities as inf and -inf so reports for single-circle
// layers keep their historical text.
func formatArea(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}

	return fmt.Sprintf("%.2f", v)
}
