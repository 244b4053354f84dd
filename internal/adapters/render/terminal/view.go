package terminal

import (
	"fmt"
	"math"
	"strings"

	"github.com/bnema/layerstats/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const (
	nameWidth  = 16
	valueWidth = 12
)

type RenderOptions struct {
	Source   string
	BarWidth int
}

func renderView(stats []domain.LayerStats, opts RenderOptions, s styles) string {
	lines := []string{s.title.Render("Layer Area Statistics")}

	header := fmt.Sprintf("layers: %d", len(stats))
	if opts.Source != "" {
		header += fmt.Sprintf(" (%s)", opts.Source)
	}
	lines = append(lines, s.header.Render(header))

	if len(stats) == 0 {
		lines = append(lines, s.empty.Render("No layers available."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	lines = append(lines, lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.column.Width(nameWidth).Render("layer"),
		s.column.Width(valueWidth).Align(lipgloss.Right).Render("max"),
		s.column.Width(valueWidth).Align(lipgloss.Right).Render("min"),
		s.column.Width(valueWidth).Align(lipgloss.Right).Render("average"),
	))

	peak := peakAverage(stats)
	for _, stat := range stats {
		lines = append(lines, statLine(stat, peak, opts, s))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func statLine(stat domain.LayerStats, peak float64, opts RenderOptions, s styles) string {
	parts := []string{
		s.name.Width(nameWidth).Render(truncate(stat.Name, nameWidth-1)),
		valueCell(stat.MaxArea, s),
		valueCell(stat.MinArea, s),
		valueCell(stat.AverageArea, s),
	}

	if opts.BarWidth > 0 {
		parts = append(parts, " ", renderBar(stat.AverageArea, peak, opts.BarWidth, s))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func valueCell(v float64, s styles) string {
	style := s.value
	if math.IsNaN(v) || math.IsInf(v, 0) {
		style = s.warning
	}

	return style.Width(valueWidth).Align(lipgloss.Right).Render(fmt.Sprintf("%.2f", v))
}

func renderBar(value, peak float64, width int, s styles) string {
	filled := 0
	if peak > 0 && !math.IsNaN(value) && !math.IsInf(value, 0) {
		filled = int(math.Round(float64(width) * value / peak))
	}
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}

	return s.barFill.Render(strings.Repeat("=", filled)) + s.barRest.Render(strings.Repeat("-", width-filled))
}

func peakAverage(stats []domain.LayerStats) float64 {
	peak := 0.0
	for _, stat := range stats {
		if math.IsNaN(stat.AverageArea) || math.IsInf(stat.AverageArea, 0) {
			continue
		}
		if stat.AverageArea > peak {
			peak = stat.AverageArea
		}
	}

	return peak
}

func truncate(value string, limit int) string {
	runes := []rune(strings.TrimSpace(value))
	if len(runes) <= limit {
		return string(runes)
	}
	if limit <= 1 {
		return string(runes[:limit])
	}

	return string(runes[:limit-1]) + "…"
}
