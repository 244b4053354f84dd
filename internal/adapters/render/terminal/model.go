package terminal

import (
	"errors"
	"fmt"
	"io"

	"github.com/bnema/layerstats/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUnexpectedRenderModel = errors.New("unexpected final bubbletea model type")

// statsMsg carries the computed layer statistics into the program.
type statsMsg []domain.LayerStats

// tableMsg carries the rendered table back to Update.
type tableMsg string

type statsModel struct {
	opts   RenderOptions
	styles styles
	rows   int
	table  string
}

func newStatsModel(opts RenderOptions) statsModel {
	return statsModel{opts: opts, styles: newStyles()}
}

func (m statsModel) Init() tea.Cmd {
	return nil
}

func (m statsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case statsMsg:
		m.rows = len(msg)
		return m, m.renderTable(msg)
	case tableMsg:
		m.table = string(msg)
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m statsModel) renderTable(stats []domain.LayerStats) tea.Cmd {
	return func() tea.Msg {
		return tableMsg(renderView(stats, m.opts, m.styles))
	}
}

func (m statsModel) View() string {
	return m.table
}

// Render runs a headless program that receives stats as a message and quits
// once the table is rendered.
func Render(stats []domain.LayerStats, opts RenderOptions) (string, error) {
	p := tea.NewProgram(
		newStatsModel(opts),
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
	)
	go p.Send(statsMsg(stats))

	finalModel, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("render layer stats: %w", err)
	}

	rendered, ok := finalModel.(statsModel)
	if !ok {
		return "", ErrUnexpectedRenderModel
	}

	return rendered.View(), nil
}
