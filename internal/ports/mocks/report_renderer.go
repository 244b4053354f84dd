package mocks

import (
	"github.com/bnema/layerstats/internal/domain"
	"github.com/bnema/layerstats/internal/ports"
	"github.com/stretchr/testify/mock"
)

type MockReportRenderer struct {
	mock.Mock
}

var _ ports.ReportRenderer = (*MockReportRenderer)(nil)

func NewMockReportRenderer(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockReportRenderer {
	m := &MockReportRenderer{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockReportRenderer) RenderSummary(layers []domain.Layer, averages []domain.AverageRecord) (string, error) {
	args := m.Called(layers, averages)
	return args.String(0), args.Error(1)
}

func (m *MockReportRenderer) RenderMinMax(stats []domain.LayerStats) (string, error) {
	args := m.Called(stats)
	return args.String(0), args.Error(1)
}
