package mocks

import (
	"context"
	"io"

	"github.com/bnema/layerstats/internal/ports"
	"github.com/stretchr/testify/mock"
)

type MockOutputStore struct {
	mock.Mock
}

var _ ports.OutputStore = (*MockOutputStore)(nil)

func NewMockOutputStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockOutputStore {
	m := &MockOutputStore{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockOutputStore) Write(ctx context.Context, name string, fn func(io.Writer) error) error {
	args := m.Called(ctx, name, fn)
	return args.Error(0)
}

func (m *MockOutputStore) Read(ctx context.Context, name string, fn func(io.Reader) error) error {
	args := m.Called(ctx, name, fn)
	return args.Error(0)
}

func (m *MockOutputStore) Path(name string) string {
	args := m.Called(name)
	return args.String(0)
}
