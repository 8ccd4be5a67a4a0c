package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"studentsdemo/internal/catalog"
)

type MockRunner struct {
	mock.Mock
}

func (m *MockRunner) Run(ctx context.Context, op catalog.Operation) (any, error) {
	args := m.Called(ctx, op)
	return args.Get(0), args.Error(1)
}

func (m *MockRunner) RunAll(ctx context.Context) catalog.Report {
	args := m.Called(ctx)
	return args.Get(0).(catalog.Report)
}
