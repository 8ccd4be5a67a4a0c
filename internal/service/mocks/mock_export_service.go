package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"studentsdemo/internal/service"
)

type MockExportService struct {
	mock.Mock
}

func (m *MockExportService) Export(ctx context.Context) (*service.ExportResult, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ExportResult), args.Error(1)
}
