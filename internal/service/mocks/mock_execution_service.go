package mocks

import (
	"context"
	"io"

	"friendgrid/internal/model"
	"friendgrid/internal/service"
	"github.com/stretchr/testify/mock"
)

type MockExecutionService struct {
	mock.Mock
}

func (m *MockExecutionService) Run(ctx context.Context, overrides map[string]any) ([][]model.Item, error) {
	args := m.Called(ctx, overrides)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([][]model.Item), args.Error(1)
}

func (m *MockExecutionService) List(ctx context.Context, limit, offset int) (*service.ExecutionListResult, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ExecutionListResult), args.Error(1)
}

func (m *MockExecutionService) Get(ctx context.Context, id string) (*model.Execution, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Execution), args.Error(1)
}

func (m *MockExecutionService) Data(ctx context.Context, id string) (io.ReadCloser, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(io.ReadCloser), args.Error(1)
}
