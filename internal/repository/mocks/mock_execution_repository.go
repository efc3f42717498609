package mocks

import (
	"context"

	"friendgrid/internal/model"
	"friendgrid/internal/repository"
	"github.com/stretchr/testify/mock"
)

type MockExecutionRepository struct {
	mock.Mock
}

func (m *MockExecutionRepository) Create(ctx context.Context, exec *model.Execution) (*model.Execution, error) {
	args := m.Called(ctx, exec)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Execution), args.Error(1)
}

func (m *MockExecutionRepository) FindByID(ctx context.Context, id string) (*model.Execution, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Execution), args.Error(1)
}

func (m *MockExecutionRepository) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.Execution], error) {
	args := m.Called(ctx, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.Execution]), args.Error(1)
}
