// Package repository contains data access abstractions for execution history.
// Implementations live in subpackages (e.g., postgres).
package repository

import (
	"context"

	"friendgrid/internal/model"
)

// ExecutionRepository persists execution records. No business logic here.
type ExecutionRepository interface {
	// Create inserts a new execution record and returns the stored row.
	Create(ctx context.Context, exec *model.Execution) (*model.Execution, error)

	// FindByID returns an execution by its ID, or sql.ErrNoRows.
	FindByID(ctx context.Context, id string) (*model.Execution, error)

	// List returns executions newest first, with the total row count.
	List(ctx context.Context, pq PageQuery) (*PageResult[model.Execution], error)
}

// PageQuery holds limit/offset pagination parameters.
type PageQuery struct {
	Limit  int
	Offset int
}

// PageResult is a generic pagination result wrapper.
type PageResult[T any] struct {
	Items []T
	Total int
}
