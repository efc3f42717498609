package postgres

import (
	"context"
	"database/sql"

	"friendgrid/internal/model"
	"friendgrid/internal/repository"
)

// ExecutionPostgres is a PostgreSQL implementation of repository.ExecutionRepository.
type ExecutionPostgres struct {
	db *sql.DB
}

// NewExecutionPostgres creates a new ExecutionPostgres repository.
func NewExecutionPostgres(db *sql.DB) *ExecutionPostgres {
	return &ExecutionPostgres{db: db}
}

var _ repository.ExecutionRepository = (*ExecutionPostgres)(nil)

const executionColumns = `id, node, resource, operation, status, error, item_count, data_path, duration_ms, created_at`

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanExecution(s scanner) (*model.Execution, error) {
	var e model.Execution
	if err := s.Scan(
		&e.ID,
		&e.Node,
		&e.Resource,
		&e.Operation,
		&e.Status,
		&e.Error,
		&e.ItemCount,
		&e.DataPath,
		&e.DurationMs,
		&e.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &e, nil
}

// Create inserts a new execution row and returns the stored record.
func (r *ExecutionPostgres) Create(ctx context.Context, exec *model.Execution) (*model.Execution, error) {
	const q = `
		INSERT INTO executions (` + executionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + executionColumns
	row := r.db.QueryRowContext(ctx, q,
		exec.ID,
		exec.Node,
		exec.Resource,
		exec.Operation,
		exec.Status,
		exec.Error,
		exec.ItemCount,
		exec.DataPath,
		exec.DurationMs,
		exec.CreatedAt,
	)
	return scanExecution(row)
}

// FindByID fetches a single execution by its ID.
func (r *ExecutionPostgres) FindByID(ctx context.Context, id string) (*model.Execution, error) {
	const q = `SELECT ` + executionColumns + ` FROM executions WHERE id = $1`
	return scanExecution(r.db.QueryRowContext(ctx, q, id))
}

// List returns executions using LIMIT/OFFSET pagination and a total count.
func (r *ExecutionPostgres) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.Execution], error) {
	const qCount = `SELECT COUNT(*) FROM executions`
	var total int
	if err := r.db.QueryRowContext(ctx, qCount).Scan(&total); err != nil {
		return nil, err
	}

	const qList = `SELECT ` + executionColumns + ` FROM executions
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2`
	rows, err := r.db.QueryContext(ctx, qList, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Execution, 0)
	for rows.Next() {
		e, err := scanExecution(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.Execution]{
		Items: items,
		Total: total,
	}, nil
}
