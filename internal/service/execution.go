package service

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"friendgrid/internal/model"
	"friendgrid/internal/node"
	"friendgrid/internal/repository"
	"friendgrid/internal/runtime"
	"friendgrid/internal/storage"
)

var (
	ErrIDRequired      = errors.New("id is required")
	ErrNotFound        = errors.New("execution not found")
	ErrHistoryDisabled = errors.New("execution history is disabled")
	ErrInvalidRequest  = errors.New("invalid execution request")
)

const (
	// dataURLExpiry bounds how long a presigned execution data link stays valid.
	dataURLExpiry = 15 * time.Minute
	// recordTimeout bounds the history writes of one execution.
	recordTimeout = 10 * time.Second
)

// ExecutionListResult is the service-level DTO for paginated executions.
type ExecutionListResult struct {
	Items []model.Execution `json:"data"`
	Total int               `json:"total"`
}

// Executor runs a node against a runtime. *node.FriendGrid satisfies it.
type Executor interface {
	Execute(ctx context.Context, fns node.ExecuteFunctions) ([][]model.Item, error)
}

// ExecutionService runs the node through the local harness and exposes its history.
type ExecutionService interface {
	// Run executes the node once with the given parameter overrides and returns its output batches.
	// Any node failure is returned as-is and no output is produced.
	Run(ctx context.Context, overrides map[string]any) ([][]model.Item, error)

	// List returns recorded executions using limit/offset, newest first.
	List(ctx context.Context, limit, offset int) (*ExecutionListResult, error)

	// Get returns one execution with a presigned link to its archived output.
	Get(ctx context.Context, id string) (*model.Execution, error)

	// Data streams the archived output of an execution. The caller closes the reader.
	Data(ctx context.Context, id string) (io.ReadCloser, error)
}

type executionService struct {
	node      Executor
	requester runtime.Requester
	store     storage.Storage
	repo      repository.ExecutionRepository
	log       *zap.Logger
	now       func() time.Time
}

// NewExecutionService constructs an ExecutionService. History is recorded only when
// both store and repo are non-nil.
func NewExecutionService(n Executor, requester runtime.Requester, store storage.Storage, repo repository.ExecutionRepository, log *zap.Logger) ExecutionService {
	if log == nil {
		log = zap.NewNop()
	}
	return &executionService{
		node:      n,
		requester: requester,
		store:     store,
		repo:      repo,
		log:       log,
		now:       time.Now,
	}
}

func (s *executionService) historyEnabled() bool {
	return s.store != nil && s.repo != nil
}

func (s *executionService) Run(ctx context.Context, overrides map[string]any) ([][]model.Item, error) {
	h, err := runtime.NewHarness(overrides, s.requester)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	start := s.now()
	out, runErr := s.node.Execute(ctx, h)
	duration := s.now().Sub(start)

	if runErr != nil {
		s.log.Error("node_execution_failed",
			zap.String("node", node.Name),
			zap.Int("items", len(h.InputData())),
			zap.Error(runErr),
		)
	} else {
		s.log.Info("node_execution_succeeded",
			zap.String("node", node.Name),
			zap.Int("items", len(h.InputData())),
			zap.Duration("duration", duration),
		)
	}

	if s.historyEnabled() {
		s.record(ctx, h, out, runErr, start, duration)
	}

	if runErr != nil {
		return nil, runErr
	}
	return out, nil
}

// record archives the output and stores the execution row. Failures are
// logged only: history must never change the outcome of an invocation.
// Writes are detached from caller cancellation and bounded by recordTimeout.
func (s *executionService) record(parent context.Context, h *runtime.Harness, out [][]model.Item, runErr error, start time.Time, duration time.Duration) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(parent), recordTimeout)
	defer cancel()

	id := uuid.NewString()
	key := storage.ExecutionDataKey(id)

	exec := &model.Execution{
		ID:         id,
		Node:       node.Name,
		Resource:   paramString(h, node.ParamResource),
		Operation:  paramString(h, node.ParamOperation),
		Status:     model.ExecutionSuccess,
		ItemCount:  len(h.InputData()),
		DataPath:   key,
		DurationMs: duration.Milliseconds(),
		CreatedAt:  start.UTC(),
	}

	var payload any = out
	if runErr != nil {
		exec.Status = model.ExecutionError
		exec.Error = runErr.Error()
		payload = map[string]string{"error": runErr.Error()}
	}

	b, err := json.Marshal(payload)
	if err != nil {
		s.log.Error("execution_record_failed", zap.String("execution_id", id), zap.Error(err))
		return
	}

	if _, err := s.store.Put(ctx, key, bytes.NewReader(b), storage.PutObjectOptions{
		Size:        int64(len(b)),
		ContentType: "application/json",
		Metadata:    map[string]string{"execution-id": id, "node": node.Name},
	}); err != nil {
		s.log.Error("execution_record_failed", zap.String("execution_id", id), zap.String("stage", "archive"), zap.Error(err))
		return
	}

	if _, err := s.repo.Create(ctx, exec); err != nil {
		fields := []zap.Field{zap.String("execution_id", id), zap.String("stage", "db"), zap.Error(err)}
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			fields = append(fields, zap.NamedError("rollback_error", delErr))
		}
		s.log.Error("execution_record_failed", fields...)
		return
	}

	s.log.Debug("execution_recorded", zap.String("execution_id", id), zap.String("status", exec.Status))
}

func paramString(h *runtime.Harness, name string) string {
	v, err := h.NodeParameter(name, 0)
	if err != nil || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// List returns paginated executions without exposing repository types.
func (s *executionService) List(ctx context.Context, limit, offset int) (*ExecutionListResult, error) {
	if !s.historyEnabled() {
		return nil, ErrHistoryDisabled
	}
	if limit <= 0 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	res, err := s.repo.List(ctx, repository.PageQuery{Limit: limit, Offset: offset})
	if err != nil {
		return nil, err
	}
	return &ExecutionListResult{Items: res.Items, Total: res.Total}, nil
}

func (s *executionService) find(ctx context.Context, id string) (*model.Execution, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	if !s.historyEnabled() {
		return nil, ErrHistoryDisabled
	}
	exec, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return exec, nil
}

func (s *executionService) Get(ctx context.Context, id string) (*model.Execution, error) {
	exec, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	link, err := s.store.PresignGet(ctx, exec.DataPath, dataURLExpiry)
	if err != nil {
		s.log.Warn("execution_presign_failed", zap.String("execution_id", id), zap.Error(err))
		return exec, nil
	}
	exec.DataURL = link
	return exec, nil
}

func (s *executionService) Data(ctx context.Context, id string) (io.ReadCloser, error) {
	exec, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	rc, _, err := s.store.Get(ctx, exec.DataPath)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("read execution data: %w", err)
	}
	return rc, nil
}
