// Package migration creates the execution history schema on first start.
package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/zap"
)

type migrationStep struct {
	Name string
	SQL  string
}

var steps = []migrationStep{
	{
		Name: "create_table_executions",
		SQL: `CREATE TABLE IF NOT EXISTS executions (
  id          UUID        PRIMARY KEY,
  node        TEXT        NOT NULL,
  resource    TEXT        NOT NULL,
  operation   TEXT        NOT NULL,
  status      TEXT        NOT NULL CHECK (status IN ('success', 'error')),
  error       TEXT        NOT NULL DEFAULT '',
  item_count  INTEGER     NOT NULL CHECK (item_count >= 0),
  data_path   TEXT        NOT NULL,
  duration_ms BIGINT      NOT NULL CHECK (duration_ms >= 0),
  created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_executions_created_at",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_executions_created_at ON executions (created_at DESC, id DESC);`,
	},
	{
		Name: "create_index_executions_status",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_executions_status ON executions (status);`,
	},
}

// EnsureMigrated runs the schema steps unless the executions table already exists.
func EnsureMigrated(ctx context.Context, db *sql.DB, log *zap.Logger) error {
	start := time.Now()
	log = log.With(zap.String("component", "database"))

	var exists bool
	if err := db.QueryRowContext(ctx, "SELECT to_regclass('public.executions') IS NOT NULL").Scan(&exists); err != nil {
		log.Error("db_migration_failed", zap.Error(err), zap.Int64("duration_ms", time.Since(start).Milliseconds()))
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}
	if exists {
		log.Info("db_migration_skip", zap.Int64("duration_ms", time.Since(start).Milliseconds()))
		return nil
	}

	log.Info("db_migration_start", zap.Int("steps", len(steps)))
	for _, step := range steps {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			log.Error("db_migration_failed",
				zap.String("migration_step", step.Name),
				zap.Error(err),
				zap.Int64("step_duration_ms", time.Since(stepStart).Milliseconds()),
			)
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}
		log.Debug("db_migration_step",
			zap.String("migration_step", step.Name),
			zap.Int64("step_duration_ms", time.Since(stepStart).Milliseconds()),
		)
	}

	log.Info("db_migration_success", zap.Int64("duration_ms", time.Since(start).Milliseconds()))
	return nil
}
