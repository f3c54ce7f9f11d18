package database

import (
	"context"
	"fmt"
)

// createMetricsTableSQL creates the single metrics table. The name column is
// deliberately not unique: the normalized-insert write path appends new rows
// rather than updating existing ones.
const createMetricsTableSQL = `
CREATE TABLE IF NOT EXISTS metrics (
	id BIGSERIAL PRIMARY KEY,
	name TEXT NOT NULL,
	value BIGINT NOT NULL
)`

// CreateSchema creates the metrics table. Schema creation is an explicit
// call; opening a pool never creates tables implicitly.
func CreateSchema(ctx context.Context, q Querier) error {
	if _, err := q.Exec(ctx, createMetricsTableSQL); err != nil {
		return fmt.Errorf("failed to create metrics table: %w", err)
	}
	return nil
}

// DropSchema drops the metrics table. Intended for tests and teardown.
func DropSchema(ctx context.Context, q Querier) error {
	if _, err := q.Exec(ctx, `DROP TABLE IF EXISTS metrics`); err != nil {
		return fmt.Errorf("failed to drop metrics table: %w", err)
	}
	return nil
}
