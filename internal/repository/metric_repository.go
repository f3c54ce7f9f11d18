// Package repository handles data persistence.
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/kdubovikov/testing-workshop/internal/database"
	"github.com/kdubovikov/testing-workshop/internal/models"
)

// MetricRepository defines the interface for metric persistence operations.
type MetricRepository interface {
	// InsertMany stores all metrics in one transaction, preserving input order.
	InsertMany(ctx context.Context, metrics []models.Metric) error

	// FindByName retrieves the first metric whose name matches exactly.
	// Matching is case-sensitive; row order is undefined.
	FindByName(ctx context.Context, name string) (*models.Metric, error)

	// InsertNormalized stores the metric under its lower-cased name as a new
	// row and returns the stored record. The input is not mutated.
	InsertNormalized(ctx context.Context, metric models.Metric) (*models.Metric, error)
}

// PostgresMetricRepository implements MetricRepository using PostgreSQL.
type PostgresMetricRepository struct {
	db database.Querier
}

// NewPostgresMetricRepository creates a new PostgreSQL-backed metric repository.
func NewPostgresMetricRepository(db database.Querier) *PostgresMetricRepository {
	return &PostgresMetricRepository{db: db}
}

// InsertMany stores all metrics in one transaction. An empty input still
// opens and commits the transaction with zero inserts.
func (r *PostgresMetricRepository) InsertMany(ctx context.Context, metrics []models.Metric) error {
	for i := range metrics {
		if err := metrics[i].Validate(); err != nil {
			return err
		}
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	// Rollback is a no-op once the transaction has committed.
	defer func() { _ = tx.Rollback(ctx) }()

	query := `INSERT INTO metrics (name, value) VALUES ($1, $2)`

	for _, metric := range metrics {
		if _, err := tx.Exec(ctx, query, metric.Name, metric.Value); err != nil {
			return fmt.Errorf("failed to insert metric %q: %w", metric.Name, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit metrics: %w", err)
	}

	return nil
}

// FindByName retrieves the first metric with the given name.
func (r *PostgresMetricRepository) FindByName(ctx context.Context, name string) (*models.Metric, error) {
	query := `
		SELECT id, name, value
		FROM metrics
		WHERE name = $1
		LIMIT 1
	`

	var metric models.Metric
	err := r.db.QueryRow(ctx, query, name).Scan(
		&metric.ID,
		&metric.Name,
		&metric.Value,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrMetricNotFound
		}
		return nil, fmt.Errorf("failed to find metric: %w", err)
	}

	return &metric, nil
}

// InsertNormalized stores the metric under its lower-cased name. This always
// inserts a new row, never updates an existing one, so rows with duplicate
// content can accumulate. Lookups stay case-sensitive; normalization applies
// only here.
func (r *PostgresMetricRepository) InsertNormalized(ctx context.Context, metric models.Metric) (*models.Metric, error) {
	normalized := metric.Normalized()
	if err := normalized.Validate(); err != nil {
		return nil, err
	}

	query := `
		INSERT INTO metrics (name, value)
		VALUES ($1, $2)
		RETURNING id, name, value
	`

	var stored models.Metric
	err := r.db.QueryRow(ctx, query, normalized.Name, normalized.Value).Scan(
		&stored.ID,
		&stored.Name,
		&stored.Value,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert normalized metric: %w", err)
	}

	return &stored, nil
}
