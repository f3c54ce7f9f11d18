// Package services contains business logic.
package services

import (
	"context"

	"github.com/kdubovikov/testing-workshop/internal/models"
	"github.com/kdubovikov/testing-workshop/internal/repository"
	"github.com/kdubovikov/testing-workshop/pkg/logger"
)

// MetricService defines the interface for metric operations.
type MetricService interface {
	Record(ctx context.Context, metrics []models.Metric) error
	Lookup(ctx context.Context, name string) (*models.Metric, error)
	FindAndSquare(ctx context.Context, name string) (*models.Metric, error)
}

// MetricServiceImpl implements MetricService.
type MetricServiceImpl struct {
	repo repository.MetricRepository
	log  *logger.Logger
}

// NewMetricService creates a new MetricService instance.
func NewMetricService(repo repository.MetricRepository, log *logger.Logger) *MetricServiceImpl {
	return &MetricServiceImpl{
		repo: repo,
		log:  log,
	}
}

// Record persists a batch of metrics in one transaction.
func (s *MetricServiceImpl) Record(ctx context.Context, metrics []models.Metric) error {
	if err := s.repo.InsertMany(ctx, metrics); err != nil {
		return err
	}

	if s.log != nil {
		s.log.Debug("metrics recorded", "count", len(metrics))
	}
	return nil
}

// Lookup retrieves a metric by its exact, case-sensitive name.
func (s *MetricServiceImpl) Lookup(ctx context.Context, name string) (*models.Metric, error) {
	return s.repo.FindByName(ctx, name)
}

// FindAndSquare looks up a metric by name, computes a copy with its value
// squared, persists the copy under a normalized name, and returns the
// persisted record. When no metric matches, it returns
// models.ErrMetricNotFound and performs no insert.
func (s *MetricServiceImpl) FindAndSquare(ctx context.Context, name string) (*models.Metric, error) {
	found, err := s.repo.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}

	squared := found.Squared()

	stored, err := s.repo.InsertNormalized(ctx, squared)
	if err != nil {
		return nil, err
	}

	if s.log != nil {
		s.log.Debug("metric squared",
			"name", stored.Name,
			"value", stored.Value,
		)
	}
	return stored, nil
}
