// Package models contains domain models and entities.
package models

import (
	"errors"
	"fmt"
	"strings"
)

// Metric represents a named integer measurement persisted in the metrics table.
// Names are not unique at the storage layer; duplicate rows may accumulate.
type Metric struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Value int64  `json:"value"`
}

// Validation errors
var (
	ErrEmptyMetricName = errors.New("metric name cannot be empty")
	ErrMetricNotFound  = errors.New("metric not found")
)

// Validate validates the metric before persistence.
func (m *Metric) Validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return ErrEmptyMetricName
	}
	return nil
}

// Normalized returns a copy of the metric with its name lower-cased.
// The receiver is not modified; normalization applies only on the
// insert-normalized write path.
func (m Metric) Normalized() Metric {
	m.Name = strings.ToLower(m.Name)
	return m
}

// Squared returns a copy of the metric with its value squared.
func (m Metric) Squared() Metric {
	m.Value = m.Value * m.Value
	return m
}

// String implements fmt.Stringer.
func (m Metric) String() string {
	return fmt.Sprintf("<Metric(name=%q, value=%d)>", m.Name, m.Value)
}
