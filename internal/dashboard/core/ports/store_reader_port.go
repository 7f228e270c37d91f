package ports

import (
	"context"

	"community-metrics-service/internal/dashboard/core/domain"
)

// ObservationFilter bounds a stats read to a metric-id set and an inclusive
// period_end day range. Zero From/To leave that side unbounded.
type ObservationFilter struct {
	MetricIDs []string
	From      domain.Day
	To        domain.Day
}

type DefinitionsReaderPort interface {
	ListDefinitions(ctx context.Context) ([]domain.MetricDefinition, error)
	ListActiveDefinitions(ctx context.Context) ([]domain.MetricDefinition, error)
}

type ObservationsReaderPort interface {
	ListObservations(ctx context.Context, f ObservationFilter) ([]domain.Observation, error)
	ListObservationsForMetric(ctx context.Context, metricID string) ([]domain.Observation, error)
}
