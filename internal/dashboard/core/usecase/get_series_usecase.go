package usecase

import (
	"context"
	"errors"
	"fmt"

	"community-metrics-service/internal/dashboard/core/domain"
	"community-metrics-service/internal/dashboard/core/ports"
)

var ErrUnknownMetric = errors.New("unknown metric id")

type GetSeriesUseCase struct {
	definitions  ports.DefinitionsReaderPort
	observations ports.ObservationsReaderPort
}

func NewGetSeriesUseCase(
	definitions ports.DefinitionsReaderPort,
	observations ports.ObservationsReaderPort,
) *GetSeriesUseCase {
	return &GetSeriesUseCase{definitions: definitions, observations: observations}
}

// Execute returns the interpolated daily series for one known metric,
// truncated to the requested trailing window.
func (uc *GetSeriesUseCase) Execute(ctx context.Context, metricID string, days int) (*domain.Series, error) {
	days = NormalizeDays(days)

	definitions, err := uc.definitions.ListDefinitions(ctx)
	if err != nil {
		return nil, fmt.Errorf("list definitions: %w", err)
	}
	known := false
	for _, def := range definitions {
		if def.MetricID == metricID {
			known = true
			break
		}
	}
	if !known {
		return nil, ErrUnknownMetric
	}

	rows, err := uc.observations.ListObservationsForMetric(ctx, metricID)
	if err != nil {
		return nil, fmt.Errorf("list observations for %s: %w", metricID, err)
	}

	return &domain.Series{
		MetricID: metricID,
		Days:     days,
		Points:   dailySparkline(rows, days),
	}, nil
}
