package usecase

import (
	"context"
	"fmt"
	"sort"

	"community-metrics-service/internal/dashboard/core/domain"
	"community-metrics-service/internal/dashboard/core/ports"
)

type ListDefinitionsUseCase struct {
	definitions ports.DefinitionsReaderPort
}

func NewListDefinitionsUseCase(definitions ports.DefinitionsReaderPort) *ListDefinitionsUseCase {
	return &ListDefinitionsUseCase{definitions: definitions}
}

// Execute lists every metric definition in the catalog's display order.
func (uc *ListDefinitionsUseCase) Execute(ctx context.Context) ([]domain.MetricDefinition, error) {
	definitions, err := uc.definitions.ListDefinitions(ctx)
	if err != nil {
		return nil, fmt.Errorf("list definitions: %w", err)
	}

	sort.SliceStable(definitions, func(i, j int) bool {
		a, b := definitions[i], definitions[j]
		if a.Product != b.Product {
			return a.Product < b.Product
		}
		if a.MetricFamily != b.MetricFamily {
			return a.MetricFamily < b.MetricFamily
		}
		if a.DisplayName != b.DisplayName {
			return a.DisplayName < b.DisplayName
		}
		return a.MetricID < b.MetricID
	})
	return definitions, nil
}
