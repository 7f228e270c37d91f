package ports

import (
	"context"
	"time"

	"community-metrics-service/internal/history/core/domain"
)

// RefreshErrorFilter selects failed runs whose finish day falls inside the
// inclusive UTC day range.
type RefreshErrorFilter struct {
	StartDay time.Time
	EndDay   time.Time
	Limit    int
}

type HistoryReaderPort interface {
	ListRefreshErrors(ctx context.Context, f RefreshErrorFilter) ([]domain.RefreshRun, error)
}
