package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"community-metrics-service/internal/history/core/domain"
	"community-metrics-service/internal/history/core/ports"
)

const (
	DefaultLimit = 500
	MaxLimit     = 5000
)

var (
	ErrInvalidDateRange = errors.New("end_date must be on or after start_date")
	ErrInvalidLimit     = errors.New("limit out of range")
)

type ListRefreshErrorsInput struct {
	StartDay time.Time
	EndDay   time.Time
	Limit    int
}

type ListRefreshErrorsResult struct {
	StartDay time.Time
	EndDay   time.Time
	Runs     []domain.RefreshRun
}

type ListRefreshErrorsUseCase struct {
	reader ports.HistoryReaderPort
}

func NewListRefreshErrorsUseCase(reader ports.HistoryReaderPort) *ListRefreshErrorsUseCase {
	return &ListRefreshErrorsUseCase{reader: reader}
}

// Execute lists ingestion runs that finished with an error inside the
// requested day range, newest first.
func (uc *ListRefreshErrorsUseCase) Execute(ctx context.Context, in ListRefreshErrorsInput) (*ListRefreshErrorsResult, error) {
	if in.EndDay.Before(in.StartDay) {
		return nil, ErrInvalidDateRange
	}
	if in.Limit == 0 {
		in.Limit = DefaultLimit
	}
	if in.Limit < 1 || in.Limit > MaxLimit {
		return nil, ErrInvalidLimit
	}

	runs, err := uc.reader.ListRefreshErrors(ctx, ports.RefreshErrorFilter{
		StartDay: in.StartDay,
		EndDay:   in.EndDay,
		Limit:    in.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("list refresh errors: %w", err)
	}

	return &ListRefreshErrorsResult{
		StartDay: in.StartDay,
		EndDay:   in.EndDay,
		Runs:     runs,
	}, nil
}
