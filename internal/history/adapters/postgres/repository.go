package postgres

import (
	"context"
	"database/sql"
	"time"

	"community-metrics-service/internal/history/core/domain"
	"community-metrics-service/internal/history/core/ports"
)

type RowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
}

type DB interface {
	QueryContext(ctx context.Context, query string, args ...any) (RowScanner, error)
}

type HistoryRepository struct {
	db DB
}

func NewHistoryRepository(db DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

var _ ports.HistoryReaderPort = (*HistoryRepository)(nil)

// A run without a finished_at timestamp is bucketed by its start instead.
const selectRefreshErrorsSQL = `
SELECT
    ingestion_run_id,
    job_name,
    status,
    started_at,
    finished_at,
    error_summary
FROM history
WHERE error_summary IS NOT NULL
  AND btrim(error_summary) <> ''
  AND COALESCE(finished_at, started_at) >= $1
  AND COALESCE(finished_at, started_at) < $2
ORDER BY COALESCE(finished_at, started_at) DESC
LIMIT $3`

func (r *HistoryRepository) ListRefreshErrors(ctx context.Context, f ports.RefreshErrorFilter) ([]domain.RefreshRun, error) {
	rangeStart := dayFloor(f.StartDay)
	rangeEnd := dayFloor(f.EndDay).AddDate(0, 0, 1) // exclusive upper bound

	rows, err := r.db.QueryContext(ctx, selectRefreshErrorsSQL, rangeStart, rangeEnd, f.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []domain.RefreshRun
	for rows.Next() {
		var run domain.RefreshRun
		var finishedAt sql.NullTime
		var errorSummary sql.NullString
		if err := rows.Scan(
			&run.IngestionRunID,
			&run.JobName,
			&run.Status,
			&run.StartedAt,
			&finishedAt,
			&errorSummary,
		); err != nil {
			return nil, err
		}
		if finishedAt.Valid {
			run.FinishedAt = finishedAt.Time
		} else {
			run.FinishedAt = run.StartedAt
		}
		run.ErrorSummary = errorSummary.String
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return runs, nil
}

func dayFloor(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
