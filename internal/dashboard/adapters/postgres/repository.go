package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"community-metrics-service/internal/dashboard/core/domain"
	"community-metrics-service/internal/dashboard/core/ports"

	"github.com/lib/pq"
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

// StoreRepository reads metric definitions and raw stats rows. It never
// writes: ingestion belongs to the upstream jobs.
type StoreRepository struct {
	db DB
}

func NewStoreRepository(db DB) *StoreRepository {
	return &StoreRepository{db: db}
}

var (
	_ ports.DefinitionsReaderPort  = (*StoreRepository)(nil)
	_ ports.ObservationsReaderPort = (*StoreRepository)(nil)
)

const selectDefinitionsSQL = `
SELECT
    metric_id,
    metric_family,
    product,
    subject,
    sdk,
    source,
    value_kind,
    unit,
    is_active,
    display_name
FROM metrics`

const selectObservationsSQL = `
SELECT
    metric_id,
    period_start,
    period_end,
    value,
    provenance,
    source_window
FROM stats`

func (r *StoreRepository) ListDefinitions(ctx context.Context) ([]domain.MetricDefinition, error) {
	return r.queryDefinitions(ctx, selectDefinitionsSQL)
}

func (r *StoreRepository) ListActiveDefinitions(ctx context.Context) ([]domain.MetricDefinition, error) {
	return r.queryDefinitions(ctx, selectDefinitionsSQL+`
WHERE is_active`)
}

func (r *StoreRepository) queryDefinitions(ctx context.Context, query string, args ...any) ([]domain.MetricDefinition, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var definitions []domain.MetricDefinition
	for rows.Next() {
		var def domain.MetricDefinition
		var sdk sql.NullString
		if err := rows.Scan(
			&def.MetricID,
			&def.MetricFamily,
			&def.Product,
			&def.Subject,
			&sdk,
			&def.Source,
			&def.ValueKind,
			&def.Unit,
			&def.IsActive,
			&def.DisplayName,
		); err != nil {
			return nil, err
		}
		if sdk.Valid {
			value := sdk.String
			def.SDK = &value
		}
		definitions = append(definitions, def)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return definitions, nil
}

func (r *StoreRepository) ListObservations(ctx context.Context, f ports.ObservationFilter) ([]domain.Observation, error) {
	query := selectObservationsSQL + `
WHERE metric_id = ANY($1)`
	args := []any{pq.Array(f.MetricIDs)}
	argIndex := 2

	if !f.From.IsZero() {
		query += sqlAnd("period_end >=", argIndex)
		args = append(args, string(f.From))
		argIndex++
	}
	if !f.To.IsZero() {
		query += sqlAnd("period_end <=", argIndex)
		args = append(args, string(f.To))
		argIndex++
	}
	query += `
ORDER BY period_end`

	return r.queryObservations(ctx, query, args...)
}

func (r *StoreRepository) ListObservationsForMetric(ctx context.Context, metricID string) ([]domain.Observation, error) {
	query := selectObservationsSQL + `
WHERE metric_id = $1
ORDER BY period_end`
	return r.queryObservations(ctx, query, metricID)
}

func sqlAnd(condition string, argIndex int) string {
	return fmt.Sprintf(" AND %s $%d", condition, argIndex)
}

func (r *StoreRepository) queryObservations(ctx context.Context, query string, args ...any) ([]domain.Observation, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var observations []domain.Observation
	for rows.Next() {
		var obs domain.Observation
		var rawValue any
		var provenance, sourceWindow sql.NullString
		// Period and value columns scan untyped: the engine normalizes
		// dates through DayOf, and the value goes through the coercion
		// chain here so the core never sees a driver shape.
		if err := rows.Scan(
			&obs.MetricID,
			&obs.PeriodStart,
			&obs.PeriodEnd,
			&rawValue,
			&provenance,
			&sourceWindow,
		); err != nil {
			return nil, err
		}
		obs.Value = domain.CoerceNumber(rawValue)
		obs.Provenance = provenance.String
		obs.SourceWindow = sourceWindow.String
		observations = append(observations, obs)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return observations, nil
}
