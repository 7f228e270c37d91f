package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"community-metrics-service/internal/dashboard/core/domain"
	"community-metrics-service/internal/dashboard/core/ports"
)

const (
	DefaultDays = 180
	MaxDays     = 730

	familyDownloads = "downloads"
	familyStars     = "stars"
)

// RegimeCutover fixes the boundary between the legacy snapshot regime and
// the daily-summed regime for download metrics.
type RegimeCutover struct {
	SnapshotCutoff domain.Day // last day served as standalone snapshot points
	DailyStart     domain.Day // first day summed into monthly buckets
}

// ProductGroup names one dashboard group in display order.
type ProductGroup struct {
	Product string
	Title   string
}

// EngineConfig carries the fixed regime constants and the wall clock. They
// are injected so the engine stays independent of which dates, products and
// repositories happen to be configured.
type EngineConfig struct {
	Cutover       RegimeCutover
	StarMetricIDs []string
	Products      []ProductGroup
	Now           func() time.Time
}

// DefaultEngineConfig mirrors the deployed configuration: downloads cut over
// from snapshots to daily rows on 2025-12-01, and the star total spans the
// two tracked repositories.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		Cutover: RegimeCutover{
			SnapshotCutoff: "2025-11-30",
			DailyStart:     "2025-12-01",
		},
		StarMetricIDs: []string{"stars:lance:github", "stars:lancedb:github"},
		Products: []ProductGroup{
			{Product: "lance", Title: "Lance"},
			{Product: "lancedb", Title: "LanceDB"},
		},
		Now: time.Now,
	}
}

// NormalizeDays clamps a requested day count into the supported range.
func NormalizeDays(days int) int {
	if days < 1 {
		return 1
	}
	if days > MaxDays {
		return MaxDays
	}
	return days
}

type GetDashboardUseCase struct {
	definitions  ports.DefinitionsReaderPort
	observations ports.ObservationsReaderPort
	cfg          EngineConfig
}

func NewGetDashboardUseCase(
	definitions ports.DefinitionsReaderPort,
	observations ports.ObservationsReaderPort,
	cfg EngineConfig,
) *GetDashboardUseCase {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &GetDashboardUseCase{
		definitions:  definitions,
		observations: observations,
		cfg:          cfg,
	}
}

// Execute assembles the full dashboard for the requested trailing window.
// Everything below the two store reads is a pure function of the inputs and
// the current UTC day.
func (uc *GetDashboardUseCase) Execute(ctx context.Context, days int) (*domain.Dashboard, error) {
	days = NormalizeDays(days)

	now := uc.cfg.Now().UTC()
	today := domain.DayOf(now)
	latestCompleted := today.AddDays(-1)

	definitions, err := uc.definitions.ListActiveDefinitions(ctx)
	if err != nil {
		return nil, fmt.Errorf("list active definitions: %w", err)
	}

	if len(definitions) == 0 {
		return &domain.Dashboard{
			GeneratedAt:         now,
			Days:                days,
			Groups:              []domain.DashboardGroup{},
			TotalStars:          nil,
			TotalStarsSparkline: nil,
			DownloadTotals:      downloadTotals(nil, latestCompleted, uc.products()),
		}, nil
	}

	rows, err := uc.observations.ListObservations(ctx, ports.ObservationFilter{
		MetricIDs: uc.relevantMetricIDs(definitions),
		From:      today.AddDays(-2 * MaxDays),
		To:        today,
	})
	if err != nil {
		return nil, fmt.Errorf("list observations: %w", err)
	}

	rowsByMetric := make(map[string][]domain.Observation)
	for _, row := range rows {
		if row.MetricID == "" {
			continue
		}
		rowsByMetric[row.MetricID] = append(rowsByMetric[row.MetricID], row)
	}

	groups := make([]domain.DashboardGroup, 0, len(uc.cfg.Products))
	for _, productGroup := range uc.cfg.Products {
		subset := make([]domain.MetricDefinition, 0)
		for _, def := range definitions {
			if def.Product == productGroup.Product {
				subset = append(subset, def)
			}
		}
		if len(subset) == 0 {
			continue
		}
		sort.SliceStable(subset, func(i, j int) bool {
			a, b := subset[i], subset[j]
			if a.MetricFamily != b.MetricFamily {
				return a.MetricFamily < b.MetricFamily
			}
			if a.DisplayName != b.DisplayName {
				return a.DisplayName < b.DisplayName
			}
			return a.MetricID < b.MetricID
		})

		items := make([]domain.DashboardMetric, 0, len(subset))
		for _, def := range subset {
			items = append(items, uc.buildMetricItem(def, rowsByMetric[def.MetricID], days, latestCompleted))
		}
		groups = append(groups, domain.DashboardGroup{
			Product: productGroup.Product,
			Title:   productGroup.Title,
			Items:   items,
		})
	}

	totalStars, totalStarsSparkline := totalStarsAggregate(rows, days, uc.cfg.StarMetricIDs)
	for gi := range groups {
		for ii := range groups[gi].Items {
			if groups[gi].Items[ii].MetricFamily == familyStars {
				groups[gi].Items[ii].TotalStars = totalStars
			}
		}
	}

	return &domain.Dashboard{
		GeneratedAt:         now,
		Days:                days,
		Groups:              groups,
		TotalStars:          totalStars,
		TotalStarsSparkline: totalStarsSparkline,
		DownloadTotals:      downloadTotals(rows, latestCompleted, uc.products()),
	}, nil
}

func (uc *GetDashboardUseCase) buildMetricItem(
	def domain.MetricDefinition,
	rows []domain.Observation,
	days int,
	latestCompleted domain.Day,
) domain.DashboardMetric {
	item := domain.DashboardMetric{
		MetricID:     def.MetricID,
		DisplayName:  def.DisplayName,
		MetricFamily: def.MetricFamily,
		SDK:          def.SDK,
		Subject:      def.Subject,
	}

	if def.MetricFamily == familyDownloads {
		item.Sparkline = monthlyDownloadSparkline(rows, days, uc.cfg.Cutover)
		item.LatestValue, item.LatestPeriodEnd = lastFullMonthValue(item.Sparkline, latestCompleted)
	} else {
		item.Sparkline = dailySparkline(rows, days)
		if len(item.Sparkline) > 0 {
			last := item.Sparkline[len(item.Sparkline)-1]
			item.LatestValue = &last.Value
			end := last.PeriodEnd
			item.LatestPeriodEnd = &end
		}
	}

	if provenance, ok := latestProvenance(rows); ok {
		item.LatestProvenance = &provenance
	}
	return item
}

// latestProvenance reports the provenance of the row with the largest
// normalized period_end; the first such row wins a tie.
func latestProvenance(rows []domain.Observation) (string, bool) {
	if len(rows) == 0 {
		return "", false
	}
	best := 0
	bestDay := domain.DayOf(rows[0].PeriodEnd)
	for i := 1; i < len(rows); i++ {
		if day := domain.DayOf(rows[i].PeriodEnd); day > bestDay {
			best = i
			bestDay = day
		}
	}
	return rows[best].Provenance, true
}

func (uc *GetDashboardUseCase) products() []string {
	products := make([]string, 0, len(uc.cfg.Products))
	for _, group := range uc.cfg.Products {
		products = append(products, group.Product)
	}
	return products
}

// relevantMetricIDs is the active definition set plus the configured star
// metrics, deduplicated.
func (uc *GetDashboardUseCase) relevantMetricIDs(definitions []domain.MetricDefinition) []string {
	seen := make(map[string]struct{}, len(definitions)+len(uc.cfg.StarMetricIDs))
	ids := make([]string, 0, len(definitions)+len(uc.cfg.StarMetricIDs))
	for _, def := range definitions {
		if _, ok := seen[def.MetricID]; ok {
			continue
		}
		seen[def.MetricID] = struct{}{}
		ids = append(ids, def.MetricID)
	}
	for _, id := range uc.cfg.StarMetricIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}
