package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"community-metrics-service/internal/dashboard/core/domain"
	"community-metrics-service/internal/dashboard/core/ports"
	"community-metrics-service/internal/dashboard/core/usecase"
)

// fakeStoreReader fakes both store reader ports.
type fakeStoreReader struct {
	definitions       []domain.MetricDefinition
	activeDefinitions []domain.MetricDefinition
	observations      []domain.Observation
	metricRows        map[string][]domain.Observation

	definitionsErr  error
	observationsErr error

	lastFilter       ports.ObservationFilter
	observationsCall bool
}

func (f *fakeStoreReader) ListDefinitions(ctx context.Context) ([]domain.MetricDefinition, error) {
	if f.definitionsErr != nil {
		return nil, f.definitionsErr
	}
	return f.definitions, nil
}

func (f *fakeStoreReader) ListActiveDefinitions(ctx context.Context) ([]domain.MetricDefinition, error) {
	if f.definitionsErr != nil {
		return nil, f.definitionsErr
	}
	return f.activeDefinitions, nil
}

func (f *fakeStoreReader) ListObservations(ctx context.Context, flt ports.ObservationFilter) ([]domain.Observation, error) {
	f.observationsCall = true
	f.lastFilter = flt
	if f.observationsErr != nil {
		return nil, f.observationsErr
	}
	return f.observations, nil
}

func (f *fakeStoreReader) ListObservationsForMetric(ctx context.Context, metricID string) ([]domain.Observation, error) {
	if f.observationsErr != nil {
		return nil, f.observationsErr
	}
	return f.metricRows[metricID], nil
}

func strPtr(s string) *string { return &s }

func testEngineConfig() usecase.EngineConfig {
	cfg := usecase.DefaultEngineConfig()
	// Frozen clock: today is 2026-01-15 UTC, so the latest completed day is
	// 2026-01-14 and the last full month is December 2025.
	cfg.Now = func() time.Time {
		return time.Date(2026, 1, 15, 10, 30, 0, 0, time.UTC)
	}
	return cfg
}

func row(metricID, day string, value float64, provenance, sourceWindow string) domain.Observation {
	return domain.Observation{
		MetricID:     metricID,
		PeriodStart:  day,
		PeriodEnd:    day,
		Value:        value,
		Provenance:   provenance,
		SourceWindow: sourceWindow,
	}
}

func fixtureDefinitions() []domain.MetricDefinition {
	return []domain.MetricDefinition{
		{
			MetricID:     "stars:lance:github",
			MetricFamily: "stars",
			Product:      "lance",
			Subject:      "lance-format/lance",
			Source:       "github",
			IsActive:     true,
			DisplayName:  "GitHub Stars",
		},
		{
			MetricID:     "downloads:lance:python",
			MetricFamily: "downloads",
			Product:      "lance",
			Subject:      "pylance",
			SDK:          strPtr("python"),
			Source:       "pypistats",
			IsActive:     true,
			DisplayName:  "Python",
		},
		{
			MetricID:     "stars:lancedb:github",
			MetricFamily: "stars",
			Product:      "lancedb",
			Subject:      "lancedb/lancedb",
			Source:       "github",
			IsActive:     true,
			DisplayName:  "GitHub Stars",
		},
	}
}

func fixtureObservations() []domain.Observation {
	return []domain.Observation{
		// Downloads: one legacy snapshot, then daily rows across two months.
		row("downloads:lance:python", "2025-11-30", 100, "csv_seed", "discrete_snapshot"),
		row("downloads:lance:python", "2025-12-01", 5, "api_daily", "1d"),
		row("downloads:lance:python", "2025-12-31", 7, "api_daily", "1d"),
		row("downloads:lance:python", "2026-01-02", 3, "api_daily", "1d"),
		// Stars for the two repositories.
		row("stars:lance:github", "2026-01-10", 50, "api_daily", "cumulative_snapshot"),
		row("stars:lance:github", "2026-01-12", 60, "recomputed", "cumulative_snapshot"),
		row("stars:lancedb:github", "2026-01-11", 40, "api_daily", "cumulative_snapshot"),
		// A row without a metric id must be ignored, not crash grouping.
		row("", "2026-01-01", 999, "csv_seed", "1d"),
	}
}

func TestGetDashboard_FullAssembly(t *testing.T) {
	reader := &fakeStoreReader{
		activeDefinitions: fixtureDefinitions(),
		observations:      fixtureObservations(),
	}
	uc := usecase.NewGetDashboardUseCase(reader, reader, testEngineConfig())

	out, err := uc.Execute(context.Background(), 180)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Days != 180 {
		t.Fatalf("expected days=180, got %d", out.Days)
	}

	if len(out.Groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(out.Groups))
	}
	if out.Groups[0].Product != "lance" || out.Groups[0].Title != "Lance" {
		t.Fatalf("expected lance group first, got %+v", out.Groups[0])
	}
	if out.Groups[1].Product != "lancedb" || out.Groups[1].Title != "LanceDB" {
		t.Fatalf("expected lancedb group second, got %+v", out.Groups[1])
	}

	// Within a group, downloads sort before stars.
	lanceItems := out.Groups[0].Items
	if len(lanceItems) != 2 {
		t.Fatalf("expected 2 lance items, got %d", len(lanceItems))
	}
	downloads := lanceItems[0]
	stars := lanceItems[1]
	if downloads.MetricID != "downloads:lance:python" || stars.MetricID != "stars:lance:github" {
		t.Fatalf("unexpected item order: %s, %s", downloads.MetricID, stars.MetricID)
	}

	// Download headline: December is the last full month before 2026-01.
	if downloads.LatestValue == nil || *downloads.LatestValue != 12 {
		t.Fatalf("expected December total 12, got %v", downloads.LatestValue)
	}
	if downloads.LatestPeriodEnd == nil || *downloads.LatestPeriodEnd != "2025-12-31" {
		t.Fatalf("expected latest_period_end 2025-12-31, got %v", downloads.LatestPeriodEnd)
	}
	if downloads.LatestProvenance == nil || *downloads.LatestProvenance != "api_daily" {
		t.Fatalf("expected provenance of the newest row, got %v", downloads.LatestProvenance)
	}
	// Sparkline: snapshot point + December bucket + January bucket.
	if len(downloads.Sparkline) != 3 {
		t.Fatalf("expected 3 download points, got %d", len(downloads.Sparkline))
	}

	// Star total: lance interpolates 50..60, lancedb clamps at 40.
	// Latest union day 2026-01-12: 60 + 40.
	if out.TotalStars == nil || *out.TotalStars != 100 {
		t.Fatalf("expected total stars 100, got %v", out.TotalStars)
	}
	if len(out.TotalStarsSparkline) != 3 {
		t.Fatalf("expected 3 star total points, got %d", len(out.TotalStarsSparkline))
	}
	// The shared total overwrites every stars item, in both groups.
	if stars.TotalStars == nil || *stars.TotalStars != 100 {
		t.Fatalf("expected lance stars item total 100, got %v", stars.TotalStars)
	}
	lancedbStars := out.Groups[1].Items[0]
	if lancedbStars.TotalStars == nil || *lancedbStars.TotalStars != 100 {
		t.Fatalf("expected lancedb stars item total 100, got %v", lancedbStars.TotalStars)
	}
	// Each card keeps its own series and headline.
	if lancedbStars.LatestValue == nil || *lancedbStars.LatestValue != 40 {
		t.Fatalf("expected lancedb latest 40, got %v", lancedbStars.LatestValue)
	}

	// 30d window 2025-12-16..2026-01-14: daily rows 7 and 3 overlap it.
	if out.DownloadTotals.WindowEnd != "2026-01-14" || out.DownloadTotals.WindowStart != "2025-12-16" {
		t.Fatalf("unexpected totals window: %s..%s", out.DownloadTotals.WindowStart, out.DownloadTotals.WindowEnd)
	}
	if out.DownloadTotals.ByProduct["lance"] != 10 {
		t.Fatalf("expected lance 30d total 10, got %d", out.DownloadTotals.ByProduct["lance"])
	}

	// The fetch itself must be bounded.
	if reader.lastFilter.From.IsZero() || reader.lastFilter.To.IsZero() {
		t.Fatalf("expected a bounded observation fetch, got %+v", reader.lastFilter)
	}
}

func TestGetDashboard_ClampsDays(t *testing.T) {
	reader := &fakeStoreReader{activeDefinitions: fixtureDefinitions()}
	uc := usecase.NewGetDashboardUseCase(reader, reader, testEngineConfig())

	out, err := uc.Execute(context.Background(), 100000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Days != usecase.MaxDays {
		t.Fatalf("expected clamp to %d, got %d", usecase.MaxDays, out.Days)
	}

	out, err = uc.Execute(context.Background(), -5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Days != 1 {
		t.Fatalf("expected clamp to 1, got %d", out.Days)
	}
}

func TestGetDashboard_NoActiveDefinitions(t *testing.T) {
	reader := &fakeStoreReader{}
	uc := usecase.NewGetDashboardUseCase(reader, reader, testEngineConfig())

	out, err := uc.Execute(context.Background(), 180)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Groups) != 0 {
		t.Fatalf("expected no groups, got %d", len(out.Groups))
	}
	if out.TotalStars != nil {
		t.Fatalf("expected nil star total, got %v", out.TotalStars)
	}
	if out.DownloadTotals.ByProduct["lance"] != 0 || out.DownloadTotals.ByProduct["lancedb"] != 0 {
		t.Fatalf("expected zeroed totals, got %+v", out.DownloadTotals.ByProduct)
	}
	if out.DownloadTotals.WindowEnd != "2026-01-14" {
		t.Fatalf("totals window must still be reported, got %s", out.DownloadTotals.WindowEnd)
	}
	if reader.observationsCall {
		t.Fatalf("expected no observation fetch without definitions")
	}
}

func TestGetDashboard_ReaderErrors(t *testing.T) {
	wantErr := errors.New("store down")

	reader := &fakeStoreReader{definitionsErr: wantErr}
	uc := usecase.NewGetDashboardUseCase(reader, reader, testEngineConfig())
	if _, err := uc.Execute(context.Background(), 180); !errors.Is(err, wantErr) {
		t.Fatalf("expected definitions error, got %v", err)
	}

	reader = &fakeStoreReader{
		activeDefinitions: fixtureDefinitions(),
		observationsErr:   wantErr,
	}
	uc = usecase.NewGetDashboardUseCase(reader, reader, testEngineConfig())
	if _, err := uc.Execute(context.Background(), 180); !errors.Is(err, wantErr) {
		t.Fatalf("expected observations error, got %v", err)
	}
}

func TestGetDashboard_EmptyProductSkipped(t *testing.T) {
	defs := fixtureDefinitions()[:2] // lance only
	reader := &fakeStoreReader{
		activeDefinitions: defs,
		observations:      fixtureObservations(),
	}
	uc := usecase.NewGetDashboardUseCase(reader, reader, testEngineConfig())

	out, err := uc.Execute(context.Background(), 180)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Groups) != 1 || out.Groups[0].Product != "lance" {
		t.Fatalf("expected only the lance group, got %+v", out.Groups)
	}
}
