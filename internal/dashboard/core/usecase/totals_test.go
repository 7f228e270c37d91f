package usecase

import (
	"testing"

	"community-metrics-service/internal/dashboard/core/domain"
)

var testProducts = []string{"lance", "lancedb"}

func spanObs(metricID, periodStart, periodEnd string, value float64) domain.Observation {
	return domain.Observation{
		MetricID:    metricID,
		PeriodStart: periodStart,
		PeriodEnd:   periodEnd,
		Value:       value,
	}
}

func TestOverlapDays(t *testing.T) {
	if got := overlapDays("2025-06-01", "2025-06-10", "2025-06-06", "2025-06-15"); got != 5 {
		t.Fatalf("expected 5 overlapping days, got %d", got)
	}
	if got := overlapDays("2025-06-01", "2025-06-10", "2025-07-01", "2025-07-10"); got != 0 {
		t.Fatalf("expected 0 for disjoint periods, got %d", got)
	}
	if got := overlapDays("2025-06-05", "2025-06-05", "2025-06-01", "2025-06-10"); got != 1 {
		t.Fatalf("expected 1 for a contained single day, got %d", got)
	}
}

func TestDownloadTotals_ProratesPartialOverlap(t *testing.T) {
	// Window is 2025-05-17..2025-06-15.
	rows := []domain.Observation{
		// Fully inside: contributes its whole value.
		spanObs("downloads:lance:python", "2025-06-01", "2025-06-10", 100),
		// 3 of 10 days overlap: contributes 30.
		spanObs("downloads:lance:rust", "2025-05-10", "2025-05-19", 100),
		// Disjoint: skipped.
		spanObs("downloads:lancedb:python", "2025-04-01", "2025-04-10", 500),
		// Wrong family: skipped.
		spanObs("stars:lance:github", "2025-06-01", "2025-06-10", 500),
		// Unknown product: skipped.
		spanObs("downloads:other:python", "2025-06-01", "2025-06-10", 500),
	}

	totals := downloadTotals(rows, "2025-06-15", testProducts)

	if totals.WindowStart != "2025-05-17" || totals.WindowEnd != "2025-06-15" {
		t.Fatalf("unexpected window: %s..%s", totals.WindowStart, totals.WindowEnd)
	}
	if totals.ByProduct["lance"] != 130 {
		t.Fatalf("expected lance=130, got %d", totals.ByProduct["lance"])
	}
	if totals.ByProduct["lancedb"] != 0 {
		t.Fatalf("expected lancedb=0, got %d", totals.ByProduct["lancedb"])
	}
}

func TestDownloadTotals_FractionsSumBeforeRounding(t *testing.T) {
	// Each row contributes 25 * 2/4 = 12.5; together they make 25, not 26.
	rows := []domain.Observation{
		spanObs("downloads:lancedb:python", "2025-06-14", "2025-06-17", 25),
		spanObs("downloads:lancedb:rust", "2025-06-14", "2025-06-17", 25),
	}

	totals := downloadTotals(rows, "2025-06-15", testProducts)

	if totals.ByProduct["lancedb"] != 25 {
		t.Fatalf("expected 25, got %d", totals.ByProduct["lancedb"])
	}
}

func TestDownloadTotals_EmptyRows(t *testing.T) {
	totals := downloadTotals(nil, "2025-06-15", testProducts)

	if totals.ByProduct["lance"] != 0 || totals.ByProduct["lancedb"] != 0 {
		t.Fatalf("expected zeroed totals, got %+v", totals.ByProduct)
	}
	if totals.WindowStart != "2025-05-17" {
		t.Fatalf("window must be reported even without rows, got %s", totals.WindowStart)
	}
}
