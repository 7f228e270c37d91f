package usecase

import (
	"testing"

	"community-metrics-service/internal/dashboard/core/domain"
)

var testStarIDs = []string{"stars:lance:github", "stars:lancedb:github"}

func TestTotalStarsAggregate_DisjointDayUnion(t *testing.T) {
	rows := []domain.Observation{
		obs("stars:lance:github", "2024-01-01", 10),
		obs("stars:lancedb:github", "2024-01-03", 30),
	}

	total, sparkline := totalStarsAggregate(rows, 180, testStarIDs)

	if len(sparkline) != 2 {
		t.Fatalf("expected 2 union days, got %d", len(sparkline))
	}
	// Each missing side clamps to its own nearest knot instead of zero.
	if sparkline[0].PeriodEnd != "2024-01-01" || sparkline[0].Value != 40 {
		t.Fatalf("unexpected first point: %+v", sparkline[0])
	}
	if sparkline[1].PeriodEnd != "2024-01-03" || sparkline[1].Value != 40 {
		t.Fatalf("unexpected second point: %+v", sparkline[1])
	}
	if total == nil || *total != 40 {
		t.Fatalf("expected total 40, got %v", total)
	}
}

func TestTotalStarsAggregate_InterpolatesBetweenKnots(t *testing.T) {
	rows := []domain.Observation{
		obs("stars:lance:github", "2024-01-01", 100),
		obs("stars:lance:github", "2024-01-03", 300),
		obs("stars:lancedb:github", "2024-01-02", 50),
	}

	total, sparkline := totalStarsAggregate(rows, 180, testStarIDs)

	if len(sparkline) != 3 {
		t.Fatalf("expected 3 union days, got %d", len(sparkline))
	}
	// 2024-01-02: lance interpolates to 200, lancedb has the knot 50.
	if sparkline[1].Value != 250 {
		t.Fatalf("expected 250 on the middle day, got %d", sparkline[1].Value)
	}
	if total == nil || *total != 350 {
		t.Fatalf("expected latest total 350, got %v", total)
	}
}

func TestTotalStarsAggregate_IgnoresNonStarMetrics(t *testing.T) {
	rows := []domain.Observation{
		obs("downloads:lance:python", "2024-01-01", 999),
		obs("stars:lance:github", "2024-01-01", 10),
	}

	total, sparkline := totalStarsAggregate(rows, 180, testStarIDs)

	if total == nil || *total != 10 {
		t.Fatalf("expected total 10, got %v", total)
	}
	if len(sparkline) != 1 {
		t.Fatalf("expected 1 point, got %d", len(sparkline))
	}
}

func TestTotalStarsAggregate_WindowTruncation(t *testing.T) {
	rows := []domain.Observation{
		obs("stars:lance:github", "2024-01-01", 0),
		obs("stars:lance:github", "2024-01-31", 300),
	}

	total, sparkline := totalStarsAggregate(rows, 7, testStarIDs)

	if len(sparkline) != 7 {
		t.Fatalf("expected 7 trailing points, got %d", len(sparkline))
	}
	if total == nil || *total != 300 {
		t.Fatalf("expected total 300, got %v", total)
	}
}

func TestTotalStarsAggregate_NoData(t *testing.T) {
	total, sparkline := totalStarsAggregate(nil, 180, testStarIDs)
	if total != nil || sparkline != nil {
		t.Fatalf("expected nil total and sparkline, got %v / %v", total, sparkline)
	}

	// Rows exist but none belong to a configured star metric.
	total, sparkline = totalStarsAggregate([]domain.Observation{
		obs("downloads:lance:python", "2024-01-01", 1),
	}, 180, testStarIDs)
	if total != nil || len(sparkline) != 0 {
		t.Fatalf("expected empty aggregate, got %v / %v", total, sparkline)
	}
}
