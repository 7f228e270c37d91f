package domain

import "time"

// DayPoint is the unit of every derived series. For daily points
// PeriodStart == PeriodEnd; monthly download buckets span the contributing
// days.
type DayPoint struct {
	PeriodStart Day
	PeriodEnd   Day
	Value       int64
}

// DownloadTotals is the overlap-weighted download sum for a trailing
// window, keyed by product.
type DownloadTotals struct {
	WindowStart Day
	WindowEnd   Day
	ByProduct   map[string]int64
}

type DashboardMetric struct {
	MetricID         string
	DisplayName      string
	MetricFamily     string
	SDK              *string
	Subject          string
	LatestValue      *int64
	LatestPeriodEnd  *Day
	LatestProvenance *string
	TotalStars       *int64
	Sparkline        []DayPoint
}

type DashboardGroup struct {
	Product string
	Title   string
	Items   []DashboardMetric
}

type Dashboard struct {
	GeneratedAt         time.Time
	Days                int
	Groups              []DashboardGroup
	TotalStars          *int64
	TotalStarsSparkline []DayPoint
	DownloadTotals      DownloadTotals
}

// Series is the per-metric daily series view.
type Series struct {
	MetricID string
	Days     int
	Points   []DayPoint
}
