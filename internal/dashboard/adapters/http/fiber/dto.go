package fiber

import (
	"time"

	"community-metrics-service/internal/dashboard/core/domain"
)

type SparkPointResponse struct {
	PeriodStart string `json:"period_start"`
	PeriodEnd   string `json:"period_end"`
	Value       int64  `json:"value"`
}

type DashboardMetricResponse struct {
	MetricID         string               `json:"metric_id"`
	DisplayName      string               `json:"display_name"`
	MetricFamily     string               `json:"metric_family"`
	SDK              *string              `json:"sdk"`
	Subject          string               `json:"subject"`
	LatestValue      *int64               `json:"latest_value"`
	LatestPeriodEnd  *string              `json:"latest_period_end"`
	LatestProvenance *string              `json:"latest_provenance"`
	TotalStars       *int64               `json:"total_stars"`
	Sparkline        []SparkPointResponse `json:"sparkline"`
}

type DashboardGroupResponse struct {
	Product string                    `json:"product"`
	Title   string                    `json:"title"`
	Items   []DashboardMetricResponse `json:"items"`
}

type DownloadTotalsResponse struct {
	WindowStart string `json:"window_start"`
	WindowEnd   string `json:"window_end"`
	Lance       int64  `json:"lance"`
	LanceDB     int64  `json:"lancedb"`
}

type DashboardResponse struct {
	GeneratedAt           string                   `json:"generated_at"`
	Days                  int                      `json:"days"`
	Groups                []DashboardGroupResponse `json:"groups"`
	TotalStars            *int64                   `json:"total_stars"`
	TotalStarsSparkline   []SparkPointResponse     `json:"total_stars_sparkline"`
	Last30dDownloadTotals DownloadTotalsResponse   `json:"last_30d_download_totals"`
}

type SeriesResponse struct {
	MetricID string               `json:"metric_id"`
	Days     int                  `json:"days"`
	Points   []SparkPointResponse `json:"points"`
}

type DefinitionResponse struct {
	MetricID     string  `json:"metric_id"`
	MetricFamily string  `json:"metric_family"`
	Product      string  `json:"product"`
	Subject      string  `json:"subject"`
	SDK          *string `json:"sdk"`
	Source       string  `json:"source"`
	ValueKind    string  `json:"value_kind"`
	Unit         string  `json:"unit"`
	IsActive     bool    `json:"is_active"`
	DisplayName  string  `json:"display_name"`
}

type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_request"`
	Message string `json:"message,omitempty" example:"days must be an integer"`
}

func toSparkPoints(points []domain.DayPoint) []SparkPointResponse {
	out := make([]SparkPointResponse, 0, len(points))
	for _, point := range points {
		out = append(out, SparkPointResponse{
			PeriodStart: string(point.PeriodStart),
			PeriodEnd:   string(point.PeriodEnd),
			Value:       point.Value,
		})
	}
	return out
}

func toDashboardResponse(d *domain.Dashboard) DashboardResponse {
	groups := make([]DashboardGroupResponse, 0, len(d.Groups))
	for _, group := range d.Groups {
		items := make([]DashboardMetricResponse, 0, len(group.Items))
		for _, item := range group.Items {
			var latestPeriodEnd *string
			if item.LatestPeriodEnd != nil {
				s := string(*item.LatestPeriodEnd)
				latestPeriodEnd = &s
			}
			items = append(items, DashboardMetricResponse{
				MetricID:         item.MetricID,
				DisplayName:      item.DisplayName,
				MetricFamily:     item.MetricFamily,
				SDK:              item.SDK,
				Subject:          item.Subject,
				LatestValue:      item.LatestValue,
				LatestPeriodEnd:  latestPeriodEnd,
				LatestProvenance: item.LatestProvenance,
				TotalStars:       item.TotalStars,
				Sparkline:        toSparkPoints(item.Sparkline),
			})
		}
		groups = append(groups, DashboardGroupResponse{
			Product: group.Product,
			Title:   group.Title,
			Items:   items,
		})
	}

	return DashboardResponse{
		GeneratedAt:         d.GeneratedAt.UTC().Format(time.RFC3339),
		Days:                d.Days,
		Groups:              groups,
		TotalStars:          d.TotalStars,
		TotalStarsSparkline: toSparkPoints(d.TotalStarsSparkline),
		Last30dDownloadTotals: DownloadTotalsResponse{
			WindowStart: string(d.DownloadTotals.WindowStart),
			WindowEnd:   string(d.DownloadTotals.WindowEnd),
			Lance:       d.DownloadTotals.ByProduct["lance"],
			LanceDB:     d.DownloadTotals.ByProduct["lancedb"],
		},
	}
}
