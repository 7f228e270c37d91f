package usecase

import (
	"math"
	"strings"

	"community-metrics-service/internal/dashboard/core/domain"
)

const downloadTotalWindowDays = 30

// overlapDays counts the whole days two inclusive periods share.
func overlapDays(aStart, aEnd, bStart, bEnd domain.Day) int {
	start := aStart
	if bStart > start {
		start = bStart
	}
	end := aEnd
	if bEnd < end {
		end = bEnd
	}
	if end < start {
		return 0
	}
	return start.DaysUntil(end) + 1
}

// downloadTotals prorates download rows onto the trailing 30-day window
// ending windowEnd. A row contributes value * overlap/span to its product's
// bucket; fractions sum before the final rounding.
func downloadTotals(rows []domain.Observation, windowEnd domain.Day, products []string) domain.DownloadTotals {
	windowStart := windowEnd.AddDays(-(downloadTotalWindowDays - 1))

	accumulated := make(map[string]float64, len(products))
	for _, product := range products {
		accumulated[product] = 0
	}

	for _, row := range rows {
		if !strings.HasPrefix(row.MetricID, "downloads:") {
			continue
		}
		parts := strings.Split(row.MetricID, ":")
		if len(parts) < 3 {
			continue
		}
		product := parts[1]
		if _, ok := accumulated[product]; !ok {
			continue
		}

		periodStart := domain.DayOf(row.PeriodStart)
		periodEnd := domain.DayOf(row.PeriodEnd)
		overlap := overlapDays(periodStart, periodEnd, windowStart, windowEnd)
		if overlap <= 0 {
			continue
		}
		span := periodStart.DaysUntil(periodEnd) + 1
		if span <= 0 {
			continue
		}
		accumulated[product] += row.Value * (float64(overlap) / float64(span))
	}

	byProduct := make(map[string]int64, len(accumulated))
	for product, total := range accumulated {
		byProduct[product] = int64(math.Round(total))
	}
	return domain.DownloadTotals{
		WindowStart: windowStart,
		WindowEnd:   windowEnd,
		ByProduct:   byProduct,
	}
}
