package usecase

import (
	"sort"

	"community-metrics-service/internal/dashboard/core/domain"
)

// totalStarsAggregate combines the independently tracked star metrics into
// one total series. Each constituent keeps its own knot set: a day missing
// for one repository still receives that repository's interpolated estimate
// instead of a zero.
func totalStarsAggregate(rows []domain.Observation, days int, starMetricIDs []string) (*int64, []domain.DayPoint) {
	if len(rows) == 0 {
		return nil, nil
	}

	perMetricKnown := make(map[string]map[domain.Day]int64)
	perMetricDays := make(map[string][]domain.Day)
	unionSet := make(map[domain.Day]struct{})

	for _, metricID := range starMetricIDs {
		var metricRows []domain.Observation
		for _, row := range rows {
			if row.MetricID == metricID {
				metricRows = append(metricRows, row)
			}
		}
		daily := dailyInterpolated(metricRows)
		if len(daily) == 0 {
			continue
		}
		known := make(map[domain.Day]int64, len(daily))
		knownDays := make([]domain.Day, 0, len(daily))
		for _, point := range daily {
			known[point.PeriodEnd] = point.Value
			knownDays = append(knownDays, point.PeriodEnd)
			unionSet[point.PeriodEnd] = struct{}{}
		}
		perMetricKnown[metricID] = known
		perMetricDays[metricID] = knownDays
	}

	if len(unionSet) == 0 {
		return nil, nil
	}

	union := make([]domain.Day, 0, len(unionSet))
	for day := range unionSet {
		union = append(union, day)
	}
	sort.Slice(union, func(i, j int) bool { return union[i] < union[j] })

	totals := make([]domain.DayPoint, 0, len(union))
	for _, day := range union {
		var total int64
		for metricID := range perMetricKnown {
			total += interpolateValue(day, perMetricDays[metricID], perMetricKnown[metricID])
		}
		totals = append(totals, domain.DayPoint{PeriodStart: day, PeriodEnd: day, Value: total})
	}

	tail := tailPoints(totals, days)
	if len(tail) == 0 {
		return nil, nil
	}
	latest := tail[len(tail)-1].Value
	return &latest, tail
}
