package usecase

import (
	"math"
	"sort"

	"community-metrics-service/internal/dashboard/core/domain"
)

// interpolateValue estimates the value at target from the sorted known
// days. Targets outside the known range clamp to the nearest endpoint;
// targets between two knots interpolate linearly on whole-day distance.
func interpolateValue(target domain.Day, knownDays []domain.Day, known map[domain.Day]int64) int64 {
	if v, ok := known[target]; ok {
		return v
	}
	idx := sort.Search(len(knownDays), func(i int) bool { return knownDays[i] >= target })
	if idx <= 0 {
		return known[knownDays[0]]
	}
	if idx >= len(knownDays) {
		return known[knownDays[len(knownDays)-1]]
	}

	left := knownDays[idx-1]
	right := knownDays[idx]
	leftVal := known[left]
	rightVal := known[right]

	span := left.DaysUntil(right)
	if span <= 0 {
		return leftVal
	}
	ratio := float64(left.DaysUntil(target)) / float64(span)
	return int64(math.Round(float64(leftVal) + float64(rightVal-leftVal)*ratio))
}

// knotsByDay resolves raw rows into a day -> value map. Rows are ordered by
// normalized period_end first so that duplicates resolve last-write-wins.
// Rows whose period_end does not normalize to a real calendar day are
// dropped; a degraded day key cannot anchor interpolation, and skipping the
// row keeps the rest of the series intact.
func knotsByDay(rows []domain.Observation) (map[domain.Day]int64, []domain.Day) {
	ordered := make([]domain.Observation, len(rows))
	copy(ordered, rows)
	sort.SliceStable(ordered, func(i, j int) bool {
		return domain.DayOf(ordered[i].PeriodEnd) < domain.DayOf(ordered[j].PeriodEnd)
	})

	known := make(map[domain.Day]int64, len(ordered))
	for _, row := range ordered {
		day := domain.DayOf(row.PeriodEnd)
		if day.Time().IsZero() {
			continue
		}
		known[day] = int64(row.Value)
	}

	days := make([]domain.Day, 0, len(known))
	for day := range known {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i] < days[j] })
	return known, days
}

// dailyInterpolated expands sparse observations for one metric into a
// contiguous daily series spanning the earliest to the latest known
// period_end, one point per calendar day.
func dailyInterpolated(rows []domain.Observation) []domain.DayPoint {
	if len(rows) == 0 {
		return nil
	}
	known, knownDays := knotsByDay(rows)
	if len(knownDays) == 0 {
		return nil
	}

	start := knownDays[0]
	end := knownDays[len(knownDays)-1]

	var points []domain.DayPoint
	for day := start; day <= end; day = day.AddDays(1) {
		points = append(points, domain.DayPoint{
			PeriodStart: day,
			PeriodEnd:   day,
			Value:       interpolateValue(day, knownDays, known),
		})
	}
	return points
}

// tailPoints slices a series to its trailing days points.
func tailPoints(points []domain.DayPoint, days int) []domain.DayPoint {
	if days >= len(points) {
		return points
	}
	return points[len(points)-days:]
}

// dailySparkline is the daily-series path: interpolate, then keep the
// requested trailing window.
func dailySparkline(rows []domain.Observation, days int) []domain.DayPoint {
	return tailPoints(dailyInterpolated(rows), days)
}
