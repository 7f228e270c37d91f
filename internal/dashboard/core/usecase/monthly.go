package usecase

import (
	"sort"

	"community-metrics-service/internal/dashboard/core/domain"
)

const (
	sourceWindowSnapshot = "discrete_snapshot"
	sourceWindowDaily    = "1d"
)

type monthlyBucket struct {
	start domain.Day
	end   domain.Day
	value int64
}

// monthlyDownloadSparkline merges the two download provenance regimes into
// one chronological series: sparse pre-cutover snapshots stay standalone
// daily points, post-cutover daily rows sum into calendar-month buckets.
func monthlyDownloadSparkline(rows []domain.Observation, days int, cutover RegimeCutover) []domain.DayPoint {
	if len(rows) == 0 {
		return nil
	}

	var latestDay domain.Day
	for _, row := range rows {
		day := domain.DayOf(row.PeriodEnd)
		if day.Time().IsZero() {
			continue
		}
		if day > latestDay {
			latestDay = day
		}
	}
	if latestDay.IsZero() {
		return nil
	}
	windowStart := latestDay.AddDays(-(days - 1))

	// Legacy snapshots: last write wins per day, like the daily path.
	snapshotRows := make([]domain.Observation, 0)
	for _, row := range rows {
		day := domain.DayOf(row.PeriodEnd)
		if day.Time().IsZero() {
			continue
		}
		if row.SourceWindow == sourceWindowSnapshot && day >= windowStart && day <= cutover.SnapshotCutoff {
			snapshotRows = append(snapshotRows, row)
		}
	}
	sort.SliceStable(snapshotRows, func(i, j int) bool {
		return domain.DayOf(snapshotRows[i].PeriodEnd) < domain.DayOf(snapshotRows[j].PeriodEnd)
	})
	snapshotByDay := make(map[domain.Day]int64, len(snapshotRows))
	for _, row := range snapshotRows {
		snapshotByDay[domain.DayOf(row.PeriodEnd)] = int64(row.Value)
	}

	points := make([]domain.DayPoint, 0, len(snapshotByDay))
	for day, value := range snapshotByDay {
		points = append(points, domain.DayPoint{PeriodStart: day, PeriodEnd: day, Value: value})
	}

	// Daily regime: sum per calendar month, the bucket period tracking the
	// min/max contributing day.
	buckets := make(map[string]*monthlyBucket)
	for _, row := range rows {
		if row.SourceWindow != sourceWindowDaily {
			continue
		}
		day := domain.DayOf(row.PeriodEnd)
		if day.Time().IsZero() || day < cutover.DailyStart || day > latestDay || day < windowStart {
			continue
		}
		key := day.MonthKey()
		bucket, ok := buckets[key]
		if !ok {
			buckets[key] = &monthlyBucket{start: day, end: day, value: int64(row.Value)}
			continue
		}
		if day < bucket.start {
			bucket.start = day
		}
		if day > bucket.end {
			bucket.end = day
		}
		bucket.value += int64(row.Value)
	}
	for _, bucket := range buckets {
		points = append(points, domain.DayPoint{
			PeriodStart: bucket.start,
			PeriodEnd:   bucket.end,
			Value:       bucket.value,
		})
	}

	sort.SliceStable(points, func(i, j int) bool {
		return points[i].PeriodEnd < points[j].PeriodEnd
	})
	return points
}

// lastFullMonthValue picks the point belonging to the last fully completed
// calendar month before the reference day's month. Among several candidates
// the one with the largest period_end wins.
func lastFullMonthValue(points []domain.DayPoint, reference domain.Day) (*int64, *domain.Day) {
	target := reference.AddDays(-reference.Time().Day()).MonthKey()

	var found bool
	var bestValue int64
	var bestEnd domain.Day
	for _, point := range points {
		if point.PeriodEnd.MonthKey() != target {
			continue
		}
		if !found || point.PeriodEnd > bestEnd {
			found = true
			bestValue = point.Value
			bestEnd = point.PeriodEnd
		}
	}
	if !found {
		return nil, nil
	}
	return &bestValue, &bestEnd
}
