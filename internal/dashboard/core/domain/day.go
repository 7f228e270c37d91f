package domain

import (
	"database/sql/driver"
	"fmt"
	"regexp"
	"time"
)

// Day is a canonical UTC calendar day in YYYY-MM-DD form. Lexicographic
// order on Day matches chronological order.
type Day string

const dayLayout = "2006-01-02"

var dayPrefixPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`)

// DayOf normalizes an arbitrary date-like value into a Day. It never fails:
// an unparsable input degrades to the first 10 characters of its text form
// so one bad row cannot blank the whole dashboard.
func DayOf(value any) Day {
	return dayOf(value, 0)
}

func dayOf(value any, depth int) Day {
	// Boxed driver values unwrap to a primitive first. Depth is bounded so
	// a self-returning Valuer cannot loop.
	if depth < 4 {
		if v, ok := value.(driver.Valuer); ok {
			if inner, err := v.Value(); err == nil && inner != value {
				return dayOf(inner, depth+1)
			}
		}
	}

	switch v := value.(type) {
	case nil:
		return ""
	case Day:
		return dayOf(string(v), depth)
	case time.Time:
		return Day(v.UTC().Format(dayLayout))
	case *time.Time:
		if v == nil {
			return ""
		}
		return Day(v.UTC().Format(dayLayout))
	case string:
		return dayOfString(v)
	case []byte:
		return dayOfString(string(v))
	case int:
		return dayOfUnix(int64(v))
	case int32:
		return dayOfUnix(int64(v))
	case int64:
		return dayOfUnix(v)
	case float64:
		return dayOfUnix(int64(v))
	case fmt.Stringer:
		if depth < 4 {
			return dayOfString(v.String())
		}
		return dayOfString(fmt.Sprint(value))
	default:
		return dayOfString(fmt.Sprint(value))
	}
}

func dayOfString(raw string) Day {
	if dayPrefixPattern.MatchString(raw) {
		// Already day-shaped: take the day verbatim, no timezone games.
		return Day(raw[:10])
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05", time.RFC1123} {
		if t, err := time.Parse(layout, raw); err == nil {
			return Day(t.UTC().Format(dayLayout))
		}
	}
	if len(raw) > 10 {
		return Day(raw[:10])
	}
	return Day(raw)
}

// dayOfUnix treats large magnitudes as milliseconds, the rest as seconds.
func dayOfUnix(ts int64) Day {
	if ts >= 1e12 || ts <= -1e12 {
		return Day(time.UnixMilli(ts).UTC().Format(dayLayout))
	}
	return Day(time.Unix(ts, 0).UTC().Format(dayLayout))
}

// Time returns the day's midnight UTC, or the zero time if the day does not
// parse.
func (d Day) Time() time.Time {
	t, err := time.Parse(dayLayout, string(d))
	if err != nil {
		return time.Time{}
	}
	return t
}

func (d Day) IsZero() bool {
	return d == ""
}

// AddDays returns the day shifted by n calendar days.
func (d Day) AddDays(n int) Day {
	return Day(d.Time().AddDate(0, 0, n).Format(dayLayout))
}

// DaysUntil returns the whole-day distance from d to other. Negative when
// other precedes d.
func (d Day) DaysUntil(other Day) int {
	return int(other.Time().Sub(d.Time()) / (24 * time.Hour))
}

// MonthKey returns the YYYY-MM calendar month of the day.
func (d Day) MonthKey() string {
	if len(d) < 7 {
		return string(d)
	}
	return string(d[:7])
}
