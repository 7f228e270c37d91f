package domain

// MetricDefinition is one tracked adoption metric. Definitions are owned by
// the store and immutable within a refresh cycle.
type MetricDefinition struct {
	MetricID     string // <family>:<product>:<source-or-sdk>
	MetricFamily string // "downloads", "stars", ...
	Product      string
	Subject      string
	SDK          *string
	Source       string
	ValueKind    string
	Unit         string
	IsActive     bool
	DisplayName  string
}

// Observation is one raw stats row as the store returned it. Period fields
// stay untyped here: drivers disagree on date representations, and the
// engine normalizes them through DayOf at first use.
type Observation struct {
	MetricID     string
	PeriodStart  any
	PeriodEnd    any
	Value        float64
	Provenance   string
	SourceWindow string // "discrete_snapshot", "1d", "cumulative_snapshot"
}
