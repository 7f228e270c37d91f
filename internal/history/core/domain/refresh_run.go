package domain

import "time"

// RefreshRun is one recorded ingestion run from the history table.
type RefreshRun struct {
	IngestionRunID string
	JobName        string
	Status         string
	StartedAt      time.Time
	FinishedAt     time.Time
	ErrorSummary   string
}
