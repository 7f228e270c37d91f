package fiber

type RefreshErrorResponse struct {
	IngestionRunID string `json:"ingestion_run_id"`
	JobName        string `json:"job_name"`
	Status         string `json:"status"`
	StartedAt      string `json:"started_at"`
	FinishedAt     string `json:"finished_at"`
	ErrorSummary   string `json:"error_summary"`
}

type RefreshErrorsResponse struct {
	StartDate string                 `json:"start_date"`
	EndDate   string                 `json:"end_date"`
	Count     int                    `json:"count"`
	Errors    []RefreshErrorResponse `json:"errors"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_request"`
	Message string `json:"message,omitempty" example:"start_date/end_date must be YYYY-MM-DD"`
}
