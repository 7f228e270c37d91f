package fiber

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"community-metrics-service/internal/history/core/usecase"

	"github.com/gofiber/fiber/v2"
)

const dayLayout = "2006-01-02"

type ListRefreshErrorsUseCase interface {
	Execute(ctx context.Context, in usecase.ListRefreshErrorsInput) (*usecase.ListRefreshErrorsResult, error)
}

type HistoryHandler struct {
	uc ListRefreshErrorsUseCase
}

func NewHistoryHandler(uc ListRefreshErrorsUseCase) *HistoryHandler {
	return &HistoryHandler{uc: uc}
}

// ListRefreshErrors godoc
// @Summary Failed ingestion runs
// @Description Lists ingestion runs that finished with an error inside the day range, newest first
// @Tags History
// @Produce json
// @Param start_date query string true "Start day (YYYY-MM-DD, UTC inclusive)"
// @Param end_date query string true "End day (YYYY-MM-DD, UTC inclusive)"
// @Param limit query int false "Row cap (1-5000, default 500)"
// @Success 200 {object} RefreshErrorsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/history/refresh-errors [get]
func (h *HistoryHandler) ListRefreshErrors(c *fiber.Ctx) error {
	startDay, ok := parseDay(c.Query("start_date", ""))
	if !ok {
		return badRequest(c, "start_date/end_date must be YYYY-MM-DD")
	}
	endDay, ok := parseDay(c.Query("end_date", ""))
	if !ok {
		return badRequest(c, "start_date/end_date must be YYYY-MM-DD")
	}
	limit := c.QueryInt("limit", usecase.DefaultLimit)

	res, err := h.uc.Execute(c.Context(), usecase.ListRefreshErrorsInput{
		StartDay: startDay,
		EndDay:   endDay,
		Limit:    limit,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidDateRange),
			errors.Is(err, usecase.ErrInvalidLimit):
			return badRequest(c, err.Error())
		default:
			return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
				Error: "internal_server_error",
			})
		}
	}

	out := RefreshErrorsResponse{
		StartDate: res.StartDay.Format(dayLayout),
		EndDate:   res.EndDay.Format(dayLayout),
		Count:     len(res.Runs),
		Errors:    make([]RefreshErrorResponse, 0, len(res.Runs)),
	}
	for _, run := range res.Runs {
		out.Errors = append(out.Errors, RefreshErrorResponse{
			IngestionRunID: run.IngestionRunID,
			JobName:        run.JobName,
			Status:         run.Status,
			StartedAt:      run.StartedAt.UTC().Format(time.RFC3339),
			FinishedAt:     run.FinishedAt.UTC().Format(time.RFC3339),
			ErrorSummary:   run.ErrorSummary,
		})
	}
	return c.Status(http.StatusOK).JSON(out)
}

func parseDay(raw string) (time.Time, bool) {
	trimmed := strings.Trim(strings.TrimSpace(raw), `"`)
	t, err := time.Parse(dayLayout, trimmed)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
		Error:   "invalid_request",
		Message: message,
	})
}
