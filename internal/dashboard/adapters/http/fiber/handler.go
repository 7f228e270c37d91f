package fiber

import (
	"context"
	"errors"
	"net/http"

	"community-metrics-service/internal/dashboard/core/domain"
	"community-metrics-service/internal/dashboard/core/usecase"

	"github.com/gofiber/fiber/v2"
)

type GetDashboardUseCase interface {
	Execute(ctx context.Context, days int) (*domain.Dashboard, error)
}

type GetSeriesUseCase interface {
	Execute(ctx context.Context, metricID string, days int) (*domain.Series, error)
}

type ListDefinitionsUseCase interface {
	Execute(ctx context.Context) ([]domain.MetricDefinition, error)
}

type DashboardHandler struct {
	dashboardUC   GetDashboardUseCase
	seriesUC      GetSeriesUseCase
	definitionsUC ListDefinitionsUseCase
}

func NewDashboardHandler(
	dashboardUC GetDashboardUseCase,
	seriesUC GetSeriesUseCase,
	definitionsUC ListDefinitionsUseCase,
) *DashboardHandler {
	return &DashboardHandler{
		dashboardUC:   dashboardUC,
		seriesUC:      seriesUC,
		definitionsUC: definitionsUC,
	}
}

// Health godoc
// @Summary Service liveness
// @Tags Health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /api/v1/health [get]
func (h *DashboardHandler) Health(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(HealthResponse{Status: "ok"})
}

// GetDashboard godoc
// @Summary Daily dashboard view
// @Description Renders every active metric into sparklines, headline values and window totals
// @Tags Dashboard
// @Produce json
// @Param days query int false "Trailing window in days (1-730, default 180)"
// @Success 200 {object} DashboardResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/dashboard/daily [get]
func (h *DashboardHandler) GetDashboard(c *fiber.Ctx) error {
	days := c.QueryInt("days", usecase.DefaultDays)

	res, err := h.dashboardUC.Execute(c.Context(), days)
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}
	return c.Status(http.StatusOK).JSON(toDashboardResponse(res))
}

// GetSeries godoc
// @Summary Daily series for one metric
// @Tags Dashboard
// @Produce json
// @Param metric_id path string true "Metric id"
// @Param days query int false "Trailing window in days (1-730, default 180)"
// @Success 200 {object} SeriesResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/series/{metric_id} [get]
func (h *DashboardHandler) GetSeries(c *fiber.Ctx) error {
	metricID := c.Params("metric_id")
	days := c.QueryInt("days", usecase.DefaultDays)

	res, err := h.seriesUC.Execute(c.Context(), metricID, days)
	if err != nil {
		if errors.Is(err, usecase.ErrUnknownMetric) {
			return c.Status(http.StatusNotFound).JSON(ErrorResponse{
				Error:   "unknown_metric",
				Message: "Unknown metric_id: " + metricID,
			})
		}
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}

	return c.Status(http.StatusOK).JSON(SeriesResponse{
		MetricID: res.MetricID,
		Days:     res.Days,
		Points:   toSparkPoints(res.Points),
	})
}

// ListDefinitions godoc
// @Summary Metric definition catalog
// @Tags Dashboard
// @Produce json
// @Success 200 {array} DefinitionResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/definitions [get]
func (h *DashboardHandler) ListDefinitions(c *fiber.Ctx) error {
	definitions, err := h.definitionsUC.Execute(c.Context())
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}

	resp := make([]DefinitionResponse, 0, len(definitions))
	for _, def := range definitions {
		resp = append(resp, DefinitionResponse{
			MetricID:     def.MetricID,
			MetricFamily: def.MetricFamily,
			Product:      def.Product,
			Subject:      def.Subject,
			SDK:          def.SDK,
			Source:       def.Source,
			ValueKind:    def.ValueKind,
			Unit:         def.Unit,
			IsActive:     def.IsActive,
			DisplayName:  def.DisplayName,
		})
	}
	return c.Status(http.StatusOK).JSON(resp)
}
