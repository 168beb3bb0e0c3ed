package handler

import (
	"bytes"
	"errors"
	"net/http"

	"freight-emissions/internal/core/logger"
	emissions "freight-emissions/internal/features/emissions/domain"
	"freight-emissions/internal/features/report/domain"
	"freight-emissions/internal/features/report/ports"
	shipmentAdapters "freight-emissions/internal/features/shipment/adapters"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ReportHandler handles HTTP requests for emissions calculations and stored reports.
type ReportHandler struct {
	calculator ports.Calculator
	reports    ports.ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(calculator ports.Calculator, reports ports.ReportService) *ReportHandler {
	return &ReportHandler{
		calculator: calculator,
		reports:    reports,
	}
}

// Calculate handles POST /emissions.
// @Summary Calculate shipment emissions
// @Description Computes road, air and repositioning emissions for one new shipment. The body is a JSON or YAML input document. Failed legs are listed in the report and mark it incomplete.
// @Tags Emissions
// @Accept json
// @Accept application/yaml
// @Produce json
// @Success 200 {object} domain.Report
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /emissions [post]
func (h *ReportHandler) Calculate(c *fiber.Ctx) error {
	input, err := shipmentAdapters.DecodeInput(bytes.NewReader(c.Body()))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	ctx := c.UserContext()
	report, err := h.calculator.Calculate(ctx, input)
	if err != nil {
		if errors.Is(err, emissions.ErrInvalidShipmentInput) || errors.Is(err, emissions.ErrInvalidParameters) {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		logger.Get().Error("Failed to calculate emissions", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	if err := h.reports.Store(ctx, report); err != nil && !errors.Is(err, domain.ErrStorageDisabled) {
		logger.Get().Error("Failed to store report", zap.String("report_id", report.ID), zap.Error(err))
	}

	return c.Status(http.StatusOK).JSON(report)
}

// GetReport handles GET /reports/:id.
// @Summary Get a stored report
// @Description Retrieves a previously computed report while it has not expired.
// @Tags Emissions
// @Produce json
// @Param id path string true "Report ID"
// @Success 200 {object} domain.Report
// @Failure 404 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /reports/{id} [get]
func (h *ReportHandler) GetReport(c *fiber.Ctx) error {
	id := c.Params("id")

	report, err := h.reports.Get(c.UserContext(), id)
	switch {
	case err == nil:
		return c.Status(http.StatusOK).JSON(report)
	case errors.Is(err, domain.ErrReportNotFound):
		return c.Status(http.StatusNotFound).JSON(fiber.Map{
			"error": "Report not found",
		})
	case errors.Is(err, domain.ErrStorageDisabled):
		return c.Status(http.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "Report storage is not configured",
		})
	default:
		logger.Get().Error("Failed to get report", zap.String("report_id", id), zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}
}
