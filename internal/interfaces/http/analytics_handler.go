package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"github.com/tu-usuario/retail-sync/internal/application/dto"
	"github.com/tu-usuario/retail-sync/internal/application/report"
	"github.com/tu-usuario/retail-sync/internal/application/usecase"
)

// AnalyticsHandler maneja los endpoints de analítica del dashboard.
type AnalyticsHandler struct {
	uc  *usecase.AnalyticsUseCase
	pdf *report.PDFUseCase
}

// NewAnalyticsHandler construye el handler.
func NewAnalyticsHandler(uc *usecase.AnalyticsUseCase, pdf *report.PDFUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc, pdf: pdf}
}

// GetSummary godoc
// @Summary      Resumen de analítica del dashboard
// @Description  Totales exactos de ventas y productos, serie diaria de
//               unidades vendidas y rankings top de tiendas y productos.
//               Un almacén vacío devuelve ceros y listas vacías.
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.AnalyticsSummaryDTO
// @Failure      500  {object}  dto.MessageResponse
// @Router       /api/analytics [get]
func (h *AnalyticsHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.Context())
	if err != nil {
		log.Error().Err(err).Msg("falla de analítica")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.MessageResponse{
			Message: "Failed to load analytics",
		})
	}
	return c.JSON(summary)
}

// GetReport godoc
// @Summary      Reporte PDF del resumen de ventas
// @Tags         analytics
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}    binary
// @Failure      500  {object}  dto.MessageResponse
// @Router       /api/analytics/report [get]
func (h *AnalyticsHandler) GetReport(c *fiber.Ctx) error {
	pdfBytes, err := h.pdf.GenerateReport(c.Context())
	if err != nil {
		log.Error().Err(err).Msg("falla generando reporte PDF")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.MessageResponse{
			Message: "Failed to generate report",
		})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="sales-report.pdf"`)
	return c.Send(pdfBytes)
}
