package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/retail-sync/internal/application/ingest"
	"github.com/tu-usuario/retail-sync/internal/application/report"
	"github.com/tu-usuario/retail-sync/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Reconcile   *ingest.ReconcileBatchUseCase
	UploadCSV   *ingest.UploadCSVUseCase
	AnalyticsUC *usecase.AnalyticsUseCase
	ReportPDF   *report.PDFUseCase
	LocationUC  *usecase.LocationUseCase
	JWTSecret   string
}

// Router registra las rutas de la API. Todo /api requiere Bearer Token del
// proveedor de identidad.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret))

	// Ingesta
	uploads := api.Group("/upload")
	uploadHandler := NewUploadHandler(deps.Reconcile, deps.UploadCSV)
	uploads.Post("/", uploadHandler.UploadSales)
	uploads.Post("/csv", uploadHandler.UploadCSV)
	uploads.Get("/last", uploadHandler.LastUpload)

	// Analítica
	analytics := api.Group("/analytics")
	analyticsHandler := NewAnalyticsHandler(deps.AnalyticsUC, deps.ReportPDF)
	analytics.Get("/", analyticsHandler.GetSummary)
	analytics.Get("/report", analyticsHandler.GetReport)

	// Tiendas
	locations := api.Group("/locations")
	locationHandler := NewLocationHandler(deps.LocationUC)
	locations.Get("/", locationHandler.List)
	locations.Get("/:id", locationHandler.GetByID)
}
