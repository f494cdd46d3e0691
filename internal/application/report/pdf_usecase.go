package report

import (
	"context"
	"fmt"

	"github.com/tu-usuario/retail-sync/internal/application/dto"
	"github.com/tu-usuario/retail-sync/internal/application/usecase"
)

// SummaryPDFGenerator renderiza el resumen de analítica como PDF.
// Implementado en internal/infrastructure/pdf con Maroto v2.
type SummaryPDFGenerator interface {
	GenerateSummaryPDF(ctx context.Context, summary *dto.AnalyticsSummaryDTO) ([]byte, error)
}

// PDFUseCase genera el reporte PDF del dashboard: reutiliza los agregados del
// caso de uso de analítica y delega el render al generador.
type PDFUseCase struct {
	analytics *usecase.AnalyticsUseCase
	generator SummaryPDFGenerator
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(analytics *usecase.AnalyticsUseCase, generator SummaryPDFGenerator) *PDFUseCase {
	return &PDFUseCase{analytics: analytics, generator: generator}
}

// GenerateReport calcula el resumen y devuelve los bytes del PDF.
func (uc *PDFUseCase) GenerateReport(ctx context.Context) ([]byte, error) {
	summary, err := uc.analytics.GetSummary(ctx)
	if err != nil {
		return nil, err
	}
	pdf, err := uc.generator.GenerateSummaryPDF(ctx, summary)
	if err != nil {
		return nil, fmt.Errorf("generate report PDF: %w", err)
	}
	return pdf, nil
}
