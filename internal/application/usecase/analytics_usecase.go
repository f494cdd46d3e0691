package usecase

import (
	"context"
	"fmt"

	"github.com/tu-usuario/retail-sync/internal/application/dto"
	"github.com/tu-usuario/retail-sync/internal/domain/repository"
)

// topN es el tamaño fijo de los rankings de tiendas y productos.
const topN = 10

// AnalyticsUseCase arma el resumen del dashboard leyendo del mismo almacén que
// la ingesta, pero desacoplado de ella: puede correr mientras un lote se está
// escribiendo y reflejar un lote parcialmente confirmado (sin garantía de
// aislamiento, limitación aceptada).
type AnalyticsUseCase struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewAnalyticsUseCase construye el caso de uso.
func NewAnalyticsUseCase(analyticsRepo repository.AnalyticsRepository) *AnalyticsUseCase {
	return &AnalyticsUseCase{analyticsRepo: analyticsRepo}
}

// GetSummary calcula totales exactos, la serie diaria y los rankings top-N.
// Las cinco consultas son independientes y se lanzan en paralelo. Un almacén
// vacío produce ceros y listas vacías, nunca un error.
func (uc *AnalyticsUseCase) GetSummary(ctx context.Context) (*dto.AnalyticsSummaryDTO, error) {
	type countResult struct {
		n   int
		err error
	}
	type seriesResult struct {
		rows []repository.SalesByDateResult
		err  error
	}
	type rankingResult struct {
		rows []repository.RankingResult
		err  error
	}

	salesCh := make(chan countResult, 1)
	productsCh := make(chan countResult, 1)
	byDateCh := make(chan seriesResult, 1)
	topLocCh := make(chan rankingResult, 1)
	topProdCh := make(chan rankingResult, 1)

	go func() {
		n, err := uc.analyticsRepo.CountSales(ctx)
		salesCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.analyticsRepo.CountProducts(ctx)
		productsCh <- countResult{n, err}
	}()
	go func() {
		rows, err := uc.analyticsRepo.SalesByDate(ctx)
		byDateCh <- seriesResult{rows, err}
	}()
	go func() {
		rows, err := uc.analyticsRepo.TopLocations(ctx, topN)
		topLocCh <- rankingResult{rows, err}
	}()
	go func() {
		rows, err := uc.analyticsRepo.TopProducts(ctx, topN)
		topProdCh <- rankingResult{rows, err}
	}()

	sales := <-salesCh
	products := <-productsCh
	byDate := <-byDateCh
	topLoc := <-topLocCh
	topProd := <-topProdCh

	if sales.err != nil {
		return nil, fmt.Errorf("analytics: total de ventas: %w", sales.err)
	}
	if products.err != nil {
		return nil, fmt.Errorf("analytics: total de productos: %w", products.err)
	}
	if byDate.err != nil {
		return nil, fmt.Errorf("analytics: serie diaria: %w", byDate.err)
	}
	if topLoc.err != nil {
		return nil, fmt.Errorf("analytics: ranking de tiendas: %w", topLoc.err)
	}
	if topProd.err != nil {
		return nil, fmt.Errorf("analytics: ranking de productos: %w", topProd.err)
	}

	summary := &dto.AnalyticsSummaryDTO{
		TotalSales:    sales.n,
		TotalProducts: products.n,
		SalesByDate:   make([]dto.SalesByDateDTO, 0, len(byDate.rows)),
		TopLocations:  make([]dto.TopLocationDTO, 0, len(topLoc.rows)),
		TopProducts:   make([]dto.TopProductDTO, 0, len(topProd.rows)),
	}
	for _, r := range byDate.rows {
		summary.SalesByDate = append(summary.SalesByDate, dto.SalesByDateDTO{
			SoldAt:       r.SoldAt.Format("2006-01-02"),
			QuantitySold: r.QuantitySold,
		})
	}
	for _, r := range topLoc.rows {
		summary.TopLocations = append(summary.TopLocations, dto.TopLocationDTO{
			LocationName: r.Name,
			TotalSold:    r.TotalSold,
		})
	}
	for _, r := range topProd.rows {
		summary.TopProducts = append(summary.TopProducts, dto.TopProductDTO{
			ProductName: r.Name,
			TotalSold:   r.TotalSold,
		})
	}
	return summary, nil
}
