package repository

import (
	"context"
	"time"
)

// SalesByDateResult es la suma de unidades vendidas de un día calendario.
type SalesByDateResult struct {
	SoldAt       time.Time
	QuantitySold int
}

// RankingResult es una entrada de ranking nombre → total vendido
// (tienda o producto según la consulta).
type RankingResult struct {
	Name      string
	TotalSold int
}

// AnalyticsRepository define consultas de solo lectura sobre ventas y
// productos persistidos, desacopladas de la ingesta.
type AnalyticsRepository interface {
	// CountSales devuelve el total exacto de registros de venta.
	CountSales(ctx context.Context) (int, error)
	// CountProducts devuelve el total exacto de productos distintos.
	CountProducts(ctx context.Context) (int, error)
	// SalesByDate suma quantity_sold por día calendario (truncado UTC),
	// ascendente, un punto por día con al menos una venta.
	SalesByDate(ctx context.Context) ([]SalesByDateResult, error)
	// TopLocations devuelve las tiendas con más unidades vendidas, descendente.
	TopLocations(ctx context.Context, limit int) ([]RankingResult, error)
	// TopProducts devuelve los productos con más unidades vendidas, descendente.
	TopProducts(ctx context.Context, limit int) ([]RankingResult, error)
}
