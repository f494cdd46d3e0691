package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/retail-sync/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura sobre ventas y productos.
// Corre sobre el pool directamente: los reads de analítica pueden solaparse
// con una ingesta en curso (sin garantía de aislamiento, aceptado).
type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

// CountSales devuelve el total exacto de registros de venta.
func (r *AnalyticsRepo) CountSales(ctx context.Context) (int, error) {
	var n int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM sales`).Scan(&n); err != nil {
		return 0, fmt.Errorf("analytics.CountSales: %w", err)
	}
	return n, nil
}

// CountProducts devuelve el total exacto de productos distintos.
func (r *AnalyticsRepo) CountProducts(ctx context.Context) (int, error) {
	var n int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&n); err != nil {
		return 0, fmt.Errorf("analytics.CountProducts: %w", err)
	}
	return n, nil
}

// SalesByDate agrupa unidades vendidas por día calendario, ascendente.
// sold_at es DATE (precisión de día), así que el truncado es inherente.
func (r *AnalyticsRepo) SalesByDate(ctx context.Context) ([]repository.SalesByDateResult, error) {
	const query = `
	SELECT sold_at, SUM(quantity_sold) AS quantity_sold
	FROM sales
	GROUP BY sold_at
	ORDER BY sold_at ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("analytics.SalesByDate: %w", err)
	}
	defer rows.Close()

	var results []repository.SalesByDateResult
	for rows.Next() {
		var row repository.SalesByDateResult
		if err := rows.Scan(&row.SoldAt, &row.QuantitySold); err != nil {
			return nil, fmt.Errorf("analytics.SalesByDate scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// TopLocations devuelve las limit tiendas con más unidades vendidas.
func (r *AnalyticsRepo) TopLocations(ctx context.Context, limit int) ([]repository.RankingResult, error) {
	const query = `
	SELECT l.name              AS location_name,
	       SUM(s.quantity_sold) AS total_sold
	FROM sales s
	JOIN locations l ON l.id = s.location_id
	GROUP BY l.id, l.name
	ORDER BY total_sold DESC
	LIMIT $1`

	return r.ranking(ctx, query, limit, "TopLocations")
}

// TopProducts devuelve los limit productos con más unidades vendidas.
func (r *AnalyticsRepo) TopProducts(ctx context.Context, limit int) ([]repository.RankingResult, error) {
	const query = `
	SELECT p.name              AS product_name,
	       SUM(s.quantity_sold) AS total_sold
	FROM sales s
	JOIN products p ON p.id = s.product_id
	GROUP BY p.id, p.name
	ORDER BY total_sold DESC
	LIMIT $1`

	return r.ranking(ctx, query, limit, "TopProducts")
}

func (r *AnalyticsRepo) ranking(ctx context.Context, query string, limit int, op string) ([]repository.RankingResult, error) {
	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("analytics.%s: %w", op, err)
	}
	defer rows.Close()

	var results []repository.RankingResult
	for rows.Next() {
		var row repository.RankingResult
		if err := rows.Scan(&row.Name, &row.TotalSold); err != nil {
			return nil, fmt.Errorf("analytics.%s scan: %w", op, err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
