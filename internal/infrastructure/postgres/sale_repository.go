package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/retail-sync/internal/domain/entity"
	"github.com/tu-usuario/retail-sync/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación del puerto SaleRepository sobre PostgreSQL
// (usable con pool o tx). La tabla sales es append-only.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create inserta el hecho de venta.
func (r *SaleRepo) Create(ctx context.Context, sale *entity.Sale) error {
	query := `
		INSERT INTO sales (id, location_id, product_id, quantity_sold, unit_price, sold_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		sale.ID, sale.LocationID, sale.ProductID, sale.QuantitySold, sale.UnitPrice, sale.SoldAt,
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// ListRecentByLocation devuelve las últimas limit ventas de una tienda con el
// nombre del producto resuelto, por fecha descendente.
func (r *SaleRepo) ListRecentByLocation(ctx context.Context, locationID string, limit int) ([]repository.SaleWithProduct, error) {
	query := `
		SELECT s.id, s.location_id, s.product_id, s.quantity_sold, s.unit_price, s.sold_at, p.name
		FROM sales s
		JOIN products p ON p.id = s.product_id
		WHERE s.location_id = $1
		ORDER BY s.sold_at DESC
		LIMIT $2`
	rows, err := r.q.Query(ctx, query, locationID, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent sales: %w", err)
	}
	defer rows.Close()
	var list []repository.SaleWithProduct
	for rows.Next() {
		var item repository.SaleWithProduct
		if err := rows.Scan(
			&item.Sale.ID, &item.Sale.LocationID, &item.Sale.ProductID,
			&item.Sale.QuantitySold, &item.Sale.UnitPrice, &item.Sale.SoldAt,
			&item.ProductName,
		); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, item)
	}
	return list, rows.Err()
}
