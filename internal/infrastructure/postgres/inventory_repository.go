package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/tu-usuario/retail-sync/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación del puerto InventoryRepository sobre PostgreSQL
// (usable con pool o tx).
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

// AdjustStock aplica el delta con un upsert atómico sobre la constraint única
// (location_id, product_id): un solo round-trip, sin leer-modificar-escribir,
// así dos cargas concurrentes sobre el mismo par no pierden actualizaciones.
// Si la fila no existe se crea con current_stock = delta (negativo para una
// venta sin inventario previo cargado; no hay piso).
func (r *InventoryRepo) AdjustStock(ctx context.Context, locationID, productID string, delta int) error {
	query := `
		INSERT INTO inventory (id, location_id, product_id, current_stock, updated_at)
		VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (location_id, product_id)
		DO UPDATE SET current_stock = inventory.current_stock + EXCLUDED.current_stock,
		              updated_at    = now()`
	_, err := r.q.Exec(ctx, query, uuid.New().String(), locationID, productID, delta)
	if err != nil {
		return fmt.Errorf("adjust stock: %w", err)
	}
	return nil
}

// ListByLocation devuelve el inventario de una tienda con nombre y UPC del
// producto, ordenado por nombre de producto.
func (r *InventoryRepo) ListByLocation(ctx context.Context, locationID string) ([]repository.InventoryWithProduct, error) {
	query := `
		SELECT i.id, i.location_id, i.product_id, i.current_stock, i.updated_at, p.name, p.upc
		FROM inventory i
		JOIN products p ON p.id = i.product_id
		WHERE i.location_id = $1
		ORDER BY p.name`
	rows, err := r.q.Query(ctx, query, locationID)
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	defer rows.Close()
	var list []repository.InventoryWithProduct
	for rows.Next() {
		var item repository.InventoryWithProduct
		if err := rows.Scan(
			&item.Record.ID, &item.Record.LocationID, &item.Record.ProductID,
			&item.Record.CurrentStock, &item.Record.UpdatedAt,
			&item.ProductName, &item.ProductUPC,
		); err != nil {
			return nil, fmt.Errorf("scan inventory: %w", err)
		}
		list = append(list, item)
	}
	return list, rows.Err()
}
