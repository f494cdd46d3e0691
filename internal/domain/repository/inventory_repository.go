package repository

import (
	"context"

	"github.com/tu-usuario/retail-sync/internal/domain/entity"
)

// InventoryRepository define el puerto de persistencia del stock por
// (tienda, producto).
type InventoryRepository interface {
	// AdjustStock aplica un delta al stock de (locationID, productID) como un
	// upsert atómico: si no existe la fila la crea con current_stock = delta.
	// Un solo round-trip, sin leer-modificar-escribir, para que dos cargas
	// concurrentes sobre el mismo par no pierdan actualizaciones.
	AdjustStock(ctx context.Context, locationID, productID string, delta int) error
	// ListByLocation devuelve el inventario de una tienda con los datos del
	// producto resueltos.
	ListByLocation(ctx context.Context, locationID string) ([]InventoryWithProduct, error)
}

// InventoryWithProduct es una fila de inventario con nombre y UPC del producto
// (proyección de lectura para la vista de tienda).
type InventoryWithProduct struct {
	Record      entity.InventoryRecord
	ProductName string
	ProductUPC  string
}
