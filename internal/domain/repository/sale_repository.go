package repository

import (
	"context"

	"github.com/tu-usuario/retail-sync/internal/domain/entity"
)

// SaleRepository define el puerto de persistencia para el hecho de venta.
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) error
	// ListRecentByLocation devuelve las últimas ventas de una tienda con el
	// nombre del producto resuelto, ordenadas por fecha descendente.
	ListRecentByLocation(ctx context.Context, locationID string, limit int) ([]SaleWithProduct, error)
}

// SaleWithProduct es una venta con el nombre del producto ya resuelto
// (proyección de lectura para la vista de tienda).
type SaleWithProduct struct {
	Sale        entity.Sale
	ProductName string
}
