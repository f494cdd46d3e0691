package repository

import (
	"context"

	"github.com/tu-usuario/retail-sync/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	// ListByUPCs devuelve los productos cuyos UPC están en upcs.
	ListByUPCs(ctx context.Context, upcs []string) ([]*entity.Product, error)
	// CreateBatch persiste productos nuevos en una sola operación.
	CreateBatch(ctx context.Context, products []*entity.Product) error
}
