package repository

import (
	"context"

	"github.com/tu-usuario/retail-sync/internal/domain/entity"
)

// LocationRepository define el puerto de persistencia para Location (DIP).
type LocationRepository interface {
	// ListByCodes devuelve las tiendas cuyos códigos están en codes.
	ListByCodes(ctx context.Context, codes []string) ([]*entity.Location, error)
	// CreateBatch persiste tiendas nuevas en una sola operación.
	CreateBatch(ctx context.Context, locations []*entity.Location) error
	GetByID(ctx context.Context, id string) (*entity.Location, error)
	List(ctx context.Context) ([]*entity.Location, error)
}
