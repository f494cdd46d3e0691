package ingest

import (
	"context"

	"github.com/tu-usuario/retail-sync/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Se usa para el alta de datos maestros
// (tiendas y productos faltantes) de un lote: o se crean todos o ninguno.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		locationRepo repository.LocationRepository,
		productRepo repository.ProductRepository,
	) error) error
}
