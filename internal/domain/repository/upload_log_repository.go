package repository

import (
	"context"

	"github.com/tu-usuario/retail-sync/internal/domain/entity"
)

// UploadLogRepository define el puerto del estado clave-valor "último archivo
// cargado". Ciclo de vida documentado: se escribe después de cada carga
// aceptada, se lee una vez al montar el formulario (GET /api/upload/last) y
// al recibir un archivo nuevo para la guarda anti re-carga.
type UploadLogRepository interface {
	// GetLast devuelve el último registro aceptado, o nil si nunca se cargó nada.
	GetLast(ctx context.Context) (*entity.UploadRecord, error)
	// SetLast reemplaza el registro (upsert de fila única).
	SetLast(ctx context.Context, record *entity.UploadRecord) error
}
