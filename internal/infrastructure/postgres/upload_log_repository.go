package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/retail-sync/internal/domain/entity"
	"github.com/tu-usuario/retail-sync/internal/domain/repository"
)

var _ repository.UploadLogRepository = (*UploadLogRepo)(nil)

// UploadLogRepo persiste el estado clave-valor "último archivo cargado" en una
// tabla de fila única (id fijo en 1). Sistema mono-cargador: no hace falta
// una fila por usuario.
type UploadLogRepo struct {
	q Querier
}

// NewUploadLogRepository construye el adaptador. Pasar pool o tx (Querier).
func NewUploadLogRepository(q Querier) *UploadLogRepo {
	return &UploadLogRepo{q: q}
}

// GetLast devuelve el último registro aceptado; nil si nunca se cargó nada.
func (r *UploadLogRepo) GetLast(ctx context.Context) (*entity.UploadRecord, error) {
	query := `SELECT file_name, file_size, uploaded_at FROM upload_log WHERE id = 1`
	var rec entity.UploadRecord
	err := r.q.QueryRow(ctx, query).Scan(&rec.FileName, &rec.FileSize, &rec.UploadedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get upload log: %w", err)
	}
	return &rec, nil
}

// SetLast reemplaza el registro (upsert de la fila única).
func (r *UploadLogRepo) SetLast(ctx context.Context, record *entity.UploadRecord) error {
	query := `
		INSERT INTO upload_log (id, file_name, file_size, uploaded_at)
		VALUES (1, $1, $2, $3)
		ON CONFLICT (id)
		DO UPDATE SET file_name = EXCLUDED.file_name,
		              file_size = EXCLUDED.file_size,
		              uploaded_at = EXCLUDED.uploaded_at`
	if _, err := r.q.Exec(ctx, query, record.FileName, record.FileSize, record.UploadedAt); err != nil {
		return fmt.Errorf("set upload log: %w", err)
	}
	return nil
}
