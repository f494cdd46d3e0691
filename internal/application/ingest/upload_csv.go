package ingest

import (
	"context"
	"io"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/tu-usuario/retail-sync/internal/domain"
	"github.com/tu-usuario/retail-sync/internal/domain/entity"
	"github.com/tu-usuario/retail-sync/internal/domain/ingestion"
	"github.com/tu-usuario/retail-sync/internal/domain/repository"
)

// UploadCSVUseCase corre el pipeline completo sobre un archivo CSV crudo:
// guarda anti re-carga → parseo → detección de formato → validación →
// duplicados intra-lote → normalización → reconciliación. Un archivo a la
// vez, síncrono, de principio a fin.
type UploadCSVUseCase struct {
	uploadLog repository.UploadLogRepository
	reconcile *ReconcileBatchUseCase
}

// NewUploadCSVUseCase construye el caso de uso.
func NewUploadCSVUseCase(uploadLog repository.UploadLogRepository, reconcile *ReconcileBatchUseCase) *UploadCSVUseCase {
	return &UploadCSVUseCase{uploadLog: uploadLog, reconcile: reconcile}
}

// Process ingesta un archivo. La guarda anti re-carga compara (nombre, tamaño)
// contra el último archivo aceptado sin inspeccionar contenido; el registro se
// escribe solo después de una carga aceptada.
func (uc *UploadCSVUseCase) Process(ctx context.Context, fileName string, fileSize int64, file io.Reader) error {
	last, err := uc.uploadLog.GetLast(ctx)
	if err != nil {
		return err
	}
	if last != nil && last.FileName == fileName && last.FileSize == fileSize {
		return domain.ErrFileRepeated
	}

	rows, err := ingestion.ParseCSV(file)
	if err != nil {
		return err
	}
	format, err := ingestion.DetectFormat(rows)
	if err != nil {
		return err
	}
	if err := ingestion.ValidateBatch(format, rows); err != nil {
		return err
	}
	if duplicates := ingestion.Duplicates(format, rows); len(duplicates) > 0 {
		// Política: cualquier duplicado rechaza el lote entero; nada se
		// descarta en silencio.
		return &ingestion.DuplicateBatchError{Count: len(duplicates)}
	}

	sales := ingestion.NormalizeBatch(format, rows)
	if err := uc.reconcile.Reconcile(ctx, sales); err != nil {
		return err
	}

	record := &entity.UploadRecord{
		FileName:   fileName,
		FileSize:   fileSize,
		UploadedAt: time.Now().UTC(),
	}
	if err := uc.uploadLog.SetLast(ctx, record); err != nil {
		// El lote ya quedó persistido; fallar aquí solo degrada la guarda
		// anti re-carga.
		log.Warn().Err(err).Str("file", fileName).Msg("no se pudo guardar el registro de carga")
	}

	log.Info().
		Str("file", fileName).
		Int("rows", len(rows)).
		Str("format", format.String()).
		Msg("archivo ingestado")
	return nil
}

// LastUpload devuelve el último archivo aceptado (nil si nunca se cargó nada).
func (uc *UploadCSVUseCase) LastUpload(ctx context.Context) (*entity.UploadRecord, error) {
	return uc.uploadLog.GetLast(ctx)
}
