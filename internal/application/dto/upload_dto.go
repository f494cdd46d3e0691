package dto

import (
	"time"

	"github.com/tu-usuario/retail-sync/internal/domain/ingestion"
)

// UploadRequest cuerpo del POST /api/upload: ventas ya canónicas
// (el cliente hizo parseo y normalización, o vienen del pipeline CSV propio).
type UploadRequest struct {
	Sales []ingestion.CanonicalSale `json:"sales"`
}

// LastUploadResponse salida de GET /api/upload/last: el estado persistido del
// último archivo aceptado, para la guarda anti re-carga del formulario.
type LastUploadResponse struct {
	FileName   string    `json:"file_name"`
	FileSize   int64     `json:"file_size"`
	UploadedAt time.Time `json:"uploaded_at"`
}
