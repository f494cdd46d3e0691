package entity

import "time"

// UploadRecord es el estado persistido "último archivo cargado" que respalda
// la guarda anti re-carga: se escribe después de cada carga aceptada y se
// compara por (nombre, tamaño) sin inspeccionar contenido.
type UploadRecord struct {
	FileName   string
	FileSize   int64
	UploadedAt time.Time
}
