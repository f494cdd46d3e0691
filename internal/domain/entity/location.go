package entity

import "time"

// Location representa una tienda o punto de venta.
// Se crea automáticamente en la reconciliación cuando llega un código desconocido;
// Name inicia igual a Code y se corrige después por un operador.
type Location struct {
	ID        string
	Code      string // código único de tienda (Location_ID / Site_Code del CSV)
	Name      string
	CreatedAt time.Time
}
