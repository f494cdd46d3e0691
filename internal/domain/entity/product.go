package entity

import "time"

// Product representa un producto identificado por su UPC/scancode.
// Se crea automáticamente en la reconciliación; Name se toma del primer
// registro del lote que referenció ese UPC.
type Product struct {
	ID        string
	UPC       string // único global
	Name      string
	CreatedAt time.Time
}
