package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale es el hecho de venta (append-only): un registro por línea del archivo
// que reconcilió correctamente. QuantitySold es 1 por fila en los formatos
// soportados; UnitPrice viene de la columna de precio del origen (cero si el
// archivo no la trae o no parsea).
type Sale struct {
	ID           string
	LocationID   string
	ProductID    string
	QuantitySold int
	UnitPrice    decimal.Decimal
	SoldAt       time.Time // precisión de día
}
