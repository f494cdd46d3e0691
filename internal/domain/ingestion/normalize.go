package ingestion

import (
	"strings"

	"github.com/shopspring/decimal"
)

// CanonicalSale es la representación canónica de una venta, independiente del
// formato de origen. Inmutable una vez producida; la consume exactamente una
// vez el motor de reconciliación. Es también la forma del cuerpo JSON del
// endpoint de carga.
type CanonicalSale struct {
	LocationCode string          `json:"location_code"`
	ProductName  string          `json:"product_name"`
	ProductUPC   string          `json:"product_upc"`
	Quantity     int             `json:"quantity"`
	SoldAt       string          `json:"sold_at"` // YYYY-MM-DD, precisión de día
	UnitPrice    decimal.Decimal `json:"unit_price"`
}

// Normalize mapea una RawRow (formato A o B) a CanonicalSale. Asume que la
// fila ya pasó ValidateBatch; aquí no hay manejo de errores.
//
// Quantity es fijo en 1: los formatos de origen traen precio/importe pero no
// conteos, así que cada fila se trata como la venta de una unidad.
// La fecha se re-emite siempre como YYYY-MM-DD: MM/DD/YYYY se reinterpreta,
// la forma ISO pasa sin cambio.
func Normalize(format Format, row RawRow) CanonicalSale {
	soldAt := row[format.DateField()]
	if t, err := parseDate(soldAt); err == nil {
		soldAt = t.Format(layoutISO)
	}
	return CanonicalSale{
		LocationCode: row[format.LocationField()],
		ProductName:  row[format.ProductNameField()],
		ProductUPC:   row[format.UPCField()],
		Quantity:     1,
		SoldAt:       soldAt,
		UnitPrice:    parsePrice(row[format.PriceField()]),
	}
}

// NormalizeBatch normaliza el lote completo en orden de entrada.
func NormalizeBatch(format Format, rows []RawRow) []CanonicalSale {
	sales := make([]CanonicalSale, 0, len(rows))
	for _, row := range rows {
		sales = append(sales, Normalize(format, row))
	}
	return sales
}

// parsePrice lee el precio unitario de forma tolerante: acepta "$ 1,234.50",
// devuelve cero si la columna falta o no parsea. El precio no es obligatorio
// en los formatos de origen y nunca rechaza una fila.
func parsePrice(s string) decimal.Decimal {
	s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "$"))
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
