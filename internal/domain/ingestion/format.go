// Package ingestion contiene el pipeline puro de ingesta de archivos POS:
// detección de formato, validación, detección de duplicados y normalización.
// No toca persistencia; la reconciliación contra la base vive en
// internal/application/ingest.
package ingestion

import (
	"fmt"
	"regexp"
	"time"
)

// RawRow es una fila parseada del CSV: nombre de columna → valor.
// Efímera, solo existe durante el parseo y la validación.
type RawRow map[string]string

// Format identifica cuál de los dos esquemas tabulares soportados trae el lote.
// Se resuelve una sola vez al entrar el lote y se propaga explícitamente por
// el pipeline (variante etiquetada, no sondeo de campos por fila).
type Format int

const (
	// FormatA: Location_ID, Product_Name, Scancode, Trans_Date, Price, Total_Amount
	FormatA Format = iota + 1
	// FormatB: Site_Code, Item_Description, UPC, Sale_Date, Unit_Price, Final_Total
	FormatB
)

// String devuelve el nombre del formato para mensajes y logs.
func (f Format) String() string {
	switch f {
	case FormatA:
		return "Format A"
	case FormatB:
		return "Format B"
	default:
		return "unknown format"
	}
}

// LocationField devuelve el nombre de la columna de código de tienda.
func (f Format) LocationField() string {
	if f == FormatA {
		return "Location_ID"
	}
	return "Site_Code"
}

// ProductNameField devuelve el nombre de la columna de descripción de producto.
func (f Format) ProductNameField() string {
	if f == FormatA {
		return "Product_Name"
	}
	return "Item_Description"
}

// UPCField devuelve el nombre de la columna de UPC/scancode.
func (f Format) UPCField() string {
	if f == FormatA {
		return "Scancode"
	}
	return "UPC"
}

// DateField devuelve el nombre de la columna de fecha de transacción.
func (f Format) DateField() string {
	if f == FormatA {
		return "Trans_Date"
	}
	return "Sale_Date"
}

// PriceField devuelve el nombre de la columna de precio unitario (opcional:
// no participa en la validación, solo alimenta unit_price en la normalización).
func (f Format) PriceField() string {
	if f == FormatA {
		return "Price"
	}
	return "Unit_Price"
}

// requiredFields son las 4 columnas obligatorias del formato.
func (f Format) requiredFields() []string {
	return []string{f.LocationField(), f.ProductNameField(), f.UPCField(), f.DateField()}
}

// FormatError indica un archivo malformado o no soportado: esquema sin
// discriminador, columna obligatoria vacía o fecha irreconocible/inválida.
// El lote se rechaza antes de cualquier persistencia.
type FormatError struct {
	Message string
}

func (e *FormatError) Error() string { return e.Message }

func formatErrorf(format string, args ...any) *FormatError {
	return &FormatError{Message: fmt.Sprintf(format, args...)}
}

// Formas textuales aceptadas para fechas. Exactamente dos: MM/DD/YYYY (Format A
// histórico) y YYYY-MM-DD (ISO). Cualquier otra forma falla la validación.
var (
	dateShapeUS  = regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`)
	dateShapeISO = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

const (
	layoutUS  = "01/02/2006"
	layoutISO = "2006-01-02"
)

// parseDate reconoce una de las dos formas aceptadas y valida que la fecha sea
// calendario-válida (mes 13 o 30 de febrero fallan aunque la forma coincida).
func parseDate(s string) (time.Time, error) {
	switch {
	case dateShapeUS.MatchString(s):
		return time.Parse(layoutUS, s)
	case dateShapeISO.MatchString(s):
		return time.Parse(layoutISO, s)
	default:
		return time.Time{}, fmt.Errorf("unrecognized date shape")
	}
}

// DetectFormat determina el formato del lote por la presencia del campo
// discriminador en la primera fila: Location_ID ⇒ Format A, Site_Code ⇒ Format B.
// Lote vacío o sin discriminador ⇒ FormatError.
func DetectFormat(rows []RawRow) (Format, error) {
	if len(rows) == 0 {
		return 0, formatErrorf("CSV file is empty")
	}
	first := rows[0]
	if _, ok := first["Location_ID"]; ok {
		return FormatA, nil
	}
	if _, ok := first["Site_Code"]; ok {
		return FormatB, nil
	}
	return 0, formatErrorf("Invalid CSV format. Must be either Format A (Location_ID) or Format B (Site_Code)")
}

// ValidateBatch verifica cada fila del lote contra el formato detectado:
// las 4 columnas obligatorias presentes y no vacías, y la fecha en una de las
// dos formas aceptadas y calendario-válida. Falla con FormatError en el primer
// problema, nombrando el campo y la fila (1-indexada). Validación pura: no
// transforma las filas.
func ValidateBatch(format Format, rows []RawRow) error {
	required := format.requiredFields()
	dateField := format.DateField()

	for i, row := range rows {
		for _, field := range required {
			if row[field] == "" {
				return formatErrorf("Missing required field: %s (row %d)", field, i+1)
			}
		}
		date := row[dateField]
		if _, err := parseDate(date); err != nil {
			return formatErrorf("Invalid date format in %s: %s. Expected MM/DD/YYYY or YYYY-MM-DD", dateField, date)
		}
	}
	return nil
}
