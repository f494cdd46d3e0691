package ingestion_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/retail-sync/internal/domain/ingestion"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

// rowA construye una fila Format A válida con la fecha indicada.
func rowA(date string) ingestion.RawRow {
	return ingestion.RawRow{
		"Location_ID":  "S1",
		"Product_Name": "Widget",
		"Scancode":     "111",
		"Trans_Date":   date,
		"Price":        "2.50",
		"Total_Amount": "2.50",
	}
}

// rowB construye una fila Format B válida con la fecha indicada.
func rowB(date string) ingestion.RawRow {
	return ingestion.RawRow{
		"Site_Code":        "S1",
		"Item_Description": "Widget",
		"UPC":              "111",
		"Sale_Date":        date,
		"Unit_Price":       "2.50",
		"Final_Total":      "2.50",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// DetectFormat
// ──────────────────────────────────────────────────────────────────────────────

func TestDetectFormat_LoteVacioFalla(t *testing.T) {
	_, err := ingestion.DetectFormat(nil)

	var formatErr *ingestion.FormatError
	require.ErrorAs(t, err, &formatErr, "lote vacío debe fallar con FormatError")
	assert.Contains(t, formatErr.Error(), "empty")
}

func TestDetectFormat_SinDiscriminadorFalla(t *testing.T) {
	rows := []ingestion.RawRow{{"Store": "S1", "Item": "Widget"}}

	_, err := ingestion.DetectFormat(rows)

	var formatErr *ingestion.FormatError
	require.ErrorAs(t, err, &formatErr,
		"primera fila sin Location_ID ni Site_Code debe fallar con FormatError")
	assert.Contains(t, formatErr.Error(), "Format A")
	assert.Contains(t, formatErr.Error(), "Format B")
}

func TestDetectFormat_LocationIDEsFormatA(t *testing.T) {
	format, err := ingestion.DetectFormat([]ingestion.RawRow{rowA("01/15/2024")})

	require.NoError(t, err)
	assert.Equal(t, ingestion.FormatA, format)
}

func TestDetectFormat_SiteCodeEsFormatB(t *testing.T) {
	format, err := ingestion.DetectFormat([]ingestion.RawRow{rowB("2024-01-15")})

	require.NoError(t, err)
	assert.Equal(t, ingestion.FormatB, format)
}

// ──────────────────────────────────────────────────────────────────────────────
// ValidateBatch: campos obligatorios
// ──────────────────────────────────────────────────────────────────────────────

func TestValidateBatch_CampoFaltanteNombraCampoYFila(t *testing.T) {
	rows := []ingestion.RawRow{rowA("01/15/2024"), rowA("01/16/2024")}
	rows[1]["Scancode"] = ""

	err := ingestion.ValidateBatch(ingestion.FormatA, rows)

	var formatErr *ingestion.FormatError
	require.ErrorAs(t, err, &formatErr)
	assert.Contains(t, formatErr.Error(), "Scancode", "debe nombrar el campo faltante")
	assert.Contains(t, formatErr.Error(), "row 2", "debe indicar la fila 1-indexada")
}

func TestValidateBatch_FormatBCamposPropios(t *testing.T) {
	rows := []ingestion.RawRow{rowB("2024-01-15")}
	delete(rows[0], "Item_Description")

	err := ingestion.ValidateBatch(ingestion.FormatB, rows)

	var formatErr *ingestion.FormatError
	require.ErrorAs(t, err, &formatErr)
	assert.Contains(t, formatErr.Error(), "Item_Description")
}

func TestValidateBatch_LoteValidoPasa(t *testing.T) {
	rows := []ingestion.RawRow{rowA("01/15/2024"), rowA("12/31/2024")}

	assert.NoError(t, ingestion.ValidateBatch(ingestion.FormatA, rows))
}

// ──────────────────────────────────────────────────────────────────────────────
// ValidateBatch: fechas (exactamente dos formas aceptadas)
// ──────────────────────────────────────────────────────────────────────────────

func TestValidateBatch_Fechas(t *testing.T) {
	cases := []struct {
		name  string
		date  string
		valid bool
	}{
		{"MM/DD/YYYY válida", "03/05/2024", true},
		// Ambas formas textuales se aceptan en ambos formatos.
		{"ISO válida", "2024-03-05", true},
		{"30 de febrero US", "02/30/2024", false},
		{"30 de febrero ISO", "2024-02-30", false},
		{"29 de febrero en bisiesto", "02/29/2024", true},
		{"mes 13", "13/05/2024", false},
		{"forma irreconocible", "2024/03/05", false},
		{"texto", "yesterday", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ingestion.ValidateBatch(ingestion.FormatA, []ingestion.RawRow{rowA(tc.date)})
			if tc.valid {
				assert.NoError(t, err, "la fecha %s debe pasar", tc.date)
			} else {
				var formatErr *ingestion.FormatError
				require.ErrorAs(t, err, &formatErr, "la fecha %s debe fallar", tc.date)
				assert.Contains(t, formatErr.Error(), "Trans_Date")
			}
		})
	}
}

func TestValidateBatch_FechaISOEnFormatB(t *testing.T) {
	err := ingestion.ValidateBatch(ingestion.FormatB, []ingestion.RawRow{rowB("2024-02-29")})
	assert.NoError(t, err, "2024-02-29 es bisiesto, debe pasar")

	err = ingestion.ValidateBatch(ingestion.FormatB, []ingestion.RawRow{rowB("2023-02-29")})
	var formatErr *ingestion.FormatError
	require.ErrorAs(t, err, &formatErr, "2023 no es bisiesto, debe fallar")
}
