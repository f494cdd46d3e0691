package ingestion

import (
	"encoding/csv"
	"io"
	"strings"
)

// ParseCSV lee un archivo CSV con fila de encabezado y devuelve las filas como
// RawRow (columna → valor). Las líneas vacías se saltan y el espacio inicial
// de cada celda se recorta. El número de columnas por fila debe coincidir con
// el encabezado (lo exige encoding/csv).
func ParseCSV(r io.Reader) ([]RawRow, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, formatErrorf("failed to read CSV header: %v", err)
	}
	for i, col := range header {
		header[i] = strings.TrimSpace(col)
	}

	var rows []RawRow
	line := 1
	for {
		line++
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, formatErrorf("malformed CSV at line %d: %v", line, err)
		}
		if isEmptyRecord(record) {
			continue
		}
		row := make(RawRow, len(header))
		for i, col := range header {
			row[col] = strings.TrimSpace(record[i])
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func isEmptyRecord(record []string) bool {
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
