package ingestion

import (
	"fmt"
	"strings"
)

// DuplicateBatchError indica que el lote trae claves de negocio repetidas.
// Política: el lote completo se rechaza; nunca se descartan duplicados en
// silencio.
type DuplicateBatchError struct {
	Count int
}

func (e *DuplicateBatchError) Error() string {
	return fmt.Sprintf("Found %d duplicate entries. Please check your data.", e.Count)
}

// keySep separa las partes de la clave compuesta. US (unit separator, 0x1F):
// no puede aparecer en una celda CSV normal, así que un valor con "|" u otro
// carácter visible no puede hacer colisionar dos claves distintas.
const keySep = "\x1f"

// compositeKey arma la clave de negocio de una fila:
// (código de tienda, UPC/scancode, fecha de transacción) según el formato.
func compositeKey(format Format, row RawRow) string {
	return strings.Join([]string{
		row[format.LocationField()],
		row[format.UPCField()],
		row[format.DateField()],
	}, keySep)
}

// Duplicates devuelve, en orden de entrada, las filas cuya clave compuesta ya
// apareció antes en la secuencia. La primera ocurrencia nunca se marca; todas
// las repeticiones posteriores sí. Solo detecta duplicación intra-lote: los
// duplicados contra datos ya persistidos no se revisan aquí.
func Duplicates(format Format, rows []RawRow) []RawRow {
	seen := make(map[string]struct{}, len(rows))
	var duplicates []RawRow

	for _, row := range rows {
		key := compositeKey(format, row)
		if _, ok := seen[key]; ok {
			duplicates = append(duplicates, row)
			continue
		}
		seen[key] = struct{}{}
	}
	return duplicates
}
