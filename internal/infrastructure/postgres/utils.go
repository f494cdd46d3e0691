package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// uniqueViolation código SQLSTATE de violación de constraint único.
const uniqueViolation = "23505"

// isUniqueViolation reconoce el choque contra locations.code, products.upc o
// la constraint de inventory (location_id, product_id).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
