package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/retail-sync/internal/domain"
	"github.com/tu-usuario/retail-sync/internal/domain/entity"
	"github.com/tu-usuario/retail-sync/internal/domain/repository"
)

var _ repository.LocationRepository = (*LocationRepo)(nil)

// LocationRepo implementación del puerto LocationRepository sobre PostgreSQL
// (usable con pool o tx).
type LocationRepo struct {
	q Querier
}

// NewLocationRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLocationRepository(q Querier) *LocationRepo {
	return &LocationRepo{q: q}
}

// ListByCodes devuelve las tiendas cuyos códigos están en codes.
func (r *LocationRepo) ListByCodes(ctx context.Context, codes []string) ([]*entity.Location, error) {
	if len(codes) == 0 {
		return nil, nil
	}
	query := `SELECT id, code, name, created_at FROM locations WHERE code = ANY($1)`
	rows, err := r.q.Query(ctx, query, codes)
	if err != nil {
		return nil, fmt.Errorf("list locations by code: %w", err)
	}
	defer rows.Close()
	var list []*entity.Location
	for rows.Next() {
		var l entity.Location
		if err := rows.Scan(&l.ID, &l.Code, &l.Name, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan location: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// CreateBatch persiste tiendas nuevas. code tiene constraint UNIQUE.
func (r *LocationRepo) CreateBatch(ctx context.Context, locations []*entity.Location) error {
	query := `INSERT INTO locations (id, code, name, created_at) VALUES ($1, $2, $3, $4)`
	for _, l := range locations {
		if _, err := r.q.Exec(ctx, query, l.ID, l.Code, l.Name, l.CreatedAt); err != nil {
			if isUniqueViolation(err) {
				return domain.ErrDuplicate
			}
			return fmt.Errorf("insert location %s: %w", l.Code, err)
		}
	}
	return nil
}

// GetByID obtiene una tienda por ID; nil si no existe.
func (r *LocationRepo) GetByID(ctx context.Context, id string) (*entity.Location, error) {
	query := `SELECT id, code, name, created_at FROM locations WHERE id = $1`
	var l entity.Location
	err := r.q.QueryRow(ctx, query, id).Scan(&l.ID, &l.Code, &l.Name, &l.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get location: %w", err)
	}
	return &l, nil
}

// List devuelve todas las tiendas ordenadas por nombre.
func (r *LocationRepo) List(ctx context.Context) ([]*entity.Location, error) {
	query := `SELECT id, code, name, created_at FROM locations ORDER BY name`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	defer rows.Close()
	var list []*entity.Location
	for rows.Next() {
		var l entity.Location
		if err := rows.Scan(&l.ID, &l.Code, &l.Name, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan location: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}
