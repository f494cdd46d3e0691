package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/retail-sync/internal/domain"
	"github.com/tu-usuario/retail-sync/internal/domain/entity"
	"github.com/tu-usuario/retail-sync/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL
// (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// ListByUPCs devuelve los productos cuyos UPC están en upcs.
func (r *ProductRepo) ListByUPCs(ctx context.Context, upcs []string) ([]*entity.Product, error) {
	if len(upcs) == 0 {
		return nil, nil
	}
	query := `SELECT id, upc, name, created_at FROM products WHERE upc = ANY($1)`
	rows, err := r.q.Query(ctx, query, upcs)
	if err != nil {
		return nil, fmt.Errorf("list products by upc: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.UPC, &p.Name, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// CreateBatch persiste productos nuevos. upc tiene constraint UNIQUE.
func (r *ProductRepo) CreateBatch(ctx context.Context, products []*entity.Product) error {
	query := `INSERT INTO products (id, upc, name, created_at) VALUES ($1, $2, $3, $4)`
	for _, p := range products {
		if _, err := r.q.Exec(ctx, query, p.ID, p.UPC, p.Name, p.CreatedAt); err != nil {
			if isUniqueViolation(err) {
				return domain.ErrDuplicate
			}
			return fmt.Errorf("insert product %s: %w", p.UPC, err)
		}
	}
	return nil
}
