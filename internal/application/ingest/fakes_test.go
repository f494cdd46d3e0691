package ingest_test

import (
	"context"
	"errors"

	"github.com/tu-usuario/retail-sync/internal/application/ingest"
	"github.com/tu-usuario/retail-sync/internal/domain/entity"
	"github.com/tu-usuario/retail-sync/internal/domain/repository"
)

// memStore es un almacén en memoria compartido por los repos falsos de estos
// tests: suficiente para verificar la semántica de reconciliación sin Postgres.
type memStore struct {
	locations map[string]*entity.Location // code → location
	products  map[string]*entity.Product  // upc → product
	sales     []*entity.Sale
	stock     map[string]int // locationID|productID → current_stock
	upload    *entity.UploadRecord

	failSetLast error
}

func newMemStore() *memStore {
	return &memStore{
		locations: make(map[string]*entity.Location),
		products:  make(map[string]*entity.Product),
		stock:     make(map[string]int),
	}
}

func (s *memStore) stockOf(locationID, productID string) (int, bool) {
	v, ok := s.stock[locationID+"|"+productID]
	return v, ok
}

func (s *memStore) setStock(locationID, productID string, qty int) {
	s.stock[locationID+"|"+productID] = qty
}

// ── repos falsos ─────────────────────────────────────────────────────────────

type fakeLocationRepo struct{ s *memStore }

func (r *fakeLocationRepo) ListByCodes(_ context.Context, codes []string) ([]*entity.Location, error) {
	var out []*entity.Location
	for _, code := range codes {
		if loc, ok := r.s.locations[code]; ok {
			out = append(out, loc)
		}
	}
	return out, nil
}

func (r *fakeLocationRepo) CreateBatch(_ context.Context, locations []*entity.Location) error {
	for _, loc := range locations {
		r.s.locations[loc.Code] = loc
	}
	return nil
}

func (r *fakeLocationRepo) GetByID(_ context.Context, id string) (*entity.Location, error) {
	for _, loc := range r.s.locations {
		if loc.ID == id {
			return loc, nil
		}
	}
	return nil, nil
}

func (r *fakeLocationRepo) List(_ context.Context) ([]*entity.Location, error) {
	out := make([]*entity.Location, 0, len(r.s.locations))
	for _, loc := range r.s.locations {
		out = append(out, loc)
	}
	return out, nil
}

type fakeProductRepo struct{ s *memStore }

func (r *fakeProductRepo) ListByUPCs(_ context.Context, upcs []string) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, upc := range upcs {
		if p, ok := r.s.products[upc]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) CreateBatch(_ context.Context, products []*entity.Product) error {
	for _, p := range products {
		r.s.products[p.UPC] = p
	}
	return nil
}

type fakeSaleRepo struct{ s *memStore }

func (r *fakeSaleRepo) Create(_ context.Context, sale *entity.Sale) error {
	r.s.sales = append(r.s.sales, sale)
	return nil
}

func (r *fakeSaleRepo) ListRecentByLocation(_ context.Context, _ string, _ int) ([]repository.SaleWithProduct, error) {
	return nil, errors.New("no usado en estos tests")
}

type fakeInventoryRepo struct{ s *memStore }

// AdjustStock replica el upsert atómico: fila nueva arranca en delta,
// fila existente acumula.
func (r *fakeInventoryRepo) AdjustStock(_ context.Context, locationID, productID string, delta int) error {
	key := locationID + "|" + productID
	r.s.stock[key] += delta
	return nil
}

func (r *fakeInventoryRepo) ListByLocation(_ context.Context, _ string) ([]repository.InventoryWithProduct, error) {
	return nil, errors.New("no usado en estos tests")
}

type fakeTxRunner struct{ s *memStore }

func (tr *fakeTxRunner) Run(_ context.Context, fn func(repository.LocationRepository, repository.ProductRepository) error) error {
	return fn(&fakeLocationRepo{s: tr.s}, &fakeProductRepo{s: tr.s})
}

type fakeUploadLog struct{ s *memStore }

func (r *fakeUploadLog) GetLast(_ context.Context) (*entity.UploadRecord, error) {
	return r.s.upload, nil
}

func (r *fakeUploadLog) SetLast(_ context.Context, record *entity.UploadRecord) error {
	if r.s.failSetLast != nil {
		return r.s.failSetLast
	}
	r.s.upload = record
	return nil
}

// newReconcileUseCase arma el caso de uso completo sobre el almacén dado.
func newReconcileUseCase(s *memStore) *ingest.ReconcileBatchUseCase {
	return ingest.NewReconcileBatchUseCase(
		&fakeTxRunner{s: s},
		&fakeLocationRepo{s: s},
		&fakeProductRepo{s: s},
		&fakeSaleRepo{s: s},
		&fakeInventoryRepo{s: s},
	)
}
