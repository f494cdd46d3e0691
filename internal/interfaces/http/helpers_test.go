package http_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/retail-sync/internal/application/dto"
	"github.com/tu-usuario/retail-sync/internal/application/ingest"
	"github.com/tu-usuario/retail-sync/internal/application/report"
	"github.com/tu-usuario/retail-sync/internal/application/usecase"
	"github.com/tu-usuario/retail-sync/internal/domain/entity"
	"github.com/tu-usuario/retail-sync/internal/domain/repository"
	apphttp "github.com/tu-usuario/retail-sync/internal/interfaces/http"
	"github.com/tu-usuario/retail-sync/pkg/jwt"
)

const testSecret = "secreto-de-test"

// memStore almacén en memoria detrás de todos los repos falsos del router.
type memStore struct {
	locations map[string]*entity.Location // code → location
	products  map[string]*entity.Product  // upc → product
	sales     []*entity.Sale
	stock     map[string]int
	upload    *entity.UploadRecord
}

func newMemStore() *memStore {
	return &memStore{
		locations: make(map[string]*entity.Location),
		products:  make(map[string]*entity.Product),
		stock:     make(map[string]int),
	}
}

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

func (r *fakeSaleRepo) ListRecentByLocation(_ context.Context, locationID string, limit int) ([]repository.SaleWithProduct, error) {
	var out []repository.SaleWithProduct
	for _, s := range r.s.sales {
		if s.LocationID != locationID || len(out) == limit {
			continue
		}
		out = append(out, repository.SaleWithProduct{Sale: *s})
	}
	return out, nil
}

type fakeInventoryRepo struct{ s *memStore }

func (r *fakeInventoryRepo) AdjustStock(_ context.Context, locationID, productID string, delta int) error {
	r.s.stock[locationID+"|"+productID] += delta
	return nil
}

func (r *fakeInventoryRepo) ListByLocation(_ context.Context, _ string) ([]repository.InventoryWithProduct, error) {
	return nil, nil
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
	r.s.upload = record
	return nil
}

type fakeAnalyticsRepo struct{ s *memStore }

func (r *fakeAnalyticsRepo) CountSales(_ context.Context) (int, error) {
	return len(r.s.sales), nil
}

func (r *fakeAnalyticsRepo) CountProducts(_ context.Context) (int, error) {
	return len(r.s.products), nil
}

func (r *fakeAnalyticsRepo) SalesByDate(_ context.Context) ([]repository.SalesByDateResult, error) {
	return nil, nil
}

func (r *fakeAnalyticsRepo) TopLocations(_ context.Context, _ int) ([]repository.RankingResult, error) {
	return nil, nil
}

func (r *fakeAnalyticsRepo) TopProducts(_ context.Context, _ int) ([]repository.RankingResult, error) {
	return nil, nil
}

type fakePDFGenerator struct{}

func (fakePDFGenerator) GenerateSummaryPDF(_ context.Context, _ *dto.AnalyticsSummaryDTO) ([]byte, error) {
	return []byte("%PDF-1.7 test"), nil
}

// newTestApp arma la app Fiber con el router completo sobre el almacén dado.
func newTestApp(t *testing.T, store *memStore) *fiber.App {
	t.Helper()

	reconcile := ingest.NewReconcileBatchUseCase(
		&fakeTxRunner{s: store},
		&fakeLocationRepo{s: store},
		&fakeProductRepo{s: store},
		&fakeSaleRepo{s: store},
		&fakeInventoryRepo{s: store},
	)
	uploadCSV := ingest.NewUploadCSVUseCase(&fakeUploadLog{s: store}, reconcile)
	analyticsUC := usecase.NewAnalyticsUseCase(&fakeAnalyticsRepo{s: store})
	locationUC := usecase.NewLocationUseCase(
		&fakeLocationRepo{s: store},
		&fakeInventoryRepo{s: store},
		&fakeSaleRepo{s: store},
	)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		Reconcile:   reconcile,
		UploadCSV:   uploadCSV,
		AnalyticsUC: analyticsUC,
		ReportPDF:   report.NewPDFUseCase(analyticsUC, fakePDFGenerator{}),
		LocationUC:  locationUC,
		JWTSecret:   testSecret,
	})
	return app
}

// bearerToken emite un token válido firmado con el secreto de test.
func bearerToken(t *testing.T) string {
	t.Helper()
	token, err := jwt.Generate(testSecret, "user-1", "user@test.local", "retail-sync-test", 5)
	require.NoError(t, err)
	return "Bearer " + token
}

// authRequest arma una request autenticada con un token válido.
func authRequest(t *testing.T, method, target string) *http.Request {
	t.Helper()
	req, err := http.NewRequest(method, target, nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", bearerToken(t))
	return req
}
