package ingest_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/retail-sync/internal/application/ingest"
	"github.com/tu-usuario/retail-sync/internal/domain/entity"
	"github.com/tu-usuario/retail-sync/internal/domain/ingestion"
)

func canonical(code, name, upc, soldAt string) ingestion.CanonicalSale {
	return ingestion.CanonicalSale{
		LocationCode: code,
		ProductName:  name,
		ProductUPC:   upc,
		Quantity:     1,
		SoldAt:       soldAt,
		UnitPrice:    decimal.NewFromFloat(2.50),
	}
}

func TestReconcile_CreaMaestrosFaltantesUnaSolaVez(t *testing.T) {
	store := newMemStore()
	uc := newReconcileUseCase(store)

	// Tres ventas de la misma tienda y el mismo UPC desconocidos.
	sales := []ingestion.CanonicalSale{
		canonical("S1", "Widget", "111", "2024-01-15"),
		canonical("S1", "Widget", "111", "2024-01-16"),
		canonical("S1", "Widget deluxe", "111", "2024-01-17"),
	}

	require.NoError(t, uc.Reconcile(context.Background(), sales))

	require.Len(t, store.locations, 1, "una sola tienda nueva")
	require.Len(t, store.products, 1, "un solo producto nuevo")
	assert.Equal(t, "S1", store.locations["S1"].Name,
		"tienda nueva usa el código como nombre provisional")
	assert.Equal(t, "Widget", store.products["111"].Name,
		"producto nuevo toma el nombre del primer registro que trajo el UPC")
	assert.Len(t, store.sales, 3)
}

func TestReconcile_DescuentaStockExistente(t *testing.T) {
	store := newMemStore()
	store.locations["S1"] = &entity.Location{ID: "loc-1", Code: "S1", Name: "Tienda 1"}
	store.products["111"] = &entity.Product{ID: "prod-1", UPC: "111", Name: "Widget"}
	store.setStock("loc-1", "prod-1", 10)
	uc := newReconcileUseCase(store)

	sales := []ingestion.CanonicalSale{
		canonical("S1", "Widget", "111", "2024-01-15"),
		canonical("S1", "Widget", "111", "2024-01-16"),
		canonical("S1", "Widget", "111", "2024-01-17"),
	}

	require.NoError(t, uc.Reconcile(context.Background(), sales))

	stock, ok := store.stockOf("loc-1", "prod-1")
	require.True(t, ok)
	assert.Equal(t, 7, stock, "10 en stock menos 3 unidades vendidas")
}

func TestReconcile_SinRegistroDeStockQuedaNegativo(t *testing.T) {
	store := newMemStore()
	store.locations["S1"] = &entity.Location{ID: "loc-1", Code: "S1", Name: "Tienda 1"}
	store.products["111"] = &entity.Product{ID: "prod-1", UPC: "111", Name: "Widget"}
	uc := newReconcileUseCase(store)

	var sales []ingestion.CanonicalSale
	for i := 0; i < 5; i++ {
		sales = append(sales, canonical("S1", "Widget", "111", "2024-01-15"))
	}

	require.NoError(t, uc.Reconcile(context.Background(), sales))

	stock, ok := store.stockOf("loc-1", "prod-1")
	require.True(t, ok, "el upsert crea la fila aunque no existiera")
	assert.Equal(t, -5, stock,
		"vender sin stock registrado deja el saldo en negativo, no falla")
}

func TestReconcile_CampoFaltanteAbortaPeroConservaLoEscrito(t *testing.T) {
	store := newMemStore()
	uc := newReconcileUseCase(store)

	sales := []ingestion.CanonicalSale{
		canonical("S1", "Widget", "111", "2024-01-15"),
		{LocationCode: "S2", ProductName: "Gadget", Quantity: 1, SoldAt: "2024-01-16"}, // sin UPC
		canonical("S3", "Gizmo", "333", "2024-01-17"),
	}

	err := uc.Reconcile(context.Background(), sales)

	var fieldErr *ingest.FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, 2, fieldErr.Record, "el índice del mensaje es 1-indexado")
	assert.Equal(t, "Missing required field(s) in sale #2: product_upc", fieldErr.Error())
	// El fallo es parcial: la venta anterior ya quedó confirmada y no se
	// revierte; la posterior al fallo nunca se intenta.
	assert.Len(t, store.sales, 1)
	assert.Len(t, store.stock, 1)
}

func TestReconcile_CantidadAusenteEsFieldError(t *testing.T) {
	store := newMemStore()
	uc := newReconcileUseCase(store)

	// quantity ausente en el JSON decodifica a 0: cuenta como campo faltante,
	// nunca como una venta de cero unidades.
	sales := []ingestion.CanonicalSale{
		{LocationCode: "S1", ProductName: "Widget", ProductUPC: "111", SoldAt: "2024-03-05"},
	}

	err := uc.Reconcile(context.Background(), sales)

	var fieldErr *ingest.FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "Missing required field(s) in sale #1: quantity", fieldErr.Error())
	assert.Empty(t, store.sales, "el registro no se inserta")
	assert.Empty(t, store.stock, "tampoco hay ajuste de inventario")

	// Varios campos faltantes se listan en el orden del contrato.
	err = uc.Reconcile(context.Background(), []ingestion.CanonicalSale{
		{LocationCode: "S1", ProductName: "Widget"},
	})
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, []string{"product_upc", "quantity", "sold_at"}, fieldErr.Fields)
}

func TestReconcile_FechaInvalidaEnEscrituraEsFieldError(t *testing.T) {
	store := newMemStore()
	uc := newReconcileUseCase(store)

	sales := []ingestion.CanonicalSale{
		canonical("S1", "Widget", "111", "15/01/2024"), // no es YYYY-MM-DD
	}

	err := uc.Reconcile(context.Background(), sales)

	var fieldErr *ingest.FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, []string{"sold_at"}, fieldErr.Fields)
	assert.Empty(t, store.sales)
}

func TestReconcile_LoteVacioNoHaceNada(t *testing.T) {
	store := newMemStore()
	uc := newReconcileUseCase(store)

	require.NoError(t, uc.Reconcile(context.Background(), nil))

	assert.Empty(t, store.sales)
	assert.Empty(t, store.locations)
}

func TestReconcile_EscenarioCompleto(t *testing.T) {
	// Escenario de punta a punta: tienda y producto desconocidos, una venta.
	store := newMemStore()
	uc := newReconcileUseCase(store)

	sales := []ingestion.CanonicalSale{canonical("S1", "Widget", "111", "2024-03-05")}

	require.NoError(t, uc.Reconcile(context.Background(), sales))

	loc := store.locations["S1"]
	prod := store.products["111"]
	require.NotNil(t, loc)
	require.NotNil(t, prod)
	require.Len(t, store.sales, 1)

	sale := store.sales[0]
	assert.Equal(t, loc.ID, sale.LocationID)
	assert.Equal(t, prod.ID, sale.ProductID)
	assert.Equal(t, 1, sale.QuantitySold)
	assert.Equal(t, "2024-03-05", sale.SoldAt.Format("2006-01-02"))
	assert.True(t, sale.UnitPrice.Equal(decimal.NewFromFloat(2.50)))

	stock, ok := store.stockOf(loc.ID, prod.ID)
	require.True(t, ok)
	assert.Equal(t, -1, stock)
}
