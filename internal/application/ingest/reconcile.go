package ingest

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/tu-usuario/retail-sync/internal/domain/entity"
	"github.com/tu-usuario/retail-sync/internal/domain/ingestion"
	"github.com/tu-usuario/retail-sync/internal/domain/repository"
)

// FieldError indica que a un registro del lote le falta un campo obligatorio
// durante la fase de escritura. Es el único caso de fallo parcial: los
// registros anteriores del mismo lote ya quedaron confirmados y no se
// revierten; al llamador solo se le dice qué registro falló.
type FieldError struct {
	Record int // 1-indexado
	Fields []string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("Missing required field(s) in sale #%d: %s", e.Record, strings.Join(e.Fields, ", "))
}

const soldAtLayout = "2006-01-02"

// ReconcileBatchUseCase resuelve las ventas canónicas de un lote contra los
// datos maestros persistidos (creando tiendas y productos faltantes), inserta
// los hechos de venta y ajusta el inventario.
type ReconcileBatchUseCase struct {
	txRunner      TxRunner
	locationRepo  repository.LocationRepository
	productRepo   repository.ProductRepository
	saleRepo      repository.SaleRepository
	inventoryRepo repository.InventoryRepository
}

// NewReconcileBatchUseCase construye el caso de uso.
func NewReconcileBatchUseCase(
	txRunner TxRunner,
	locationRepo repository.LocationRepository,
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
	inventoryRepo repository.InventoryRepository,
) *ReconcileBatchUseCase {
	return &ReconcileBatchUseCase{
		txRunner:      txRunner,
		locationRepo:  locationRepo,
		productRepo:   productRepo,
		saleRepo:      saleRepo,
		inventoryRepo: inventoryRepo,
	}
}

// Reconcile procesa un lote en orden:
//  1. Junta los códigos de tienda y UPCs distintos referenciados.
//  2. Trae en bloque las tiendas y productos existentes y arma los mapas
//     código→id y upc→id.
//  3. Crea los faltantes dentro de una transacción: tiendas con name = code
//     (un operador lo corrige después) y productos con el nombre del primer
//     registro del lote que referenció ese UPC.
//  4. Por cada venta, en orden de entrada: revalida campos obligatorios
//     (FieldError aborta el resto del lote; lo ya escrito queda), resuelve
//     ids (un miss post-creación se salta en silencio), inserta el hecho de
//     venta y descuenta el stock con un upsert atómico.
//
// No devuelve conteo de registros escritos: solo éxito o el error de aborto.
func (uc *ReconcileBatchUseCase) Reconcile(ctx context.Context, sales []ingestion.CanonicalSale) error {
	locationIDs, productIDs, err := uc.ensureMasterData(ctx, sales)
	if err != nil {
		return err
	}

	for i, sale := range sales {
		if fieldErr := validateSale(i+1, sale); fieldErr != nil {
			return fieldErr
		}
		soldAt, parseErr := time.Parse(soldAtLayout, sale.SoldAt)
		if parseErr != nil {
			return &FieldError{Record: i + 1, Fields: []string{"sold_at"}}
		}

		locationID := locationIDs[sale.LocationCode]
		productID := productIDs[sale.ProductUPC]
		if locationID == "" || productID == "" {
			// No debería pasar después del alta de maestros; el registro se
			// salta sin avisar al llamador.
			log.Debug().
				Str("location_code", sale.LocationCode).
				Str("product_upc", sale.ProductUPC).
				Msg("venta sin maestro resuelto, registro saltado")
			continue
		}

		fact := &entity.Sale{
			ID:           uuid.New().String(),
			LocationID:   locationID,
			ProductID:    productID,
			QuantitySold: sale.Quantity,
			UnitPrice:    sale.UnitPrice,
			SoldAt:       soldAt,
		}
		if err := uc.saleRepo.Create(ctx, fact); err != nil {
			return fmt.Errorf("insert sale #%d: %w", i+1, err)
		}
		if err := uc.inventoryRepo.AdjustStock(ctx, locationID, productID, -sale.Quantity); err != nil {
			return fmt.Errorf("adjust stock for sale #%d: %w", i+1, err)
		}
	}
	return nil
}

// ensureMasterData resuelve códigos y UPCs a ids, creando los faltantes en una
// transacción. Devuelve los mapas código→id y upc→id ya completos.
func (uc *ReconcileBatchUseCase) ensureMasterData(
	ctx context.Context,
	sales []ingestion.CanonicalSale,
) (locationIDs, productIDs map[string]string, err error) {
	// Distintos en orden de primera aparición; para productos se recuerda el
	// nombre del primer registro que trajo cada UPC.
	var codes, upcs []string
	upcNames := make(map[string]string)
	seenCode := make(map[string]struct{})
	for _, s := range sales {
		if _, ok := seenCode[s.LocationCode]; !ok && s.LocationCode != "" {
			seenCode[s.LocationCode] = struct{}{}
			codes = append(codes, s.LocationCode)
		}
		if _, ok := upcNames[s.ProductUPC]; !ok && s.ProductUPC != "" {
			upcNames[s.ProductUPC] = s.ProductName
			upcs = append(upcs, s.ProductUPC)
		}
	}

	locationIDs = make(map[string]string, len(codes))
	productIDs = make(map[string]string, len(upcs))

	existingLocs, err := uc.locationRepo.ListByCodes(ctx, codes)
	if err != nil {
		return nil, nil, fmt.Errorf("fetch locations: %w", err)
	}
	for _, l := range existingLocs {
		locationIDs[l.Code] = l.ID
	}
	existingProds, err := uc.productRepo.ListByUPCs(ctx, upcs)
	if err != nil {
		return nil, nil, fmt.Errorf("fetch products: %w", err)
	}
	for _, p := range existingProds {
		productIDs[p.UPC] = p.ID
	}

	now := time.Now().UTC()
	var newLocs []*entity.Location
	for _, code := range codes {
		if locationIDs[code] != "" {
			continue
		}
		loc := &entity.Location{ID: uuid.New().String(), Code: code, Name: code, CreatedAt: now}
		newLocs = append(newLocs, loc)
		locationIDs[code] = loc.ID
	}
	var newProds []*entity.Product
	for _, upc := range upcs {
		if productIDs[upc] != "" {
			continue
		}
		name := upcNames[upc]
		if name == "" {
			name = upc
		}
		prod := &entity.Product{ID: uuid.New().String(), UPC: upc, Name: name, CreatedAt: now}
		newProds = append(newProds, prod)
		productIDs[upc] = prod.ID
	}

	if len(newLocs) == 0 && len(newProds) == 0 {
		return locationIDs, productIDs, nil
	}

	err = uc.txRunner.Run(ctx, func(
		locationRepo repository.LocationRepository,
		productRepo repository.ProductRepository,
	) error {
		if len(newLocs) > 0 {
			if err := locationRepo.CreateBatch(ctx, newLocs); err != nil {
				return fmt.Errorf("create locations: %w", err)
			}
		}
		if len(newProds) > 0 {
			if err := productRepo.CreateBatch(ctx, newProds); err != nil {
				return fmt.Errorf("create products: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return locationIDs, productIDs, nil
}

// validateSale revalida los campos obligatorios de un registro antes de
// escribirlo. quantity ausente en el JSON decodifica a 0; una venta de cero
// unidades no existe en los formatos de origen, así que 0 cuenta como campo
// faltante.
func validateSale(record int, sale ingestion.CanonicalSale) *FieldError {
	var missing []string
	if sale.LocationCode == "" {
		missing = append(missing, "location_code")
	}
	if sale.ProductName == "" {
		missing = append(missing, "product_name")
	}
	if sale.ProductUPC == "" {
		missing = append(missing, "product_upc")
	}
	if sale.Quantity == 0 {
		missing = append(missing, "quantity")
	}
	if sale.SoldAt == "" {
		missing = append(missing, "sold_at")
	}
	if len(missing) > 0 {
		return &FieldError{Record: record, Fields: missing}
	}
	return nil
}
