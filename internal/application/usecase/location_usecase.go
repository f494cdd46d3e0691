package usecase

import (
	"context"
	"fmt"

	"github.com/tu-usuario/retail-sync/internal/application/dto"
	"github.com/tu-usuario/retail-sync/internal/domain"
	"github.com/tu-usuario/retail-sync/internal/domain/repository"
)

// recentSalesLimit cuántas ventas recientes muestra la vista de tienda.
const recentSalesLimit = 20

// LocationUseCase vistas de lectura de tiendas: listado para el dashboard y
// detalle con inventario actual y ventas recientes.
type LocationUseCase struct {
	locationRepo  repository.LocationRepository
	inventoryRepo repository.InventoryRepository
	saleRepo      repository.SaleRepository
}

// NewLocationUseCase construye el caso de uso.
func NewLocationUseCase(
	locationRepo repository.LocationRepository,
	inventoryRepo repository.InventoryRepository,
	saleRepo repository.SaleRepository,
) *LocationUseCase {
	return &LocationUseCase{
		locationRepo:  locationRepo,
		inventoryRepo: inventoryRepo,
		saleRepo:      saleRepo,
	}
}

// List devuelve todas las tiendas.
func (uc *LocationUseCase) List(ctx context.Context) ([]dto.LocationResponse, error) {
	locations, err := uc.locationRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	out := make([]dto.LocationResponse, 0, len(locations))
	for _, l := range locations {
		out = append(out, dto.LocationResponse{ID: l.ID, Code: l.Code, Name: l.Name})
	}
	return out, nil
}

// GetDetail devuelve la tienda con su inventario y sus últimas ventas.
// Retorna domain.ErrNotFound si el id no existe.
func (uc *LocationUseCase) GetDetail(ctx context.Context, id string) (*dto.LocationDetailResponse, error) {
	location, err := uc.locationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get location: %w", err)
	}
	if location == nil {
		return nil, domain.ErrNotFound
	}

	inventory, err := uc.inventoryRepo.ListByLocation(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	sales, err := uc.saleRepo.ListRecentByLocation(ctx, id, recentSalesLimit)
	if err != nil {
		return nil, fmt.Errorf("list recent sales: %w", err)
	}

	detail := &dto.LocationDetailResponse{
		ID:        location.ID,
		Code:      location.Code,
		Name:      location.Name,
		Inventory: make([]dto.InventoryItemDTO, 0, len(inventory)),
		Sales:     make([]dto.LocationSaleDTO, 0, len(sales)),
	}
	for _, item := range inventory {
		detail.Inventory = append(detail.Inventory, dto.InventoryItemDTO{
			ID:           item.Record.ID,
			ProductName:  item.ProductName,
			ProductUPC:   item.ProductUPC,
			CurrentStock: item.Record.CurrentStock,
		})
	}
	for _, s := range sales {
		detail.Sales = append(detail.Sales, dto.LocationSaleDTO{
			ID:           s.Sale.ID,
			ProductName:  s.ProductName,
			QuantitySold: s.Sale.QuantitySold,
			UnitPrice:    s.Sale.UnitPrice,
			SoldAt:       s.Sale.SoldAt.Format("2006-01-02"),
		})
	}
	return detail, nil
}
