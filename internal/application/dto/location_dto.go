package dto

import "github.com/shopspring/decimal"

// LocationResponse una tienda del listado del dashboard.
type LocationResponse struct {
	ID   string `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

// InventoryItemDTO una fila de inventario de la vista de tienda.
type InventoryItemDTO struct {
	ID           string `json:"id"`
	ProductName  string `json:"product_name"`
	ProductUPC   string `json:"product_upc"`
	CurrentStock int    `json:"current_stock"`
}

// LocationSaleDTO una venta reciente de la vista de tienda.
type LocationSaleDTO struct {
	ID           string          `json:"id"`
	ProductName  string          `json:"product_name"`
	QuantitySold int             `json:"quantity_sold"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	SoldAt       string          `json:"sold_at"` // YYYY-MM-DD
}

// LocationDetailResponse salida de GET /api/locations/:id - inventario actual
// y últimas ventas de la tienda.
type LocationDetailResponse struct {
	ID        string             `json:"id"`
	Code      string             `json:"code"`
	Name      string             `json:"name"`
	Inventory []InventoryItemDTO `json:"inventory"`
	Sales     []LocationSaleDTO  `json:"sales"`
}
