package dto

// SalesByDateDTO un punto de la serie diaria de ventas.
type SalesByDateDTO struct {
	SoldAt       string `json:"sold_at"` // YYYY-MM-DD
	QuantitySold int    `json:"quantity_sold"`
}

// TopLocationDTO una entrada del ranking de tiendas.
type TopLocationDTO struct {
	LocationName string `json:"location_name"`
	TotalSold    int    `json:"total_sold"`
}

// TopProductDTO una entrada del ranking de productos.
type TopProductDTO struct {
	ProductName string `json:"product_name"`
	TotalSold   int    `json:"total_sold"`
}

// AnalyticsSummaryDTO salida de GET /api/analytics. Los nombres de campo son
// el contrato que ya consume el frontend (camelCase).
type AnalyticsSummaryDTO struct {
	TotalSales    int              `json:"totalSales"`
	TotalProducts int              `json:"totalProducts"`
	SalesByDate   []SalesByDateDTO `json:"salesByDate"`
	TopLocations  []TopLocationDTO `json:"topLocations"`
	TopProducts   []TopProductDTO  `json:"topProducts"`
}
