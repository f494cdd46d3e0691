package entity

import "time"

// InventoryRecord es el stock actual de un producto en una tienda.
// A lo sumo una fila por (location, product). CurrentStock puede ser negativo:
// no hay piso porque el inventario inicial puede cargarse después de las ventas.
type InventoryRecord struct {
	ID           string
	LocationID   string
	ProductID    string
	CurrentStock int
	UpdatedAt    time.Time
}
