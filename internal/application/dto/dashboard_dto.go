package dto

// DashboardSummaryDTO resumen del inventario para el dashboard (solo MANAGER).
// Los conteos por estado usan el status declarado por el usuario, no el
// derivado de quantity.
type DashboardSummaryDTO struct {
	TotalProducts   int `json:"total_products"`
	TotalQuantity   int `json:"total_quantity"`
	InStockCount    int `json:"in_stock_count"`
	LowStockCount   int `json:"low_stock_count"`
	OutOfStockCount int `json:"out_of_stock_count"`
}
