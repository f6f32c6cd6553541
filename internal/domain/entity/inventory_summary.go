package entity

import "github.com/shopspring/decimal"

// NoCategoryLabel agrupa los productos sin etiqueta de categoría.
const NoCategoryLabel = "NO-CATEGORY"

// CategoryInventorySummary resume el inventario de una categoría.
// Se recalcula en cada consulta; nunca se persiste.
type CategoryInventorySummary struct {
	Category                string
	TotalUnitsInStock       int
	TotalStockValue         decimal.Decimal // suma de UnitPrice * Stock
	AverageUnitPriceInStock decimal.Decimal // TotalStockValue / TotalUnitsInStock, 2 decimales
}
