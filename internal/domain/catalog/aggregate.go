package catalog

import (
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/catalogo-inventario/internal/domain/entity"
)

type categoryAccumulator struct {
	units int
	value decimal.Decimal
}

// SummarizeByCategory agrupa los productos por etiqueta de categoría en una sola pasada.
//
// Las etiquetas vacías se agrupan bajo entity.NoCategoryLabel. El promedio es
// valor/unidades redondeado a 2 decimales (empates lejos de cero) o 0 si no hay
// unidades. El resultado queda ordenado por etiqueta sin distinguir mayúsculas.
func SummarizeByCategory(snapshot []entity.Product) []entity.CategoryInventorySummary {
	groups := make(map[string]*categoryAccumulator)
	for _, p := range snapshot {
		label := p.Category
		if strings.TrimSpace(label) == "" {
			label = entity.NoCategoryLabel
		}
		acc, ok := groups[label]
		if !ok {
			acc = &categoryAccumulator{}
			groups[label] = acc
		}
		acc.units += p.Stock
		acc.value = acc.value.Add(p.UnitPrice.Mul(decimal.NewFromInt(int64(p.Stock))))
	}

	out := make([]entity.CategoryInventorySummary, 0, len(groups))
	for label, acc := range groups {
		avg := decimal.Zero
		if acc.units > 0 {
			avg = acc.value.Div(decimal.NewFromInt(int64(acc.units))).Round(2)
		}
		out = append(out, entity.CategoryInventorySummary{
			Category:                label,
			TotalUnitsInStock:       acc.units,
			TotalStockValue:         acc.value,
			AverageUnitPriceInStock: avg,
		})
	}

	slices.SortFunc(out, func(a, b entity.CategoryInventorySummary) int {
		if c := strings.Compare(Fold(a.Category), Fold(b.Category)); c != 0 {
			return c
		}
		return strings.Compare(a.Category, b.Category)
	})
	return out
}
