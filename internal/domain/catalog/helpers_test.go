package catalog_test

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/catalogo-inventario/internal/domain/entity"
)

func product(id int64, name, category, price string, stock int) entity.Product {
	return entity.Product{
		ID:        id,
		Name:      name,
		Category:  category,
		UnitPrice: decimal.RequireFromString(price),
		Stock:     stock,
	}
}

func withExpiration(p entity.Product, y int, m time.Month, d int) entity.Product {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	p.ExpirationDate = &t
	return p
}

func ids(ps []entity.Product) []int64 {
	out := make([]int64, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.ID)
	}
	return out
}
