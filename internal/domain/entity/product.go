package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo.
// Category es una etiqueta libre (no es FK a Category); se compara sin distinguir mayúsculas.
type Product struct {
	ID             int64
	Name           string
	Category       string
	UnitPrice      decimal.Decimal // > 0
	ExpirationDate *time.Time      // solo fecha; nil si el producto no vence
	Stock          int             // >= 0
	CreationDate   time.Time
	UpdateDate     time.Time
}

// InStock indica si hay unidades disponibles.
func (p Product) InStock() bool { return p.Stock > 0 }
