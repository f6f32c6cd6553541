package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/catalogo-inventario/internal/domain/catalog"
	"github.com/jhoicas/catalogo-inventario/internal/domain/entity"
)

// ProductRequest entrada para crear o reemplazar un producto.
// UnitPrice > 0 y la fecha de expiración se validan en el caso de uso.
type ProductRequest struct {
	Name           string          `json:"name" validate:"required,max=120"`
	Category       string          `json:"category" validate:"required,max=120"`
	UnitPrice      decimal.Decimal `json:"unitPrice" swaggertype:"number" example:"150.00"`
	ExpirationDate *LocalDate      `json:"expirationDate,omitempty" swaggertype:"string" format:"date" example:"2026-12-31"`
	Stock          int             `json:"stock" validate:"min=0"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID             int64           `json:"id"`
	Name           string          `json:"name"`
	Category       string          `json:"category"`
	UnitPrice      decimal.Decimal `json:"unitPrice" swaggertype:"number"`
	ExpirationDate *LocalDate      `json:"expirationDate" swaggertype:"string" format:"date"`
	Stock          int             `json:"stock"`
	InStock        bool            `json:"inStock"`
	CreationDate   time.Time       `json:"creationDate"`
	UpdateDate     time.Time       `json:"updateDate"`
}

// ProductSearchRequest parámetros de búsqueda (query string).
type ProductSearchRequest struct {
	Page         int    `query:"page"`
	Size         int    `query:"size"`
	Name         string `query:"name"`
	Category     string `query:"category"`
	Availability string `query:"availability"`
	SortBy       string `query:"sortBy"`
	ThenBy       string `query:"thenBy"`
	Direction    string `query:"direction"`
}

// NewProductSearchRequest valores por defecto: primera página de tamaño catalog.DefaultPageSize.
func NewProductSearchRequest() ProductSearchRequest {
	return ProductSearchRequest{Page: 1, Size: catalog.DefaultPageSize}
}

// ToQuery convierte la petición en la consulta del dominio.
func (r ProductSearchRequest) ToQuery() catalog.ProductQuery {
	return catalog.ProductQuery{
		Name:         r.Name,
		Category:     r.Category,
		Availability: r.Availability,
		Page:         r.Page,
		Size:         r.Size,
		SortBy:       r.SortBy,
		ThenBy:       r.ThenBy,
		Direction:    r.Direction,
	}
}

// ProductPageResponse página de productos.
type ProductPageResponse struct {
	Content       []ProductResponse `json:"content"`
	Page          int               `json:"page"`
	Size          int               `json:"size"`
	TotalElements int               `json:"totalElements"`
	TotalPages    int               `json:"totalPages"`
}

// CategoryInventorySummaryResponse métricas de inventario de una categoría.
type CategoryInventorySummaryResponse struct {
	Category                string          `json:"category"`
	TotalUnitsInStock       int             `json:"totalUnitsInStock"`
	TotalStockValue         decimal.Decimal `json:"totalStockValue" swaggertype:"number"`
	AverageUnitPriceInStock decimal.Decimal `json:"averageUnitPriceInStock" swaggertype:"number"`
}

// ToProductResponse mapea la entidad a su DTO.
func ToProductResponse(p *entity.Product) *ProductResponse {
	return &ProductResponse{
		ID:             p.ID,
		Name:           p.Name,
		Category:       p.Category,
		UnitPrice:      p.UnitPrice,
		ExpirationDate: localDatePtr(p.ExpirationDate),
		Stock:          p.Stock,
		InStock:        p.InStock(),
		CreationDate:   p.CreationDate,
		UpdateDate:     p.UpdateDate,
	}
}

// ToProductPageResponse mapea una página del dominio.
func ToProductPageResponse(pg catalog.Page[entity.Product]) *ProductPageResponse {
	content := make([]ProductResponse, 0, len(pg.Content))
	for i := range pg.Content {
		content = append(content, *ToProductResponse(&pg.Content[i]))
	}
	totalPages := 0
	if pg.Size > 0 {
		totalPages = pg.TotalElements / pg.Size
		if pg.TotalElements%pg.Size != 0 {
			totalPages++
		}
	}
	return &ProductPageResponse{
		Content:       content,
		Page:          pg.Page,
		Size:          pg.Size,
		TotalElements: pg.TotalElements,
		TotalPages:    totalPages,
	}
}

// ToSummaryResponses mapea las métricas por categoría.
func ToSummaryResponses(in []entity.CategoryInventorySummary) []CategoryInventorySummaryResponse {
	out := make([]CategoryInventorySummaryResponse, 0, len(in))
	for _, s := range in {
		out = append(out, CategoryInventorySummaryResponse{
			Category:                s.Category,
			TotalUnitsInStock:       s.TotalUnitsInStock,
			TotalStockValue:         s.TotalStockValue,
			AverageUnitPriceInStock: s.AverageUnitPriceInStock,
		})
	}
	return out
}
