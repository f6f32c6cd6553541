package dto

import (
	"time"

	"github.com/jhoicas/catalogo-inventario/internal/domain/entity"
)

// CategoryRequest entrada para crear o renombrar una categoría.
type CategoryRequest struct {
	Name string `json:"name" validate:"required,max=120"`
}

// CategoryResponse salida completa de una categoría.
type CategoryResponse struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	CreationDate time.Time `json:"creationDate"`
	UpdateDate   time.Time `json:"updateDate"`
}

// CategoryReadResponse forma reducida usada en el listado (selectores del cliente).
type CategoryReadResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ToCategoryResponse mapea la entidad a su DTO.
func ToCategoryResponse(c *entity.Category) *CategoryResponse {
	return &CategoryResponse{
		ID:           c.ID,
		Name:         c.Name,
		CreationDate: c.CreationDate,
		UpdateDate:   c.UpdateDate,
	}
}
