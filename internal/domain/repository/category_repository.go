package repository

import "github.com/jhoicas/catalogo-inventario/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para Category (DIP).
//
// Save y Update fallan con domain.ErrInvalidInput si el nombre queda vacío y con
// domain.ErrConflict si el nombre normalizado ya pertenece a otra categoría.
// Update falla con domain.ErrNotFound si el id no existe.
type CategoryRepository interface {
	Save(category *entity.Category) (*entity.Category, error)
	Update(category *entity.Category) (*entity.Category, error)
	DeleteByID(id int64) (bool, error)
	GetByID(id int64) (*entity.Category, error) // nil, nil si no existe
	List() ([]entity.Category, error)           // foto ordenada por id ascendente
	ExistsByName(name string) (bool, error)
}
