package repository

import "github.com/jhoicas/catalogo-inventario/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Save(product *entity.Product) (*entity.Product, error)
	Update(product *entity.Product) (*entity.Product, error) // domain.ErrNotFound si el id no existe
	DeleteByID(id int64) (bool, error)
	GetByID(id int64) (*entity.Product, error) // nil, nil si no existe
	List() ([]entity.Product, error)           // foto ordenada por id ascendente
	Count() (int, error)
}
