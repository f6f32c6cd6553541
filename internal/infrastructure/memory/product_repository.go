package memory

import (
	"fmt"
	"strings"
	"sync"

	"github.com/jhoicas/catalogo-inventario/internal/domain"
	"github.com/jhoicas/catalogo-inventario/internal/domain/catalog"
	"github.com/jhoicas/catalogo-inventario/internal/domain/entity"
	"github.com/jhoicas/catalogo-inventario/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación en memoria de ProductRepository.
// Los productos entran y salen por copia: nadie fuera del repositorio puede
// modificar un registro guardado a través de un puntero devuelto.
type ProductRepo struct {
	mu   sync.RWMutex
	rows map[int64]entity.Product
	seq  catalog.Sequence
	opts options
}

// NewProductRepository construye el repositorio vacío.
func NewProductRepository(opts ...Option) *ProductRepo {
	return &ProductRepo{
		rows: make(map[int64]entity.Product),
		opts: buildOptions(opts),
	}
}

// Save asigna id, CreationDate y UpdateDate y guarda el producto.
func (r *ProductRepo) Save(product *entity.Product) (*entity.Product, error) {
	if strings.TrimSpace(product.Name) == "" {
		return nil, fmt.Errorf("%w: el nombre del producto no puede estar vacío", domain.ErrInvalidInput)
	}
	stored := cloneProduct(*product)

	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.opts.now()
	stored.ID = r.seq.Next()
	stored.CreationDate = now
	stored.UpdateDate = now
	r.rows[stored.ID] = stored

	out := cloneProduct(stored)
	return &out, nil
}

// Update reemplaza todos los campos salvo id y CreationDate; UpdateDate pasa a ahora.
func (r *ProductRepo) Update(product *entity.Product) (*entity.Product, error) {
	if strings.TrimSpace(product.Name) == "" {
		return nil, fmt.Errorf("%w: el nombre del producto no puede estar vacío", domain.ErrInvalidInput)
	}
	stored := cloneProduct(*product)

	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.rows[product.ID]
	if !ok {
		return nil, fmt.Errorf("%w: producto %d", domain.ErrNotFound, product.ID)
	}
	stored.CreationDate = existing.CreationDate
	stored.UpdateDate = r.opts.now()
	r.rows[stored.ID] = stored

	out := cloneProduct(stored)
	return &out, nil
}

// DeleteByID elimina el producto. Un id inexistente devuelve false.
func (r *ProductRepo) DeleteByID(id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.rows[id]; !ok {
		return false, nil
	}
	delete(r.rows, id)
	return true, nil
}

// GetByID obtiene una copia del producto o nil si no existe.
func (r *ProductRepo) GetByID(id int64) (*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	out := cloneProduct(p)
	return &out, nil
}

// List devuelve una foto de todos los productos por id ascendente.
func (r *ProductRepo) List() ([]entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := sortedByID(r.rows)
	for i := range out {
		out[i] = cloneProduct(out[i])
	}
	return out, nil
}

// Count devuelve la cantidad de productos vivos.
func (r *ProductRepo) Count() (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.rows), nil
}

func cloneProduct(p entity.Product) entity.Product {
	if p.ExpirationDate != nil {
		d := *p.ExpirationDate
		p.ExpirationDate = &d
	}
	return p
}
