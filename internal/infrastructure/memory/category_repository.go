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

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación en memoria de CategoryRepository.
//
// El lock de escritura cubre el mapa y el índice de nombres a la vez, de modo que
// "verificar unicidad y luego insertar/renombrar" es atómico frente a otras
// operaciones.
type CategoryRepo struct {
	mu    sync.RWMutex
	rows  map[int64]entity.Category
	names *catalog.NameIndex
	seq   catalog.Sequence
	opts  options
}

// NewCategoryRepository construye el repositorio vacío.
func NewCategoryRepository(opts ...Option) *CategoryRepo {
	return &CategoryRepo{
		rows:  make(map[int64]entity.Category),
		names: catalog.NewNameIndex(),
		opts:  buildOptions(opts),
	}
}

// Save asigna id y fechas y registra el nombre en el índice.
// La validación ocurre antes de tomar un id: un alta rechazada no deja huecos.
func (r *CategoryRepo) Save(category *entity.Category) (*entity.Category, error) {
	name := strings.TrimSpace(category.Name)
	if catalog.Normalize(name) == "" {
		return nil, fmt.Errorf("%w: el nombre de la categoría no puede estar vacío", domain.ErrInvalidInput)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.names.Owner(name); taken {
		return nil, fmt.Errorf("%w: ya existe una categoría con el nombre %q", domain.ErrConflict, name)
	}
	id := r.seq.Next()
	if err := r.names.Claim(name, id); err != nil {
		return nil, err
	}
	now := r.opts.now()
	stored := entity.Category{ID: id, Name: name, CreationDate: now, UpdateDate: now}
	r.rows[id] = stored
	return &stored, nil
}

// Update reemplaza el nombre conservando id y CreationDate; UpdateDate pasa a ahora.
func (r *CategoryRepo) Update(category *entity.Category) (*entity.Category, error) {
	name := strings.TrimSpace(category.Name)
	if catalog.Normalize(name) == "" {
		return nil, fmt.Errorf("%w: el nombre de la categoría no puede estar vacío", domain.ErrInvalidInput)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.rows[category.ID]
	if !ok {
		return nil, fmt.Errorf("%w: categoría %d", domain.ErrNotFound, category.ID)
	}
	if err := r.names.Rename(existing.Name, name, existing.ID); err != nil {
		return nil, err
	}
	stored := entity.Category{
		ID:           existing.ID,
		Name:         name,
		CreationDate: existing.CreationDate,
		UpdateDate:   r.opts.now(),
	}
	r.rows[stored.ID] = stored
	return &stored, nil
}

// DeleteByID elimina la categoría y libera su nombre. Un id inexistente devuelve false.
func (r *CategoryRepo) DeleteByID(id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed, ok := r.rows[id]
	if !ok {
		return false, nil
	}
	delete(r.rows, id)
	r.names.Release(removed.Name, id)
	return true, nil
}

// GetByID obtiene una copia de la categoría o nil si no existe.
func (r *CategoryRepo) GetByID(id int64) (*entity.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

// List devuelve todas las categorías por id ascendente.
func (r *CategoryRepo) List() ([]entity.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return sortedByID(r.rows), nil
}

// ExistsByName indica si el nombre (normalizado) ya está tomado.
func (r *CategoryRepo) ExistsByName(name string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.names.Owner(name)
	return ok, nil
}
