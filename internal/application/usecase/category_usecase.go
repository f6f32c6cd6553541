package usecase

import (
	"fmt"
	"strings"

	"github.com/jhoicas/catalogo-inventario/internal/application/dto"
	"github.com/jhoicas/catalogo-inventario/internal/domain"
	"github.com/jhoicas/catalogo-inventario/internal/domain/catalog"
	"github.com/jhoicas/catalogo-inventario/internal/domain/entity"
	"github.com/jhoicas/catalogo-inventario/internal/domain/repository"
	"github.com/jhoicas/catalogo-inventario/pkg/logger"
)

// CategoryUseCase casos de uso CRUD para categorías.
type CategoryUseCase struct {
	repo repository.CategoryRepository
	log  *logger.Logger
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository, log *logger.Logger) *CategoryUseCase {
	return &CategoryUseCase{repo: repo, log: log.Named("categories")}
}

// Create crea una categoría. Nombre duplicado (sin distinguir mayúsculas) ⇒ ErrConflict.
func (uc *CategoryUseCase) Create(in dto.CategoryRequest) (*dto.CategoryResponse, error) {
	name, err := requiredText("name", in.Name)
	if err != nil {
		return nil, invalid([]string{err.Error()})
	}
	// chequeo temprano para un mensaje claro; Save vuelve a verificar bajo lock
	exists, err := uc.repo.ExistsByName(name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: ya existe una categoría con el nombre %q", domain.ErrConflict, name)
	}
	saved, err := uc.repo.Save(&entity.Category{Name: name})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Int64("category_id", saved.ID).Str("name", saved.Name).Msg("categoría creada")
	return dto.ToCategoryResponse(saved), nil
}

// GetByID obtiene una categoría; ErrNotFound si no existe.
func (uc *CategoryUseCase) GetByID(id int64) (*dto.CategoryResponse, error) {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, fmt.Errorf("%w: categoría %d", domain.ErrNotFound, id)
	}
	return dto.ToCategoryResponse(c), nil
}

// Update renombra una categoría.
func (uc *CategoryUseCase) Update(id int64, in dto.CategoryRequest) (*dto.CategoryResponse, error) {
	name, err := requiredText("name", in.Name)
	if err != nil {
		return nil, invalid([]string{err.Error()})
	}
	updated, err := uc.repo.Update(&entity.Category{ID: id, Name: name})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Int64("category_id", updated.ID).Str("name", updated.Name).Msg("categoría actualizada")
	return dto.ToCategoryResponse(updated), nil
}

// Delete elimina una categoría; ErrNotFound si no existe.
// Los productos conservan su etiqueta: la categoría de un producto es texto libre.
func (uc *CategoryUseCase) Delete(id int64) error {
	removed, err := uc.repo.DeleteByID(id)
	if err != nil {
		return err
	}
	if !removed {
		return fmt.Errorf("%w: categoría %d", domain.ErrNotFound, id)
	}
	uc.log.Info().Int64("category_id", id).Msg("categoría eliminada")
	return nil
}

// List devuelve id y nombre de todas las categorías. Sin sortBy ordena por nombre.
func (uc *CategoryUseCase) List(sortBy, direction string) ([]dto.CategoryReadResponse, error) {
	all, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(sortBy) == "" {
		sortBy = string(catalog.CategoryByName)
	}
	sorted := catalog.SortCategories(all, sortBy, direction)
	out := make([]dto.CategoryReadResponse, 0, len(sorted))
	for _, c := range sorted {
		out = append(out, dto.CategoryReadResponse{ID: c.ID, Name: c.Name})
	}
	return out, nil
}
