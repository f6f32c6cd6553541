package usecase_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalogo-inventario/internal/application/dto"
	"github.com/jhoicas/catalogo-inventario/internal/application/usecase"
	"github.com/jhoicas/catalogo-inventario/internal/domain"
	"github.com/jhoicas/catalogo-inventario/internal/domain/entity"
	"github.com/jhoicas/catalogo-inventario/internal/infrastructure/memory"
	"github.com/jhoicas/catalogo-inventario/pkg/logger"
)

func newCategoryUseCase() *usecase.CategoryUseCase {
	return usecase.NewCategoryUseCase(memory.NewCategoryRepository(), logger.Nop())
}

func TestCategoryUseCase_CRUD(t *testing.T) {
	uc := newCategoryUseCase()

	created, err := uc.Create(dto.CategoryRequest{Name: " Certificación Cloud "})
	require.NoError(t, err)
	assert.Equal(t, "Certificación Cloud", created.Name)

	got, err := uc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	updated, err := uc.Update(created.ID, dto.CategoryRequest{Name: "Cloud"})
	require.NoError(t, err)
	assert.Equal(t, "Cloud", updated.Name)
	assert.Equal(t, created.CreationDate, updated.CreationDate)

	require.NoError(t, uc.Delete(created.ID))
	_, err = uc.GetByID(created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, uc.Delete(created.ID), domain.ErrNotFound)
}

func TestCategoryUseCase_Validacion(t *testing.T) {
	uc := newCategoryUseCase()

	_, err := uc.Create(dto.CategoryRequest{Name: "   "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(dto.CategoryRequest{Name: strings.Repeat("ñ", 121)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(dto.CategoryRequest{Name: strings.Repeat("ñ", 120)})
	assert.NoError(t, err, "120 caracteres es el máximo permitido")
}

func TestCategoryUseCase_Duplicado(t *testing.T) {
	uc := newCategoryUseCase()
	_, err := uc.Create(dto.CategoryRequest{Name: "DevOps"})
	require.NoError(t, err)

	_, err = uc.Create(dto.CategoryRequest{Name: "devops"})
	assert.ErrorIs(t, err, domain.ErrConflict)

	other, err := uc.Create(dto.CategoryRequest{Name: "Cloud"})
	require.NoError(t, err)
	_, err = uc.Update(other.ID, dto.CategoryRequest{Name: "DEVOPS"})
	assert.ErrorIs(t, err, domain.ErrConflict)

	_, err = uc.Update(999, dto.CategoryRequest{Name: "Nueva"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCategoryUseCase_ListOrdenaPorNombrePorDefecto(t *testing.T) {
	uc := newCategoryUseCase()
	for _, n := range []string{"networking", "Agile", "cloud"} {
		_, err := uc.Create(dto.CategoryRequest{Name: n})
		require.NoError(t, err)
	}

	names := func(list []dto.CategoryReadResponse) []string {
		out := make([]string, 0, len(list))
		for _, c := range list {
			out = append(out, c.Name)
		}
		return out
	}

	list, err := uc.List("", "")
	require.NoError(t, err)
	assert.Equal(t, []string{"Agile", "cloud", "networking"}, names(list))

	list, err = uc.List("name", "DESC")
	require.NoError(t, err)
	assert.Equal(t, []string{"networking", "cloud", "Agile"}, names(list))

	list, err = uc.List("id", "asc")
	require.NoError(t, err)
	assert.Equal(t, []string{"networking", "Agile", "cloud"}, names(list))
}

func TestCategoryUseCase_CreateConsultaNombreAntesDeGuardar(t *testing.T) {
	repo := new(CategoryRepoMock)
	uc := usecase.NewCategoryUseCase(repo, logger.Nop())

	repo.On("ExistsByName", "Cloud").Return(true, nil).Once()

	_, err := uc.Create(dto.CategoryRequest{Name: "  Cloud "})
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Contains(t, err.Error(), `"Cloud"`)
	repo.AssertExpectations(t)
	repo.AssertNotCalled(t, "Save", mock.Anything)
}

func TestCategoryUseCase_CreatePropagaErrorDelRepositorio(t *testing.T) {
	repo := new(CategoryRepoMock)
	uc := usecase.NewCategoryUseCase(repo, logger.Nop())
	boom := errors.New("store no disponible")

	repo.On("ExistsByName", "Cloud").Return(false, boom).Once()

	_, err := uc.Create(dto.CategoryRequest{Name: "Cloud"})
	assert.ErrorIs(t, err, boom)
	repo.AssertNotCalled(t, "Save", mock.Anything)
}

func TestCategoryUseCase_CreateNombreLibreGuarda(t *testing.T) {
	repo := new(CategoryRepoMock)
	uc := usecase.NewCategoryUseCase(repo, logger.Nop())

	repo.On("ExistsByName", "Cloud").Return(false, nil).Once()
	repo.On("Save", mock.MatchedBy(func(c *entity.Category) bool { return c.Name == "Cloud" })).
		Return(&entity.Category{ID: 1, Name: "Cloud"}, nil).Once()

	out, err := uc.Create(dto.CategoryRequest{Name: "Cloud"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), out.ID)
	repo.AssertExpectations(t)
}
