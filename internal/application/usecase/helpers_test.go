package usecase_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/jhoicas/catalogo-inventario/internal/domain/entity"
	"github.com/jhoicas/catalogo-inventario/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Mocks
// ──────────────────────────────────────────────────────────────────────────────

type ReportGeneratorMock struct{ mock.Mock }

func (m *ReportGeneratorMock) GenerateMetricsPDF(ctx context.Context, summaries []entity.CategoryInventorySummary, generatedAt time.Time) ([]byte, error) {
	args := m.Called(ctx, summaries, generatedAt)
	b, _ := args.Get(0).([]byte)
	return b, args.Error(1)
}

var _ repository.CategoryRepository = (*CategoryRepoMock)(nil)

type CategoryRepoMock struct{ mock.Mock }

func (m *CategoryRepoMock) Save(c *entity.Category) (*entity.Category, error) {
	args := m.Called(c)
	out, _ := args.Get(0).(*entity.Category)
	return out, args.Error(1)
}

func (m *CategoryRepoMock) Update(c *entity.Category) (*entity.Category, error) {
	args := m.Called(c)
	out, _ := args.Get(0).(*entity.Category)
	return out, args.Error(1)
}

func (m *CategoryRepoMock) DeleteByID(id int64) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

func (m *CategoryRepoMock) GetByID(id int64) (*entity.Category, error) {
	args := m.Called(id)
	out, _ := args.Get(0).(*entity.Category)
	return out, args.Error(1)
}

func (m *CategoryRepoMock) List() ([]entity.Category, error) {
	args := m.Called()
	out, _ := args.Get(0).([]entity.Category)
	return out, args.Error(1)
}

func (m *CategoryRepoMock) ExistsByName(name string) (bool, error) {
	args := m.Called(name)
	return args.Bool(0), args.Error(1)
}

// fixedNow reloj fijo: 15 de marzo de 2025, 10:30 UTC.
func fixedNow() time.Time {
	return time.Date(2025, 3, 15, 10, 30, 0, 0, time.UTC)
}
