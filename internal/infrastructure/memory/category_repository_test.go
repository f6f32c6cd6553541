package memory_test

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalogo-inventario/internal/domain"
	"github.com/jhoicas/catalogo-inventario/internal/domain/entity"
	"github.com/jhoicas/catalogo-inventario/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// fakeClock avanza un minuto en cada lectura.
type fakeClock struct {
	mu  sync.Mutex
	cur time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{cur: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cur = c.cur.Add(time.Minute)
	return c.cur
}

// ──────────────────────────────────────────────────────────────────────────────
// Alta
// ──────────────────────────────────────────────────────────────────────────────

func TestCategoryRepo_SaveAsignaIDYFechas(t *testing.T) {
	clock := newFakeClock()
	repo := memory.NewCategoryRepository(memory.WithClock(clock.Now))

	c, err := repo.Save(&entity.Category{Name: "  Certificación Cloud "})
	require.NoError(t, err)

	assert.Equal(t, int64(1), c.ID)
	assert.Equal(t, "Certificación Cloud", c.Name, "el nombre se guarda recortado")
	assert.False(t, c.CreationDate.IsZero())
	assert.Equal(t, c.CreationDate, c.UpdateDate)

	c2, err := repo.Save(&entity.Category{Name: "DevOps"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), c2.ID)
}

func TestCategoryRepo_SaveDuplicadoNoConsumeID(t *testing.T) {
	repo := memory.NewCategoryRepository()

	_, err := repo.Save(&entity.Category{Name: "Cloud"})
	require.NoError(t, err)

	_, err = repo.Save(&entity.Category{Name: "CLOUD"})
	assert.ErrorIs(t, err, domain.ErrConflict)

	_, err = repo.Save(&entity.Category{Name: "   "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	next, err := repo.Save(&entity.Category{Name: "Networking"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), next.ID, "los rechazos no dejan huecos en la secuencia")
}

func TestCategoryRepo_SaveConcurrenteMismoNombre(t *testing.T) {
	repo := memory.NewCategoryRepository()

	const workers = 32
	var ok, conflicts atomic.Int32
	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := repo.Save(&entity.Category{Name: "Agile"}); err != nil {
				assert.ErrorIs(t, err, domain.ErrConflict)
				conflicts.Add(1)
				return
			}
			ok.Add(1)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), ok.Load(), "solo un alta puede tener éxito")
	assert.Equal(t, int32(workers-1), conflicts.Load())

	all, err := repo.List()
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

// ──────────────────────────────────────────────────────────────────────────────
// Actualización y baja
// ──────────────────────────────────────────────────────────────────────────────

func TestCategoryRepo_UpdateConservaCreationDate(t *testing.T) {
	clock := newFakeClock()
	repo := memory.NewCategoryRepository(memory.WithClock(clock.Now))

	c, err := repo.Save(&entity.Category{Name: "Cloud"})
	require.NoError(t, err)

	upd, err := repo.Update(&entity.Category{ID: c.ID, Name: "Cloud Computing"})
	require.NoError(t, err)
	assert.Equal(t, c.CreationDate, upd.CreationDate)
	assert.True(t, upd.UpdateDate.After(c.UpdateDate))

	exists, _ := repo.ExistsByName("cloud")
	assert.False(t, exists, "el nombre anterior queda libre")
	exists, _ = repo.ExistsByName("CLOUD COMPUTING")
	assert.True(t, exists)
}

func TestCategoryRepo_UpdateMismoNombreConOtroCase(t *testing.T) {
	repo := memory.NewCategoryRepository()
	c, err := repo.Save(&entity.Category{Name: "devops"})
	require.NoError(t, err)

	upd, err := repo.Update(&entity.Category{ID: c.ID, Name: "DevOps"})
	require.NoError(t, err)
	assert.Equal(t, "DevOps", upd.Name)
}

func TestCategoryRepo_UpdateConflictoYNoEncontrado(t *testing.T) {
	repo := memory.NewCategoryRepository()
	a, err := repo.Save(&entity.Category{Name: "Cloud"})
	require.NoError(t, err)
	_, err = repo.Save(&entity.Category{Name: "DevOps"})
	require.NoError(t, err)

	_, err = repo.Update(&entity.Category{ID: a.ID, Name: "devops"})
	assert.ErrorIs(t, err, domain.ErrConflict)

	got, err := repo.GetByID(a.ID)
	require.NoError(t, err)
	assert.Equal(t, "Cloud", got.Name, "un rename fallido no toca el registro")

	_, err = repo.Update(&entity.Category{ID: 99, Name: "Otra"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCategoryRepo_DeleteLiberaNombre(t *testing.T) {
	repo := memory.NewCategoryRepository()
	c, err := repo.Save(&entity.Category{Name: "Cloud"})
	require.NoError(t, err)

	removed, err := repo.DeleteByID(c.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = repo.DeleteByID(c.ID)
	require.NoError(t, err)
	assert.False(t, removed)

	got, err := repo.GetByID(c.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	again, err := repo.Save(&entity.Category{Name: "cloud"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), again.ID, "los ids no se reutilizan")
}

func TestCategoryRepo_ListOrdenadoPorID(t *testing.T) {
	repo := memory.NewCategoryRepository()
	for _, n := range []string{"C", "A", "B"} {
		_, err := repo.Save(&entity.Category{Name: n})
		require.NoError(t, err)
	}
	_, err := repo.DeleteByID(2)
	require.NoError(t, err)

	all, err := repo.List()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, int64(1), all[0].ID)
	assert.Equal(t, int64(3), all[1].ID)
}
