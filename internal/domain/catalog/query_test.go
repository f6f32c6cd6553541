package catalog_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalogo-inventario/internal/domain"
	"github.com/jhoicas/catalogo-inventario/internal/domain/catalog"
	"github.com/jhoicas/catalogo-inventario/internal/domain/entity"
)

func thirtyProducts() []entity.Product {
	ps := make([]entity.Product, 0, 30)
	// orden de inserción invertido: la paginación no depende del orden de entrada
	for i := int64(30); i >= 1; i-- {
		ps = append(ps, product(i, fmt.Sprintf("Producto %02d", i), "General", "1.00", int(i%3)))
	}
	return ps
}

func TestParseAvailability(t *testing.T) {
	assert.Equal(t, catalog.AvailabilityIn, catalog.ParseAvailability("in"))
	assert.Equal(t, catalog.AvailabilityIn, catalog.ParseAvailability(" IN "))
	assert.Equal(t, catalog.AvailabilityOut, catalog.ParseAvailability("out"))
	assert.Equal(t, catalog.AvailabilityAll, catalog.ParseAvailability("all"))
	assert.Equal(t, catalog.AvailabilityAll, catalog.ParseAvailability(""))
	assert.Equal(t, catalog.AvailabilityAll, catalog.ParseAvailability("xyz"))
}

func TestSearchProducts_Paginacion(t *testing.T) {
	snapshot := thirtyProducts()
	search := func(page int) catalog.Page[entity.Product] {
		res, err := catalog.SearchProducts(snapshot, catalog.ProductQuery{Page: page, Size: 10, SortBy: "id"})
		require.NoError(t, err)
		return res
	}

	p1 := search(1)
	assert.Equal(t, []int64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, ids(p1.Content))
	assert.Equal(t, 30, p1.TotalElements)
	assert.Equal(t, 1, p1.Page)
	assert.Equal(t, 10, p1.Size)

	p2 := search(2)
	assert.Equal(t, []int64{11, 12, 13, 14, 15, 16, 17, 18, 19, 20}, ids(p2.Content))

	p4 := search(4)
	assert.Empty(t, p4.Content)
	assert.NotNil(t, p4.Content, "una página vacía se serializa como [] y no como null")
	assert.Equal(t, 30, p4.TotalElements)
}

func TestSearchProducts_UltimaPaginaParcial(t *testing.T) {
	res, err := catalog.SearchProducts(thirtyProducts(), catalog.ProductQuery{Page: 3, Size: 12})
	require.NoError(t, err)
	assert.Equal(t, []int64{25, 26, 27, 28, 29, 30}, ids(res.Content))
}

func TestSearchProducts_PaginaInvalida(t *testing.T) {
	for _, page := range []int{0, -1} {
		_, err := catalog.SearchProducts(thirtyProducts(), catalog.ProductQuery{Page: page, Size: 10})
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "page=%d", page)
	}
}

func TestSearchProducts_SizeMenorAUnoUsaDiez(t *testing.T) {
	for _, size := range []int{0, -5} {
		res, err := catalog.SearchProducts(thirtyProducts(), catalog.ProductQuery{Page: 1, Size: size})
		require.NoError(t, err)
		assert.Equal(t, catalog.DefaultPageSize, res.Size)
		assert.Len(t, res.Content, 10)
	}
}

func TestSearchProducts_Disponibilidad(t *testing.T) {
	snapshot := thirtyProducts()
	search := func(a string) catalog.Page[entity.Product] {
		res, err := catalog.SearchProducts(snapshot, catalog.ProductQuery{Page: 1, Size: 100, Availability: a})
		require.NoError(t, err)
		return res
	}

	in := search("in")
	for _, p := range in.Content {
		assert.Greater(t, p.Stock, 0)
	}
	out := search("out")
	for _, p := range out.Content {
		assert.LessOrEqual(t, p.Stock, 0)
	}
	assert.Equal(t, 20, in.TotalElements)
	assert.Equal(t, 10, out.TotalElements)

	all := search("all").TotalElements
	assert.Equal(t, 30, all)
	assert.Equal(t, all, search("").TotalElements)
	assert.Equal(t, all, search("xyz").TotalElements)
}

func TestSearchProducts_FiltrosNombreYCategoria(t *testing.T) {
	snapshot := []entity.Product{
		product(1, "AWS Cloud Practitioner", "Certificación Cloud", "100", 0),
		product(2, "Google Cloud Engineer", "certificación cloud", "125", 15),
		product(3, "Kubernetes CKA", "Certificación DevOps", "395", 3),
		product(4, "Cloud sin categoría", "", "10", 1),
	}

	res, err := catalog.SearchProducts(snapshot, catalog.ProductQuery{Page: 1, Size: 10, Name: "  CLOUD "})
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 4}, ids(res.Content))

	res, err = catalog.SearchProducts(snapshot, catalog.ProductQuery{Page: 1, Size: 10, Category: " CERTIFICACIÓN CLOUD"})
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2}, ids(res.Content))

	res, err = catalog.SearchProducts(snapshot, catalog.ProductQuery{Page: 1, Size: 10, Category: "Certificación"})
	require.NoError(t, err)
	assert.Empty(t, res.Content, "la categoría se compara por igualdad, no por prefijo")

	res, err = catalog.SearchProducts(snapshot, catalog.ProductQuery{
		Page: 1, Size: 10, Name: "cloud", Availability: "in", SortBy: "unitPrice", Direction: "desc",
	})
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 4}, ids(res.Content))
	assert.Equal(t, 2, res.TotalElements)
}

func TestSearchProducts_NoModificaLaFoto(t *testing.T) {
	snapshot := thirtyProducts()
	before := ids(snapshot)

	_, err := catalog.SearchProducts(snapshot, catalog.ProductQuery{Page: 1, Size: 5, SortBy: "name", Direction: "desc"})
	require.NoError(t, err)
	assert.Equal(t, before, ids(snapshot))
}

func TestPaginate_Generico(t *testing.T) {
	res, err := catalog.Paginate([]string{"a", "b", "c"}, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"c"}, res.Content)
	assert.Equal(t, 3, res.TotalElements)

	_, err = catalog.Paginate([]string{"a"}, 0, 2)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSearchProducts_PaginaEnormeNoDesborda(t *testing.T) {
	snapshot := thirtyProducts()
	cases := []struct{ page, size int }{
		{1<<62 + 1, 2},
		{math.MaxInt, 1},
		{math.MaxInt, math.MaxInt},
		{2, math.MaxInt},
	}
	for _, c := range cases {
		var pg catalog.Page[entity.Product]
		var err error
		require.NotPanics(t, func() {
			pg, err = catalog.SearchProducts(snapshot, catalog.ProductQuery{Page: c.page, Size: c.size})
		}, "page=%d size=%d", c.page, c.size)
		require.NoError(t, err)
		assert.Empty(t, pg.Content, "page=%d size=%d", c.page, c.size)
		assert.Equal(t, 30, pg.TotalElements)
	}

	pg, err := catalog.SearchProducts(snapshot, catalog.ProductQuery{Page: 1, Size: math.MaxInt})
	require.NoError(t, err)
	assert.Len(t, pg.Content, 30, "una página gigante devuelve todo")
}

func TestPaginate_ListaVacia(t *testing.T) {
	res, err := catalog.Paginate([]string{}, 1, 10)
	require.NoError(t, err)
	assert.NotNil(t, res.Content)
	assert.Empty(t, res.Content)
}
