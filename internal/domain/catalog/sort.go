package catalog

import (
	"cmp"
	"strings"

	"github.com/jhoicas/catalogo-inventario/internal/domain/entity"
)

// Direction sentido del ordenamiento.
type Direction int

const (
	Asc Direction = iota
	Desc
)

// ParseDirection: solo el token "desc" (sin distinguir mayúsculas) es descendente.
func ParseDirection(s string) Direction {
	if strings.EqualFold(s, "desc") {
		return Desc
	}
	return Asc
}

func (d Direction) String() string {
	if d == Desc {
		return "desc"
	}
	return "asc"
}

// Comparator devuelve <0, 0 o >0 como cmp.Compare.
type Comparator[T any] func(a, b T) int

// Chain compone comparadores: el siguiente solo decide cuando el anterior empata.
func Chain[T any](cmps ...Comparator[T]) Comparator[T] {
	return func(a, b T) int {
		for _, c := range cmps {
			if r := c(a, b); r != 0 {
				return r
			}
		}
		return 0
	}
}

// Reverse invierte un comparador.
func Reverse[T any](c Comparator[T]) Comparator[T] {
	return func(a, b T) int { return c(b, a) }
}

// NullsLast deja los valores nulos al final sin importar el sentido de c;
// c solo se aplica cuando ambos valores son no nulos.
func NullsLast[T any](isNull func(T) bool, c Comparator[T]) Comparator[T] {
	return func(a, b T) int {
		an, bn := isNull(a), isNull(b)
		switch {
		case an && bn:
			return 0
		case an:
			return 1
		case bn:
			return -1
		}
		return c(a, b)
	}
}

func directed[T any](c Comparator[T], dir Direction) Comparator[T] {
	if dir == Desc {
		return Reverse(c)
	}
	return c
}

// foldedString compara cadenas sin distinguir mayúsculas; la cadena vacía es nula.
func foldedString[T any](get func(T) string, dir Direction) Comparator[T] {
	return NullsLast(
		func(v T) bool { return get(v) == "" },
		directed(func(a, b T) int { return strings.Compare(Fold(get(a)), Fold(get(b))) }, dir),
	)
}

// ── Producto ──────────────────────────────────────────────────────────────────

// ProductSortKey conjunto cerrado de campos por los que se puede ordenar un producto.
type ProductSortKey string

const (
	ProductByID             ProductSortKey = "id"
	ProductByName           ProductSortKey = "name"
	ProductByCategory       ProductSortKey = "category"
	ProductByUnitPrice      ProductSortKey = "unitPrice"
	ProductByStock          ProductSortKey = "stock"
	ProductByExpirationDate ProductSortKey = "expirationDate"
)

var productSortKeys = []ProductSortKey{
	ProductByID, ProductByName, ProductByCategory,
	ProductByUnitPrice, ProductByStock, ProductByExpirationDate,
}

// ParseProductSortKey resuelve el token pedido; vacío o desconocido → id.
func ParseProductSortKey(s string) ProductSortKey {
	s = strings.TrimSpace(s)
	for _, k := range productSortKeys {
		if strings.EqualFold(s, string(k)) {
			return k
		}
	}
	return ProductByID
}

// Comparator construye el comparador de un solo campo en el sentido dir.
func (k ProductSortKey) Comparator(dir Direction) Comparator[entity.Product] {
	switch k {
	case ProductByName:
		return foldedString(func(p entity.Product) string { return p.Name }, dir)
	case ProductByCategory:
		return foldedString(func(p entity.Product) string { return p.Category }, dir)
	case ProductByUnitPrice:
		return directed(func(a, b entity.Product) int { return a.UnitPrice.Cmp(b.UnitPrice) }, dir)
	case ProductByStock:
		return directed(func(a, b entity.Product) int { return cmp.Compare(a.Stock, b.Stock) }, dir)
	case ProductByExpirationDate:
		return NullsLast(
			func(p entity.Product) bool { return p.ExpirationDate == nil },
			directed(func(a, b entity.Product) int { return a.ExpirationDate.Compare(*b.ExpirationDate) }, dir),
		)
	default:
		return directed(productID, dir)
	}
}

func productID(a, b entity.Product) int { return cmp.Compare(a.ID, b.ID) }

// ProductOrder arma el orden total pedido por el cliente.
//
//   - Un campo: campo (en el sentido pedido) → id ascendente. Con "desc" solo se
//     invierte el campo; los empates siguen ordenados por id ascendente.
//   - Dos campos: primario → secundario → id, toda la cadena en el sentido pedido
//     (con "desc" también el id queda descendente).
//
// El secundario se ignora si está vacío o coincide con el primario. Los nulos
// quedan siempre al final.
func ProductOrder(sortBy, thenBy, direction string) Comparator[entity.Product] {
	dir := ParseDirection(direction)
	primary := ParseProductSortKey(sortBy)
	if strings.TrimSpace(thenBy) == "" || strings.EqualFold(strings.TrimSpace(thenBy), strings.TrimSpace(sortBy)) {
		return Chain(primary.Comparator(dir), productID)
	}
	secondary := ParseProductSortKey(thenBy)
	return Chain(primary.Comparator(dir), secondary.Comparator(dir), ProductByID.Comparator(dir))
}

// ── Categoría ─────────────────────────────────────────────────────────────────

// CategorySortKey campos por los que se puede ordenar una categoría.
type CategorySortKey string

const (
	CategoryByID   CategorySortKey = "id"
	CategoryByName CategorySortKey = "name"
)

// ParseCategorySortKey resuelve el token pedido; desconocido → id.
func ParseCategorySortKey(s string) CategorySortKey {
	if strings.EqualFold(strings.TrimSpace(s), string(CategoryByName)) {
		return CategoryByName
	}
	return CategoryByID
}

func categoryID(a, b entity.Category) int { return cmp.Compare(a.ID, b.ID) }

// CategoryOrder: campo pedido → id ascendente.
func CategoryOrder(sortBy, direction string) Comparator[entity.Category] {
	dir := ParseDirection(direction)
	if ParseCategorySortKey(sortBy) == CategoryByName {
		return Chain(foldedString(func(c entity.Category) string { return c.Name }, dir), categoryID)
	}
	return Chain(directed(categoryID, dir), categoryID)
}
