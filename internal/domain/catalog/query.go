package catalog

import (
	"fmt"
	"slices"
	"strings"

	"github.com/jhoicas/catalogo-inventario/internal/domain"
	"github.com/jhoicas/catalogo-inventario/internal/domain/entity"
)

// DefaultPageSize tamaño de página cuando se pide uno menor a 1.
const DefaultPageSize = 10

// Availability filtro derivado del stock.
type Availability string

const (
	AvailabilityAll Availability = "all"
	AvailabilityIn  Availability = "in"  // stock > 0
	AvailabilityOut Availability = "out" // stock <= 0
)

// ParseAvailability: "in" y "out" (sin distinguir mayúsculas); cualquier otro valor es "all".
func ParseAvailability(s string) Availability {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(AvailabilityIn):
		return AvailabilityIn
	case string(AvailabilityOut):
		return AvailabilityOut
	default:
		return AvailabilityAll
	}
}

// Keep indica si p pasa el filtro.
func (a Availability) Keep(p entity.Product) bool {
	switch a {
	case AvailabilityIn:
		return p.Stock > 0
	case AvailabilityOut:
		return p.Stock <= 0
	default:
		return true
	}
}

// ProductQuery parámetros de búsqueda de productos.
type ProductQuery struct {
	Name         string // contiene, sin distinguir mayúsculas
	Category     string // igual, sin distinguir mayúsculas
	Availability string // in | out | all
	Page         int    // base 1
	Size         int
	SortBy       string
	ThenBy       string // segundo campo opcional
	Direction    string
}

// Page resultado paginado. TotalElements cuenta los registros filtrados antes de paginar.
type Page[T any] struct {
	Content       []T
	Page          int
	Size          int
	TotalElements int
}

// PageBounds valida page y normaliza size (< 1 → DefaultPageSize).
func PageBounds(page, size int) (int, int, error) {
	if page < 1 {
		return 0, 0, fmt.Errorf("%w: page debe ser >= 1", domain.ErrInvalidInput)
	}
	if size < 1 {
		size = DefaultPageSize
	}
	return page, size, nil
}

// Paginate recorta items a la página pedida. items ya debe venir ordenado.
func Paginate[T any](items []T, page, size int) (Page[T], error) {
	page, size, err := PageBounds(page, size)
	if err != nil {
		return Page[T]{}, err
	}
	total := len(items)
	content := []T{}
	// se compara en páginas antes de multiplicar: (page-1)*size puede desbordar int
	if total > 0 && page-1 <= (total-1)/size {
		from := (page - 1) * size
		to := from + min(size, total-from)
		content = slices.Clone(items[from:to])
	}
	return Page[T]{Content: content, Page: page, Size: size, TotalElements: total}, nil
}

// FilterProducts devuelve una nueva lista con los productos que cumplen q.
// No modifica snapshot.
func FilterProducts(snapshot []entity.Product, q ProductQuery) []entity.Product {
	name := Fold(strings.TrimSpace(q.Name))
	category := Fold(strings.TrimSpace(q.Category))
	availability := ParseAvailability(q.Availability)

	out := make([]entity.Product, 0, len(snapshot))
	for _, p := range snapshot {
		if name != "" && !strings.Contains(Fold(p.Name), name) {
			continue
		}
		if category != "" && Fold(p.Category) != category {
			continue
		}
		if !availability.Keep(p) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// SearchProducts aplica filtro → orden → paginación sobre una foto del store.
func SearchProducts(snapshot []entity.Product, q ProductQuery) (Page[entity.Product], error) {
	if _, _, err := PageBounds(q.Page, q.Size); err != nil {
		return Page[entity.Product]{}, err
	}
	filtered := FilterProducts(snapshot, q)
	slices.SortStableFunc(filtered, ProductOrder(q.SortBy, q.ThenBy, q.Direction))
	return Paginate(filtered, q.Page, q.Size)
}

// SortCategories ordena una copia de categories.
func SortCategories(categories []entity.Category, sortBy, direction string) []entity.Category {
	out := slices.Clone(categories)
	slices.SortStableFunc(out, CategoryOrder(sortBy, direction))
	return out
}
