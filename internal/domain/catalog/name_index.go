package catalog

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"

	"github.com/jhoicas/catalogo-inventario/internal/domain"
)

// Normalize devuelve la clave de unicidad de un nombre: sin espacios externos y
// con case folding Unicode. Un nombre cuya clave queda vacía es inválido.
func Normalize(name string) string {
	return Fold(strings.TrimSpace(name))
}

// Fold aplica case folding Unicode sin recortar espacios.
// cases.Caser no es seguro entre goroutines, por eso se crea uno por llamada.
func Fold(s string) string {
	if s == "" {
		return ""
	}
	return cases.Fold().String(s)
}

// NameIndex mapea nombre normalizado → id.
//
// No tiene lock propio: el dueño (el store de categorías) debe serializar el
// acceso y mantener su lock durante toda la secuencia "verificar y luego insertar"
// para que dos altas concurrentes del mismo nombre no puedan tener éxito ambas.
type NameIndex struct {
	byKey map[string]int64
}

// NewNameIndex construye un índice vacío.
func NewNameIndex() *NameIndex {
	return &NameIndex{byKey: make(map[string]int64)}
}

// Owner devuelve el id dueño del nombre, si existe.
func (ix *NameIndex) Owner(name string) (int64, bool) {
	id, ok := ix.byKey[Normalize(name)]
	return id, ok
}

// Claim registra name para id. Falla con ErrInvalidInput si el nombre es vacío
// y con ErrConflict si ya pertenece a otro id.
func (ix *NameIndex) Claim(name string, id int64) error {
	key := Normalize(name)
	if key == "" {
		return fmt.Errorf("%w: el nombre no puede estar vacío", domain.ErrInvalidInput)
	}
	if owner, ok := ix.byKey[key]; ok && owner != id {
		return fmt.Errorf("%w: ya existe una categoría con el nombre %q", domain.ErrConflict, strings.TrimSpace(name))
	}
	ix.byKey[key] = id
	return nil
}

// Rename mueve la entrada de id de oldName a newName en un solo paso.
// Si la clave no cambia no hace nada; si newName choca con otro id el índice
// queda intacto.
func (ix *NameIndex) Rename(oldName, newName string, id int64) error {
	oldKey, newKey := Normalize(oldName), Normalize(newName)
	if newKey == "" {
		return fmt.Errorf("%w: el nombre no puede estar vacío", domain.ErrInvalidInput)
	}
	if oldKey == newKey {
		return nil
	}
	if err := ix.Claim(newName, id); err != nil {
		return err
	}
	if owner, ok := ix.byKey[oldKey]; ok && owner == id {
		delete(ix.byKey, oldKey)
	}
	return nil
}

// Release elimina la entrada de name solo si pertenece a id.
func (ix *NameIndex) Release(name string, id int64) {
	key := Normalize(name)
	if owner, ok := ix.byKey[key]; ok && owner == id {
		delete(ix.byKey, key)
	}
}

// Len devuelve la cantidad de nombres registrados.
func (ix *NameIndex) Len() int { return len(ix.byKey) }
