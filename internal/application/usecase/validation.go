package usecase

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/jhoicas/catalogo-inventario/internal/domain"
)

const maxNameLength = 120

// requiredText recorta s y exige entre 1 y maxNameLength caracteres.
func requiredText(field, s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("%s es obligatorio", field)
	}
	if n := utf8.RuneCountInString(s); n > maxNameLength {
		return "", fmt.Errorf("%s admite como máximo %d caracteres (recibidos %d)", field, maxNameLength, n)
	}
	return s, nil
}

// invalid agrupa los problemas de validación en un único ErrInvalidInput.
func invalid(problems []string) error {
	if len(problems) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s", domain.ErrInvalidInput, strings.Join(problems, "; "))
}
