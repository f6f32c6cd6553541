package dto

import (
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// El cliente web consume los importes como números JSON, no como strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Path    string `json:"path,omitempty"`
}

// DateLayout formato de fechas sin hora en la API.
const DateLayout = "2006-01-02"

// LocalDate fecha sin hora serializada como "YYYY-MM-DD".
type LocalDate struct {
	time.Time
}

// NewLocalDate trunca t al día en UTC.
func NewLocalDate(t time.Time) LocalDate {
	y, m, d := t.Date()
	return LocalDate{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// MarshalJSON implementa json.Marshaler.
func (d LocalDate) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(d.Format(DateLayout))), nil
}

// UnmarshalJSON implementa json.Unmarshaler. Acepta solo "YYYY-MM-DD".
func (d *LocalDate) UnmarshalJSON(b []byte) error {
	s, err := strconv.Unquote(string(b))
	if err != nil {
		return fmt.Errorf("fecha inválida %s: se espera un string YYYY-MM-DD", b)
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return fmt.Errorf("fecha inválida %q: se espera YYYY-MM-DD", s)
	}
	d.Time = t
	return nil
}

// localDatePtr convierte una fecha opcional del dominio.
func localDatePtr(t *time.Time) *LocalDate {
	if t == nil {
		return nil
	}
	d := NewLocalDate(*t)
	return &d
}
