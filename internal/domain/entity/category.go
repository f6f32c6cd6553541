package entity

import "time"

// Category representa una categoría del catálogo.
// El nombre es único sin distinguir mayúsculas ni espacios externos.
type Category struct {
	ID           int64
	Name         string
	CreationDate time.Time
	UpdateDate   time.Time
}
