// Package memory implementa los puertos de repositorio del catálogo sobre mapas
// en memoria protegidos por sync.RWMutex. Nada se persiste: el estado vive lo
// que vive el proceso.
package memory

import (
	"cmp"
	"slices"
	"time"
)

// Option configura un repositorio en memoria.
type Option func(*options)

type options struct {
	now func() time.Time
}

// WithClock reemplaza time.Now como fuente de las fechas de creación y actualización.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

func buildOptions(opts []Option) options {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// sortedByID copia los valores del mapa en orden de id ascendente.
func sortedByID[T any](rows map[int64]T) []T {
	keys := make([]int64, 0, len(rows))
	for id := range rows {
		keys = append(keys, id)
	}
	slices.SortFunc(keys, cmp.Compare[int64])
	out := make([]T, 0, len(keys))
	for _, id := range keys {
		out = append(out, rows[id])
	}
	return out
}
