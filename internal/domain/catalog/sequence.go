package catalog

import "sync/atomic"

// Sequence entrega ids estrictamente crecientes a partir de 1.
// El valor cero está listo para usarse y es seguro entre goroutines.
type Sequence struct{ n atomic.Int64 }

// Next devuelve un id nunca entregado antes.
func (s *Sequence) Next() int64 { return s.n.Add(1) }

// Last devuelve el último id entregado (0 si aún no se entregó ninguno).
func (s *Sequence) Last() int64 { return s.n.Load() }
