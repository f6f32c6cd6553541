// Package catalog contiene el núcleo del catálogo en memoria: secuencia de ids,
// índice de nombres normalizados, estrategias de ordenamiento y el pipeline de
// lectura filtro → orden → paginación → agregación.
//
// Todo el paquete es puro: no hace I/O ni guarda estado global. Los stores de
// infraestructura (internal/infrastructure/memory) lo usan para mantener sus
// invariantes y los casos de uso lo aplican sobre una foto (snapshot) del store.
package catalog
