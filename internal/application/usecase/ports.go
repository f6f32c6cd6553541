package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/catalogo-inventario/internal/domain/entity"
)

// MetricsReportGenerator genera el PDF de métricas de inventario por categoría.
type MetricsReportGenerator interface {
	GenerateMetricsPDF(ctx context.Context, summaries []entity.CategoryInventorySummary, generatedAt time.Time) ([]byte, error)
}
