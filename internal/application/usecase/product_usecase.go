package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/catalogo-inventario/internal/application/dto"
	"github.com/jhoicas/catalogo-inventario/internal/domain"
	"github.com/jhoicas/catalogo-inventario/internal/domain/catalog"
	"github.com/jhoicas/catalogo-inventario/internal/domain/entity"
	"github.com/jhoicas/catalogo-inventario/internal/domain/repository"
	"github.com/jhoicas/catalogo-inventario/pkg/logger"
)

// ProductUseCase casos de uso de productos: CRUD, búsqueda paginada y métricas.
type ProductUseCase struct {
	repo    repository.ProductRepository
	reports MetricsReportGenerator
	log     *logger.Logger
	now     func() time.Time
}

// ProductOption configura ProductUseCase.
type ProductOption func(*ProductUseCase)

// WithClock reemplaza time.Now (validación de expiración y fecha del reporte).
func WithClock(now func() time.Time) ProductOption {
	return func(uc *ProductUseCase) { uc.now = now }
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, reports MetricsReportGenerator, log *logger.Logger, opts ...ProductOption) *ProductUseCase {
	uc := &ProductUseCase{repo: repo, reports: reports, log: log.Named("products"), now: time.Now}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Create valida y guarda un producto nuevo.
func (uc *ProductUseCase) Create(in dto.ProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.toEntity(in)
	if err != nil {
		return nil, err
	}
	saved, err := uc.repo.Save(product)
	if err != nil {
		return nil, err
	}
	uc.log.Info().Int64("product_id", saved.ID).Str("category", saved.Category).Msg("producto creado")
	return dto.ToProductResponse(saved), nil
}

// GetByID obtiene un producto; ErrNotFound si no existe.
func (uc *ProductUseCase) GetByID(id int64) (*dto.ProductResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("%w: producto %d", domain.ErrNotFound, id)
	}
	return dto.ToProductResponse(p), nil
}

// Update reemplaza todos los campos editables del producto.
func (uc *ProductUseCase) Update(id int64, in dto.ProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.toEntity(in)
	if err != nil {
		return nil, err
	}
	product.ID = id
	updated, err := uc.repo.Update(product)
	if err != nil {
		return nil, err
	}
	uc.log.Info().Int64("product_id", updated.ID).Int("stock", updated.Stock).Msg("producto actualizado")
	return dto.ToProductResponse(updated), nil
}

// Delete elimina un producto; ErrNotFound si no existe.
func (uc *ProductUseCase) Delete(id int64) error {
	removed, err := uc.repo.DeleteByID(id)
	if err != nil {
		return err
	}
	if !removed {
		return fmt.Errorf("%w: producto %d", domain.ErrNotFound, id)
	}
	uc.log.Info().Int64("product_id", id).Msg("producto eliminado")
	return nil
}

// Search filtra, ordena y pagina sobre una foto del catálogo.
func (uc *ProductUseCase) Search(req dto.ProductSearchRequest) (*dto.ProductPageResponse, error) {
	snapshot, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	page, err := catalog.SearchProducts(snapshot, req.ToQuery())
	if err != nil {
		return nil, err
	}
	return dto.ToProductPageResponse(page), nil
}

// Metrics devuelve el resumen de inventario por categoría.
func (uc *ProductUseCase) Metrics() ([]dto.CategoryInventorySummaryResponse, error) {
	summaries, err := uc.summaries()
	if err != nil {
		return nil, err
	}
	return dto.ToSummaryResponses(summaries), nil
}

// MetricsPDF genera el reporte de métricas en PDF y el nombre de archivo sugerido.
func (uc *ProductUseCase) MetricsPDF(ctx context.Context) ([]byte, string, error) {
	summaries, err := uc.summaries()
	if err != nil {
		return nil, "", err
	}
	generatedAt := uc.now()
	pdf, err := uc.reports.GenerateMetricsPDF(ctx, summaries, generatedAt)
	if err != nil {
		return nil, "", fmt.Errorf("metrics pdf: %w", err)
	}
	filename := fmt.Sprintf("inventario_metricas_%s.pdf", generatedAt.Format("20060102"))
	uc.log.Info().Int("categories", len(summaries)).Int("bytes", len(pdf)).Msg("reporte de métricas generado")
	return pdf, filename, nil
}

func (uc *ProductUseCase) summaries() ([]entity.CategoryInventorySummary, error) {
	snapshot, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	return catalog.SummarizeByCategory(snapshot), nil
}

// toEntity aplica las reglas de negocio de alta/edición.
func (uc *ProductUseCase) toEntity(in dto.ProductRequest) (*entity.Product, error) {
	var problems []string

	name, err := requiredText("name", in.Name)
	if err != nil {
		problems = append(problems, err.Error())
	}
	category, err := requiredText("category", in.Category)
	if err != nil {
		problems = append(problems, err.Error())
	}
	if !in.UnitPrice.IsPositive() {
		problems = append(problems, "unitPrice debe ser mayor que 0")
	}
	if in.Stock < 0 {
		problems = append(problems, "stock no puede ser negativo")
	}

	var expiration *time.Time
	if in.ExpirationDate != nil {
		today := dto.NewLocalDate(uc.now())
		exp := dto.NewLocalDate(in.ExpirationDate.Time)
		if exp.Before(today.Time) {
			problems = append(problems, fmt.Sprintf("expirationDate %s ya pasó", exp.Format(dto.DateLayout)))
		}
		expiration = &exp.Time
	}

	if err := invalid(problems); err != nil {
		return nil, err
	}
	return &entity.Product{
		Name:           name,
		Category:       category,
		UnitPrice:      in.UnitPrice,
		ExpirationDate: expiration,
		Stock:          in.Stock,
	}, nil
}
