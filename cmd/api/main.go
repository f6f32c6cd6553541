package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"

	"github.com/jhoicas/catalogo-inventario/docs"
	"github.com/jhoicas/catalogo-inventario/internal/domain/repository"
	"github.com/jhoicas/catalogo-inventario/internal/application/usecase"
	"github.com/jhoicas/catalogo-inventario/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/catalogo-inventario/internal/infrastructure/pdf"
	httpRouter "github.com/jhoicas/catalogo-inventario/internal/interfaces/http"
	"github.com/jhoicas/catalogo-inventario/pkg/config"
	"github.com/jhoicas/catalogo-inventario/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	categoryRepo := memory.NewCategoryRepository()
	productRepo := memory.NewProductRepository()
	if cfg.Catalog.SeedDemo {
		n, err := loadDemo(categoryRepo, productRepo, time.Now())
		if err != nil {
			log.Fatal().Err(err).Msg("carga de datos de demostración")
		}
		log.Info().Int("products", n).Msg("catálogo de demostración cargado")
	}

	// PDF: reporte de métricas de inventario por categoría
	reportGenerator := infrapdf.NewMarotoMetricsReport(cfg.App.Name)

	categoryUC := usecase.NewCategoryUseCase(categoryRepo, log)
	productUC := usecase.NewProductUseCase(productRepo, reportGenerator, log)

	app := httpRouter.NewApp(httpRouter.AppConfig{
		Name:         cfg.App.Name,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		AllowOrigins: cfg.HTTP.AllowOrigins,
	}, log)

	// Swagger UI en local: http://localhost:<port>/docs
	// swagger.New entra en pánico si el archivo no existe.
	if cfg.Swagger.Enabled {
		if _, err := os.Stat(cfg.Swagger.FilePath); err == nil {
			app.Use(swagger.New(swagger.Config{
				BasePath: "/",
				FilePath: cfg.Swagger.FilePath,
				Path:     "docs",
				Title:    docs.SwaggerInfo.Title,
			}))
		} else {
			log.Warn().Str("file", cfg.Swagger.FilePath).Msg("swagger.json no encontrado, UI deshabilitada")
		}
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		CategoryUC: categoryUC,
		ProductUC:  productUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

// loadDemo carga el catálogo de demostración y devuelve cuántos productos quedaron.
func loadDemo(categories repository.CategoryRepository, products repository.ProductRepository, today time.Time) (int, error) {
	if err := memory.SeedDemo(categories, products, today); err != nil {
		return 0, err
	}
	n, err := products.Count()
	if err != nil {
		return 0, fmt.Errorf("contar productos: %w", err)
	}
	return n, nil
}
