package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalogo-inventario/internal/application/dto"
	"github.com/jhoicas/catalogo-inventario/internal/application/usecase"
)

// ProductHandler maneja las peticiones HTTP para Product.
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// Create godoc
// @Summary      Crear producto
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProductRequest  true  "Datos del producto"
// @Success      201   {object}  dto.ProductResponse
// @Header       201   {string}  Location  "URL del producto creado"
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/v1/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.ProductRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return err
	}
	c.Location(fmt.Sprintf("%s/products/%d", APIPrefix, out.ID))
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Search godoc
// @Summary      Buscar productos
// @Description  Filtra por nombre (contiene), categoría (igual) y disponibilidad; ordena por uno o dos campos y pagina.
// @Tags         products
// @Produce      json
// @Param        page          query  int     false  "Página (base 1)"                                          default(1)
// @Param        size          query  int     false  "Tamaño de página"                                         default(10)
// @Param        name          query  string  false  "Texto contenido en el nombre"
// @Param        category      query  string  false  "Categoría exacta (sin distinguir mayúsculas)"
// @Param        availability  query  string  false  "in | out | all"                                           default(all)
// @Param        sortBy        query  string  false  "id | name | category | unitPrice | stock | expirationDate" default(id)
// @Param        thenBy        query  string  false  "Segundo campo de orden"
// @Param        direction     query  string  false  "asc | desc"                                               default(asc)
// @Success      200  {object}  dto.ProductPageResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/v1/products [get]
func (h *ProductHandler) Search(c *fiber.Ctx) error {
	req := dto.NewProductSearchRequest()
	if err := c.QueryParser(&req); err != nil {
		return badRequest("parámetros inválidos: %v", err)
	}
	out, err := h.uc.Search(req)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         products
// @Produce      json
// @Param        id   path  int  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Reemplazar producto
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id    path  int                 true  "ID del producto"
// @Param        body  body  dto.ProductRequest  true  "Datos del producto"
// @Success      200   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/v1/products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var in dto.ProductRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar producto
// @Tags         products
// @Param        id   path  int  true  "ID del producto"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.uc.Delete(id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Metrics godoc
// @Summary      Métricas de inventario por categoría
// @Tags         products
// @Produce      json
// @Success      200  {array}  dto.CategoryInventorySummaryResponse
// @Router       /api/v1/products/metrics [get]
func (h *ProductHandler) Metrics(c *fiber.Ctx) error {
	out, err := h.uc.Metrics()
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// MetricsPDF godoc
// @Summary      Métricas de inventario en PDF
// @Tags         products
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/v1/products/metrics/pdf [get]
func (h *ProductHandler) MetricsPDF(c *fiber.Ctx) error {
	pdf, filename, err := h.uc.MetricsPDF(c.UserContext())
	if err != nil {
		return err
	}
	c.Attachment(filename)
	c.Set(fiber.HeaderContentType, "application/pdf")
	return c.Send(pdf)
}
