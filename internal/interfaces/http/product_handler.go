package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/commodityhub/inventory-api/internal/application/dto"
	"github.com/commodityhub/inventory-api/internal/application/usecase"
	"github.com/commodityhub/inventory-api/internal/domain"
)

// ProductHandler maneja las peticiones HTTP para Product (protegido).
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// List GET /api/products.
func (h *ProductHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
			Notice: ptrNotice(dto.ErrorNotice("Failed to load products")),
		})
	}
	return c.JSON(out)
}

// GetByID GET /api/products/:id. El 404 incluye el aviso que la vista muestra
// antes de redirigir al listado (modo edición sobre un registro ausente).
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		notice := dto.ErrorNotice("Product not found")
		notice.Redirect = HomePath
		notice.RedirectAfter = dto.RedirectAfterMissingMillis
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Code: "NOT_FOUND", Message: "Product not found", Notice: &notice,
		})
	}
	return c.JSON(out)
}

// Create POST /api/products.
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.ProductFormRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return h.saveError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ProductSaveResponse{
		Product: *out,
		Notice:  dto.SuccessNotice("Product created successfully"),
	})
}

// Update PUT /api/products/:id. Actualización parcial: los campos omitidos
// conservan su valor.
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		return h.saveError(c, err)
	}
	return c.JSON(dto.ProductSaveResponse{
		Product: *out,
		Notice:  dto.SuccessNotice("Product updated successfully"),
	})
}

// saveError mapea los fallos de guardado: validación → 400 con errores por
// campo; ausente → 404; el resto → aviso transitorio, nunca un crash.
func (h *ProductHandler) saveError(c *fiber.Ctx, err error) error {
	var verr *usecase.ValidationError
	if errors.As(err, &verr) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: "formulario inválido", Fields: verr.Fields,
		})
	}
	if errors.Is(err, domain.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Code: "NOT_FOUND", Message: "Product not found",
			Notice: ptrNotice(dto.ErrorNotice("Product not found")),
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Code: "INTERNAL", Message: err.Error(),
		Notice: ptrNotice(dto.ErrorNotice("Failed to save product")),
	})
}
