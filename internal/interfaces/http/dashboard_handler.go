package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/commodityhub/inventory-api/internal/application/dto"
	"github.com/commodityhub/inventory-api/internal/application/usecase"
)

// DashboardHandler maneja el resumen del dashboard (solo MANAGER, el router
// aplica RequireRole).
type DashboardHandler struct {
	uc *usecase.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary GET /api/dashboard/summary.
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
			Notice: ptrNotice(dto.ErrorNotice("Failed to load dashboard")),
		})
	}
	return c.JSON(summary)
}
