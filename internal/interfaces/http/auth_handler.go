package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/commodityhub/inventory-api/internal/application/dto"
	"github.com/commodityhub/inventory-api/internal/application/session"
	"github.com/commodityhub/inventory-api/internal/domain"
)

// AuthHandler maneja login y logout sobre el session manager.
type AuthHandler struct {
	mgr *session.Manager
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(mgr *session.Manager) *AuthHandler {
	return &AuthHandler{mgr: mgr}
}

// Login POST /api/auth/login. Credenciales inválidas → 401; el estado de
// sesión no cambia y no hay reintentos.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email y password son requeridos"})
	}

	sess, err := h.mgr.Login(c.Context(), in.Email, in.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "INVALID_CREDENTIALS",
				Message: "Invalid email or password",
				Notice:  ptrNotice(dto.ErrorNotice("Invalid email or password")),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	return c.JSON(dto.LoginResponse{
		Token: sess.Token,
		User: dto.UserResponse{
			ID:    sess.User.ID,
			Name:  sess.User.Name,
			Email: sess.User.Email,
			Role:  sess.User.Role,
		},
	})
}

// Logout POST /api/auth/logout. Incondicional: siempre 204, incluso sin
// sesión activa.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.mgr.Logout(c.Context())
	return c.SendStatus(fiber.StatusNoContent)
}

// Me GET /api/auth/me. Devuelve el usuario de la sesión activa.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	sess, err := h.mgr.Current()
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "sin sesión activa"})
	}
	return c.JSON(dto.UserResponse{
		ID:    sess.User.ID,
		Name:  sess.User.Name,
		Email: sess.User.Email,
		Role:  sess.User.Role,
	})
}

func ptrNotice(n dto.Notice) *dto.Notice { return &n }
