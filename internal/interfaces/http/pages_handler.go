package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/commodityhub/inventory-api/internal/application/session"
)

// PageHandler sirve los shells mínimos de las vistas. La presentación visual
// queda fuera de este núcleo; lo que importa es la semántica de navegación
// del guard sobre cada ruta.
type PageHandler struct {
	mgr *session.Manager
}

// NewPageHandler construye el handler de páginas.
func NewPageHandler(mgr *session.Manager) *PageHandler {
	return &PageHandler{mgr: mgr}
}

// Root GET /. Redirige a /products o /login según el estado de sesión.
func (h *PageHandler) Root(c *fiber.Ctx) error {
	state := h.mgr.State()
	if state.IsLoading() {
		c.Type("html")
		return c.SendString("<div>Loading...</div>")
	}
	if state.IsAuthenticated() {
		return c.Redirect(HomePath, fiber.StatusFound)
	}
	return c.Redirect(LoginPath, fiber.StatusFound)
}

// Login GET /login. Un usuario ya autenticado vuelve al listado.
func (h *PageHandler) Login(c *fiber.Ctx) error {
	if h.mgr.IsAuthenticated() {
		return c.Redirect(HomePath, fiber.StatusFound)
	}
	return h.shell(c, "Login")
}

// Dashboard GET /dashboard (guard con rol MANAGER en el router).
func (h *PageHandler) Dashboard(c *fiber.Ctx) error {
	return h.shell(c, "Dashboard")
}

// Products GET /products.
func (h *PageHandler) Products(c *fiber.Ctx) error {
	return h.shell(c, "Products")
}

// ProductNew GET /products/new.
func (h *PageHandler) ProductNew(c *fiber.Ctx) error {
	return h.shell(c, "Add New Product")
}

// ProductEdit GET /products/:id/edit.
func (h *PageHandler) ProductEdit(c *fiber.Ctx) error {
	return h.shell(c, "Edit Product")
}

func (h *PageHandler) shell(c *fiber.Ctx, title string) error {
	c.Type("html")
	return c.SendString("<!doctype html><title>CommodityHub · " + title + "</title><div id=\"app\" data-view=\"" + title + "\"></div>")
}
