package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/commodityhub/inventory-api/internal/application/session"
	"github.com/commodityhub/inventory-api/internal/application/usecase"
	"github.com/commodityhub/inventory-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	SessionManager *session.Manager
	ProductUC      *usecase.ProductUseCase
	DashboardUC    *usecase.DashboardUseCase
	JWTSecret      string
}

// Router registra la superficie de rutas: páginas con guard de navegación y
// API JSON protegida con Bearer token.
func Router(app *fiber.App, deps RouterDeps) {
	mgr := deps.SessionManager

	// Páginas. El guard se evalúa en cada navegación, nunca se cachea.
	pages := NewPageHandler(mgr)
	app.Get("/", pages.Root)
	app.Get("/login", pages.Login)
	app.Get("/dashboard", Guard(mgr, entity.RoleManager), pages.Dashboard)
	app.Get("/products", Guard(mgr, ""), pages.Products)
	app.Get("/products/new", Guard(mgr, ""), pages.ProductNew)
	app.Get("/products/:id/edit", Guard(mgr, ""), pages.ProductEdit)

	api := app.Group("/api")

	// Auth (público). Logout es incondicional: no exige token.
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(mgr)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", authHandler.Logout)

	// Rutas protegidas (requieren Bearer Token de la sesión activa)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret, mgr))

	authGroup.Get("/me", AuthMiddleware(deps.JWTSecret, mgr), authHandler.Me)

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)

	// Dashboard (protegido, solo MANAGER)
	dashboard := protected.Group("/dashboard", RequireRole(entity.RoleManager))
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/summary", dashboardHandler.GetSummary)
}
