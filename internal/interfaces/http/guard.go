package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/commodityhub/inventory-api/internal/application/session"
)

// Decision resultado del guard de navegación.
type Decision int

const (
	// DecisionLoading el estado de sesión aún no se resolvió: se muestra un
	// placeholder y no se decide ruta todavía.
	DecisionLoading Decision = iota
	// DecisionRedirectLogin sin autenticar: a la entrada de login.
	DecisionRedirectLogin
	// DecisionRedirectHome autenticado pero sin el rol requerido: downgrade
	// silencioso al landing autenticado, no una página de error.
	DecisionRedirectHome
	// DecisionAllow la vista solicitada puede renderizarse.
	DecisionAllow
)

// Rutas destino de las decisiones del guard.
const (
	LoginPath = "/login"
	HomePath  = "/products"
)

// Evaluate es la función pura de decisión del guard. requiredRole vacío
// significa que basta estar autenticado.
func Evaluate(state session.State, requiredRole string) Decision {
	if state.IsLoading() {
		return DecisionLoading
	}
	if !state.IsAuthenticated() {
		return DecisionRedirectLogin
	}
	if requiredRole != "" {
		sess, _ := state.Session()
		if sess.User.Role != requiredRole {
			return DecisionRedirectHome
		}
	}
	return DecisionAllow
}

// Guard middleware de navegación para las rutas de página. Se reevalúa en cada
// request, nunca se cachea: un logout surte efecto en la navegación siguiente.
func Guard(mgr *session.Manager, requiredRole string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		switch Evaluate(mgr.State(), requiredRole) {
		case DecisionLoading:
			c.Type("html")
			return c.SendString("<div>Loading...</div>")
		case DecisionRedirectLogin:
			return c.Redirect(LoginPath, fiber.StatusFound)
		case DecisionRedirectHome:
			return c.Redirect(HomePath, fiber.StatusFound)
		}
		return c.Next()
	}
}
