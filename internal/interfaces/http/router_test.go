package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/commodityhub/inventory-api/internal/application/dto"
	"github.com/commodityhub/inventory-api/internal/application/session"
	"github.com/commodityhub/inventory-api/internal/application/usecase"
	"github.com/commodityhub/inventory-api/internal/domain/entity"
	"github.com/commodityhub/inventory-api/internal/infrastructure/memory"
	"github.com/commodityhub/inventory-api/internal/infrastructure/redisstore"
	apphttp "github.com/commodityhub/inventory-api/internal/interfaces/http"
	pkgjwt "github.com/commodityhub/inventory-api/pkg/jwt"
)

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testIssuer    = "commodityhub-test"
	testExpMin    = 60
)

// newTestApp arma la aplicación completa: miniredis como storage durable,
// store en memoria con latencia cero y tokens JWT reales.
func newTestApp(t *testing.T) (*fiber.App, *session.Manager) {
	t.Helper()

	mr := miniredis.RunT(t)
	storage := redisstore.New(redis.NewClient(&redis.Options{Addr: mr.Addr()}))

	creds, err := memory.SeedCredentials()
	require.NoError(t, err)
	store := memory.New(memory.Config{
		Credentials: creds,
		Products:    memory.SeedProducts(),
		NextID:      memory.SeedNextID,
		TokenFunc: func(u entity.User) (string, error) {
			return pkgjwt.Generate(testJWTSecret, u.ID, u.Role, testIssuer, testExpMin)
		},
	})

	mgr := session.NewManager(storage, store, session.DefaultKeys)
	require.NoError(t, mgr.Restore(context.Background()))

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		SessionManager: mgr,
		ProductUC:      usecase.NewProductUseCase(store),
		DashboardUC:    usecase.NewDashboardUseCase(store),
		JWTSecret:      testJWTSecret,
	})
	return app, mgr
}

// login hace el POST de login y devuelve la respuesta decodificada.
func login(t *testing.T, app *fiber.App, email, password string) dto.LoginResponse {
	t.Helper()
	body, _ := json.Marshal(dto.LoginRequest{Email: email, Password: password})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode, "el login debe ser exitoso")

	var out dto.LoginResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// doJSON lanza una petición JSON con Bearer token opcional.
func doJSON(t *testing.T, app *fiber.App, method, path, token string, payload any) *http.Response {
	t.Helper()
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Auth
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_CredencialesInvalidas_401ConAviso(t *testing.T) {
	app, mgr := newTestApp(t)

	body, _ := json.Marshal(dto.LoginRequest{Email: "manager@commodityhub.com", Password: "nope"})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.False(t, mgr.IsAuthenticated(), "un login fallido no cambia el estado")

	var errResp dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&errResp))
	assert.Equal(t, "INVALID_CREDENTIALS", errResp.Code)
	require.NotNil(t, errResp.Notice)
	assert.Equal(t, dto.NoticeDismissMillis, errResp.Notice.DismissAfter)
}

func TestLogout_InvalidaElTokenDeInmediato(t *testing.T) {
	app, _ := newTestApp(t)
	out := login(t, app, "manager@commodityhub.com", "password123")

	resp := doJSON(t, app, http.MethodGet, "/api/products/", out.Token, nil)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/api/auth/logout", "", nil)
	resp.Body.Close()
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	// El mismo token, con firma aún vigente, ya no corresponde a la sesión.
	resp = doJSON(t, app, http.MethodGet, "/api/products/", out.Token, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Escenario de navegación: MANAGER ve el dashboard, STORE_KEEPER es degradado
// en silencio a /products.
// ──────────────────────────────────────────────────────────────────────────────

func TestNavegacion_ManagerAccedeAlDashboard(t *testing.T) {
	app, _ := newTestApp(t)
	out := login(t, app, "manager@commodityhub.com", "password123")
	require.Equal(t, entity.RoleManager, out.User.Role)

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestNavegacion_StoreKeeperRedirigidoAProducts(t *testing.T) {
	app, _ := newTestApp(t)
	out := login(t, app, "store@commodityhub.com", "password123")
	require.Equal(t, entity.RoleStoreKeeper, out.User.Role)

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/products", resp.Header.Get("Location"), "downgrade silencioso, no página de error")
}

func TestNavegacion_SinSesionRedirigeALogin(t *testing.T) {
	app, _ := newTestApp(t)

	for _, path := range []string{"/dashboard", "/products", "/products/new", "/products/9/edit"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		resp.Body.Close()

		assert.Equal(t, http.StatusFound, resp.StatusCode, path)
		assert.Equal(t, "/login", resp.Header.Get("Location"), path)
	}
}

func TestNavegacion_RaizSegunEstado(t *testing.T) {
	app, _ := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, "/login", resp.Header.Get("Location"))

	login(t, app, "manager@commodityhub.com", "password123")

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, "/products", resp.Header.Get("Location"))
}

// ──────────────────────────────────────────────────────────────────────────────
// API del dashboard: RBAC por rol del token.
// ──────────────────────────────────────────────────────────────────────────────

func TestDashboardAPI_SoloManager(t *testing.T) {
	app, _ := newTestApp(t)

	keeper := login(t, app, "store@commodityhub.com", "password123")
	resp := doJSON(t, app, http.MethodGet, "/api/dashboard/summary", keeper.Token, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	manager := login(t, app, "manager@commodityhub.com", "password123")
	resp = doJSON(t, app, http.MethodGet, "/api/dashboard/summary", manager.Token, nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var summary dto.DashboardSummaryDTO
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&summary))
	assert.Equal(t, 5, summary.TotalProducts)
	assert.Equal(t, 238, summary.TotalQuantity)
}

// ──────────────────────────────────────────────────────────────────────────────
// CRUD de productos vía API.
// ──────────────────────────────────────────────────────────────────────────────

func TestProductos_CrearYActualizar(t *testing.T) {
	app, _ := newTestApp(t)
	out := login(t, app, "store@commodityhub.com", "password123")

	// Crear
	resp := doJSON(t, app, http.MethodPost, "/api/products/", out.Token, map[string]any{
		"name": "Barley", "category": "Grains", "sku": "GRN-004",
		"price": "18.90", "quantity": 40, "status": "IN_STOCK",
	})
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created dto.ProductSaveResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	assert.Equal(t, "6", created.Product.ID)
	assert.Equal(t, "success", created.Notice.Kind)
	assert.Equal(t, dto.RedirectAfterSaveMillis, created.Notice.RedirectAfter)
	assert.Equal(t, "/products", created.Notice.Redirect)

	// Actualizar parcialmente
	resp2 := doJSON(t, app, http.MethodPut, "/api/products/6", out.Token, map[string]any{
		"quantity": 12, "status": "LOW_STOCK",
	})
	defer resp2.Body.Close()
	require.Equal(t, http.StatusOK, resp2.StatusCode)

	var updated dto.ProductSaveResponse
	require.NoError(t, json.NewDecoder(resp2.Body).Decode(&updated))
	assert.Equal(t, "Barley", updated.Product.Name, "los campos omitidos se conservan")
	assert.Equal(t, 12, updated.Product.Quantity)
	assert.Equal(t, entity.StatusLowStock, updated.Product.Status)
}

func TestProductos_ValidacionBloqueaElSubmit(t *testing.T) {
	app, _ := newTestApp(t)
	out := login(t, app, "store@commodityhub.com", "password123")

	resp := doJSON(t, app, http.MethodPost, "/api/products/", out.Token, map[string]any{
		"name": "Barley", "category": "Grains", "sku": "GRN-004",
		"price": "0", "quantity": 40, "status": "IN_STOCK",
	})
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var errResp dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&errResp))
	assert.Equal(t, "VALIDATION", errResp.Code)
	assert.Equal(t, "Price must be greater than 0", errResp.Fields["price"])
}

func TestProductos_EdicionSobreAusente_404ConRedireccion(t *testing.T) {
	app, _ := newTestApp(t)
	out := login(t, app, "store@commodityhub.com", "password123")

	resp := doJSON(t, app, http.MethodGet, "/api/products/999", out.Token, nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	var errResp dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&errResp))
	require.NotNil(t, errResp.Notice)
	assert.Equal(t, "error", errResp.Notice.Kind)
	assert.Equal(t, "Product not found", errResp.Notice.Message)
	assert.Equal(t, "/products", errResp.Notice.Redirect)
	assert.Equal(t, dto.RedirectAfterMissingMillis, errResp.Notice.RedirectAfter)
}

func TestProductos_UpdateIDInexistente_404(t *testing.T) {
	app, _ := newTestApp(t)
	out := login(t, app, "store@commodityhub.com", "password123")

	resp := doJSON(t, app, http.MethodPut, "/api/products/999", out.Token, map[string]any{"quantity": 1})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// La colección no cambió.
	listResp := doJSON(t, app, http.MethodGet, "/api/products/", out.Token, nil)
	defer listResp.Body.Close()
	var list dto.ProductListResponse
	require.NoError(t, json.NewDecoder(listResp.Body).Decode(&list))
	assert.Equal(t, 5, list.Total)
}

func TestSesiones_TokensDistintosPorLogin(t *testing.T) {
	app, _ := newTestApp(t)

	first := login(t, app, "manager@commodityhub.com", "password123")
	second := login(t, app, "manager@commodityhub.com", "password123")

	assert.NotEqual(t, first.Token, second.Token, fmt.Sprintf("tokens %q y %q deben diferir", first.Token, second.Token))
}
