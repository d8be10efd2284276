package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/perfume-portal/internal/application/auth"
	"github.com/jhoicas/perfume-portal/internal/application/dto"
	appportal "github.com/jhoicas/perfume-portal/internal/application/portal"
	"github.com/jhoicas/perfume-portal/internal/application/usecase"
	"github.com/jhoicas/perfume-portal/internal/infrastructure/memory"
	"github.com/jhoicas/perfume-portal/internal/infrastructure/pdf"
	"github.com/jhoicas/perfume-portal/internal/infrastructure/seed"
	apphttp "github.com/jhoicas/perfume-portal/internal/interfaces/http"
	"github.com/jhoicas/perfume-portal/pkg/i18n"
	"github.com/jhoicas/perfume-portal/pkg/logger"
)

// newPortalApp arma la API completa sobre el store en memoria con los datos de demostración.
func newPortalApp(t *testing.T) *fiber.App {
	t.Helper()
	data, err := seed.Demo(auth.HashPassword)
	require.NoError(t, err)

	store := memory.NewStore(data)
	clients := memory.NewClientRepository(store)
	payments := memory.NewPaymentRepository(store)
	orders := memory.NewOrderRepository(store)
	log := logger.Nop()
	generator, err := pdf.NewMarotoStatementGenerator("test", pdf.FontConfig{})
	require.NoError(t, err)

	app := fiber.New()
	app.Use(apphttp.RequestLogger(log))
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC: auth.NewAuthUseCase(memory.NewUserRepository(store), memory.NewTokenDenylist(), auth.JWTConfig{
			Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer,
		}),
		ClientUC:    usecase.NewClientUseCase(memory.NewTxRunner(store), clients),
		PaymentUC:   usecase.NewPaymentUseCase(payments, clients, log),
		OrderUC:     usecase.NewOrderUseCase(orders, clients, log),
		DashboardUC: appportal.NewDashboardUseCase(clients, payments, orders, generator, log),
		JWTSecret:   testJWTSecret,
		DefaultLang: i18n.TH,
	})
	return app
}

func call(t *testing.T, app *fiber.App, method, path, token string, body any) *http.Response {
	t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func login(t *testing.T, app *fiber.App, identifier, password string) string {
	t.Helper()
	resp := call(t, app, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Identifier: identifier, Password: password})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	return decode[dto.LoginResponse](t, resp).Token
}

func TestLogin_PorUsuarioCedulaYEmail(t *testing.T) {
	app := newPortalApp(t)

	resp := call(t, app, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Identifier: "admin", Password: "admin"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decode[dto.LoginResponse](t, resp)
	assert.Equal(t, "admin", out.User.Role)

	resp = call(t, app, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Identifier: "1234567890123", Password: "client1"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "client1", decode[dto.LoginResponse](t, resp).User.ClientID)

	resp = call(t, app, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Identifier: "john@email.com", Password: "client2"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "client2", decode[dto.LoginResponse](t, resp).User.ClientID)
}

func TestLogin_CredencialesInvalidas(t *testing.T) {
	app := newPortalApp(t)

	resp := call(t, app, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Identifier: "admin", Password: "mal"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = call(t, app, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Identifier: "nadie", Password: "x"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = call(t, app, http.MethodPost, "/api/auth/login", "", map[string]string{"identifier": "admin"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "VALIDATION", body.Code)
	require.Len(t, body.Details, 1)
	assert.Equal(t, "password", body.Details[0].Field)
}

func TestLogout_RevocaElToken(t *testing.T) {
	app := newPortalApp(t)
	token := login(t, app, "admin", "admin")

	resp := call(t, app, http.MethodGet, "/api/auth/me", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = call(t, app, http.MethodPost, "/api/auth/logout", token, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = call(t, app, http.MethodGet, "/api/auth/me", token, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestDashboard_SegunRol(t *testing.T) {
	app := newPortalApp(t)

	resp := call(t, app, http.MethodGet, "/api/dashboard?lang=en", login(t, app, "admin", "admin"), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "en", resp.Header.Get("Content-Language"))
	adminView := decode[dto.AdminDashboardDTO](t, resp)
	assert.Equal(t, 3, adminView.Statistics.TotalClients)
	assert.Equal(t, 2, adminView.Statistics.ActiveOrders)

	resp = call(t, app, http.MethodGet, "/api/dashboard", login(t, app, "1234567890123", "client1"), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	clientView := decode[dto.ClientDashboardDTO](t, resp)
	assert.Equal(t, "client", clientView.Role)
	require.NotNil(t, clientView.Overdue)
	assert.Equal(t, "OVERDUEclient1", clientView.Overdue.Reference)
	assert.Len(t, clientView.Payments, 3)
}

func TestMe_SoloVeSusCobros(t *testing.T) {
	app := newPortalApp(t)
	token := login(t, app, "john@email.com", "client2")

	resp := call(t, app, http.MethodGet, "/api/me/payments", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decode[[]dto.PaymentResponse](t, resp)
	require.Len(t, list, 2)
	for _, p := range list {
		assert.Equal(t, "client2", p.ClientID)
	}

	// un cliente no entra a la administración
	resp = call(t, app, http.MethodGet, "/api/admin/payments", token, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestMe_ReorderYStatement(t *testing.T) {
	app := newPortalApp(t)
	token := login(t, app, "john@email.com", "client2")

	resp := call(t, app, http.MethodPost, "/api/me/orders/ord4/reorder", token, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	out := decode[dto.OrderResponse](t, resp)
	assert.Equal(t, "pending", out.Status)

	resp = call(t, app, http.MethodPost, "/api/me/orders/ord1/reorder", token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = call(t, app, http.MethodGet, "/api/me/statement.pdf?lang=en", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	body, _ := io.ReadAll(resp.Body)
	assert.True(t, bytes.HasPrefix(body, []byte("%PDF")))
}

func TestAdmin_FlujoDeCobro(t *testing.T) {
	app := newPortalApp(t)
	token := login(t, app, "admin", "admin")

	resp := call(t, app, http.MethodPost, "/api/admin/payments", token, map[string]any{
		"client_id": "client3", "amount": "990.50", "due_date": "2025-02-01", "description": "Vetiver Splash",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[dto.PaymentResponse](t, resp)
	assert.Contains(t, created.QRPayload, "990.506304PAY")

	resp = call(t, app, http.MethodPost, "/api/admin/payments/"+created.ID+"/remind", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = call(t, app, http.MethodPost, "/api/admin/payments/"+created.ID+"/mark-paid", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "paid", decode[dto.PaymentResponse](t, resp).Status)

	resp = call(t, app, http.MethodPost, "/api/admin/payments/"+created.ID+"/mark-paid", token, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp = call(t, app, http.MethodPost, "/api/admin/payments", token, map[string]any{
		"client_id": "client3", "amount": "10", "due_date": "01/02/2025", "description": "x",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAdmin_ClientesYPedidos(t *testing.T) {
	app := newPortalApp(t)
	token := login(t, app, "admin", "admin")

	resp := call(t, app, http.MethodPost, "/api/admin/clients", token, dto.CreateClientRequest{
		Name: "Ploy Sukjai", Phone: "082-111-2222", Password: "secret1",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[dto.ClientResponse](t, resp)

	// el nuevo cliente puede entrar con su teléfono
	login(t, app, "082-111-2222", "secret1")

	resp = call(t, app, http.MethodGet, "/api/admin/clients/"+created.ID, token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = call(t, app, http.MethodGet, "/api/admin/clients/nope", token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = call(t, app, http.MethodPost, "/api/admin/orders", token, map[string]any{
		"client_id": created.ID, "description": "Lemongrass Mist - 30ml", "amount": "1200",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	order := decode[dto.OrderResponse](t, resp)

	resp = call(t, app, http.MethodPatch, "/api/admin/orders/"+order.ID+"/status", token, dto.UpdateOrderStatusRequest{Status: "completed"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, decode[dto.OrderResponse](t, resp).Reorderable)

	resp = call(t, app, http.MethodPatch, "/api/admin/orders/"+order.ID+"/status", token, dto.UpdateOrderStatusRequest{Status: "shipped"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestTranslations(t *testing.T) {
	app := newPortalApp(t)

	resp := call(t, app, http.MethodGet, "/api/i18n/th", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decode[struct {
		Lang     string            `json:"lang"`
		Messages map[string]string `json:"messages"`
	}](t, resp)
	assert.Equal(t, "th", body.Lang)
	assert.Equal(t, "ชำระแล้ว", body.Messages["paid"])

	resp = call(t, app, http.MethodGet, "/api/i18n/fr", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
