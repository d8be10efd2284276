package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/perfume-portal/internal/application/auth"
	appportal "github.com/jhoicas/perfume-portal/internal/application/portal"
	"github.com/jhoicas/perfume-portal/internal/application/usecase"
	"github.com/jhoicas/perfume-portal/internal/domain/entity"
	"github.com/jhoicas/perfume-portal/pkg/i18n"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	ClientUC    *usecase.ClientUseCase
	PaymentUC   *usecase.PaymentUseCase
	OrderUC     *usecase.OrderUseCase
	DashboardUC *appportal.DashboardUseCase
	JWTSecret   string
	DefaultLang i18n.Lang
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", LanguageMiddleware(deps.DefaultLang))

	// Públicas
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)
	api.Get("/i18n/:lang", Translations)

	// Rutas protegidas (requieren Bearer Token no revocado)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret, deps.AuthUC))
	protected.Post("/auth/logout", authHandler.Logout)
	protected.Get("/auth/me", authHandler.Me)

	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", RequireRole(entity.RoleAdmin, entity.RoleClient), dashboardHandler.Get)

	paymentHandler := NewPaymentHandler(deps.PaymentUC)
	orderHandler := NewOrderHandler(deps.OrderUC)

	// Portal del cliente
	me := protected.Group("/me", RequireRole(entity.RoleClient))
	me.Get("/payments", paymentHandler.List)
	me.Get("/orders", orderHandler.List)
	me.Post("/orders/:id/reorder", orderHandler.Reorder)
	me.Get("/statement.pdf", dashboardHandler.Statement)

	// Administración
	admin := protected.Group("/admin", RequireRole(entity.RoleAdmin))

	clientHandler := NewClientHandler(deps.ClientUC)
	admin.Get("/clients", clientHandler.List)
	admin.Post("/clients", clientHandler.Create)
	admin.Get("/clients/:id", clientHandler.GetByID)
	admin.Put("/clients/:id", clientHandler.Update)

	admin.Get("/payments", paymentHandler.List)
	admin.Post("/payments", paymentHandler.Create)
	admin.Post("/payments/:id/mark-paid", paymentHandler.MarkPaid)
	admin.Post("/payments/:id/remind", paymentHandler.Remind)

	admin.Get("/orders", orderHandler.List)
	admin.Post("/orders", orderHandler.Create)
	admin.Patch("/orders/:id/status", orderHandler.UpdateStatus)
}
