package http

import (
	"github.com/gofiber/fiber/v2"

	appportal "github.com/jhoicas/perfume-portal/internal/application/portal"
)

// DashboardHandler tablero y estado de cuenta.
type DashboardHandler struct {
	uc *appportal.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appportal.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Get GET /api/dashboard. La vista depende del rol del token.
func (h *DashboardHandler) Get(c *fiber.Ctx) error {
	s := GetSession(c)
	if s.IsAdmin() {
		out, err := h.uc.AdminDashboard(c.UserContext(), GetLang(c), s)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(out)
	}
	out, err := h.uc.ClientDashboard(c.UserContext(), GetLang(c), s)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Statement GET /api/me/statement.pdf
func (h *DashboardHandler) Statement(c *fiber.Ctx) error {
	pdf, filename, err := h.uc.Statement(c.UserContext(), GetLang(c), GetSession(c))
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="`+filename+`"`)
	return c.Send(pdf)
}
