package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/perfume-portal/internal/application/dto"
	"github.com/jhoicas/perfume-portal/internal/application/usecase"
)

// PaymentHandler cobros: vista admin y vista del cliente.
type PaymentHandler struct {
	uc *usecase.PaymentUseCase
}

// NewPaymentHandler construye el handler.
func NewPaymentHandler(uc *usecase.PaymentUseCase) *PaymentHandler {
	return &PaymentHandler{uc: uc}
}

// Create POST /api/admin/payments
func (h *PaymentHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePaymentRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.Create(c.UserContext(), GetLang(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List GET /api/admin/payments y GET /api/me/payments (filtrado por la sesión).
func (h *PaymentHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.UserContext(), GetLang(c), GetSession(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}

// MarkPaid POST /api/admin/payments/:id/mark-paid
func (h *PaymentHandler) MarkPaid(c *fiber.Ctx) error {
	out, err := h.uc.MarkPaid(c.UserContext(), GetLang(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Remind POST /api/admin/payments/:id/remind
func (h *PaymentHandler) Remind(c *fiber.Ctx) error {
	out, err := h.uc.Remind(c.UserContext(), GetLang(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
