package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/perfume-portal/internal/application/dto"
	"github.com/jhoicas/perfume-portal/internal/application/usecase"
)

// OrderHandler pedidos: gestión admin, listado y re-pedido del cliente.
type OrderHandler struct {
	uc *usecase.OrderUseCase
}

// NewOrderHandler construye el handler.
func NewOrderHandler(uc *usecase.OrderUseCase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// Create POST /api/admin/orders
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrderRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.Create(c.UserContext(), GetLang(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List GET /api/admin/orders y GET /api/me/orders.
func (h *OrderHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.UserContext(), GetLang(c), GetSession(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}

// UpdateStatus PATCH /api/admin/orders/:id/status
func (h *OrderHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateOrderStatusRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.UpdateStatus(c.UserContext(), GetLang(c), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Reorder POST /api/me/orders/:id/reorder
func (h *OrderHandler) Reorder(c *fiber.Ctx) error {
	out, err := h.uc.Reorder(c.UserContext(), GetLang(c), GetSession(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
