package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/perfume-portal/internal/application/dto"
	"github.com/jhoicas/perfume-portal/pkg/i18n"
)

// Translations GET /api/i18n/:lang. Tabla de textos del front; idioma desconocido -> 404.
func Translations(c *fiber.Ctx) error {
	lang, ok := i18n.Parse(c.Params("lang"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "UNKNOWN_LANG", Message: "idiomas soportados: th, en"})
	}
	c.Set(fiber.HeaderCacheControl, "public, max-age=3600")
	return c.JSON(fiber.Map{"lang": lang, "messages": i18n.Table(lang)})
}
