package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/perfume-portal/pkg/i18n"
	"github.com/jhoicas/perfume-portal/pkg/logger"
)

// LocalLang idioma resuelto para la petición.
const LocalLang = "lang"

// LanguageMiddleware resuelve el idioma: ?lang= primero, luego Accept-Language, luego fallback.
func LanguageMiddleware(fallback i18n.Lang) fiber.Handler {
	return func(c *fiber.Ctx) error {
		lang, ok := i18n.Parse(c.Query("lang"))
		if !ok {
			lang = i18n.Detect(c.Get(fiber.HeaderAcceptLanguage), fallback)
		}
		c.Locals(LocalLang, lang)
		c.Set(fiber.HeaderContentLanguage, string(lang))
		return c.Next()
	}
}

// GetLang idioma de la petición (TH si el middleware no corrió).
func GetLang(c *fiber.Ctx) i18n.Lang {
	if l, ok := c.Locals(LocalLang).(i18n.Lang); ok {
		return l
	}
	return i18n.Default
}

// RequestLogger registra cada petición con zerolog: método, ruta, status, latencia y request id.
func RequestLogger(log *logger.Logger) fiber.Handler {
	log = log.Component("http")
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		ev := log.Info()
		switch {
		case status >= 500:
			ev = log.Error().Err(err)
		case status >= 400:
			ev = log.Warn()
		}
		rid, _ := c.Locals("requestid").(string)
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("request_id", rid).
			Str("user_id", GetUserID(c)).
			Msg("request")
		return err
	}
}
