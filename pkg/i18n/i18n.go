// Package i18n tabla de textos del portal en tailandés e inglés, detección de idioma
// (Accept-Language / ?lang=) y formato de montos en baht y fechas.
package i18n

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Lang idioma soportado por el portal.
type Lang string

// Idiomas soportados.
const (
	TH Lang = "th"
	EN Lang = "en"
)

// Default idioma usado cuando no se puede detectar otro.
const Default = TH

var (
	supportedTags = []language.Tag{language.Thai, language.English}
	matcher       = language.NewMatcher(supportedTags)
)

// Parse convierte "th"/"en" (o variantes como "en-US") en Lang.
func Parse(s string) (Lang, bool) {
	tag, err := language.Parse(s)
	if err != nil {
		return "", false
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return "", false
	}
	return langAt(idx), true
}

// Detect elige el idioma a partir de un header Accept-Language. Si no hay coincidencia devuelve fallback.
func Detect(acceptLanguage string, fallback Lang) Lang {
	if acceptLanguage == "" {
		return fallback
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return fallback
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return fallback
	}
	return langAt(idx)
}

func langAt(idx int) Lang {
	if supportedTags[idx] == language.English {
		return EN
	}
	return TH
}

func (l Lang) tag() language.Tag {
	if l == EN {
		return language.English
	}
	return language.Thai
}

// T devuelve la traducción de key. Idioma desconocido -> Default; clave desconocida -> la propia clave.
func T(lang Lang, key string) string {
	table, ok := translations[lang]
	if !ok {
		table = translations[Default]
	}
	if s, ok := table[key]; ok {
		return s
	}
	return key
}

// Table copia de la tabla completa de un idioma (para el front).
func Table(lang Lang) map[string]string {
	src, ok := translations[lang]
	if !ok {
		src = translations[Default]
	}
	out := make(map[string]string, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}

// FormatAmount formatea un monto en baht con separador de miles del idioma, ej. "฿2,500".
// Se redondea a satang (2 decimales) sin pasar por float.
func FormatAmount(lang Lang, amount decimal.Decimal) string {
	whole, frac := splitAmount(lang, amount)
	frac = strings.TrimRight(frac, "0")
	if frac != "" {
		whole += "." + frac
	}
	return "฿" + whole
}

// FormatAmountASCII igual que FormatAmount pero con código ISO y siempre dos decimales,
// ej. "THB 2,500.00". Para salidas sin fuente tailandesa (PDF).
func FormatAmountASCII(lang Lang, amount decimal.Decimal) string {
	whole, frac := splitAmount(lang, amount)
	return "THB " + whole + "." + frac
}

// splitAmount parte entera agrupada ("-1,234") y los dos decimales ("50").
func splitAmount(lang Lang, amount decimal.Decimal) (whole, frac string) {
	r := amount.Round(2)
	fixed := r.Abs().StringFixed(2)
	dot := strings.IndexByte(fixed, '.')
	p := message.NewPrinter(lang.tag())
	whole = p.Sprintf("%v", number.Decimal(r.Abs().IntPart()))
	if r.IsNegative() {
		whole = "-" + whole
	}
	return whole, fixed[dot+1:]
}

// FormatDate formatea una fecha. En tailandés usa el calendario budista (año + 543).
func FormatDate(lang Lang, t time.Time) string {
	if t.IsZero() {
		return ""
	}
	if lang == EN {
		return t.Format("Jan 2, 2006")
	}
	return fmt.Sprintf("%d/%d/%d", t.Day(), int(t.Month()), t.Year()+543)
}
