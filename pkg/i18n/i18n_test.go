package i18n_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/perfume-portal/pkg/i18n"
)

func TestDetect(t *testing.T) {
	assert.Equal(t, i18n.EN, i18n.Detect("en-US,en;q=0.9", i18n.TH))
	assert.Equal(t, i18n.TH, i18n.Detect("th-TH,th;q=0.9,en;q=0.5", i18n.EN))
	assert.Equal(t, i18n.TH, i18n.Detect("", i18n.TH), "header vacío -> fallback")
	assert.Equal(t, i18n.EN, i18n.Detect("", i18n.EN))
}

func TestParse(t *testing.T) {
	l, ok := i18n.Parse("en")
	assert.True(t, ok)
	assert.Equal(t, i18n.EN, l)

	l, ok = i18n.Parse("th")
	assert.True(t, ok)
	assert.Equal(t, i18n.TH, l)

	_, ok = i18n.Parse("%%")
	assert.False(t, ok)
}

func TestT_Fallbacks(t *testing.T) {
	assert.Equal(t, "Overdue", i18n.T(i18n.EN, "overdue"))
	assert.Equal(t, "เกินกำหนด", i18n.T(i18n.TH, "overdue"))
	assert.Equal(t, "__nope__", i18n.T(i18n.EN, "__nope__"), "clave desconocida -> clave")
	assert.Equal(t, "เกินกำหนด", i18n.T("fr", "overdue"), "idioma desconocido -> tailandés")
}

func TestTable_MismasClavesEnAmbosIdiomas(t *testing.T) {
	th := i18n.Table(i18n.TH)
	en := i18n.Table(i18n.EN)
	assert.Equal(t, len(th), len(en))
	for k := range th {
		_, ok := en[k]
		assert.True(t, ok, "falta la clave %q en inglés", k)
	}

	th["dashboard"] = "x"
	assert.Equal(t, "แดชบอร์ด", i18n.T(i18n.TH, "dashboard"), "Table debe devolver una copia")
}

func TestStatusLabel(t *testing.T) {
	assert.Equal(t, "Paid", i18n.StatusLabel(i18n.EN, "paid"))
	assert.Equal(t, "In Progress", i18n.StatusLabel(i18n.EN, "in-progress"))
	assert.Equal(t, "รอชำระ", i18n.StatusLabel(i18n.TH, "pending"))
	assert.Equal(t, "weird", i18n.StatusLabel(i18n.EN, "weird"))
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "฿2,500", i18n.FormatAmount(i18n.TH, decimal.NewFromInt(2500)))
	assert.Equal(t, "฿12,345.5", i18n.FormatAmount(i18n.EN, decimal.RequireFromString("12345.50")))
	assert.Equal(t, "฿0", i18n.FormatAmount(i18n.EN, decimal.Zero))
	assert.Equal(t, "฿1,800.05", i18n.FormatAmount(i18n.TH, decimal.RequireFromString("1800.049")))
	assert.Equal(t, "฿-5", i18n.FormatAmount(i18n.EN, decimal.NewFromInt(-5)))
}

func TestFormatAmount_MontosGrandesSinPerderPrecision(t *testing.T) {
	big := decimal.RequireFromString("123456789012345.67")
	assert.Equal(t, "฿123,456,789,012,345.67", i18n.FormatAmount(i18n.EN, big))
	assert.Equal(t, "THB 123,456,789,012,345.67", i18n.FormatAmountASCII(i18n.EN, big))
}

func TestFormatAmountASCII(t *testing.T) {
	assert.Equal(t, "THB 2,500.00", i18n.FormatAmountASCII(i18n.TH, decimal.NewFromInt(2500)))
	assert.Equal(t, "THB 0.00", i18n.FormatAmountASCII(i18n.EN, decimal.Zero))
	assert.Equal(t, "THB -12.50", i18n.FormatAmountASCII(i18n.EN, decimal.RequireFromString("-12.5")))
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2024, 12, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "15/12/2567", i18n.FormatDate(i18n.TH, d))
	assert.Equal(t, "Dec 15, 2024", i18n.FormatDate(i18n.EN, d))
	assert.Equal(t, "", i18n.FormatDate(i18n.EN, time.Time{}))
}
