package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/perfume-portal/pkg/config"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cr3t")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "perfume-portal", cfg.App.Name)
	assert.Equal(t, config.DataSourcePostgres, cfg.App.DataSource)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, "th", cfg.I18N.DefaultLang)
	assert.Equal(t, "", cfg.Redis.Addr)
	assert.Equal(t, 10, cfg.DB.MaxConns)
	assert.Equal(t, 1, cfg.DB.MinConns)
	assert.Empty(t, cfg.PDF.FontRegular)
}

func TestLoad_EnvTienePrioridad(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cr3t")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("APP_DATA_SOURCE", "memory")
	t.Setenv("DB_MIGRATE", "true")
	t.Setenv("PDF_FONT_REGULAR", "/fonts/Sarabun-Regular.ttf")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, config.DataSourceMemory, cfg.App.DataSource)
	assert.True(t, cfg.DB.Migrate)
	assert.Equal(t, "/fonts/Sarabun-Regular.ttf", cfg.PDF.FontRegular)
}

func TestLoad_SinSecretFalla(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	_, err := config.Load()
	assert.Error(t, err)
}

func TestValidate_DataSourceDesconocido(t *testing.T) {
	cfg := &config.Config{
		App:  config.AppConfig{DataSource: "mongo"},
		JWT:  config.JWTConfig{Secret: "x"},
		I18N: config.I18NConfig{DefaultLang: "th"},
	}
	assert.Error(t, cfg.Validate())
}

func TestValidate_PoolInvertido(t *testing.T) {
	cfg := &config.Config{
		App:  config.AppConfig{DataSource: config.DataSourceMemory},
		DB:   config.DBConfig{MinConns: 5, MaxConns: 2},
		JWT:  config.JWTConfig{Secret: "x"},
		I18N: config.I18NConfig{DefaultLang: "th"},
	}
	assert.Error(t, cfg.Validate())

	cfg.DB.MinConns = 1
	assert.NoError(t, cfg.Validate())
}

func TestDBConfig_DSNEscapaPassword(t *testing.T) {
	c := config.DBConfig{Host: "db", Port: 5432, User: "u", Password: "p@ss/word", DBName: "x", SSLMode: "disable"}
	assert.Equal(t, "postgres://u:p%40ss%2Fword@db:5432/x?sslmode=disable", c.DSN())

	c.DatabaseURL = "postgres://other"
	assert.Equal(t, "postgres://other", c.ConnectionString())
}
