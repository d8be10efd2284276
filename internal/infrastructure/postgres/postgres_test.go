package postgres

import (
	"errors"
	"io/fs"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/perfume-portal/pkg/config"
)

func TestMigrateURL(t *testing.T) {
	cases := map[string]string{
		"postgres://u:p@db:5432/portal?sslmode=disable":   "pgx5://u:p@db:5432/portal?sslmode=disable",
		"postgresql://u:p@db:5432/portal?sslmode=require": "pgx5://u:p@db:5432/portal?sslmode=require",
		"pgx5://u:p@db/portal":                            "pgx5://u:p@db/portal",
	}
	for in, want := range cases {
		assert.Equal(t, want, migrateURL(in), in)
	}
}

func TestMigrationsEmbebidas(t *testing.T) {
	files, err := fs.Glob(migrationsFS, "migrations/*.sql")
	require.NoError(t, err)
	assert.Contains(t, files, "migrations/000001_init.up.sql")
	assert.Contains(t, files, "migrations/000001_init.down.sql")
}

func TestErroresPg(t *testing.T) {
	assert.True(t, isUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.False(t, isUniqueViolation(errors.New("boom")))
	assert.True(t, isForeignKeyViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, isForeignKeyViolation(&pgconn.PgError{Code: "23505"}))
}

func TestNullables(t *testing.T) {
	assert.Nil(t, nullString(""))
	assert.Equal(t, "x", derefString(nullString("x")))
	assert.Equal(t, "", derefString(nil))

	in := time.Date(2024, 12, 15, 18, 30, 0, 0, time.FixedZone("ICT", 7*3600))
	assert.Equal(t, time.Date(2024, 12, 15, 0, 0, 0, 0, time.UTC), dateOnly(in))
	assert.Nil(t, dateOnlyPtr(nil))
}

func TestPoolConfig(t *testing.T) {
	pc, err := poolConfig(config.DBConfig{
		DatabaseURL: "postgres://u:p@db:5432/portal?sslmode=disable",
		MaxConns:    8,
		MinConns:    2,
	})
	require.NoError(t, err)
	assert.Equal(t, int32(8), pc.MaxConns)
	assert.Equal(t, int32(2), pc.MinConns)
	assert.Equal(t, "db", pc.ConnConfig.Host)
	assert.NotNil(t, pc.AfterConnect)

	_, err = poolConfig(config.DBConfig{DatabaseURL: "::no-es-url"})
	assert.Error(t, err)
}
