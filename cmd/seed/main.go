// Comando seed: aplica las migraciones y carga los datos de demostración en PostgreSQL.
//
//	go run ./cmd/seed          # migra y carga
//	go run ./cmd/seed -down    # revierte todas las migraciones
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/jhoicas/perfume-portal/internal/application/auth"
	"github.com/jhoicas/perfume-portal/internal/infrastructure/postgres"
	"github.com/jhoicas/perfume-portal/internal/infrastructure/seed"
	"github.com/jhoicas/perfume-portal/pkg/config"
	"github.com/jhoicas/perfume-portal/pkg/logger"
)

func main() {
	down := flag.Bool("down", false, "revertir todas las migraciones")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	if err := run(cfg, log, *down); err != nil {
		log.Error().Err(err).Msg("seed")
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *logger.Logger, down bool) error {
	mg, err := postgres.NewMigrator(cfg.DB.ConnectionString(), log)
	if err != nil {
		return fmt.Errorf("migrador: %w", err)
	}
	defer mg.Close()

	if down {
		if err := mg.Down(); err != nil {
			return fmt.Errorf("revertir migraciones: %w", err)
		}
		return nil
	}
	if err := mg.Up(); err != nil {
		return fmt.Errorf("aplicar migraciones: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return fmt.Errorf("conexión a PostgreSQL: %w", err)
	}
	defer pool.Close()

	data, err := seed.Demo(auth.HashPassword)
	if err != nil {
		return fmt.Errorf("armar datos de demostración: %w", err)
	}
	n, err := postgres.NewTxRunner(pool).Seed(ctx, data)
	if err != nil {
		return fmt.Errorf("cargar datos de demostración: %w", err)
	}
	log.Info().Int("inserted", n).Msg("seed completado")

	for _, c := range seed.Credentials() {
		fmt.Printf("  %-8s %-6s password=%s\n", c.User.ID, c.User.Role, c.Password)
	}
	return nil
}
