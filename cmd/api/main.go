package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/jhoicas/perfume-portal/internal/application/auth"
	appportal "github.com/jhoicas/perfume-portal/internal/application/portal"
	"github.com/jhoicas/perfume-portal/internal/application/usecase"
	"github.com/jhoicas/perfume-portal/internal/domain/repository"
	"github.com/jhoicas/perfume-portal/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/perfume-portal/internal/infrastructure/pdf"
	"github.com/jhoicas/perfume-portal/internal/infrastructure/postgres"
	infraredis "github.com/jhoicas/perfume-portal/internal/infrastructure/redis"
	"github.com/jhoicas/perfume-portal/internal/infrastructure/seed"
	httpRouter "github.com/jhoicas/perfume-portal/internal/interfaces/http"
	"github.com/jhoicas/perfume-portal/pkg/config"
	"github.com/jhoicas/perfume-portal/pkg/i18n"
	"github.com/jhoicas/perfume-portal/pkg/logger"
)

// repos adaptadores de persistencia según APP_DATA_SOURCE.
type repos struct {
	clients  repository.ClientRepository
	payments repository.PaymentRepository
	orders   repository.OrderRepository
	users    repository.UserRepository
	tx       usecase.ClientTxRunner
	close    func()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("data_source", cfg.App.DataSource).
		Msg("iniciando aplicación")

	if err := run(cfg, log); err != nil {
		log.Error().Err(err).Msg("la aplicación terminó con error")
		os.Exit(1)
	}
}

// run arma dependencias y sirve HTTP hasta SIGINT/SIGTERM. Los recursos se cierran con defer.
func run(cfg *config.Config, log *logger.Logger) error {
	ctx := context.Background()

	var (
		r   repos
		err error
	)
	switch cfg.App.DataSource {
	case config.DataSourceMemory:
		r, err = memoryRepos()
	default:
		r, err = postgresRepos(ctx, cfg, log)
	}
	if err != nil {
		return fmt.Errorf("inicializar persistencia: %w", err)
	}
	defer r.close()

	// Lista de revocación: Redis si hay REDIS_ADDR, si no en memoria (una sola instancia).
	var denylist repository.TokenDenylist = memory.NewTokenDenylist()
	if cfg.Redis.Addr != "" {
		client, err := infraredis.NewClient(ctx, cfg.Redis)
		if err != nil {
			return fmt.Errorf("conexión a Redis: %w", err)
		}
		defer client.Close()
		denylist = infraredis.NewTokenDenylist(client)
		log.Info().Str("addr", cfg.Redis.Addr).Msg("revocación de tokens en Redis")
	}

	authUC := auth.NewAuthUseCase(r.users, denylist, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	clientUC := usecase.NewClientUseCase(r.tx, r.clients)
	paymentUC := usecase.NewPaymentUseCase(r.payments, r.clients, log)
	orderUC := usecase.NewOrderUseCase(r.orders, r.clients, log)

	// PDF: estado de cuenta con QR PromptPay
	statementGenerator, err := infrapdf.NewMarotoStatementGenerator(cfg.App.Name, infrapdf.FontConfig{
		Regular: cfg.PDF.FontRegular,
		Bold:    cfg.PDF.FontBold,
	})
	if err != nil {
		return err
	}
	if !statementGenerator.UnicodeFont() {
		log.Warn().Msg("PDF_FONT_REGULAR vacío: el estado de cuenta se genera en inglés con Helvetica")
	}
	dashboardUC := appportal.NewDashboardUseCase(r.clients, r.payments, r.orders, statementGenerator, log)

	defaultLang, _ := i18n.Parse(cfg.I18N.DefaultLang)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Perfume Portal API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		ClientUC:    clientUC,
		PaymentUC:   paymentUC,
		OrderUC:     orderUC,
		DashboardUC: dashboardUC,
		JWTSecret:   cfg.JWT.Secret,
		DefaultLang: defaultLang,
	})

	listenErr := make(chan error, 1)
	go func() {
		listenErr <- app.Listen(cfg.HTTP.Addr())
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-listenErr:
		return fmt.Errorf("servidor HTTP: %w", err)
	case <-quit:
	}

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
	return nil
}

func memoryRepos() (repos, error) {
	data, err := seed.Demo(auth.HashPassword)
	if err != nil {
		return repos{}, err
	}
	store := memory.NewStore(data)
	return repos{
		clients:  memory.NewClientRepository(store),
		payments: memory.NewPaymentRepository(store),
		orders:   memory.NewOrderRepository(store),
		users:    memory.NewUserRepository(store),
		tx:       memory.NewTxRunner(store),
		close:    func() {},
	}, nil
}

func postgresRepos(ctx context.Context, cfg *config.Config, log *logger.Logger) (repos, error) {
	if cfg.DB.Migrate {
		mg, err := postgres.NewMigrator(cfg.DB.ConnectionString(), log)
		if err != nil {
			return repos{}, err
		}
		err = mg.Up()
		_ = mg.Close()
		if err != nil {
			return repos{}, err
		}
	}
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return repos{}, err
	}
	return repos{
		clients:  postgres.NewClientRepository(pool),
		payments: postgres.NewPaymentRepository(pool),
		orders:   postgres.NewOrderRepository(pool),
		users:    postgres.NewUserRepository(pool),
		tx:       postgres.NewTxRunner(pool),
		close:    pool.Close,
	}, nil
}
