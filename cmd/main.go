package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Brunera17/TCC/config"
	"github.com/Brunera17/TCC/db"
	authdomain "github.com/Brunera17/TCC/internal/auth/domain"
	authhandler "github.com/Brunera17/TCC/internal/auth/handler"
	authpg "github.com/Brunera17/TCC/internal/auth/repository/postgres"
	authredis "github.com/Brunera17/TCC/internal/auth/repository/redis"
	authservice "github.com/Brunera17/TCC/internal/auth/service"
	clienthandler "github.com/Brunera17/TCC/internal/client/handler"
	clientpg "github.com/Brunera17/TCC/internal/client/repository/postgres"
	clientservice "github.com/Brunera17/TCC/internal/client/service"
	"github.com/Brunera17/TCC/internal/logger"
	"github.com/Brunera17/TCC/internal/metrics"
	"github.com/Brunera17/TCC/internal/middleware"
	"github.com/Brunera17/TCC/internal/proposal/engine"
	proposalhandler "github.com/Brunera17/TCC/internal/proposal/handler"
	proposalpg "github.com/Brunera17/TCC/internal/proposal/repository/postgres"
	proposalservice "github.com/Brunera17/TCC/internal/proposal/service"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	root := &cobra.Command{
		Use:           "tcc",
		Short:         "Proposal and authentication API for the accounting office",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(serveCmd(), migrateCmd())

	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	var migrate bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.Load()
			initLogger(cfg)
			defer logger.Sync()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			pool, err := db.NewPostgresPool(ctx, cfg.DBURL)
			if err != nil {
				return err
			}
			defer pool.Close()

			if migrate {
				if err := runMigrations(ctx, pool); err != nil {
					return err
				}
			}
			return serve(ctx, cfg, pool)
		},
	}
	cmd.Flags().BoolVar(&migrate, "migrate", false, "apply pending migrations before serving")
	return cmd
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.Load()
			initLogger(cfg)
			defer logger.Sync()

			pool, err := db.NewPostgresPool(cmd.Context(), cfg.DBURL)
			if err != nil {
				return err
			}
			defer pool.Close()
			return runMigrations(cmd.Context(), pool)
		},
	}
}

func initLogger(cfg *config.Config) {
	logger.Init(logger.Config{Env: cfg.Env, Level: cfg.LogLevel, ServiceName: "tcc"})
}

func runMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	migrations, err := db.Migrations()
	if err != nil {
		return err
	}
	applied, err := db.Migrate(ctx, pool, migrations, logger.Named("migrate"))
	if err != nil {
		return err
	}
	logger.L().Info("migrations up to date", zap.Ints("applied", applied))
	return nil
}

func newRefreshStore(ctx context.Context, cfg *config.Config, pool *pgxpool.Pool) (authdomain.RefreshTokenStore, func(), error) {
	switch cfg.RefreshStore {
	case "redis":
		client, err := db.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			return nil, nil, err
		}
		return authredis.NewRefreshStore(client), func() { _ = client.Close() }, nil
	case "postgres":
		return authpg.NewRefreshStore(pool), func() {}, nil
	case "memory":
		return authservice.NewMemoryRefreshStore(), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown REFRESH_STORE %q", cfg.RefreshStore)
	}
}

func serve(ctx context.Context, cfg *config.Config, pool *pgxpool.Pool) error {
	log := logger.L()
	decimal.MarshalJSONWithoutQuotes = true

	if err := metrics.Register(prometheus.DefaultRegisterer); err != nil {
		return fmt.Errorf("registering metrics: %w", err)
	}

	store, closeStore, err := newRefreshStore(ctx, cfg, pool)
	if err != nil {
		return err
	}
	defer closeStore()

	userRepo := authpg.NewPostgresRepository(pool)
	tokenService := authservice.NewTokenService(cfg.AccessTokenSecret, cfg.RefreshTokenSecret,
		cfg.AccessExpiryMin, cfg.RefreshExpiryMin, store)
	userService := authservice.NewUserService(userRepo, tokenService, cfg)
	authHandler := authhandler.NewAuthHandler(userService, tokenService)

	eng := engine.New(engine.WithApprovalThreshold(decimal.NewFromInt(int64(cfg.ApprovalThreshold))))
	proposalService := proposalservice.NewProposalService(
		proposalpg.NewProposalRepository(pool),
		proposalpg.NewCounterpartyRepository(pool),
		eng,
	)
	proposalHandler := proposalhandler.NewProposalHandler(proposalService)

	clientService := clientservice.NewClientService(
		clientpg.NewClientRepository(pool),
		clientpg.NewLegalEntityRepository(pool),
	)
	clientHandler := clienthandler.NewClientHandler(clientService)

	app := fiber.New(fiber.Config{DisableStartupMessage: cfg.Env == "production"})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{AllowOrigins: cfg.CORSAllowOrigins}))
	app.Use(middleware.RequestLogger(logger.Named("http")))
	app.Use(middleware.Metrics())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	authhandler.RegisterRoutes(app, authHandler)
	proposalhandler.RegisterRoutes(app, proposalHandler,
		authHandler.RequireAuth(),
		authHandler.RequireRole(authdomain.RoleAdmin, authdomain.RoleManager))
	clienthandler.RegisterRoutes(app, clientHandler, authHandler.RequireAuth())

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", zap.String("port", cfg.Port), zap.String("refresh_store", cfg.RefreshStore))
		errCh <- app.Listen(":" + cfg.Port)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return app.ShutdownWithContext(shutdownCtx)
}
