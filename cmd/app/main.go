package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"forwarding/cmd"
	httpin "forwarding/internal/adapters/in/http"
	"forwarding/internal/adapters/in/http/docs"
	"forwarding/internal/adapters/out/postgres/carrierrepo"
	"forwarding/internal/adapters/out/postgres/orderrepo"
	"forwarding/internal/adapters/out/postgres/principalrepo"
	"forwarding/internal/adapters/out/postgres/warehouserepo"
	"forwarding/internal/core/application/usecases/commands"
	"forwarding/internal/core/domain/model/identity"
	"forwarding/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configs, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	gormDB := mustOpenDB(configs)

	app, err := cmd.NewCompositionRoot(configs, gormDB, logger)
	if err != nil {
		log.Fatalf("Failed to build application: %v", err)
	}
	defer func() {
		if err := app.Close(); err != nil {
			logger.Error("failed to close application", "error", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if configs.HasBootstrapAdmin() {
		if err := bootstrapAdmin(ctx, app, configs); err != nil {
			log.Fatalf("Failed to create bootstrap admin: %v", err)
		}
	}

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	e := newEcho(ctx, app, configs, logger)
	startWebServer(ctx, e, configs.HTTPPort, logger)
}

func mustOpenDB(configs cmd.Config) *gorm.DB {
	gormDB, err := gorm.Open(postgres.Open(configs.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&carrierrepo.CarrierDTO{},
		&orderrepo.OrderDTO{},
		&principalrepo.PrincipalDTO{},
		&warehouserepo.WarehouseDTO{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	return gormDB
}

// bootstrapAdmin creates the configured admin account unless the username is
// already taken.
func bootstrapAdmin(ctx context.Context, app *cmd.CompositionRoot, configs cmd.Config) error {
	command, err := commands.NewCreatePrincipalCommand(
		configs.BootstrapAdminUsername,
		configs.BootstrapAdminPassword,
		identity.MustRoles(identity.Admin),
	)
	if err != nil {
		return err
	}

	handler := app.CreateCreatePrincipalCommandHandler()
	if err := handler.Handle(ctx, command); err != nil && !errors.Is(err, errs.ErrObjectAlreadyExists) {
		return err
	}
	return nil
}

func newEcho(ctx context.Context, app *cmd.CompositionRoot, configs cmd.Config, logger *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Logger.SetLevel(log.INFO)

	e.Use(
		middleware.RequestID(),
		middleware.Recover(),
		middleware.ContextTimeout(configs.RequestTimeout),
	)

	httpin.RegisterRoutes(
		e,
		app.CreateHTTPServer(),
		app.CreateRequestAuthorizationFilter(),
		app.CreateAccessPolicy(),
		logger,
	)

	if err := docs.Register(ctx, e); err != nil {
		log.Fatalf("Failed to register API docs: %v", err)
	}
	return e
}

func startWebServer(ctx context.Context, e *echo.Echo, port string, logger *slog.Logger) {
	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			e.Logger.Fatal(err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}
}
