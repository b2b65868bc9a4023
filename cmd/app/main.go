package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"orderdesk/cmd"
	httpin "orderdesk/internal/adapters/in/http"
	"orderdesk/internal/adapters/out/postgres"
	"orderdesk/internal/core/application/usecases/commands"
	"orderdesk/internal/pkg/logging"
	"orderdesk/internal/pkg/metrics"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}

	config, err := cmd.LoadConfig()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	log, err := logging.New(logging.Options{
		Level:  config.LogLevel,
		File:   config.LogFile,
		Fields: map[string]any{"service": "orderdesk"},
	})
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gormDB, err := openDatabase(config)
	if err != nil {
		return err
	}
	defer closeDatabase(gormDB, log)

	if err = postgres.Migrate(gormDB.WithContext(ctx)); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	m := metrics.New()
	app := cmd.NewCompositionRoot(config, gormDB, m, log)

	if config.SeedProducts {
		if err = seedProducts(ctx, app, log); err != nil {
			return err
		}
	}

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	return startWebServer(ctx, app, config, m, log)
}

func openDatabase(config cmd.Config) (*gorm.DB, error) {
	gormDB, err := gorm.Open(pgdriver.Open(config.DSN()), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("database pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(config.DBMaxOpenConns)
	sqlDB.SetMaxIdleConns(config.DBMaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return gormDB, nil
}

func closeDatabase(gormDB *gorm.DB, log *zap.Logger) {
	sqlDB, err := gormDB.DB()
	if err != nil {
		return
	}
	if err = sqlDB.Close(); err != nil {
		log.Error("close database", zap.Error(err))
		return
	}
	log.Info("database connection closed")
}

func seedProducts(ctx context.Context, app cmd.CompositionRoot, log *zap.Logger) error {
	seedCmd, err := commands.NewSeedProductsCommand(commands.DefaultCatalogue)
	if err != nil {
		return err
	}

	inserted, err := app.CreateSeedProductsCommandHandler().Handle(ctx, seedCmd)
	if err != nil {
		return fmt.Errorf("seed products: %w", err)
	}
	log.Info("product catalogue seeded", zap.Int("inserted", inserted))
	return nil
}

func startWebServer(ctx context.Context, app cmd.CompositionRoot, config cmd.Config, m *metrics.Metrics, log *zap.Logger) error {
	e, err := httpin.NewRouter(ctx, app.CreateServer(), httpin.RouterOptions{
		Logger:       log,
		Metrics:      m,
		AllowOrigins: config.AllowOrigins(),
		LogLevel:     config.LogLevel,
	})
	if err != nil {
		return fmt.Errorf("http router: %w", err)
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("http server started", zap.String("addr", httpin.Address(config.HTTPPort)))
		if startErr := e.Start(httpin.Address(config.HTTPPort)); startErr != nil && !errors.Is(startErr, http.ErrServerClosed) {
			errCh <- startErr
		}
		close(errCh)
	}()

	select {
	case err = <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err = e.Shutdown(shutdownCtx); err != nil {
		log.Error("http server shutdown", zap.Error(err))
		return err
	}
	log.Info("http server stopped")
	return nil
}
