package main

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cloud.google.com/go/firestore"
	_ "github.com/lib/pq"
	"github.com/m-mizutani/goerr/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/urfave/cli/v3"

	"github.com/m04kA/qwiky-admin-proxy/internal/api"
	"github.com/m04kA/qwiky-admin-proxy/internal/config"
	statusCheckRepo "github.com/m04kA/qwiky-admin-proxy/internal/infra/storage/statuscheck"
	qwikyServiceClient "github.com/m04kA/qwiky-admin-proxy/internal/integrations/qwikyservice"
	bookingsService "github.com/m04kA/qwiky-admin-proxy/internal/service/bookings"
	statusChecksService "github.com/m04kA/qwiky-admin-proxy/internal/service/statuschecks"
	usersService "github.com/m04kA/qwiky-admin-proxy/internal/service/users"
	"github.com/m04kA/qwiky-admin-proxy/pkg/logger"
	"github.com/m04kA/qwiky-admin-proxy/pkg/metrics"
)

func main() {
	cmd := &cli.Command{
		Name:  "qwiky-admin-proxy",
		Usage: "Qwiky admin API proxy",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to config.toml",
				Value:   "config.toml",
				Sources: cli.EnvVars("QWIKY_PROXY_CONFIG"),
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return run(ctx, c.String("config"))
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Printf("qwiky-admin-proxy: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, configPath string) error {
	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
	if err != nil {
		return goerr.Wrap(err, "failed to load config")
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		return goerr.Wrap(err, "failed to initialize logger")
	}
	defer log.Close()

	log.Info("Starting qwiky-admin-proxy...")
	log.Info("Configuration loaded from %s", configPath)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к хранилищу status check записей
	statusRepo, storeCloser, err := openStatusCheckStore(ctx, cfg.Storage, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := storeCloser.Close(); err != nil {
			log.Error("Failed to close storage: %v", err)
		}
		log.Info("Storage connection closed")
	}()

	// Инициализируем клиента Qwiky API
	clientOpts := []qwikyServiceClient.Option{}
	if metricsCollector != nil {
		clientOpts = append(clientOpts, qwikyServiceClient.WithMetrics(metricsCollector))
	}
	qwikyClient := qwikyServiceClient.NewClient(
		cfg.Qwiky.BaseURL,
		cfg.Qwiky.HoodID,
		time.Duration(cfg.Qwiky.Timeout)*time.Second,
		log,
		clientOpts...,
	)
	log.Info("Qwiky client initialized (url=%s, hood=%s, timeout=%ds)",
		cfg.Qwiky.BaseURL, cfg.Qwiky.HoodID, cfg.Qwiky.Timeout)
	if cfg.Qwiky.DefaultToken == "" {
		log.Warn("Default Qwiky token is empty, requests without Authorization header will be sent with an empty bearer token")
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(qwikyClient, log)
	userSvc := usersService.NewService(qwikyClient, log)
	statusCheckSvc := statusChecksService.NewService(statusRepo, &statusChecksService.RealTimeProvider{}, log)

	// Настраиваем роутер
	routerOpts := api.Options{
		PathPrefix:   cfg.Server.PathPrefix,
		DefaultToken: cfg.Qwiky.DefaultToken,
	}
	if metricsCollector != nil {
		routerOpts.Metrics = metricsCollector
		routerOpts.MetricsPath = cfg.Metrics.Path
		routerOpts.MetricsHandler = promhttp.Handler()
	}
	handler := api.NewRouter(bookingSvc, userSvc, statusCheckSvc, log, routerOpts)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	serverErr := make(chan error, 1)
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		log.Info("Signal received (%v), shutting down server...", sig)
	case err := <-serverErr:
		return goerr.Wrap(err, "server failed to start", goerr.V("addr", addr))
	case <-ctx.Done():
		log.Info("Context cancelled, shutting down server...")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}

// openStatusCheckStore открывает хранилище один раз на весь процесс
// Возвращаемый io.Closer нужно закрыть при остановке сервиса
func openStatusCheckStore(ctx context.Context, cfg config.StorageConfig, log *logger.Logger) (statusChecksService.Repository, io.Closer, error) {
	switch cfg.Driver {
	case config.StorageDriverFirestore:
		client, err := firestore.NewClientWithDatabase(ctx, cfg.ProjectID, firestoreDatabaseID(cfg))
		if err != nil {
			return nil, nil, goerr.Wrap(err, "failed to create firestore client", goerr.V("project_id", cfg.ProjectID))
		}
		log.Info("Connected to firestore (project=%s, database=%s, collection=%s)",
			cfg.ProjectID, firestoreDatabaseID(cfg), cfg.Collection)
		return statusCheckRepo.NewFirestoreRepository(client, cfg.Collection), client, nil

	default:
		dsn, err := cfg.DSN()
		if err != nil {
			return nil, nil, err
		}

		db, err := sql.Open("postgres", dsn)
		if err != nil {
			return nil, nil, goerr.Wrap(err, "failed to open database")
		}

		// Настраиваем connection pool
		db.SetMaxOpenConns(cfg.MaxOpenConns)
		db.SetMaxIdleConns(cfg.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Second)

		// Проверяем соединение
		if err := db.PingContext(ctx); err != nil {
			_ = db.Close()
			return nil, nil, goerr.Wrap(err, "failed to ping database", goerr.V("db_name", cfg.DBName))
		}
		log.Info("Successfully connected to database (db=%s)", cfg.DBName)
		return statusCheckRepo.NewRepository(db), db, nil
	}
}

func firestoreDatabaseID(cfg config.StorageConfig) string {
	if cfg.DatabaseID != "" {
		return cfg.DatabaseID
	}
	if cfg.DBName != "" {
		return cfg.DBName
	}
	return firestore.DefaultDatabaseID
}
