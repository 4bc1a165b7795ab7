package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/smerla/milkbook/internal/auth"
	"github.com/smerla/milkbook/internal/config"
	"github.com/smerla/milkbook/internal/server/handlers"
	"github.com/smerla/milkbook/internal/server/router"
	"github.com/smerla/milkbook/internal/service"
	"github.com/smerla/milkbook/internal/storage/sqlite"
	"github.com/smerla/milkbook/pkg/logging"
)

func main() {
	envFile := flag.String("env", "", "path to an optional .env file")
	flag.Parse()

	cfg, err := config.Load(*envFile)
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	logging.SetupWithLevel(logging.ParseLevel(cfg.Log.Level))

	store, err := sqlite.New(cfg.DB.Path)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.DB.Path)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	authenticator := auth.NewPasswordAuthenticator(store)

	entrySvc := service.NewEntryService(store)
	customerSvc := service.NewCustomerService(store)
	billingSvc := service.NewBillingService(store)
	reportSvc := service.NewReportService(store, customerSvc)
	advanceSvc := service.NewAdvanceService(store)
	rateChartSvc := service.NewRateChartService(store)
	feedSvc := service.NewFeedService(store)
	authSvc := service.NewAuthService(authenticator, jwtManager)

	engine := router.New(router.Handlers{
		Auth:      handlers.NewAuthHandler(authSvc),
		Entries:   handlers.NewEntryHandler(entrySvc),
		Customers: handlers.NewCustomerHandler(customerSvc),
		Billing:   handlers.NewBillingHandler(billingSvc),
		Reports:   handlers.NewReportHandler(reportSvc),
		Advances:  handlers.NewAdvanceHandler(advanceSvc),
		Catalog:   handlers.NewCatalogHandler(rateChartSvc, feedSvc),
	}, jwtManager)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: engine,
	}

	go func() {
		slog.Info("Server starting", "address", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	slog.Info("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Shutdown failed", "error", err)
	}
}
