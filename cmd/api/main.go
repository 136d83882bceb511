package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"spendwise/internal/config"
	"spendwise/internal/database"
	"spendwise/internal/identity"
	"spendwise/internal/logger"
	"spendwise/internal/middleware"
	"spendwise/internal/router"
	"spendwise/internal/services"
)

// @title           Spendwise API
// @version         1.0
// @description     Spendwise is a personal finance tracker: expenses, categories, monthly budgets, statistics and exports.

// @host      localhost:8080
// @BasePath  /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the session token.

// @securityDefinitions.apikey SessionCookie
// @in cookie
// @name session_token

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	dbConfig, err := database.NewConfig(appConfig)
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	defer func() {
		if err := dbManager.Close(); err != nil {
			log.Warnw("failed to close database", "error", err)
		}
	}()

	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Initialize services
	db := dbManager.DB()
	identityClient := identity.NewClient(appConfig.IdentityBaseURL, &http.Client{Timeout: appConfig.IdentityTimeout})
	categoryService := services.NewCategoryService(db)
	svc := router.Services{
		Sessions:   services.NewSessionService(db, identityClient, categoryService, services.WithSessionTTL(appConfig.SessionTTL)),
		Expenses:   services.NewExpenseService(db),
		Categories: categoryService,
		Budgets:    services.NewBudgetService(db),
		Stats:      services.NewStatsService(db),
		Audit:      services.NewAuditService(db),
	}

	engine := router.New(svc, appConfig.SessionTTL)
	srv := &http.Server{
		Addr:    ":" + appConfig.Port,
		Handler: middleware.CORS(appConfig.CORSOrigins)(engine),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Infof("Starting Spendwise server on port %s", appConfig.Port)
		log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), appConfig.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	log.Info("Server stopped")
	return nil
}
