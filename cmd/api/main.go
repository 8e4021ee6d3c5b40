package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/recipebox/server/internal/api"
	"github.com/recipebox/server/internal/api/handlers"
	"github.com/recipebox/server/internal/api/validators"
	"github.com/recipebox/server/internal/models"
	"github.com/recipebox/server/internal/repository"
	"github.com/recipebox/server/internal/services"
	"github.com/recipebox/server/pkg/config"
	"github.com/recipebox/server/pkg/database"
	"github.com/recipebox/server/pkg/logger"
)

func main() {
	cfg := config.MustLoad()

	log, err := logger.Init(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	log.Info("starting recipebox server",
		zap.String("env", cfg.AppEnv),
		zap.String("addr", cfg.HTTPAddr),
	)

	ctx := context.Background()
	db, err := database.OpenPostgres(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	log.Info("database connected")

	// Repositories
	accountRepo := repository.NewAccountRepository(db)
	tokenRepo := repository.NewTokenRepository(db)
	tagRepo := repository.NewAttributeRepository[models.Tag](db)
	ingredientRepo := repository.NewAttributeRepository[models.Ingredient](db)
	recipeRepo := repository.NewRecipeRepository(db)

	// Services
	accountSvc := services.NewAccountService(accountRepo, cfg.BcryptCost)
	tokenSvc := services.NewTokenService(accountRepo, tokenRepo)
	recipeSvc := services.NewRecipeService(recipeRepo, tagRepo, ingredientRepo)

	// Handlers
	v := validators.New()
	router := api.NewRouter(api.Dependencies{
		Resolver:           tokenSvc,
		AccountsHandler:    handlers.NewAccountsHandler(accountSvc, tokenSvc, v),
		MeHandler:          handlers.NewMeHandler(accountSvc, v),
		TagsHandler:        handlers.NewTagsHandler(tagRepo, v),
		IngredientsHandler: handlers.NewIngredientsHandler(ingredientRepo, v),
		RecipesHandler:     handlers.NewRecipesHandler(recipeSvc, v),
		HealthHandler:      handlers.NewHealthHandler(db),
	})

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       90 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("HTTP server starting", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	// Graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Info("shutdown signal received", zap.String("signal", sig.String()))
	case err := <-errCh:
		log.Error("server error", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown error", zap.Error(err))
	} else {
		log.Info("server exited gracefully")
	}
}
