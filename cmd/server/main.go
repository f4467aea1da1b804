package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/Tanishagodhaa/qr-cafe-menu/internal/config"
	"github.com/Tanishagodhaa/qr-cafe-menu/internal/handlers"
	"github.com/Tanishagodhaa/qr-cafe-menu/internal/middleware"
	"github.com/Tanishagodhaa/qr-cafe-menu/internal/repository"
	"github.com/Tanishagodhaa/qr-cafe-menu/internal/scrape"
	"github.com/Tanishagodhaa/qr-cafe-menu/internal/service"
	"github.com/Tanishagodhaa/qr-cafe-menu/internal/slug"
	"github.com/Tanishagodhaa/qr-cafe-menu/internal/store"
	"github.com/Tanishagodhaa/qr-cafe-menu/pkg/logger"
)

func main() {
	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	log.Info("starting qr cafe menu server",
		"port", cfg.Server.Port,
		"host", cfg.Server.Host,
		"db_driver", cfg.Database.Driver,
		"log_level", cfg.LogLevel,
	)

	ctx := context.Background()

	// Initialize repositories over the configured storage backend
	var (
		userRepo     repository.UserRepository
		cafeRepo     repository.CafeRepository
		categoryRepo repository.CategoryRepository
		itemRepo     repository.ItemRepository
		activityRepo repository.ActivityRepository
	)

	switch cfg.Database.Driver {
	case "postgres":
		db, err := store.NewPostgres(ctx, cfg.Database.ConnString())
		if err != nil {
			log.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer db.Close()

		if err := db.Migrate(ctx); err != nil {
			log.Error("failed to apply migrations", "error", err)
			os.Exit(1)
		}

		userRepo = repository.NewPostgresUserRepository(db)
		cafeRepo = repository.NewPostgresCafeRepository(db)
		categoryRepo = repository.NewPostgresCategoryRepository(db)
		itemRepo = repository.NewPostgresItemRepository(db)
		activityRepo = repository.NewPostgresActivityRepository(db)
	case "memory":
		userRepo = repository.NewInMemoryUserRepository()
		cafeRepo = repository.NewInMemoryCafeRepository()
		categoryRepo = repository.NewInMemoryCategoryRepository()
		itemRepo = repository.NewInMemoryItemRepository()
		activityRepo = repository.NewInMemoryActivityRepository()
	}

	// Seed the slug generator with every slug already granted
	existing, err := cafeRepo.Slugs(ctx)
	if err != nil {
		log.Error("failed to load existing slugs", "error", err)
		os.Exit(1)
	}
	slugs := slug.NewGenerator(existing)
	log.Info("slug generator seeded", "existing_slugs", len(existing))

	// Initialize services
	extractor := scrape.New(nil)
	authService := service.NewAuthService(userRepo, cfg.Auth)
	cafeService := service.NewCafeService(cafeRepo, activityRepo, slugs, extractor)
	categoryService := service.NewCategoryService(cafeRepo, categoryRepo, itemRepo)
	itemService := service.NewItemService(cafeRepo, categoryRepo, itemRepo)
	menuService := service.NewMenuService(cafeRepo, categoryRepo, itemRepo)
	deployService := service.NewDeployService(cafeRepo, menuService, activityRepo, cfg.Deploy, log)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(log)
	authHandler := handlers.NewAuthHandler(authService, log)
	cafeHandler := handlers.NewCafeHandler(cafeService, menuService, deployService, log)
	categoryHandler := handlers.NewCategoryHandler(categoryService, log)
	itemHandler := handlers.NewItemHandler(itemService, log)
	publicHandler := handlers.NewPublicHandler(menuService, cfg.Auth, log)

	// Create router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// CORS configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Register health check endpoint
	r.Get("/health", healthHandler.ServeHTTP)

	// Public menu pages
	r.Get("/m/{slug}", publicHandler.MenuPage)

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)
		r.Post("/auth/refresh", authHandler.Refresh)

		// Owner endpoints require a valid access token
		r.Group(func(r chi.Router) {
			r.Use(middleware.BearerAuth(cfg.Auth))

			r.Post("/cafes", cafeHandler.CreateCafe)
			r.Get("/cafes", cafeHandler.ListCafes)
			r.Get("/cafes/{cafeId}", cafeHandler.GetCafe)
			r.Put("/cafes/{cafeId}", cafeHandler.UpdateCafe)
			r.Post("/cafes/{cafeId}/publish", cafeHandler.Publish)
			r.Post("/cafes/{cafeId}/deploy", cafeHandler.Deploy)
			r.Get("/cafes/{cafeId}/qr", cafeHandler.QRCode)
			r.Get("/cafes/{cafeId}/package", cafeHandler.Package)
			r.Get("/cafes/{cafeId}/activity", cafeHandler.Activity)

			r.Post("/cafes/{cafeId}/categories", categoryHandler.CreateCategory)
			r.Get("/cafes/{cafeId}/categories", categoryHandler.ListCategories)
			r.Put("/cafes/{cafeId}/categories/order", categoryHandler.Reorder)
			r.Put("/categories/{categoryId}", categoryHandler.UpdateCategory)
			r.Delete("/categories/{categoryId}", categoryHandler.DeleteCategory)

			r.Post("/categories/{categoryId}/items", itemHandler.CreateItem)
			r.Get("/categories/{categoryId}/items", itemHandler.ListItems)
			r.Put("/items/{itemId}", itemHandler.UpdateItem)
			r.Delete("/items/{itemId}", itemHandler.DeleteItem)
		})
	})

	// Create HTTP server
	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	// Create shutdown context with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	// Attempt graceful shutdown
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped gracefully")
}
